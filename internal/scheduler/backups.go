// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const backupTimeLayout = "20060102-150405"

// Backupper writes a consistent snapshot of the store to path.
type Backupper interface {
	Backup(ctx context.Context, path string) error
}

// Backups snapshots the store into dir on a cron schedule.
type Backups struct {
	cron  *cron.Cron
	store Backupper
	dir   string
	now   func() time.Time
	log   zerolog.Logger
}

func NewBackups(store Backupper, dir string, log zerolog.Logger) *Backups {
	return &Backups{
		cron:  cron.New(cron.WithLocation(time.UTC)),
		store: store,
		dir:   dir,
		now:   time.Now,
		log:   log.With().Str("component", "backups").Logger(),
	}
}

// Schedule registers the backup job. spec is a standard five-field cron
// expression or a descriptor such as "@daily" or "@every 6h".
func (b *Backups) Schedule(spec string) (cron.EntryID, error) {
	id, err := b.cron.AddFunc(spec, func() {
		if _, err := b.RunOnce(context.Background()); err != nil {
			b.log.Error().Err(err).Msg("scheduled backup failed")
		}
	})
	if err != nil {
		return 0, fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}
	return id, nil
}

// RunOnce writes one timestamped snapshot and returns its path.
func (b *Backups) RunOnce(ctx context.Context) (string, error) {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	path := filepath.Join(b.dir, fmt.Sprintf("cardflow-%s.db", b.now().UTC().Format(backupTimeLayout)))
	if err := b.store.Backup(ctx, path); err != nil {
		return "", err
	}

	b.log.Info().Str("path", path).Msg("backup written")
	return path, nil
}

func (b *Backups) Start() {
	b.cron.Start()
}

// Stop halts the schedule and waits for a running backup to finish.
func (b *Backups) Stop() {
	ctx := b.cron.Stop()
	<-ctx.Done()
}
