package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Option configures a Repositories bundle.
type Option func(*Repositories)

// WithClock overrides the time source used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(r *Repositories) {
		r.now = now
	}
}

// Repositories groups one repository per entity kind over a single store handle.
type Repositories struct {
	db  *gorm.DB
	now func() time.Time

	Users      *UserRepository
	Workspaces *WorkspaceRepository
	Boards     *BoardRepository
	Cards      *CardRepository
	Links      *LinkRepository
	Settings   *SettingRepository
}

func New(db *gorm.DB, opts ...Option) *Repositories {
	r := &Repositories{db: db, now: utcNow}
	for _, opt := range opts {
		opt(r)
	}
	return r.bind(db)
}

func (r *Repositories) bind(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		now:        r.now,
		Users:      &UserRepository{db: db, now: r.now},
		Workspaces: &WorkspaceRepository{db: db, now: r.now},
		Boards:     &BoardRepository{db: db, now: r.now},
		Cards:      &CardRepository{db: db, now: r.now},
		Links:      &LinkRepository{db: db, now: r.now},
		Settings:   &SettingRepository{db: db},
	}
}

// Transaction runs fn with a bundle bound to a single database transaction.
// Everything fn writes commits together, or not at all if fn returns an error.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.bind(tx))
	})
}

func utcNow() time.Time {
	return time.Now().UTC()
}
