// Package store opens the relational record store shared by every repository.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cardflow/internal/config"
	"cardflow/internal/model"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrBackupUnsupported is returned by Backup for non-SQLite stores.
var ErrBackupUnsupported = errors.New("backup is only supported for sqlite stores")

// Store owns the gorm handle. It is created once at process start and passed
// to the repositories explicitly.
type Store struct {
	DB     *gorm.DB
	driver string
	log    zerolog.Logger
}

// Open connects using cfg, retrying PostgreSQL connections with exponential
// backoff, and migrates the schema.
func Open(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		if err := ensureDirForSQLite(cfg.Path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	var db *gorm.DB
	connect := func() error {
		var err error
		db, err = gorm.Open(dialector, &gorm.Config{Logger: newGormLogger(log)})
		if err != nil {
			log.Warn().Err(err).Str("driver", cfg.Driver).Msg("database not reachable yet")
			return err
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), cfg.ConnectRetries), ctx)
	if err := backoff.Retry(connect, policy); err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s, err := New(db, cfg.Driver, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.Driver).Msg("connected to database")
	return s, nil
}

// OpenMemory opens an isolated in-memory SQLite store. Each call yields a
// fresh database.
func OpenMemory(log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: newGormLogger(log)})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return New(db, config.DriverSQLite, log)
}

// New wraps an already opened gorm handle and migrates the schema.
func New(db *gorm.DB, driver string, log zerolog.Logger) (*Store, error) {
	if driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sql handle: %w", err)
		}
		// a single connection serializes writers and keeps :memory: databases intact
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	s := &Store{DB: db, driver: driver, log: log}
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Migrate creates or updates the six CardFlow tables.
func (s *Store) Migrate() error {
	if err := s.DB.AutoMigrate(
		&model.User{},
		&model.Workspace{},
		&model.Board{},
		&model.Card{},
		&model.Link{},
		&model.Setting{},
	); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}

func (s *Store) Driver() string {
	return s.driver
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Backup writes a consistent snapshot of a SQLite store to path.
func (s *Store) Backup(ctx context.Context, path string) error {
	if s.driver != config.DriverSQLite {
		return ErrBackupUnsupported
	}
	if err := ensureDirForSQLite(path); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("backup target %q already exists", path)
	}
	if err := s.DB.WithContext(ctx).Exec("VACUUM INTO ?", path).Error; err != nil {
		return fmt.Errorf("backup db: %w", err)
	}
	s.log.Info().Str("path", path).Msg("database backup written")
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_busy_timeout=5000"
}

// ensureDirForSQLite creates the parent dir for a SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

func newGormLogger(log zerolog.Logger) logger.Interface {
	return logger.New(
		&log,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
