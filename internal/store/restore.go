package store

import (
	"context"
	"fmt"
	"io"
	"os"

	"cardflow/internal/config"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Restore replaces the SQLite file at dst with the database file at src. The
// file is copied next to dst, opened, integrity checked and migrated before it
// is renamed into place, so dst is untouched when src is not a usable store.
// dst must not be open.
func Restore(ctx context.Context, src, dst string, log zerolog.Logger) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("restore source: %w", err)
	}
	if err := ensureDirForSQLite(dst); err != nil {
		return err
	}

	staged := dst + ".restore"
	if err := copyFile(src, staged); err != nil {
		return err
	}
	if err := validate(ctx, staged, log); err != nil {
		_ = os.Remove(staged)
		return err
	}
	if err := os.Rename(staged, dst); err != nil {
		_ = os.Remove(staged)
		return fmt.Errorf("replace db: %w", err)
	}
	log.Info().Str("from", src).Str("path", dst).Msg("database restored")
	return nil
}

func validate(ctx context.Context, path string, log zerolog.Logger) error {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), &gorm.Config{Logger: newGormLogger(log)})
	if err != nil {
		return fmt.Errorf("open restore file: %w", err)
	}
	s, err := New(db, config.DriverSQLite, log)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return fmt.Errorf("restore file is not a cardflow database: %w", err)
	}
	defer s.Close()

	var result string
	if err := s.DB.WithContext(ctx).Raw("PRAGMA integrity_check").Scan(&result).Error; err != nil {
		return fmt.Errorf("integrity check: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("integrity check: %s", result)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %q: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %q: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %q: %w", src, err)
	}
	return out.Close()
}
