package main

import (
	"context"
	"os"

	_ "cardflow/docs"
	"cardflow/internal/config"
	"cardflow/internal/logger"
	"cardflow/internal/scheduler"
	"cardflow/internal/server"
	"cardflow/internal/store"
)

// @title           CardFlow API
// @version         1.0
// @description     Workspaces, boards, cards and typed links between cards.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("cardflow-server", "info")
		boot.Error().Err(err).Msg("invalid configuration")
		return err
	}
	log := logger.New("cardflow-server", cfg.LogLevel)

	st, err := store.Open(context.Background(), cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("database initialization failed")
		return err
	}
	defer st.Close()

	if cfg.BackupSchedule != "" && st.Driver() == config.DriverSQLite {
		backups := scheduler.NewBackups(st, cfg.BackupDir, log)
		if _, err := backups.Schedule(cfg.BackupSchedule); err != nil {
			log.Error().Err(err).Msg("backup scheduler")
			return err
		}
		backups.Start()
		defer backups.Stop()
		log.Info().Str("schedule", cfg.BackupSchedule).Str("dir", cfg.BackupDir).Msg("backups scheduled")
	}

	if err := server.Init(cfg, st, log).Run(); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return err
	}
	return nil
}
