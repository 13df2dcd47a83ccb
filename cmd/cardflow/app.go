package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"cardflow/internal/config"
	"cardflow/internal/logger"
	"cardflow/internal/repository"
	"cardflow/internal/store"
	"cardflow/internal/transfer"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const sessionKey = "current_user_id"

var errNotLoggedIn = errors.New("not logged in, run `cardflow login` first")

// app carries what every command needs once the local store is open.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	store    *store.Store
	repos    *repository.Repositories
	transfer *transfer.Service
	out      io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	var dbPath, apiURL string

	root := &cobra.Command{
		Use:           "cardflow",
		Short:         "Local-first CardFlow boards from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.Database.Driver = config.DriverSQLite
				cfg.Database.Path = dbPath
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			return a.open(cmd.Context(), cfg)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file (defaults to DB_PATH)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "CardFlow server URL for remote commands (defaults to API_URL)")

	root.AddCommand(
		a.registerCmd(), a.loginCmd(), a.logoutCmd(), a.whoamiCmd(),
		a.workspaceCmd(), a.boardCmd(), a.cardCmd(), a.linkCmd(),
		a.searchCmd(), a.exportCmd(), a.importCmd(), a.dbCmd(), a.remoteCmd(),
	)
	return root
}

func (a *app) open(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a.cfg = cfg
	a.log = logger.NewWithWriter(os.Stderr, "cardflow-cli", cfg.LogLevel)

	st, err := store.Open(ctx, cfg.Database, a.log)
	if err != nil {
		return err
	}
	a.store = st
	a.repos = repository.New(st.DB)
	a.transfer = transfer.NewService(a.repos, a.log)
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// currentUser returns the id of the locally signed-in user.
func (a *app) currentUser(ctx context.Context) (string, error) {
	userID, ok, err := a.repos.Settings.Get(ctx, sessionKey)
	if err != nil {
		return "", err
	}
	if !ok || userID == "" {
		return "", errNotLoggedIn
	}
	return userID, nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
