package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cardflow/internal/config"
	"cardflow/internal/repository"
	"cardflow/internal/store"
	"cardflow/internal/transfer"

	"github.com/spf13/cobra"
)

func (a *app) searchCmd() *cobra.Command {
	var boardID string
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find your cards by title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			cards, err := a.repos.Cards.Search(cmd.Context(), repository.SearchQuery{
				Text:    args[0],
				BoardID: boardID,
				OwnerID: userID,
			})
			if err != nil {
				return err
			}
			return a.printJSON(cards)
		},
	}
	cmd.Flags().StringVarP(&boardID, "board", "b", "", "Only search this board")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export BOARD_ID",
		Short: "Write a board with its cards and links to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.ownedBoard(cmd, args[0])
			if err != nil {
				return err
			}
			doc, err := a.transfer.Export(cmd.Context(), board.BoardID)
			if err != nil {
				return err
			}
			if outPath == "" {
				return transfer.WriteDocument(a.out, doc)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := transfer.WriteDocument(f, doc); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.printf("exported %d cards and %d links to %s\n", len(doc.Cards), len(doc.Links), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (defaults to stdout)")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	var workspaceID string
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Recreate an exported board in a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.ownedWorkspace(cmd, workspaceID)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			doc, err := transfer.ParseDocument(f)
			if err != nil {
				return err
			}

			board, err := a.transfer.Import(cmd.Context(), doc, ws.WorkspaceID, ws.OwnerID)
			if err != nil {
				return err
			}
			return a.printJSON(board)
		},
	}
	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "Target workspace ID (required)")
	_ = cmd.MarkFlagRequired("workspace")
	return cmd
}

func (a *app) dbCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "db", Short: "Local database maintenance"}

	backupCmd := &cobra.Command{
		Use:   "backup [PATH]",
		Short: "Snapshot the local database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(a.cfg.BackupDir, fmt.Sprintf("cardflow-%s.db", time.Now().UTC().Format("20060102-150405")))
			if len(args) == 1 {
				path = args[0]
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := a.store.Backup(cmd.Context(), path); err != nil {
				return err
			}
			a.printf("backup written to %s\n", path)
			return nil
		},
	}

	restoreCmd := &cobra.Command{
		Use:   "restore PATH",
		Short: "Replace the local database with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.store.Driver() != config.DriverSQLite {
				return store.ErrBackupUnsupported
			}
			if err := a.close(); err != nil {
				return err
			}
			if err := store.Restore(cmd.Context(), args[0], a.cfg.Database.Path, a.log); err != nil {
				return err
			}
			a.printf("restored %s from %s\n", a.cfg.Database.Path, args[0])
			return nil
		},
	}

	cmd.AddCommand(backupCmd, restoreCmd)
	return cmd
}
