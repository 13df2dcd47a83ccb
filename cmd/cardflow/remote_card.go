package main

import (
	"errors"
	"os"

	"cardflow/internal/model"
	"cardflow/internal/remote"
	"cardflow/internal/transfer"

	"github.com/spf13/cobra"
)

func (a *app) remoteBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board BOARD_ID",
		Short: "Show a board from the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done := a.remoteClient(cmd.Context())
			defer done()
			board, err := client.Board(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(board)
		},
	}
}

func (a *app) remoteExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export BOARD_ID",
		Short: "Download a board document from the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done := a.remoteClient(cmd.Context())
			defer done()
			doc, err := client.ExportBoard(cmd.Context(), args[0])
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
			defer f.Close()
			if err := transfer.WriteDocument(f, doc); err != nil {
				return err
			}
			a.printf("exported %d cards and %d links to %s\n", len(doc.Cards), len(doc.Links), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (defaults to stdout)")
	return cmd
}

func (a *app) remoteCardCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "card", Short: "Change cards on the server, queueing while it is unreachable"}

	var boardID, title, description, cardType, status, priority string
	var tags []string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add a card to a server board",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done := a.remoteClient(cmd.Context())
			defer done()
			card, err := client.CreateCard(cmd.Context(), model.Card{
				Title:       title,
				Description: description,
				CardType:    cardType,
				Status:      status,
				Priority:    priority,
				Tags:        tags,
				BoardID:     boardID,
			})
			if err != nil {
				return a.queuedOrErr(err)
			}
			return a.printJSON(card)
		},
	}
	createCmd.Flags().StringVarP(&boardID, "board", "b", "", "Board ID (required)")
	createCmd.Flags().StringVarP(&title, "title", "t", "", "Title (required)")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	createCmd.Flags().StringVar(&cardType, "type", "", "feature, task, bug, idea, epic or note")
	createCmd.Flags().StringVarP(&status, "status", "s", "", "Status name")
	createCmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium, high or critical")
	createCmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	_ = createCmd.MarkFlagRequired("board")
	_ = createCmd.MarkFlagRequired("title")

	updateCmd := &cobra.Command{
		Use:   "update CARD_ID",
		Short: "Change a server card's title, status or priority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done := a.remoteClient(cmd.Context())
			defer done()
			card, err := client.UpdateCard(cmd.Context(), args[0], cardPatchFromFlags(cmd))
			if err != nil {
				return a.queuedOrErr(err)
			}
			return a.printJSON(card)
		},
	}
	updateCmd.Flags().StringP("title", "t", "", "New title")
	updateCmd.Flags().StringP("status", "s", "", "New status")
	updateCmd.Flags().StringP("priority", "p", "", "New priority")

	deleteCmd := &cobra.Command{
		Use:   "delete CARD_ID",
		Short: "Delete a server card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done := a.remoteClient(cmd.Context())
			defer done()
			if err := client.DeleteCard(cmd.Context(), args[0]); err != nil {
				return a.queuedOrErr(err)
			}
			a.printf("deleted card %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(createCmd, updateCmd, deleteCmd)
	return cmd
}

// queuedOrErr reports a change parked in the pending queue as success.
func (a *app) queuedOrErr(err error) error {
	if errors.Is(err, remote.ErrQueuedOffline) {
		a.printf("server unreachable, change queued\n")
		return nil
	}
	return err
}
