package main

import (
	"cardflow/internal/model"
	"cardflow/internal/repository"
	"cardflow/internal/view"

	"github.com/spf13/cobra"
)

func (a *app) boardCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "board", Short: "Board operations"}

	var workspaceID, name, description string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a board with the default statuses",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.ownedWorkspace(cmd, workspaceID)
			if err != nil {
				return err
			}
			board := &model.Board{Name: name, Description: description, WorkspaceID: ws.WorkspaceID, OwnerID: ws.OwnerID}
			if err := a.repos.Boards.Create(cmd.Context(), board); err != nil {
				return err
			}
			return a.printJSON(board)
		},
	}
	createCmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "Workspace ID (required)")
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Board name (required)")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	_ = createCmd.MarkFlagRequired("workspace")
	_ = createCmd.MarkFlagRequired("name")

	var filterWorkspace string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			boards, err := a.repos.Boards.List(cmd.Context(), repository.BoardFilter{WorkspaceID: filterWorkspace, OwnerID: userID})
			if err != nil {
				return err
			}
			return a.printJSON(boards)
		},
	}
	listCmd.Flags().StringVarP(&filterWorkspace, "workspace", "w", "", "Only boards of this workspace")

	showCmd := &cobra.Command{
		Use:   "show BOARD_ID",
		Short: "Print the board as kanban columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.ownedBoard(cmd, args[0])
			if err != nil {
				return err
			}
			cards, err := a.repos.Cards.ListByBoard(cmd.Context(), board.BoardID)
			if err != nil {
				return err
			}
			kanban := view.Kanban(*board, cards)

			a.printf("%s (%s)\n", board.Name, board.BoardID)
			for _, col := range kanban.Columns {
				a.printf("\n[%s] %d\n", col.Status.Name, len(col.Cards))
				for _, c := range col.Cards {
					a.printf("  - %s  %s (%s, %s)\n", c.CardID, c.Title, c.CardType, c.Priority)
				}
			}
			if len(kanban.Unsorted) > 0 {
				a.printf("\n[unsorted] %d\n", len(kanban.Unsorted))
				for _, c := range kanban.Unsorted {
					a.printf("  - %s  %s (status %q)\n", c.CardID, c.Title, c.Status)
				}
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete BOARD_ID",
		Short: "Delete a board with its cards and links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ownedBoard(cmd, args[0]); err != nil {
				return err
			}
			if _, err := a.repos.Boards.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printf("deleted board %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(createCmd, listCmd, showCmd, deleteCmd)
	return cmd
}
