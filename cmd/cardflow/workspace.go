package main

import (
	"fmt"

	"cardflow/internal/model"

	"github.com/spf13/cobra"
)

func (a *app) workspaceCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "workspace", Aliases: []string{"ws"}, Short: "Workspace operations"}

	var name, description, color string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			ws := &model.Workspace{Name: name, Description: description, Color: color, OwnerID: userID}
			if err := a.repos.Workspaces.Create(cmd.Context(), ws); err != nil {
				return err
			}
			return a.printJSON(ws)
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Workspace name (required)")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	createCmd.Flags().StringVar(&color, "color", "", "Hex color (defaults to "+model.DefaultWorkspaceColor+")")
	_ = createCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			workspaces, err := a.repos.Workspaces.ListByOwner(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return a.printJSON(workspaces)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete WORKSPACE_ID",
		Short: "Delete a workspace with all of its boards, cards and links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ownedWorkspace(cmd, args[0]); err != nil {
				return err
			}
			if _, err := a.repos.Workspaces.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printf("deleted workspace %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(createCmd, listCmd, deleteCmd)
	return cmd
}

func (a *app) ownedWorkspace(cmd *cobra.Command, id string) (*model.Workspace, error) {
	userID, err := a.currentUser(cmd.Context())
	if err != nil {
		return nil, err
	}
	ws, err := a.repos.Workspaces.GetByID(cmd.Context(), id)
	if err != nil {
		return nil, err
	}
	if ws == nil || ws.OwnerID != userID {
		return nil, fmt.Errorf("workspace %s not found", id)
	}
	return ws, nil
}

func (a *app) ownedBoard(cmd *cobra.Command, id string) (*model.Board, error) {
	userID, err := a.currentUser(cmd.Context())
	if err != nil {
		return nil, err
	}
	board, err := a.repos.Boards.GetByID(cmd.Context(), id)
	if err != nil {
		return nil, err
	}
	if board == nil || board.OwnerID != userID {
		return nil, fmt.Errorf("board %s not found", id)
	}
	return board, nil
}
