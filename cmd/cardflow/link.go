package main

import (
	"errors"
	"fmt"

	"cardflow/internal/model"
	"cardflow/internal/repository"

	"github.com/spf13/cobra"
)

func (a *app) linkCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "link", Short: "Link operations"}

	var from, to, linkType, label, lineStyle string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Connect two cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.ownedCard(cmd, from)
			if err != nil {
				return err
			}
			link := &model.Link{
				SourceCardID: source.CardID,
				TargetCardID: to,
				LinkType:     linkType,
				LineStyle:    lineStyle,
				CreatedBy:    source.CreatedBy,
			}
			if label != "" {
				link.Label = &label
			}
			if err := a.repos.Links.Create(cmd.Context(), link); err != nil {
				switch {
				case errors.Is(err, repository.ErrTargetCardNotFound):
					return fmt.Errorf("card %s not found", to)
				case errors.Is(err, repository.ErrLinkExists):
					return fmt.Errorf("%s is already linked to %s", from, to)
				}
				return err
			}
			return a.printJSON(link)
		},
	}
	createCmd.Flags().StringVar(&from, "from", "", "Source card ID (required)")
	createCmd.Flags().StringVar(&to, "to", "", "Target card ID (required)")
	createCmd.Flags().StringVar(&linkType, "type", "", "depends_on, blocks, related_to, part_of, uses, references or duplicate_of")
	createCmd.Flags().StringVar(&label, "label", "", "Label")
	createCmd.Flags().StringVar(&lineStyle, "style", "", "solid or dashed")
	_ = createCmd.MarkFlagRequired("from")
	_ = createCmd.MarkFlagRequired("to")

	var boardID string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the links of a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ownedBoard(cmd, boardID); err != nil {
				return err
			}
			links, err := a.repos.Links.ListByBoard(cmd.Context(), boardID)
			if err != nil {
				return err
			}
			return a.printJSON(links)
		},
	}
	listCmd.Flags().StringVarP(&boardID, "board", "b", "", "Board ID (required)")
	_ = listCmd.MarkFlagRequired("board")

	deleteCmd := &cobra.Command{
		Use:   "delete LINK_ID",
		Short: "Remove a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := a.repos.Links.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if link == nil {
				return fmt.Errorf("link %s not found", args[0])
			}
			if _, err := a.ownedBoard(cmd, link.BoardID); err != nil {
				return fmt.Errorf("link %s not found", args[0])
			}
			if _, err := a.repos.Links.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printf("deleted link %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(createCmd, listCmd, deleteCmd)
	return cmd
}
