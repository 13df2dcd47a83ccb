package main

import (
	"fmt"

	"cardflow/internal/model"

	"github.com/spf13/cobra"
)

func (a *app) cardCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "card", Short: "Card operations"}

	var boardID, title, description, cardType, status, priority string
	var tags []string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add a card to a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := a.ownedBoard(cmd, boardID)
			if err != nil {
				return err
			}
			card := &model.Card{
				Title:       title,
				Description: description,
				CardType:    cardType,
				Status:      status,
				Priority:    priority,
				Tags:        tags,
				BoardID:     board.BoardID,
				CreatedBy:   board.OwnerID,
			}
			if err := a.repos.Cards.Create(cmd.Context(), card); err != nil {
				return err
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

	var listBoard string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the cards of a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ownedBoard(cmd, listBoard); err != nil {
				return err
			}
			cards, err := a.repos.Cards.ListByBoard(cmd.Context(), listBoard)
			if err != nil {
				return err
			}
			return a.printJSON(cards)
		},
	}
	listCmd.Flags().StringVarP(&listBoard, "board", "b", "", "Board ID (required)")
	_ = listCmd.MarkFlagRequired("board")

	updateCmd := &cobra.Command{
		Use:   "update CARD_ID",
		Short: "Change a card's title, status or priority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ownedCard(cmd, args[0]); err != nil {
				return err
			}
			card, err := a.repos.Cards.Update(cmd.Context(), args[0], cardPatchFromFlags(cmd))
			if err != nil {
				return err
			}
			return a.printJSON(card)
		},
	}
	updateCmd.Flags().StringP("title", "t", "", "New title")
	updateCmd.Flags().StringP("status", "s", "", "New status")
	updateCmd.Flags().StringP("priority", "p", "", "New priority")

	deleteCmd := &cobra.Command{
		Use:   "delete CARD_ID",
		Short: "Delete a card and every link touching it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ownedCard(cmd, args[0]); err != nil {
				return err
			}
			if _, err := a.repos.Cards.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printf("deleted card %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(createCmd, listCmd, updateCmd, deleteCmd)
	return cmd
}

// cardPatchFromFlags collects the --title, --status and --priority flags the
// user actually set.
func cardPatchFromFlags(cmd *cobra.Command) model.CardPatch {
	var patch model.CardPatch
	flags := cmd.Flags()
	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		patch.Title = &v
	}
	if flags.Changed("status") {
		v, _ := flags.GetString("status")
		patch.Status = &v
	}
	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		patch.Priority = &v
	}
	return patch
}

func (a *app) ownedCard(cmd *cobra.Command, id string) (*model.Card, error) {
	card, err := a.repos.Cards.GetByID(cmd.Context(), id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("card %s not found", id)
	}
	if _, err := a.ownedBoard(cmd, card.BoardID); err != nil {
		return nil, fmt.Errorf("card %s not found", id)
	}
	return card, nil
}
