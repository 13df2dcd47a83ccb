package repository

import (
	"fmt"

	"cardflow/internal/model"

	"gorm.io/gorm"
)

// The store declares no foreign-key cascades, so dependents are removed
// explicitly: links, then cards, then the boards themselves.

// purgeBoards returns the number of board rows removed.
func purgeBoards(tx *gorm.DB, boardIDs []string) (int64, error) {
	if len(boardIDs) == 0 {
		return 0, nil
	}
	if err := tx.Where("board_id IN ?", boardIDs).Delete(&model.Link{}).Error; err != nil {
		return 0, fmt.Errorf("delete board links: %w", err)
	}
	if err := tx.Where("board_id IN ?", boardIDs).Delete(&model.Card{}).Error; err != nil {
		return 0, fmt.Errorf("delete board cards: %w", err)
	}
	res := tx.Where("board_id IN ?", boardIDs).Delete(&model.Board{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete boards: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// purgeCard removes every link touching the card, in either direction, then the card.
func purgeCard(tx *gorm.DB, cardID string) (bool, error) {
	if err := tx.Where("source_card_id = ? OR target_card_id = ?", cardID, cardID).Delete(&model.Link{}).Error; err != nil {
		return false, fmt.Errorf("delete card links: %w", err)
	}
	res := tx.Where("card_id = ?", cardID).Delete(&model.Card{})
	if res.Error != nil {
		return false, fmt.Errorf("delete card: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
