package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cardflow/internal/model"

	"gorm.io/gorm"
)

type BoardRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// BoardFilter narrows List. Empty fields are not applied.
type BoardFilter struct {
	WorkspaceID string
	OwnerID     string
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db, now: utcNow}
}

// Create persists a new board. Boards created without statuses get the six defaults.
func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	board.BoardID = model.NewID(model.PrefixBoard)
	if len(board.Statuses) == 0 {
		board.Statuses = model.DefaultStatuses()
	}
	now := r.now()
	board.CreatedAt = now
	board.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return fmt.Errorf("create board: %w", err)
	}
	return nil
}

// List returns boards matching filter, most recent first.
func (r *BoardRepository) List(ctx context.Context, filter BoardFilter) ([]model.Board, error) {
	query := r.db.WithContext(ctx).Model(&model.Board{})
	if filter.WorkspaceID != "" {
		query = query.Where("workspace_id = ?", filter.WorkspaceID)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}

	boards := []model.Board{}
	err := query.Order("created_at DESC").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) GetByID(ctx context.Context, id string) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("board_id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil to indicate that the board was not found
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) Update(ctx context.Context, id string, patch model.BoardPatch) (*model.Board, error) {
	board, err := r.GetByID(ctx, id)
	if err != nil || board == nil {
		return nil, err
	}

	if patch.Name != nil {
		board.Name = *patch.Name
	}
	if patch.Description != nil {
		board.Description = *patch.Description
	}
	if patch.Statuses != nil {
		board.Statuses = *patch.Statuses
	}
	board.UpdatedAt = r.now()

	if err := r.db.WithContext(ctx).Save(board).Error; err != nil {
		return nil, fmt.Errorf("update board: %w", err)
	}
	return board, nil
}

// Delete removes the board with its links and cards.
func (r *BoardRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := purgeBoards(tx, []string{id})
		deleted = n > 0
		return err
	})
	return deleted, err
}
