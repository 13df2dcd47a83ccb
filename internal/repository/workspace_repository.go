package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cardflow/internal/model"

	"gorm.io/gorm"
)

type WorkspaceRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db, now: utcNow}
}

func (r *WorkspaceRepository) Create(ctx context.Context, ws *model.Workspace) error {
	ws.WorkspaceID = model.NewID(model.PrefixWorkspace)
	if ws.Color == "" {
		ws.Color = model.DefaultWorkspaceColor
	}
	now := r.now()
	ws.CreatedAt = now
	ws.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(ws).Error; err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's workspaces, most recent first.
func (r *WorkspaceRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Workspace, error) {
	workspaces := []model.Workspace{}
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&workspaces).Error
	return workspaces, err
}

func (r *WorkspaceRepository) GetByID(ctx context.Context, id string) (*model.Workspace, error) {
	var ws model.Workspace
	if err := r.db.WithContext(ctx).Where("workspace_id = ?", id).First(&ws).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ws, nil
}

// Update applies patch and refreshes updated_at. A missing workspace yields nil, nil.
func (r *WorkspaceRepository) Update(ctx context.Context, id string, patch model.WorkspacePatch) (*model.Workspace, error) {
	ws, err := r.GetByID(ctx, id)
	if err != nil || ws == nil {
		return nil, err
	}

	if patch.Name != nil {
		ws.Name = *patch.Name
	}
	if patch.Description != nil {
		ws.Description = *patch.Description
	}
	if patch.Color != nil {
		ws.Color = *patch.Color
	}
	ws.UpdatedAt = r.now()

	if err := r.db.WithContext(ctx).Save(ws).Error; err != nil {
		return nil, fmt.Errorf("update workspace: %w", err)
	}
	return ws, nil
}

// Delete removes the workspace together with its boards, their cards and links.
func (r *WorkspaceRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var boardIDs []string
		if err := tx.Model(&model.Board{}).Where("workspace_id = ?", id).Pluck("board_id", &boardIDs).Error; err != nil {
			return fmt.Errorf("list workspace boards: %w", err)
		}
		if _, err := purgeBoards(tx, boardIDs); err != nil {
			return err
		}

		res := tx.Where("workspace_id = ?", id).Delete(&model.Workspace{})
		if res.Error != nil {
			return fmt.Errorf("delete workspace: %w", res.Error)
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
