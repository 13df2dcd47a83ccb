package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cardflow/internal/model"

	"gorm.io/gorm"
)

type LinkRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db, now: utcNow}
}

// Create validates both endpoints and stores the link on the source card's
// board. A second link between the same source and target is rejected with
// ErrLinkExists. Nothing is written when a check fails.
func (r *LinkRepository) Create(ctx context.Context, link *model.Link) error {
	return r.create(ctx, link, true)
}

// CreateImported stores a link copied from a board document. Endpoints are
// still validated but several links may join the same pair of cards.
func (r *LinkRepository) CreateImported(ctx context.Context, link *model.Link) error {
	return r.create(ctx, link, false)
}

func (r *LinkRepository) create(ctx context.Context, link *model.Link, unique bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var source model.Card
		if err := tx.Select("card_id", "board_id").First(&source, "card_id = ?", link.SourceCardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSourceCardNotFound
			}
			return fmt.Errorf("find source card: %w", err)
		}

		var count int64
		if err := tx.Model(&model.Card{}).Where("card_id = ?", link.TargetCardID).Count(&count).Error; err != nil {
			return fmt.Errorf("find target card: %w", err)
		}
		if count == 0 {
			return ErrTargetCardNotFound
		}

		if unique {
			if err := tx.Model(&model.Link{}).
				Where("source_card_id = ? AND target_card_id = ?", link.SourceCardID, link.TargetCardID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("find existing link: %w", err)
			}
			if count > 0 {
				return ErrLinkExists
			}
		}

		link.LinkID = model.NewID(model.PrefixLink)
		link.BoardID = source.BoardID
		link.CreatedAt = r.now()
		link.ApplyDefaults()

		if err := tx.Create(link).Error; err != nil {
			return fmt.Errorf("create link: %w", err)
		}
		return nil
	})
}

func (r *LinkRepository) GetByID(ctx context.Context, id string) (*model.Link, error) {
	var link model.Link
	result := r.db.WithContext(ctx).First(&link, "link_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &link, nil
}

func (r *LinkRepository) ListByBoard(ctx context.Context, boardID string) ([]model.Link, error) {
	links := []model.Link{}
	if err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Update restyles a link. Endpoints and board are fixed once created.
func (r *LinkRepository) Update(ctx context.Context, id string, patch model.LinkPatch) (*model.Link, error) {
	link, err := r.GetByID(ctx, id)
	if err != nil || link == nil {
		return nil, err
	}

	patch.Apply(link)
	if err := r.db.WithContext(ctx).Save(link).Error; err != nil {
		return nil, fmt.Errorf("update link: %w", err)
	}
	return link, nil
}

func (r *LinkRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.Link{}, "link_id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("delete link: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
