package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cardflow/internal/model"

	"gorm.io/gorm"
)

type CardRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// SearchQuery scopes Search. BoardID and OwnerID are optional.
type SearchQuery struct {
	Text    string
	BoardID string
	OwnerID string
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db, now: utcNow}
}

// Create adds a new card to the database
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	card.CardID = model.NewID(model.PrefixCard)
	card.ApplyDefaults()
	now := r.now()
	card.CreatedAt = now
	card.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("create card: %w", err)
	}
	return nil
}

// GetByID retrieves a card by its ID
func (r *CardRepository) GetByID(ctx context.Context, id string) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).First(&card, "card_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &card, nil
}

// ListByBoard retrieves all cards of a board. Order is not significant.
func (r *CardRepository) ListByBoard(ctx context.Context, boardID string) ([]model.Card, error) {
	cards := []model.Card{}
	if err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Update applies patch. The card's id, board, creator and creation time never change.
func (r *CardRepository) Update(ctx context.Context, id string, patch model.CardPatch) (*model.Card, error) {
	card, err := r.GetByID(ctx, id)
	if err != nil || card == nil {
		return nil, err
	}

	patch.Apply(card)
	card.UpdatedAt = r.now()

	if err := r.db.WithContext(ctx).Save(card).Error; err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return card, nil
}

// Delete removes a card and every link that points to or from it.
func (r *CardRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = purgeCard(tx, id)
		return err
	})
	return deleted, err
}

// Search matches q case-insensitively against title and description.
func (r *CardRepository) Search(ctx context.Context, q SearchQuery) ([]model.Card, error) {
	// SQLite LIKE folds ASCII case only; postgres needs ILIKE for the same.
	op := "LIKE"
	if r.db.Dialector.Name() == "postgres" {
		op = "ILIKE"
	}
	pattern := likePattern(q.Text)
	query := r.db.WithContext(ctx).
		Where("(title "+op+" ? ESCAPE '\\' OR description "+op+" ? ESCAPE '\\')", pattern, pattern)
	if q.BoardID != "" {
		query = query.Where("board_id = ?", q.BoardID)
	}
	if q.OwnerID != "" {
		query = query.Where("created_by = ?", q.OwnerID)
	}

	cards := []model.Card{}
	if err := query.Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("search cards: %w", err)
	}
	return cards, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
