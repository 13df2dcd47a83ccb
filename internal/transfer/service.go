package transfer

import (
	"context"
	"fmt"
	"time"

	"cardflow/internal/model"
	"cardflow/internal/repository"

	"github.com/rs/zerolog"
)

type Service struct {
	repos *repository.Repositories
	now   func() time.Time
	log   zerolog.Logger
}

func NewService(repos *repository.Repositories, log zerolog.Logger) *Service {
	return &Service{
		repos: repos,
		now:   func() time.Time { return time.Now().UTC() },
		log:   log.With().Str("component", "transfer").Logger(),
	}
}

// Export snapshots a board with all of its cards and links. A missing board
// yields nil, nil.
func (s *Service) Export(ctx context.Context, boardID string) (*Document, error) {
	board, err := s.repos.Boards.GetByID(ctx, boardID)
	if err != nil || board == nil {
		return nil, err
	}

	cards, err := s.repos.Cards.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("export cards: %w", err)
	}
	links, err := s.repos.Links.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("export links: %w", err)
	}

	return &Document{Board: *board, Cards: cards, Links: links, ExportedAt: s.now()}, nil
}

// Import recreates doc as a new board in workspaceID owned by ownerID. Every
// entity receives a fresh ID and links are rewired through the old-to-new card
// mapping. Links whose endpoints are not both part of the document are dropped.
func (s *Service) Import(ctx context.Context, doc *Document, workspaceID, ownerID string) (*model.Board, error) {
	var imported *model.Board
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		name := doc.Board.Name
		if name == "" {
			name = DefaultImportedBoardName
		}
		board := &model.Board{
			Name:        name,
			Description: doc.Board.Description,
			WorkspaceID: workspaceID,
			OwnerID:     ownerID,
			Statuses:    doc.Board.Statuses,
		}
		if err := tx.Boards.Create(ctx, board); err != nil {
			return err
		}

		idMap := make(map[string]string, len(doc.Cards))
		for _, src := range doc.Cards {
			card := src
			card.BoardID = board.BoardID
			card.CreatedBy = ownerID
			if err := tx.Cards.Create(ctx, &card); err != nil {
				return err
			}
			idMap[src.CardID] = card.CardID
		}

		dropped := 0
		for _, src := range doc.Links {
			sourceID, okSource := idMap[src.SourceCardID]
			targetID, okTarget := idMap[src.TargetCardID]
			if !okSource || !okTarget {
				dropped++
				continue
			}

			link := &model.Link{
				SourceCardID: sourceID,
				TargetCardID: targetID,
				LinkType:     src.LinkType,
				Label:        src.Label,
				Color:        src.Color,
				LineStyle:    src.LineStyle,
				CreatedBy:    ownerID,
			}
			if err := tx.Links.CreateImported(ctx, link); err != nil {
				return err
			}
		}

		if dropped > 0 {
			s.log.Debug().Int("dropped", dropped).Str("board_id", board.BoardID).Msg("skipped unresolvable links")
		}
		imported = board
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import board: %w", err)
	}
	return imported, nil
}
