package repository_test

import (
	"context"
	"testing"
	"time"

	"cardflow/internal/model"
	"cardflow/internal/repository"
	"cardflow/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// stepClock advances one second on every reading.
type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func setupRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	s, err := store.OpenMemory(zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	clock := &stepClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	return repository.New(s.DB, repository.WithClock(clock.Now))
}

func mustWorkspace(t *testing.T, repos *repository.Repositories, owner string) *model.Workspace {
	t.Helper()
	ws := &model.Workspace{Name: "Roadmap", OwnerID: owner}
	require.NoError(t, repos.Workspaces.Create(context.Background(), ws))
	return ws
}

func mustBoard(t *testing.T, repos *repository.Repositories, ws *model.Workspace) *model.Board {
	t.Helper()
	board := &model.Board{Name: "Q3", WorkspaceID: ws.WorkspaceID, OwnerID: ws.OwnerID}
	require.NoError(t, repos.Boards.Create(context.Background(), board))
	return board
}

func mustCard(t *testing.T, repos *repository.Repositories, board *model.Board, title string) *model.Card {
	t.Helper()
	card := &model.Card{Title: title, BoardID: board.BoardID, CreatedBy: board.OwnerID}
	require.NoError(t, repos.Cards.Create(context.Background(), card))
	return card
}

func mustLink(t *testing.T, repos *repository.Repositories, source, target *model.Card) *model.Link {
	t.Helper()
	link := &model.Link{SourceCardID: source.CardID, TargetCardID: target.CardID, CreatedBy: source.CreatedBy}
	require.NoError(t, repos.Links.Create(context.Background(), link))
	return link
}

func countRows(t *testing.T, repos *repository.Repositories, boardID string) (cards, links int) {
	t.Helper()
	ctx := context.Background()
	cs, err := repos.Cards.ListByBoard(ctx, boardID)
	require.NoError(t, err)
	ls, err := repos.Links.ListByBoard(ctx, boardID)
	require.NoError(t, err)
	return len(cs), len(ls)
}
