package repository_test

import (
	"context"
	"testing"

	"cardflow/internal/model"
	"cardflow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardRepository_Create_DefaultStatuses(t *testing.T) {
	repos := setupRepos(t)
	ws := mustWorkspace(t, repos, "user_1")

	board := mustBoard(t, repos, ws)

	stored, err := repos.Boards.GetByID(context.Background(), board.BoardID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	names := make([]string, len(stored.Statuses))
	for i, s := range stored.Statuses {
		names[i] = s.Name
		assert.Equal(t, i, s.Order)
	}
	assert.Equal(t, []string{"Idea", "Planned", "In Progress", "Testing", "Done", "Archived"}, names)
	assert.Contains(t, board.BoardID, model.PrefixBoard)
}

func TestBoardRepository_Create_KeepsExplicitStatuses(t *testing.T) {
	repos := setupRepos(t)
	board := &model.Board{Name: "Custom", OwnerID: "user_1", Statuses: []model.Status{{Name: "Todo", Color: "#000000"}}}

	require.NoError(t, repos.Boards.Create(context.Background(), board))

	stored, err := repos.Boards.GetByID(context.Background(), board.BoardID)
	require.NoError(t, err)
	assert.Equal(t, []model.Status{{Name: "Todo", Color: "#000000"}}, stored.Statuses)
}

func TestBoardRepository_GetByID_NotFound(t *testing.T) {
	repos := setupRepos(t)

	board, err := repos.Boards.GetByID(context.Background(), "board_missing")

	assert.NoError(t, err)
	assert.Nil(t, board)
}

func TestBoardRepository_List_FiltersAndNewestFirst(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	ws := mustWorkspace(t, repos, "user_1")
	other := mustWorkspace(t, repos, "user_1")

	first := mustBoard(t, repos, ws)
	second := mustBoard(t, repos, ws)
	mustBoard(t, repos, other)

	boards, err := repos.Boards.List(ctx, repository.BoardFilter{WorkspaceID: ws.WorkspaceID})
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, second.BoardID, boards[0].BoardID)
	assert.Equal(t, first.BoardID, boards[1].BoardID)

	owned, err := repos.Boards.List(ctx, repository.BoardFilter{OwnerID: "user_1"})
	require.NoError(t, err)
	assert.Len(t, owned, 3)

	none, err := repos.Boards.List(ctx, repository.BoardFilter{OwnerID: "user_2"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBoardRepository_Update(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	ws := mustWorkspace(t, repos, "user_1")
	board := mustBoard(t, repos, ws)

	name := "Renamed"
	statuses := []model.Status{{Name: "Open", Color: "#111111", Order: 0}, {Name: "Closed", Color: "#222222", Order: 1}}
	updated, err := repos.Boards.Update(ctx, board.BoardID, model.BoardPatch{Name: &name, Statuses: &statuses})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, ws.WorkspaceID, updated.WorkspaceID)
	assert.True(t, updated.UpdatedAt.After(board.UpdatedAt))

	stored, err := repos.Boards.GetByID(ctx, board.BoardID)
	require.NoError(t, err)
	assert.Equal(t, statuses, stored.Statuses)

	missing, err := repos.Boards.Update(ctx, "board_missing", model.BoardPatch{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBoardRepository_Delete_RemovesCardsAndLinks(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	ws := mustWorkspace(t, repos, "user_1")
	board := mustBoard(t, repos, ws)
	keep := mustBoard(t, repos, ws)

	a := mustCard(t, repos, board, "A")
	b := mustCard(t, repos, board, "B")
	mustLink(t, repos, a, b)
	k1 := mustCard(t, repos, keep, "K1")
	k2 := mustCard(t, repos, keep, "K2")
	mustLink(t, repos, k1, k2)

	deleted, err := repos.Boards.Delete(ctx, board.BoardID)
	require.NoError(t, err)
	assert.True(t, deleted)

	cards, links := countRows(t, repos, board.BoardID)
	assert.Zero(t, cards)
	assert.Zero(t, links)

	cards, links = countRows(t, repos, keep.BoardID)
	assert.Equal(t, 2, cards)
	assert.Equal(t, 1, links)

	again, err := repos.Boards.Delete(ctx, board.BoardID)
	assert.NoError(t, err)
	assert.False(t, again)
}
