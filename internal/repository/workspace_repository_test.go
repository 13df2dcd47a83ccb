package repository_test

import (
	"context"
	"testing"

	"cardflow/internal/model"
	"cardflow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceRepository_Create_Defaults(t *testing.T) {
	repos := setupRepos(t)

	ws := mustWorkspace(t, repos, "user_1")

	assert.Contains(t, ws.WorkspaceID, model.PrefixWorkspace)
	assert.Equal(t, model.DefaultWorkspaceColor, ws.Color)
	assert.Equal(t, ws.CreatedAt, ws.UpdatedAt)
}

func TestWorkspaceRepository_ListByOwner(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	older := mustWorkspace(t, repos, "user_1")
	newer := mustWorkspace(t, repos, "user_1")
	mustWorkspace(t, repos, "user_2")

	list, err := repos.Workspaces.ListByOwner(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.WorkspaceID, list[0].WorkspaceID)
	assert.Equal(t, older.WorkspaceID, list[1].WorkspaceID)

	empty, err := repos.Workspaces.ListByOwner(ctx, "user_3")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestWorkspaceRepository_Update(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	ws := mustWorkspace(t, repos, "user_1")

	color := "#FF0000"
	updated, err := repos.Workspaces.Update(ctx, ws.WorkspaceID, model.WorkspacePatch{Color: &color})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Roadmap", updated.Name)
	assert.Equal(t, "#FF0000", updated.Color)
	assert.Equal(t, ws.OwnerID, updated.OwnerID)
	assert.True(t, updated.UpdatedAt.After(ws.UpdatedAt))
}

func TestWorkspaceRepository_Delete_Cascades(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	ws := mustWorkspace(t, repos, "user_1")
	b1 := mustBoard(t, repos, ws)
	b2 := mustBoard(t, repos, ws)
	c1 := mustCard(t, repos, b1, "one")
	c2 := mustCard(t, repos, b1, "two")
	c3 := mustCard(t, repos, b2, "three")
	mustLink(t, repos, c1, c2)
	mustLink(t, repos, c2, c3)

	survivor := mustWorkspace(t, repos, "user_1")
	sb := mustBoard(t, repos, survivor)
	sc := mustCard(t, repos, sb, "kept")

	deleted, err := repos.Workspaces.Delete(ctx, ws.WorkspaceID)
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := repos.Workspaces.GetByID(ctx, ws.WorkspaceID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	boards, err := repos.Boards.List(ctx, repository.BoardFilter{WorkspaceID: ws.WorkspaceID})
	require.NoError(t, err)
	assert.Empty(t, boards)

	for _, b := range []*model.Board{b1, b2} {
		cards, links := countRows(t, repos, b.BoardID)
		assert.Zero(t, cards)
		assert.Zero(t, links)
	}
	for _, c := range []*model.Card{c1, c2, c3} {
		found, err := repos.Cards.GetByID(ctx, c.CardID)
		require.NoError(t, err)
		assert.Nil(t, found)
	}

	kept, err := repos.Cards.GetByID(ctx, sc.CardID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestWorkspaceRepository_Delete_Missing(t *testing.T) {
	repos := setupRepos(t)

	deleted, err := repos.Workspaces.Delete(context.Background(), "ws_missing")

	assert.NoError(t, err)
	assert.False(t, deleted)
}
