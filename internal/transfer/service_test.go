package transfer_test

import (
	"bytes"
	"context"
	"testing"

	"cardflow/internal/model"
	"cardflow/internal/repository"
	"cardflow/internal/store"
	"cardflow/internal/transfer"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*repository.Repositories, *transfer.Service) {
	t.Helper()
	s, err := store.OpenMemory(zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	repos := repository.New(s.DB)
	return repos, transfer.NewService(repos, zerolog.Nop())
}

func seedBoard(t *testing.T, repos *repository.Repositories) (*model.Board, []*model.Card) {
	t.Helper()
	ctx := context.Background()

	ws := &model.Workspace{Name: "Source", OwnerID: "user_a"}
	require.NoError(t, repos.Workspaces.Create(ctx, ws))
	board := &model.Board{
		Name:        "Release",
		WorkspaceID: ws.WorkspaceID,
		OwnerID:     "user_a",
		Statuses:    []model.Status{{Name: "Open", Color: "#111111"}, {Name: "Shipped", Color: "#222222", Order: 1}},
	}
	require.NoError(t, repos.Boards.Create(ctx, board))

	var cards []*model.Card
	for _, title := range []string{"A", "B", "C"} {
		card := &model.Card{Title: title, BoardID: board.BoardID, CreatedBy: "user_a", Tags: []string{"t-" + title}}
		require.NoError(t, repos.Cards.Create(ctx, card))
		cards = append(cards, card)
	}

	label := "needs"
	require.NoError(t, repos.Links.Create(ctx, &model.Link{
		SourceCardID: cards[0].CardID, TargetCardID: cards[1].CardID, LinkType: model.LinkDependsOn, Label: &label,
	}))
	require.NoError(t, repos.Links.Create(ctx, &model.Link{
		SourceCardID: cards[1].CardID, TargetCardID: cards[2].CardID, LineStyle: model.LineDashed,
	}))
	return board, cards
}

func TestService_Export(t *testing.T) {
	repos, svc := setup(t)
	board, _ := seedBoard(t, repos)

	doc, err := svc.Export(context.Background(), board.BoardID)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, board.BoardID, doc.Board.BoardID)
	assert.Len(t, doc.Cards, 3)
	assert.Len(t, doc.Links, 2)
	assert.False(t, doc.ExportedAt.IsZero())

	missing, err := svc.Export(context.Background(), "board_missing")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestService_Import_RemapsIdentifiers(t *testing.T) {
	repos, svc := setup(t)
	ctx := context.Background()
	board, cards := seedBoard(t, repos)

	doc, err := svc.Export(ctx, board.BoardID)
	require.NoError(t, err)

	target := &model.Workspace{Name: "Target", OwnerID: "user_b"}
	require.NoError(t, repos.Workspaces.Create(ctx, target))

	imported, err := svc.Import(ctx, doc, target.WorkspaceID, "user_b")
	require.NoError(t, err)
	require.NotNil(t, imported)

	assert.NotEqual(t, board.BoardID, imported.BoardID)
	assert.Equal(t, "Release", imported.Name)
	assert.Equal(t, target.WorkspaceID, imported.WorkspaceID)
	assert.Equal(t, "user_b", imported.OwnerID)
	assert.Equal(t, board.Statuses, imported.Statuses)

	newCards, err := repos.Cards.ListByBoard(ctx, imported.BoardID)
	require.NoError(t, err)
	require.Len(t, newCards, 3)

	oldIDs := map[string]bool{}
	for _, c := range cards {
		oldIDs[c.CardID] = true
	}
	byTitle := map[string]model.Card{}
	for _, c := range newCards {
		assert.False(t, oldIDs[c.CardID])
		assert.Equal(t, "user_b", c.CreatedBy)
		assert.Equal(t, []string{"t-" + c.Title}, c.Tags)
		byTitle[c.Title] = c
	}

	newLinks, err := repos.Links.ListByBoard(ctx, imported.BoardID)
	require.NoError(t, err)
	require.Len(t, newLinks, 2)

	edges := map[string]model.Link{}
	for _, l := range newLinks {
		edges[l.SourceCardID+">"+l.TargetCardID] = l
	}
	ab, ok := edges[byTitle["A"].CardID+">"+byTitle["B"].CardID]
	require.True(t, ok)
	assert.Equal(t, model.LinkDependsOn, ab.LinkType)
	require.NotNil(t, ab.Label)
	assert.Equal(t, "needs", *ab.Label)

	bc, ok := edges[byTitle["B"].CardID+">"+byTitle["C"].CardID]
	require.True(t, ok)
	assert.Equal(t, model.LineDashed, bc.LineStyle)

	original, err := repos.Cards.ListByBoard(ctx, board.BoardID)
	require.NoError(t, err)
	assert.Len(t, original, 3)
}

func TestService_Import_DropsDanglingLinks(t *testing.T) {
	repos, svc := setup(t)
	ctx := context.Background()

	doc := &transfer.Document{
		Cards: []model.Card{{CardID: "card_x", Title: "X"}},
		Links: []model.Link{
			{LinkID: "link_1", SourceCardID: "card_x", TargetCardID: "card_y"},
			{LinkID: "link_2", SourceCardID: "card_z", TargetCardID: "card_x"},
		},
	}

	imported, err := svc.Import(ctx, doc, "", "user_b")
	require.NoError(t, err)
	require.NotNil(t, imported)

	assert.Equal(t, transfer.DefaultImportedBoardName, imported.Name)
	assert.Len(t, imported.Statuses, 6)

	cards, err := repos.Cards.ListByBoard(ctx, imported.BoardID)
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	links, err := repos.Links.ListByBoard(ctx, imported.BoardID)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestService_Import_KeepsParallelLinks(t *testing.T) {
	repos, svc := setup(t)
	ctx := context.Background()

	doc := &transfer.Document{
		Board: model.Board{Name: "Parallel"},
		Cards: []model.Card{{CardID: "card_a", Title: "A"}, {CardID: "card_b", Title: "B"}},
		Links: []model.Link{
			{SourceCardID: "card_a", TargetCardID: "card_b", LinkType: model.LinkDependsOn},
			{SourceCardID: "card_a", TargetCardID: "card_b", LinkType: model.LinkBlocks},
		},
	}

	imported, err := svc.Import(ctx, doc, "", "user_b")
	require.NoError(t, err)

	links, err := repos.Links.ListByBoard(ctx, imported.BoardID)
	require.NoError(t, err)
	require.Len(t, links, 2)

	types := []string{links[0].LinkType, links[1].LinkType}
	assert.ElementsMatch(t, []string{model.LinkDependsOn, model.LinkBlocks}, types)
}

func TestDocument_WriteAndParse(t *testing.T) {
	repos, svc := setup(t)
	board, _ := seedBoard(t, repos)
	doc, err := svc.Export(context.Background(), board.BoardID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, transfer.WriteDocument(&buf, doc))
	assert.Contains(t, buf.String(), `"exported_at"`)

	parsed, err := transfer.ParseDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc.Board.BoardID, parsed.Board.BoardID)
	assert.Len(t, parsed.Cards, 3)
	assert.Len(t, parsed.Links, 2)

	_, err = transfer.ParseDocument(bytes.NewBufferString("{not json"))
	assert.Error(t, err)
}
