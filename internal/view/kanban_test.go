package view

import (
	"testing"

	"cardflow/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKanban(t *testing.T) {
	board := model.Board{
		BoardID: "board_1",
		Statuses: []model.Status{
			{Name: "Done", Order: 2},
			{Name: "Idea", Order: 0},
			{Name: "In Progress", Order: 1},
		},
	}
	cards := []model.Card{
		{CardID: "card_1", Status: "idea"},
		{CardID: "card_2", Status: "in progress"},
		{CardID: "card_3", Status: "DONE"},
		{CardID: "card_4", Status: "Idea"},
		{CardID: "card_5", Status: "blocked"},
	}

	got := Kanban(board, cards)

	require.Len(t, got.Columns, 3)
	assert.Equal(t, "Idea", got.Columns[0].Status.Name)
	assert.Equal(t, "In Progress", got.Columns[1].Status.Name)
	assert.Equal(t, "Done", got.Columns[2].Status.Name)

	assert.Len(t, got.Columns[0].Cards, 2)
	assert.Equal(t, "card_2", got.Columns[1].Cards[0].CardID)
	assert.Equal(t, "card_3", got.Columns[2].Cards[0].CardID)

	require.Len(t, got.Unsorted, 1)
	assert.Equal(t, "card_5", got.Unsorted[0].CardID)
	assert.Equal(t, "Done", board.Statuses[0].Name)
}

func TestKanban_EmptyBoard(t *testing.T) {
	got := Kanban(model.Board{}, nil)

	assert.Empty(t, got.Columns)
	assert.NotNil(t, got.Unsorted)
	assert.Empty(t, got.Unsorted)
}
