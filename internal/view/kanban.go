// Package view builds read-only projections of board data.
package view

import (
	"sort"
	"strings"

	"cardflow/internal/model"
)

// Column is one board status with the cards currently in it.
type Column struct {
	Status model.Status `json:"status"`
	Cards  []model.Card `json:"cards"`
}

// Board is the kanban rendering of a board.
type Board struct {
	Board    model.Board  `json:"board"`
	Columns  []Column     `json:"columns"`
	Unsorted []model.Card `json:"unsorted"`
}

// Kanban groups cards under the board's statuses in status order. Status names
// compare case-insensitively; cards matching no status land in Unsorted.
func Kanban(board model.Board, cards []model.Card) Board {
	statuses := make([]model.Status, len(board.Statuses))
	copy(statuses, board.Statuses)
	sort.SliceStable(statuses, func(i, j int) bool { return statuses[i].Order < statuses[j].Order })

	columns := make([]Column, len(statuses))
	index := make(map[string]int, len(statuses))
	for i, s := range statuses {
		columns[i] = Column{Status: s, Cards: []model.Card{}}
		key := strings.ToLower(s.Name)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	unsorted := []model.Card{}
	for _, card := range cards {
		if i, ok := index[strings.ToLower(card.Status)]; ok {
			columns[i].Cards = append(columns[i].Cards, card)
			continue
		}
		unsorted = append(unsorted, card)
	}

	return Board{Board: board, Columns: columns, Unsorted: unsorted}
}
