package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Status is one named, colored stage of a board workflow.
type Status struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// DefaultStatuses returns a fresh copy of the six canonical board statuses.
func DefaultStatuses() []Status {
	return []Status{
		{Name: "Idea", Color: "#FBBF24", Order: 0},
		{Name: "Planned", Color: "#60A5FA", Order: 1},
		{Name: "In Progress", Color: "#34D399", Order: 2},
		{Name: "Testing", Color: "#A78BFA", Order: 3},
		{Name: "Done", Color: "#10B981", Order: 4},
		{Name: "Archived", Color: "#6B7280", Order: 5},
	}
}

type Board struct {
	BoardID     string    `gorm:"primaryKey" json:"board_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	WorkspaceID string    `gorm:"index" json:"workspace_id"`
	OwnerID     string    `gorm:"index;not null" json:"owner_id"`
	Statuses    []Status  `gorm:"serializer:json;type:text" json:"statuses"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatusFor finds the board status matching name, ignoring case.
func (b *Board) StatusFor(name string) (Status, bool) {
	for _, s := range b.Statuses {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Status{}, false
}

func (b *Board) normalize() {
	if b.Statuses == nil {
		b.Statuses = []Status{}
	}
}

func (b *Board) BeforeSave(tx *gorm.DB) error {
	b.normalize()
	return nil
}

func (b *Board) AfterFind(tx *gorm.DB) error {
	b.normalize()
	return nil
}

// BoardPatch carries the mutable board fields.
type BoardPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Statuses    *[]Status `json:"statuses"`
}
