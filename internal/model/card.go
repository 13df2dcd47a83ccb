package model

import (
	"time"

	"gorm.io/gorm"
)

// Card types.
const (
	CardTypeFeature = "feature"
	CardTypeTask    = "task"
	CardTypeBug     = "bug"
	CardTypeIdea    = "idea"
	CardTypeEpic    = "epic"
	CardTypeNote    = "note"
)

// Priorities.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

const DefaultCardStatus = "idea"

// ChecklistItem is a single sub-item of a card.
type ChecklistItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type Card struct {
	CardID      string          `gorm:"primaryKey" json:"card_id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	CardType    string          `json:"card_type"`
	Status      string          `json:"status"`
	BoardID     string          `gorm:"index;not null" json:"board_id"`
	PositionX   float64         `json:"position_x"`
	PositionY   float64         `json:"position_y"`
	Priority    string          `json:"priority"`
	Assignees   []string        `gorm:"serializer:json;type:text" json:"assignees"`
	Tags        []string        `gorm:"serializer:json;type:text" json:"tags"`
	DueDate     *string         `json:"due_date"`
	Checklist   []ChecklistItem `gorm:"serializer:json;type:text" json:"checklist"`
	Color       *string         `json:"color"`
	CreatedBy   string          `gorm:"index" json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ApplyDefaults fills the documented creation defaults for unset fields.
func (c *Card) ApplyDefaults() {
	if c.CardType == "" {
		c.CardType = CardTypeTask
	}
	if c.Status == "" {
		c.Status = DefaultCardStatus
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	c.normalize()
}

// normalize keeps array fields non-nil so they always encode as JSON arrays.
func (c *Card) normalize() {
	if c.Assignees == nil {
		c.Assignees = []string{}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.Checklist == nil {
		c.Checklist = []ChecklistItem{}
	}
}

func (c *Card) BeforeSave(tx *gorm.DB) error {
	c.normalize()
	return nil
}

func (c *Card) AfterFind(tx *gorm.DB) error {
	c.normalize()
	return nil
}

// CardPatch carries the mutable card fields. card_id, board_id, created_by and
// created_at have no counterpart here, so payloads naming them are ignored.
type CardPatch struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	CardType    *string          `json:"card_type" binding:"omitempty,oneof=feature task bug idea epic note"`
	Status      *string          `json:"status"`
	PositionX   *float64         `json:"position_x"`
	PositionY   *float64         `json:"position_y"`
	Priority    *string          `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Assignees   *[]string        `json:"assignees"`
	Tags        *[]string        `json:"tags"`
	DueDate     *string          `json:"due_date"`
	Checklist   *[]ChecklistItem `json:"checklist"`
	Color       *string          `json:"color"`
}

// Apply copies every non-nil patch field onto c.
func (p CardPatch) Apply(c *Card) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.CardType != nil {
		c.CardType = *p.CardType
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.PositionX != nil {
		c.PositionX = *p.PositionX
	}
	if p.PositionY != nil {
		c.PositionY = *p.PositionY
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.Assignees != nil {
		c.Assignees = *p.Assignees
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.DueDate != nil {
		c.DueDate = p.DueDate
	}
	if p.Checklist != nil {
		c.Checklist = *p.Checklist
	}
	if p.Color != nil {
		c.Color = p.Color
	}
	c.normalize()
}
