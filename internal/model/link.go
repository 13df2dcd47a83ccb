package model

import "time"

// Link types.
const (
	LinkDependsOn   = "depends_on"
	LinkBlocks      = "blocks"
	LinkRelatedTo   = "related_to"
	LinkPartOf      = "part_of"
	LinkUses        = "uses"
	LinkReferences  = "references"
	LinkDuplicateOf = "duplicate_of"
)

// Line styles.
const (
	LineSolid  = "solid"
	LineDashed = "dashed"
)

const DefaultLinkColor = "#6B7280"

// Link is a directed, typed edge between two cards. BoardID is copied from the
// source card when the link is created.
type Link struct {
	LinkID       string    `gorm:"primaryKey" json:"link_id"`
	SourceCardID string    `gorm:"index;not null" json:"source_card_id"`
	TargetCardID string    `gorm:"index;not null" json:"target_card_id"`
	LinkType     string    `json:"link_type"`
	Label        *string   `json:"label"`
	Color        string    `json:"color"`
	LineStyle    string    `json:"line_style"`
	BoardID      string    `gorm:"index;not null" json:"board_id"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

func (l *Link) ApplyDefaults() {
	if l.LinkType == "" {
		l.LinkType = LinkRelatedTo
	}
	if l.Color == "" {
		l.Color = DefaultLinkColor
	}
	if l.LineStyle == "" {
		l.LineStyle = LineSolid
	}
}

type LinkPatch struct {
	LinkType  *string `json:"link_type" binding:"omitempty,oneof=depends_on blocks related_to part_of uses references duplicate_of"`
	Label     *string `json:"label"`
	Color     *string `json:"color"`
	LineStyle *string `json:"line_style" binding:"omitempty,oneof=solid dashed"`
}

func (p LinkPatch) Apply(l *Link) {
	if p.LinkType != nil {
		l.LinkType = *p.LinkType
	}
	if p.Label != nil {
		l.Label = p.Label
	}
	if p.Color != nil {
		l.Color = *p.Color
	}
	if p.LineStyle != nil {
		l.LineStyle = *p.LineStyle
	}
}
