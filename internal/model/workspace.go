package model

import "time"

const DefaultWorkspaceColor = "#4F46E5"

type Workspace struct {
	WorkspaceID string    `gorm:"primaryKey" json:"workspace_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	OwnerID     string    `gorm:"index;not null" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkspacePatch carries the mutable workspace fields. Nil fields are left untouched.
type WorkspacePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}
