package model

import "time"

type User struct {
	UserID       string    `gorm:"primaryKey" json:"user_id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"not null" json:"name"`
	PasswordHash *string   `json:"-"`
	Picture      *string   `json:"picture"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasPassword reports whether the user registered with a local credential.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
