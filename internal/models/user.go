package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account in the system.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	DisplayName  string `json:"display_name"`

	// TelegramChatID is set once the user links the notification bot.
	TelegramChatID *int64 `gorm:"index" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook that runs before a row is inserted.
// It generates a new UUID for the user if the ID is not already set.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
