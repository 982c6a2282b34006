package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like records that a user liked another user's book.
// The composite unique index guarantees at most one row per (book, user)
// pair, so a rapid double toggle can never leave duplicate rows behind.
type Like struct {
	ID     string `gorm:"primaryKey" json:"id"`
	BookID string `gorm:"uniqueIndex:idx_book_liker;not null" json:"book_id"`
	UserID string `gorm:"uniqueIndex:idx_book_liker;not null" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook that generates a UUID for new likes.
func (l *Like) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}
