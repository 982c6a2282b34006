package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a chat message inside a match. Messages are never deleted;
// the only mutation after insert is the unread-to-read transition, which
// happens when the other participant opens the conversation.
type Message struct {
	ID       string `gorm:"primaryKey" json:"id"`
	MatchID  string `gorm:"index:idx_match_msg;not null" json:"match_id"`
	SenderID string `gorm:"not null" json:"sender_id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Read     bool   `gorm:"default:false" json:"read"`

	// CreatedAt provides the total order of messages within a match.
	CreatedAt time.Time `gorm:"index:idx_match_msg" json:"created_at"`
}

// BeforeCreate is a GORM hook that generates a UUID for new messages.
func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}
