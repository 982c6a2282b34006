package models

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match is the durable record of confirmed reciprocity between two users:
// User1 liked Book2 (owned by User2) and User2 liked Book1 (owned by User1).
// Matches are append-only; a later unlike does not unwind them.
type Match struct {
	ID string `gorm:"primaryKey" json:"id"`

	User1ID string `gorm:"index;not null" json:"user1_id"`
	User2ID string `gorm:"index;not null" json:"user2_id"`
	Book1ID string `gorm:"not null" json:"book1_id"`
	Book2ID string `gorm:"not null" json:"book2_id"`

	// PairKey is a normalized encoding of the unordered (user, book) pairs.
	// The unique index makes duplicate matches impossible even when both
	// sides like each other at the same moment and both pass the
	// existence check.
	PairKey string `gorm:"uniqueIndex;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook that fills in the ID and the normalized
// pair key before the row is inserted.
func (m *Match) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.PairKey == "" {
		m.PairKey = MatchPairKey(m.User1ID, m.Book1ID, m.User2ID, m.Book2ID)
	}
	return
}

// MatchPairKey encodes the two (user, book) halves of a match in a
// direction-independent way, so that (A,X,B,Y) and (B,Y,A,X) collide.
func MatchPairKey(user1, book1, user2, book2 string) string {
	halves := []string{user1 + ":" + book1, user2 + ":" + book2}
	sort.Strings(halves)
	return strings.Join(halves, "|")
}

// HasParticipant reports whether the given user is one of the two sides
// of the match.
func (m *Match) HasParticipant(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// OtherParticipant returns the match participant that is not the given
// user, or "" if the user is not a participant at all.
func (m *Match) OtherParticipant(userID string) string {
	switch userID {
	case m.User1ID:
		return m.User2ID
	case m.User2ID:
		return m.User1ID
	}
	return ""
}
