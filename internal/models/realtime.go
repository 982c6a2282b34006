package models

import "time"

// Event types carried over the realtime feed.
const (
	EventMessage    = "message"
	EventTyping     = "typing"
	EventRead       = "read"
	EventMatchFound = "system_match_found"
)

// ChatEvent is the wire format for the realtime feed: everything that
// travels over Redis pub/sub and down the websocket connections.
// For EventMessage the MessageID mirrors the persisted Message row, so
// consumers that replay history can de-duplicate by it.
type ChatEvent struct {
	Type      string    `json:"type"`
	MatchID   string    `json:"match_id"`
	SenderID  string    `json:"sender_id"`
	MessageID string    `json:"message_id,omitempty"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
