package chathub

import (
	"fmt"
	"log"
	"strings"

	"swapx/backend/internal/config"
	"swapx/backend/internal/models"
	"swapx/backend/internal/storage"
)

// ConversationService is the messaging contract scoped to a match:
// replayable history, validated sends, read-state tracking and realtime
// subscriptions.
type ConversationService struct {
	Storage storage.Storage
}

// NewConversationService creates a new conversation service.
func NewConversationService(s storage.Storage) *ConversationService {
	return &ConversationService{Storage: s}
}

// History returns every message of the match in ascending creation
// order. It is a full fetch, not a resumable stream, and is the
// authoritative record that subscribers reconcile against.
func (c *ConversationService) History(matchID string) ([]models.Message, error) {
	return c.Storage.GetMessageHistory(matchID)
}

// Send validates and persists a message, then publishes it on the
// match's realtime channel. Blank content and senders who are not a
// participant of the match are rejected before any store write. A failed
// publish does not fail the send; history remains the source of truth.
func (c *ConversationService) Send(matchID, senderID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("message content is empty: %w", storage.ErrValidation)
	}
	if len(content) > config.MaxMessageLength {
		return nil, fmt.Errorf("message exceeds %d characters: %w",
			config.MaxMessageLength, storage.ErrValidation)
	}

	match, err := c.Storage.GetMatchByID(matchID)
	if err != nil {
		return nil, fmt.Errorf("resolve match: %w", err)
	}
	if match == nil {
		return nil, fmt.Errorf("match %s: %w", matchID, storage.ErrNotFound)
	}
	if !match.HasParticipant(senderID) {
		return nil, fmt.Errorf("sender is not a participant: %w", storage.ErrNotAuthorized)
	}

	msg := &models.Message{
		MatchID:  matchID,
		SenderID: senderID,
		Content:  content,
	}
	if err := c.Storage.SaveMessage(msg); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	evt := models.ChatEvent{
		Type:      models.EventMessage,
		MatchID:   matchID,
		SenderID:  senderID,
		MessageID: msg.ID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
	if err := c.Storage.PublishEvent(matchID, evt); err != nil {
		log.Printf("WARN: Failed to publish message %s on match %s: %v", msg.ID, matchID, err)
	}
	return msg, nil
}

// MarkRead flips read=true on every message in the match that the reader
// did not send. Calling it again is a no-op, and the reader's own
// messages are never touched.
func (c *ConversationService) MarkRead(matchID, readerID string) error {
	match, err := c.Storage.GetMatchByID(matchID)
	if err != nil {
		return fmt.Errorf("resolve match: %w", err)
	}
	if match == nil {
		return fmt.Errorf("match %s: %w", matchID, storage.ErrNotFound)
	}
	if !match.HasParticipant(readerID) {
		return fmt.Errorf("reader is not a participant: %w", storage.ErrNotAuthorized)
	}
	return c.Storage.MarkMessagesRead(matchID, readerID)
}

// UnreadCount returns the number of messages the reader has not yet seen.
func (c *ConversationService) UnreadCount(matchID, readerID string) (int64, error) {
	return c.Storage.CountUnreadMessages(matchID, readerID)
}
