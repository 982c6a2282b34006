package storage

import (
	"errors"
	"log"

	"swapx/backend/internal/models"

	"gorm.io/gorm"
)

// SaveMessage persists a chat message to PostgreSQL. The generated ID and
// CreatedAt are filled into the passed struct so the caller can publish
// the exact row that was stored.
func (s *Service) SaveMessage(msg *models.Message) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save message for match %s: %v", msg.MatchID, err)
		return err
	}
	return nil
}

// GetMessageHistory returns all messages of a match in ascending creation
// order. An unknown match yields an empty history, not an error.
func (s *Service) GetMessageHistory(matchID string) ([]models.Message, error) {
	var history []models.Message
	err := s.DB.Where("match_id = ?", matchID).
		Order("created_at asc, id asc").
		Find(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return history, nil
		}
		log.Printf("ERROR: Failed to get history for match %s: %v", matchID, err)
		return nil, err
	}
	return history, nil
}

// MarkMessagesRead flips read=true on every unread message in the match
// that the reader did not send. Running it twice is a no-op the second
// time.
func (s *Service) MarkMessagesRead(matchID, readerID string) error {
	return s.DB.Model(&models.Message{}).
		Where("match_id = ? AND sender_id <> ? AND read = ?", matchID, readerID, false).
		Update("read", true).Error
}

// CountUnreadMessages returns how many messages in the match are still
// unread from the reader's point of view.
func (s *Service) CountUnreadMessages(matchID, readerID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Message{}).
		Where("match_id = ? AND sender_id <> ? AND read = ?", matchID, readerID, false).
		Count(&count).Error
	return count, err
}
