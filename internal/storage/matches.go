package storage

import (
	"errors"
	"log"

	"swapx/backend/internal/models"

	"gorm.io/gorm"
)

// SaveMatch inserts a match row. The unique index on the pair key makes
// a concurrent duplicate insert fail rather than create a second match.
func (s *Service) SaveMatch(match *models.Match) error {
	return s.DB.Create(match).Error
}

// FindMatchByPairKey returns the match with the given normalized pair
// key, or nil if no such match exists.
func (s *Service) FindMatchByPairKey(pairKey string) (*models.Match, error) {
	var match models.Match
	err := s.DB.Where("pair_key = ?", pairKey).First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetMatchByID returns the match with the given ID, or nil if none exists.
func (s *Service) GetMatchByID(id string) (*models.Match, error) {
	var match models.Match
	err := s.DB.Where("id = ?", id).First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get match %s: %v", id, err)
		return nil, err
	}
	return &match, nil
}

// GetMatchesForUser returns every match the user participates in,
// newest first.
func (s *Service) GetMatchesForUser(userID string) ([]models.Match, error) {
	var matches []models.Match
	err := s.DB.Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at desc").
		Find(&matches).Error
	if err != nil {
		log.Printf("ERROR: Failed to list matches for user %s: %v", userID, err)
		return nil, err
	}
	return matches, nil
}
