package storage

import (
	"errors"
	"log"

	"swapx/backend/internal/models"

	"gorm.io/gorm"
)

// SaveSwapRequest persists a swap request to PostgreSQL.
func (s *Service) SaveSwapRequest(req *models.SwapRequest) error {
	if err := s.DB.Save(req).Error; err != nil {
		log.Printf("ERROR: Failed to save swap request for book %s: %v", req.BookID, err)
		return err
	}
	return nil
}

// GetSwapRequestByID returns the swap request with the given ID, or nil
// if none exists.
func (s *Service) GetSwapRequestByID(id string) (*models.SwapRequest, error) {
	var req models.SwapRequest
	err := s.DB.Where("id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetSwapRequestsForBook returns all swap requests targeting a book.
func (s *Service) GetSwapRequestsForBook(bookID string) ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	err := s.DB.Where("book_id = ?", bookID).
		Order("created_at desc").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// GetSwapRequestsForUser returns swap requests the user is on either
// side of, newest first.
func (s *Service) GetSwapRequestsForUser(userID string) ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	err := s.DB.Where("requester_id = ? OR owner_id = ?", userID, userID).
		Order("created_at desc").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// SumCompletedSwaps aggregates the carbon impact of every completed swap
// the user took part in, as requester or owner.
func (s *Service) SumCompletedSwaps(userID string) (float64, int64, error) {
	rawSQL := `
        SELECT COALESCE(SUM(b.carbon_saving), 0) AS carbon_saved,
               COUNT(*)                          AS swaps
        FROM swap_requests sr
        JOIN books b ON b.id = sr.book_id
        WHERE sr.status = ?
          AND (sr.requester_id = ? OR sr.owner_id = ?)
    `

	var result struct {
		CarbonSaved float64
		Swaps       int64
	}
	err := s.DB.Raw(rawSQL, models.SwapCompleted, userID, userID).Scan(&result).Error
	if err != nil {
		log.Printf("ERROR: Failed to sum completed swaps for user %s: %v", userID, err)
		return 0, 0, err
	}
	return result.CarbonSaved, result.Swaps, nil
}
