package storage

import (
	"errors"
	"log"

	"swapx/backend/internal/models"

	"gorm.io/gorm"
)

// SaveBook persists a book listing to PostgreSQL.
func (s *Service) SaveBook(book *models.Book) error {
	return s.DB.Save(book).Error
}

// GetBookByID returns the book with the given ID, or nil if none exists.
func (s *Service) GetBookByID(id string) (*models.Book, error) {
	var book models.Book
	err := s.DB.Where("id = ?", id).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get book %s: %v", id, err)
		return nil, err
	}
	return &book, nil
}

// GetBooks returns all listings, newest first. A non-empty tag narrows
// the result to books carrying that tag.
func (s *Service) GetBooks(tag string) ([]models.Book, error) {
	var books []models.Book
	q := s.DB.Order("created_at desc")
	if tag != "" {
		q = q.Where("? = ANY(tags)", tag)
	}
	if err := q.Find(&books).Error; err != nil {
		log.Printf("ERROR: Failed to list books: %v", err)
		return nil, err
	}
	return books, nil
}

// GetBooksByOwner returns all of a user's listings, oldest first. The
// matcher relies on this order for its deterministic tie-break.
func (s *Service) GetBooksByOwner(ownerID string) ([]models.Book, error) {
	var books []models.Book
	err := s.DB.Where("owner_id = ?", ownerID).
		Order("created_at asc, id asc").
		Find(&books).Error
	if err != nil {
		log.Printf("ERROR: Failed to list books for owner %s: %v", ownerID, err)
		return nil, err
	}
	return books, nil
}

// SetBookAvailability flips the listing's availability flag.
func (s *Service) SetBookAvailability(bookID string, available bool) error {
	return s.DB.Model(&models.Book{}).
		Where("id = ?", bookID).
		Update("is_available", available).Error
}

// DeleteBook hard-deletes the listing. This is the storage-boundary
// escape hatch; the swap flow itself only soft-disables books.
func (s *Service) DeleteBook(bookID string) error {
	return s.DB.Where("id = ?", bookID).Delete(&models.Book{}).Error
}
