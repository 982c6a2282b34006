// Package catalog manages book listings: creation, owner-only mutation,
// availability and the carbon-impact totals derived from completed swaps.
package catalog

import (
	"fmt"
	"strings"

	"swapx/backend/internal/config"
	"swapx/backend/internal/models"
	"swapx/backend/internal/storage"
)

// Service is the listing service over the shared storage.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new catalog service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// ImpactSummary is a user's accumulated carbon savings from completed
// swaps.
type ImpactSummary struct {
	CarbonSaved  float64 `json:"carbon_saved"`
	BooksSwapped int64   `json:"books_swapped"`
}

// CreateBook validates and persists a new listing for the owner. A zero
// carbon estimate falls back to the default figure for a swapped book.
func (c *Service) CreateBook(ownerID string, book *models.Book) error {
	book.Title = strings.TrimSpace(book.Title)
	if book.Title == "" {
		return fmt.Errorf("title is required: %w", storage.ErrValidation)
	}
	if len(book.Title) > config.MaxTitleLength {
		return fmt.Errorf("title exceeds %d characters: %w",
			config.MaxTitleLength, storage.ErrValidation)
	}
	if len(book.Description) > config.MaxDescriptionLength {
		return fmt.Errorf("description exceeds %d characters: %w",
			config.MaxDescriptionLength, storage.ErrValidation)
	}
	if len(book.Tags) > config.MaxTagCount {
		return fmt.Errorf("at most %d tags allowed: %w",
			config.MaxTagCount, storage.ErrValidation)
	}
	if book.CarbonSaving < 0 {
		return fmt.Errorf("carbon saving cannot be negative: %w", storage.ErrValidation)
	}
	if book.CarbonSaving == 0 {
		book.CarbonSaving = config.DefaultCarbonSaving
	}

	book.OwnerID = ownerID
	book.IsAvailable = true
	if err := c.Storage.SaveBook(book); err != nil {
		return fmt.Errorf("save book: %w", err)
	}
	return nil
}

// GetBook returns a single listing.
func (c *Service) GetBook(bookID string) (*models.Book, error) {
	book, err := c.Storage.GetBookByID(bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %s: %w", bookID, storage.ErrNotFound)
	}
	return book, nil
}

// ListBooks returns all listings, optionally narrowed to a tag.
func (c *Service) ListBooks(tag string) ([]models.Book, error) {
	return c.Storage.GetBooks(tag)
}

// ListBooksByOwner returns a user's own listings.
func (c *Service) ListBooksByOwner(ownerID string) ([]models.Book, error) {
	return c.Storage.GetBooksByOwner(ownerID)
}

// UpdateBook applies the mutable listing fields. Only the owner may
// mutate a book.
func (c *Service) UpdateBook(actorID string, updated *models.Book) (*models.Book, error) {
	book, err := c.authorizedBook(updated.ID, actorID)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(updated.Title); title != "" {
		book.Title = title
	}
	book.Author = updated.Author
	book.Description = updated.Description
	book.Condition = updated.Condition
	book.Tags = updated.Tags
	if updated.ImageURL != "" {
		book.ImageURL = updated.ImageURL
	}
	if updated.CarbonSaving > 0 {
		book.CarbonSaving = updated.CarbonSaving
	}

	if err := c.Storage.SaveBook(book); err != nil {
		return nil, fmt.Errorf("save book: %w", err)
	}
	return book, nil
}

// SetAvailability soft-disables or re-enables a listing. This is the
// normal "remove from shelf" path; rows are kept so existing matches and
// swap history stay resolvable.
func (c *Service) SetAvailability(bookID, actorID string, available bool) error {
	if _, err := c.authorizedBook(bookID, actorID); err != nil {
		return err
	}
	return c.Storage.SetBookAvailability(bookID, available)
}

// DeleteBook hard-deletes a listing at the storage boundary.
func (c *Service) DeleteBook(bookID, actorID string) error {
	if _, err := c.authorizedBook(bookID, actorID); err != nil {
		return err
	}
	return c.Storage.DeleteBook(bookID)
}

// TotalImpact returns the user's accumulated carbon savings.
func (c *Service) TotalImpact(userID string) (*ImpactSummary, error) {
	carbon, swaps, err := c.Storage.SumCompletedSwaps(userID)
	if err != nil {
		return nil, fmt.Errorf("sum completed swaps: %w", err)
	}
	return &ImpactSummary{CarbonSaved: carbon, BooksSwapped: swaps}, nil
}

func (c *Service) authorizedBook(bookID, actorID string) (*models.Book, error) {
	book, err := c.Storage.GetBookByID(bookID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %s: %w", bookID, storage.ErrNotFound)
	}
	if book.OwnerID != actorID {
		return nil, fmt.Errorf("only the owner can modify a book: %w", storage.ErrNotAuthorized)
	}
	return book, nil
}
