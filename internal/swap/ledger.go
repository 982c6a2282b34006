// Package swap holds the core swap-flow logic: the like ledger, the
// reciprocity matcher and the swap-request workflow.
package swap

import (
	"fmt"
	"log"

	"swapx/backend/internal/models"
	"swapx/backend/internal/storage"
)

// LedgerService is the like ledger: the append/remove-only record of
// "user likes book" that the matcher derives reciprocity from.
type LedgerService struct {
	Storage storage.Storage
}

// NewLedgerService creates a new like ledger over the given storage.
func NewLedgerService(s storage.Storage) *LedgerService {
	return &LedgerService{Storage: s}
}

// IsLiked reports whether the user currently likes the book.
func (l *LedgerService) IsLiked(bookID, userID string) (bool, error) {
	like, err := l.Storage.FindLike(bookID, userID)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return like != nil, nil
}

// ToggleLike flips the like state for the (book, user) pair and returns
// the new state. Liking your own book is rejected. The caller is expected
// to run the match detector only after a true result, so the like row is
// durable before reciprocity is evaluated.
func (l *LedgerService) ToggleLike(bookID, userID string) (bool, error) {
	book, err := l.Storage.GetBookByID(bookID)
	if err != nil {
		return false, fmt.Errorf("resolve book: %w", err)
	}
	if book == nil {
		return false, fmt.Errorf("book %s: %w", bookID, storage.ErrNotFound)
	}
	if book.OwnerID == userID {
		return false, fmt.Errorf("cannot like your own book: %w", storage.ErrValidation)
	}

	existing, err := l.Storage.FindLike(bookID, userID)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}

	if existing != nil {
		if err := l.Storage.DeleteLike(bookID, userID); err != nil {
			return false, fmt.Errorf("remove like: %w", err)
		}
		l.invalidateCount(bookID)
		return false, nil
	}

	like := &models.Like{BookID: bookID, UserID: userID}
	if err := l.Storage.CreateLike(like); err != nil {
		// The unique index rejects the insert when a concurrent toggle
		// already created the row; the pair is liked either way.
		if again, ferr := l.Storage.FindLike(bookID, userID); ferr == nil && again != nil {
			return true, nil
		}
		return false, fmt.Errorf("add like: %w", err)
	}
	l.invalidateCount(bookID)
	return true, nil
}

// LikeCount returns the number of likes on a book, served from the Redis
// cache when warm and recomputed from PostgreSQL otherwise.
func (l *LedgerService) LikeCount(bookID string) (int64, error) {
	if count, ok, err := l.Storage.GetCachedLikeCount(bookID); err == nil && ok {
		return count, nil
	}

	count, err := l.Storage.CountLikes(bookID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	if err := l.Storage.SetCachedLikeCount(bookID, count); err != nil {
		log.Printf("WARN: Failed to cache like count for book %s: %v", bookID, err)
	}
	return count, nil
}

func (l *LedgerService) invalidateCount(bookID string) {
	if err := l.Storage.InvalidateLikeCount(bookID); err != nil {
		log.Printf("WARN: Failed to invalidate like count for book %s: %v", bookID, err)
	}
}
