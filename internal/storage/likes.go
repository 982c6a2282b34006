package storage

import (
	"errors"
	"log"
	"strconv"

	"swapx/backend/internal/config"
	"swapx/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// FindLike returns the like row for the (book, user) pair, or nil if the
// user has not liked the book.
func (s *Service) FindLike(bookID, userID string) (*models.Like, error) {
	var like models.Like
	err := s.DB.Where("book_id = ? AND user_id = ?", bookID, userID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// CreateLike inserts a like row. The composite unique index on
// (book_id, user_id) rejects a duplicate insert at the database level.
func (s *Service) CreateLike(like *models.Like) error {
	return s.DB.Create(like).Error
}

// DeleteLike removes the like row for the (book, user) pair.
func (s *Service) DeleteLike(bookID, userID string) error {
	return s.DB.Where("book_id = ? AND user_id = ?", bookID, userID).
		Delete(&models.Like{}).Error
}

// CountLikes returns the number of likes on a book straight from
// PostgreSQL.
func (s *Service) CountLikes(bookID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Like{}).Where("book_id = ?", bookID).Count(&count).Error
	return count, err
}

// GetLikesByUserForBooks returns the user's likes restricted to the given
// books, oldest like first. The matcher uses the first row as its
// deterministic pick when several of the liker's books were liked back.
func (s *Service) GetLikesByUserForBooks(userID string, bookIDs []string) ([]models.Like, error) {
	if len(bookIDs) == 0 {
		return nil, nil
	}
	var likes []models.Like
	err := s.DB.Where("user_id = ? AND book_id IN ?", userID, bookIDs).
		Order("created_at asc, id asc").
		Find(&likes).Error
	if err != nil {
		log.Printf("ERROR: Failed to load likes for user %s: %v", userID, err)
		return nil, err
	}
	return likes, nil
}

func likeCountKey(bookID string) string {
	return "likes:" + bookID
}

// GetCachedLikeCount reads the like counter from Redis. The second return
// value reports whether the cache held a value at all.
func (s *Service) GetCachedLikeCount(bookID string) (int64, bool, error) {
	val, err := s.Redis.Get(s.Ctx, likeCountKey(bookID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

// SetCachedLikeCount stores the like counter in Redis with a TTL.
func (s *Service) SetCachedLikeCount(bookID string, count int64) error {
	return s.Redis.Set(s.Ctx, likeCountKey(bookID), count, config.LikeCountTTL).Err()
}

// InvalidateLikeCount drops the cached counter after a toggle.
func (s *Service) InvalidateLikeCount(bookID string) error {
	return s.Redis.Del(s.Ctx, likeCountKey(bookID)).Err()
}
