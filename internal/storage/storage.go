package storage

import (
	"context"
	"errors"

	"swapx/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the single data-access contract the services depend on.
// Durable rows live in PostgreSQL; Redis backs the realtime feed and the
// like-count cache. Lookups of a single record return (nil, nil) when the
// record does not exist; it is the caller's business logic that decides
// whether that is an error.
type Storage interface {
	// Users
	SaveUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	LinkTelegramChat(userID string, chatID int64) error

	// Books
	SaveBook(book *models.Book) error
	GetBookByID(id string) (*models.Book, error)
	GetBooks(tag string) ([]models.Book, error)
	GetBooksByOwner(ownerID string) ([]models.Book, error)
	SetBookAvailability(bookID string, available bool) error
	DeleteBook(bookID string) error

	// Likes
	FindLike(bookID, userID string) (*models.Like, error)
	CreateLike(like *models.Like) error
	DeleteLike(bookID, userID string) error
	CountLikes(bookID string) (int64, error)
	GetLikesByUserForBooks(userID string, bookIDs []string) ([]models.Like, error)
	GetCachedLikeCount(bookID string) (int64, bool, error)
	SetCachedLikeCount(bookID string, count int64) error
	InvalidateLikeCount(bookID string) error

	// Matches
	SaveMatch(match *models.Match) error
	FindMatchByPairKey(pairKey string) (*models.Match, error)
	GetMatchByID(id string) (*models.Match, error)
	GetMatchesForUser(userID string) ([]models.Match, error)

	// Messages
	SaveMessage(msg *models.Message) error
	GetMessageHistory(matchID string) ([]models.Message, error)
	MarkMessagesRead(matchID, readerID string) error
	CountUnreadMessages(matchID, readerID string) (int64, error)

	// Swap requests
	SaveSwapRequest(req *models.SwapRequest) error
	GetSwapRequestByID(id string) (*models.SwapRequest, error)
	GetSwapRequestsForBook(bookID string) ([]models.SwapRequest, error)
	GetSwapRequestsForUser(userID string) ([]models.SwapRequest, error)
	SumCompletedSwaps(userID string) (carbonSaved float64, swaps int64, err error)

	// Realtime feed
	PublishEvent(matchID string, evt models.ChatEvent) error
	SubscribeToMatch(matchID string) FeedSubscription
	SubscribeToFeed() FeedSubscription
}

// Service implements Storage over GORM/PostgreSQL and Redis.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveUser persists a user to PostgreSQL.
func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// GetUserByID returns the user with the given ID, or nil if none exists.
func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns the user with the given email, or nil if none exists.
func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// LinkTelegramChat stores the Telegram chat ID used by the notifier bot.
func (s *Service) LinkTelegramChat(userID string, chatID int64) error {
	return s.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("telegram_chat_id", chatID).Error
}
