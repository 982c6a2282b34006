package chathub_test

import (
	"swapx/backend/internal/models"
	"swapx/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockStorage) LinkTelegramChat(userID string, chatID int64) error {
	args := m.Called(userID, chatID)
	return args.Error(0)
}

func (m *MockStorage) SaveBook(book *models.Book) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockStorage) GetBookByID(id string) (*models.Book, error) {
	args := m.Called(id)
	var book *models.Book
	if args.Get(0) != nil {
		book = args.Get(0).(*models.Book)
	}
	return book, args.Error(1)
}

func (m *MockStorage) GetBooks(tag string) ([]models.Book, error) {
	args := m.Called(tag)
	var books []models.Book
	if args.Get(0) != nil {
		books = args.Get(0).([]models.Book)
	}
	return books, args.Error(1)
}

func (m *MockStorage) GetBooksByOwner(ownerID string) ([]models.Book, error) {
	args := m.Called(ownerID)
	var books []models.Book
	if args.Get(0) != nil {
		books = args.Get(0).([]models.Book)
	}
	return books, args.Error(1)
}

func (m *MockStorage) SetBookAvailability(bookID string, available bool) error {
	args := m.Called(bookID, available)
	return args.Error(0)
}

func (m *MockStorage) DeleteBook(bookID string) error {
	args := m.Called(bookID)
	return args.Error(0)
}

func (m *MockStorage) FindLike(bookID, userID string) (*models.Like, error) {
	args := m.Called(bookID, userID)
	var like *models.Like
	if args.Get(0) != nil {
		like = args.Get(0).(*models.Like)
	}
	return like, args.Error(1)
}

func (m *MockStorage) CreateLike(like *models.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockStorage) DeleteLike(bookID, userID string) error {
	args := m.Called(bookID, userID)
	return args.Error(0)
}

func (m *MockStorage) CountLikes(bookID string) (int64, error) {
	args := m.Called(bookID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) GetLikesByUserForBooks(userID string, bookIDs []string) ([]models.Like, error) {
	args := m.Called(userID, bookIDs)
	var likes []models.Like
	if args.Get(0) != nil {
		likes = args.Get(0).([]models.Like)
	}
	return likes, args.Error(1)
}

func (m *MockStorage) GetCachedLikeCount(bookID string) (int64, bool, error) {
	args := m.Called(bookID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockStorage) SetCachedLikeCount(bookID string, count int64) error {
	args := m.Called(bookID, count)
	return args.Error(0)
}

func (m *MockStorage) InvalidateLikeCount(bookID string) error {
	args := m.Called(bookID)
	return args.Error(0)
}

func (m *MockStorage) SaveMatch(match *models.Match) error {
	args := m.Called(match)
	return args.Error(0)
}

func (m *MockStorage) FindMatchByPairKey(pairKey string) (*models.Match, error) {
	args := m.Called(pairKey)
	var match *models.Match
	if args.Get(0) != nil {
		match = args.Get(0).(*models.Match)
	}
	return match, args.Error(1)
}

func (m *MockStorage) GetMatchByID(id string) (*models.Match, error) {
	args := m.Called(id)
	var match *models.Match
	if args.Get(0) != nil {
		match = args.Get(0).(*models.Match)
	}
	return match, args.Error(1)
}

func (m *MockStorage) GetMatchesForUser(userID string) ([]models.Match, error) {
	args := m.Called(userID)
	var matches []models.Match
	if args.Get(0) != nil {
		matches = args.Get(0).([]models.Match)
	}
	return matches, args.Error(1)
}

func (m *MockStorage) SaveMessage(msg *models.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) GetMessageHistory(matchID string) ([]models.Message, error) {
	args := m.Called(matchID)
	var history []models.Message
	if args.Get(0) != nil {
		history = args.Get(0).([]models.Message)
	}
	return history, args.Error(1)
}

func (m *MockStorage) MarkMessagesRead(matchID, readerID string) error {
	args := m.Called(matchID, readerID)
	return args.Error(0)
}

func (m *MockStorage) CountUnreadMessages(matchID, readerID string) (int64, error) {
	args := m.Called(matchID, readerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) SaveSwapRequest(req *models.SwapRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockStorage) GetSwapRequestByID(id string) (*models.SwapRequest, error) {
	args := m.Called(id)
	var req *models.SwapRequest
	if args.Get(0) != nil {
		req = args.Get(0).(*models.SwapRequest)
	}
	return req, args.Error(1)
}

func (m *MockStorage) GetSwapRequestsForBook(bookID string) ([]models.SwapRequest, error) {
	args := m.Called(bookID)
	var reqs []models.SwapRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]models.SwapRequest)
	}
	return reqs, args.Error(1)
}

func (m *MockStorage) GetSwapRequestsForUser(userID string) ([]models.SwapRequest, error) {
	args := m.Called(userID)
	var reqs []models.SwapRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]models.SwapRequest)
	}
	return reqs, args.Error(1)
}

func (m *MockStorage) SumCompletedSwaps(userID string) (float64, int64, error) {
	args := m.Called(userID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) PublishEvent(matchID string, evt models.ChatEvent) error {
	args := m.Called(matchID, evt)
	return args.Error(0)
}

// fakeFeed is an in-memory FeedSubscription that tests publish into.
type fakeFeed struct {
	payloads chan string
	closed   bool
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{payloads: make(chan string, 8)}
}

func (f *fakeFeed) Payloads() <-chan string {
	return f.payloads
}

func (f *fakeFeed) Close() error {
	if !f.closed {
		f.closed = true
		close(f.payloads)
	}
	return nil
}

func (m *MockStorage) SubscribeToMatch(matchID string) storage.FeedSubscription {
	args := m.Called(matchID)
	return args.Get(0).(storage.FeedSubscription)
}

func (m *MockStorage) SubscribeToFeed() storage.FeedSubscription {
	args := m.Called()
	return args.Get(0).(storage.FeedSubscription)
}
