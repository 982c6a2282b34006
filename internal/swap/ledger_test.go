package swap_test

import (
	"errors"
	"testing"

	"swapx/backend/internal/models"
	"swapx/backend/internal/storage"
	"swapx/backend/internal/swap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestToggleLike_OnThenOff verifies the paired-toggle semantics: the first
// call likes, the second unlikes, and no duplicate rows are possible since
// each transition goes through a single insert or delete.
func TestToggleLike_OnThenOff(t *testing.T) {
	storageMock := new(MockStorage)
	ledger := swap.NewLedgerService(storageMock)

	book := &models.Book{ID: "book_Y", OwnerID: "user_B"}
	storageMock.On("GetBookByID", "book_Y").Return(book, nil)
	storageMock.On("InvalidateLikeCount", "book_Y").Return(nil)

	// First toggle: no existing like, insert one.
	storageMock.On("FindLike", "book_Y", "user_A").Return(nil, nil).Once()
	storageMock.On("CreateLike", mock.AnythingOfType("*models.Like")).Return(nil).Once()

	liked, err := ledger.ToggleLike("book_Y", "user_A")
	assert.NoError(t, err)
	assert.True(t, liked, "first toggle should like the book")

	// Second toggle: row exists, remove it.
	existing := &models.Like{ID: "like_1", BookID: "book_Y", UserID: "user_A"}
	storageMock.On("FindLike", "book_Y", "user_A").Return(existing, nil).Once()
	storageMock.On("DeleteLike", "book_Y", "user_A").Return(nil).Once()

	liked, err = ledger.ToggleLike("book_Y", "user_A")
	assert.NoError(t, err)
	assert.False(t, liked, "second toggle should unlike the book")

	storageMock.AssertExpectations(t)
}

// TestToggleLike_OwnBook ensures a user cannot like their own listing.
func TestToggleLike_OwnBook(t *testing.T) {
	storageMock := new(MockStorage)
	ledger := swap.NewLedgerService(storageMock)

	book := &models.Book{ID: "book_X", OwnerID: "user_A"}
	storageMock.On("GetBookByID", "book_X").Return(book, nil)

	_, err := ledger.ToggleLike("book_X", "user_A")
	assert.True(t, errors.Is(err, storage.ErrValidation))
	storageMock.AssertNotCalled(t, "CreateLike", mock.Anything)
}

// TestToggleLike_MissingBook verifies a toggle against an unknown book
// fails with a not-found error.
func TestToggleLike_MissingBook(t *testing.T) {
	storageMock := new(MockStorage)
	ledger := swap.NewLedgerService(storageMock)

	storageMock.On("GetBookByID", "book_gone").Return(nil, nil)

	_, err := ledger.ToggleLike("book_gone", "user_A")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

// TestToggleLike_InsertRace verifies that losing the insert race to a
// concurrent duplicate toggle still reports the pair as liked.
func TestToggleLike_InsertRace(t *testing.T) {
	storageMock := new(MockStorage)
	ledger := swap.NewLedgerService(storageMock)

	book := &models.Book{ID: "book_Y", OwnerID: "user_B"}
	storageMock.On("GetBookByID", "book_Y").Return(book, nil)
	storageMock.On("FindLike", "book_Y", "user_A").Return(nil, nil).Once()
	storageMock.On("CreateLike", mock.AnythingOfType("*models.Like")).
		Return(errors.New("duplicate key value violates unique constraint")).Once()
	// The re-check after the failed insert finds the winner's row.
	existing := &models.Like{ID: "like_1", BookID: "book_Y", UserID: "user_A"}
	storageMock.On("FindLike", "book_Y", "user_A").Return(existing, nil).Once()

	liked, err := ledger.ToggleLike("book_Y", "user_A")
	assert.NoError(t, err)
	assert.True(t, liked)
}

// TestLikeCount_CacheHit verifies a warm cache short-circuits the database.
func TestLikeCount_CacheHit(t *testing.T) {
	storageMock := new(MockStorage)
	ledger := swap.NewLedgerService(storageMock)

	storageMock.On("GetCachedLikeCount", "book_Y").Return(int64(7), true, nil)

	count, err := ledger.LikeCount("book_Y")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	storageMock.AssertNotCalled(t, "CountLikes", mock.Anything)
}

// TestLikeCount_CacheMiss verifies the count is recomputed and cached on
// a miss.
func TestLikeCount_CacheMiss(t *testing.T) {
	storageMock := new(MockStorage)
	ledger := swap.NewLedgerService(storageMock)

	storageMock.On("GetCachedLikeCount", "book_Y").Return(int64(0), false, nil)
	storageMock.On("CountLikes", "book_Y").Return(int64(3), nil)
	storageMock.On("SetCachedLikeCount", "book_Y", int64(3)).Return(nil)

	count, err := ledger.LikeCount("book_Y")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	storageMock.AssertExpectations(t)
}

// TestIsLiked reflects the presence or absence of the ledger row.
func TestIsLiked(t *testing.T) {
	storageMock := new(MockStorage)
	ledger := swap.NewLedgerService(storageMock)

	storageMock.On("FindLike", "book_Y", "user_A").
		Return(&models.Like{ID: "like_1"}, nil).Once()
	liked, err := ledger.IsLiked("book_Y", "user_A")
	assert.NoError(t, err)
	assert.True(t, liked)

	storageMock.On("FindLike", "book_Y", "user_B").Return(nil, nil).Once()
	liked, err = ledger.IsLiked("book_Y", "user_B")
	assert.NoError(t, err)
	assert.False(t, liked)
}
