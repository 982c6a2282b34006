package swap

import (
	"fmt"
	"log"
	"time"

	"swapx/backend/internal/models"
	"swapx/backend/internal/storage"
)

// RequestService handles the swap-request workflow: a requester offers to
// take over a listed book, the owner accepts, and either side marks the
// hand-over complete or backs out.
type RequestService struct {
	Storage storage.Storage
}

// NewRequestService creates a new swap-request service.
func NewRequestService(s storage.Storage) *RequestService {
	return &RequestService{Storage: s}
}

// CreateRequest opens a pending swap request from the requester for the
// given book. The owner is resolved from the listing.
func (r *RequestService) CreateRequest(bookID, requesterID string) (*models.SwapRequest, error) {
	book, err := r.Storage.GetBookByID(bookID)
	if err != nil {
		return nil, fmt.Errorf("resolve book: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %s: %w", bookID, storage.ErrNotFound)
	}
	if book.OwnerID == requesterID {
		return nil, fmt.Errorf("cannot request your own book: %w", storage.ErrValidation)
	}
	if !book.IsAvailable {
		return nil, fmt.Errorf("book is no longer available: %w", storage.ErrValidation)
	}

	req := &models.SwapRequest{
		BookID:      bookID,
		RequesterID: requesterID,
		OwnerID:     book.OwnerID,
		Status:      models.SwapPending,
	}
	if err := r.Storage.SaveSwapRequest(req); err != nil {
		return nil, fmt.Errorf("save swap request: %w", err)
	}
	return req, nil
}

// UpdateStatus moves a swap request along its lifecycle. Only the two
// parties may touch it, only the owner may accept, and only legal
// transitions are allowed. Completing a swap stamps CompletedAt and takes
// the book off the shelf; its carbon saving then counts toward both
// parties' impact totals.
func (r *RequestService) UpdateStatus(requestID, actorID, target string) (*models.SwapRequest, error) {
	req, err := r.Storage.GetSwapRequestByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("resolve swap request: %w", err)
	}
	if req == nil {
		return nil, fmt.Errorf("swap request %s: %w", requestID, storage.ErrNotFound)
	}
	if actorID != req.RequesterID && actorID != req.OwnerID {
		return nil, fmt.Errorf("not a party to this swap: %w", storage.ErrNotAuthorized)
	}
	if target == models.SwapAccepted && actorID != req.OwnerID {
		return nil, fmt.Errorf("only the owner can accept: %w", storage.ErrNotAuthorized)
	}
	if !req.CanTransition(target) {
		return nil, fmt.Errorf("cannot move swap from %s to %s: %w",
			req.Status, target, storage.ErrValidation)
	}

	req.Status = target
	if target == models.SwapCompleted {
		now := time.Now()
		req.CompletedAt = &now
	}
	if err := r.Storage.SaveSwapRequest(req); err != nil {
		return nil, fmt.Errorf("save swap request: %w", err)
	}

	if target == models.SwapCompleted {
		if err := r.Storage.SetBookAvailability(req.BookID, false); err != nil {
			log.Printf("WARN: Failed to mark book %s unavailable after swap %s: %v",
				req.BookID, req.ID, err)
		}
	}
	return req, nil
}

// ListForBook returns the swap requests targeting a book. This is the
// owner's view of incoming offers, so only the owner may list them.
func (r *RequestService) ListForBook(bookID, actorID string) ([]models.SwapRequest, error) {
	book, err := r.Storage.GetBookByID(bookID)
	if err != nil {
		return nil, fmt.Errorf("resolve book: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %s: %w", bookID, storage.ErrNotFound)
	}
	if book.OwnerID != actorID {
		return nil, fmt.Errorf("only the owner can list a book's swap requests: %w",
			storage.ErrNotAuthorized)
	}
	return r.Storage.GetSwapRequestsForBook(bookID)
}

// ListForUser returns the swap requests the user is a party to.
func (r *RequestService) ListForUser(userID string) ([]models.SwapRequest, error) {
	return r.Storage.GetSwapRequestsForUser(userID)
}
