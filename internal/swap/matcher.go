package swap

import (
	"fmt"
	"log"

	"swapx/backend/internal/models"
	"swapx/backend/internal/storage"
)

// MatchNotifier receives a newly created match for out-of-band delivery
// (e.g. a Telegram push). May be nil.
type MatchNotifier interface {
	NotifyMatch(match *models.Match)
}

// MatcherService derives mutual-like relationships from the like ledger
// and materializes them as Match rows.
type MatcherService struct {
	Storage  storage.Storage
	Notifier MatchNotifier
}

// NewMatcherService creates a new Matcher.
func NewMatcherService(s storage.Storage, n MatchNotifier) *MatcherService {
	return &MatcherService{Storage: s, Notifier: n}
}

// EvaluateAndCreateMatch checks whether a fresh like from likerID on
// likedBookID completes a reciprocal pair and, if so, creates and returns
// the match. It returns (nil, nil) when reciprocity has not happened yet
// or when the book or its owner cannot be resolved; resolution failures
// are deliberately not fatal here.
//
// Idempotence: the normalized pair key is checked before the insert, and
// the unique index on it catches the race where both sides like each
// other simultaneously; in that case the existing match is returned.
func (m *MatcherService) EvaluateAndCreateMatch(likerID, likedBookID string) (*models.Match, error) {
	likedBook, err := m.Storage.GetBookByID(likedBookID)
	if err != nil {
		return nil, fmt.Errorf("resolve liked book: %w", err)
	}
	if likedBook == nil || likedBook.OwnerID == "" {
		return nil, nil
	}
	ownerID := likedBook.OwnerID
	if ownerID == likerID {
		// Never match a user with themselves.
		return nil, nil
	}

	myBooks, err := m.Storage.GetBooksByOwner(likerID)
	if err != nil {
		return nil, fmt.Errorf("load liker's books: %w", err)
	}
	if len(myBooks) == 0 {
		return nil, nil
	}

	bookIDs := make([]string, 0, len(myBooks))
	for _, b := range myBooks {
		bookIDs = append(bookIDs, b.ID)
	}

	reciprocal, err := m.Storage.GetLikesByUserForBooks(ownerID, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("search reciprocal likes: %w", err)
	}
	if len(reciprocal) == 0 {
		// No match yet; waiting on the other side.
		return nil, nil
	}

	// The owner may have liked several of the liker's books. Exactly one
	// match is created per reciprocity event: the earliest like wins.
	myBookID := reciprocal[0].BookID

	pairKey := models.MatchPairKey(likerID, myBookID, ownerID, likedBookID)
	if existing, err := m.Storage.FindMatchByPairKey(pairKey); err != nil {
		return nil, fmt.Errorf("check existing match: %w", err)
	} else if existing != nil {
		return existing, nil
	}

	match := &models.Match{
		User1ID: likerID,
		User2ID: ownerID,
		Book1ID: myBookID,
		Book2ID: likedBookID,
	}
	if err := m.Storage.SaveMatch(match); err != nil {
		// Lost the insert race: the other side's detector got there
		// first. Re-read and hand back the row it created.
		if existing, ferr := m.Storage.FindMatchByPairKey(pairKey); ferr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("save match: %w", err)
	}

	log.Printf("Match found: %s and %s over books %s / %s (match %s)",
		likerID, ownerID, myBookID, likedBookID, match.ID)

	m.announce(match)
	return match, nil
}

// announce pushes the system event onto the match's realtime channel so
// both participants' connected clients see it, and hands the match to the
// notifier for offline delivery.
func (m *MatcherService) announce(match *models.Match) {
	evt := models.ChatEvent{
		Type:     models.EventMatchFound,
		MatchID:  match.ID,
		SenderID: "system",
		Content:  "It's a match! You can now start chatting.",
	}
	if err := m.Storage.PublishEvent(match.ID, evt); err != nil {
		log.Printf("WARN: Failed to publish match event for %s: %v", match.ID, err)
	}

	if m.Notifier != nil {
		m.Notifier.NotifyMatch(match)
	}
}
