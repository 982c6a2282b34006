package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Swap request statuses.
const (
	SwapPending   = "pending"
	SwapAccepted  = "accepted"
	SwapCompleted = "completed"
	SwapCancelled = "cancelled"
)

// SwapRequest is a requester's offer to take over a listed book.
// It moves pending -> accepted -> completed, and can be cancelled from
// either of the first two states. Completing a swap marks the book
// unavailable and credits its carbon saving to both parties.
type SwapRequest struct {
	ID          string `gorm:"primaryKey" json:"id"`
	BookID      string `gorm:"index;not null" json:"book_id"`
	RequesterID string `gorm:"index;not null" json:"requester_id"`
	OwnerID     string `gorm:"index;not null" json:"owner_id"`
	Status      string `gorm:"not null" json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// BeforeCreate is a GORM hook that generates a UUID and defaults the
// status for new swap requests.
func (r *SwapRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Status == "" {
		r.Status = SwapPending
	}
	return
}

// CanTransition reports whether a swap request may move from its current
// status to the target one.
func (r *SwapRequest) CanTransition(target string) bool {
	switch r.Status {
	case SwapPending:
		return target == SwapAccepted || target == SwapCancelled
	case SwapAccepted:
		return target == SwapCompleted || target == SwapCancelled
	}
	return false
}
