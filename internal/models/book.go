package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Book represents a listing offered for swapping.
// A book belongs to exactly one owner and is never hard-deleted by the swap
// flow itself; instead IsAvailable is flipped off once it has been traded away.
type Book struct {
	ID      string `gorm:"primaryKey" json:"id"`
	OwnerID string `gorm:"index;not null" json:"owner_id"`

	Title       string `gorm:"not null" json:"title"`
	Author      string `json:"author,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Condition   string `json:"condition,omitempty"`

	// ImageURL points at the cover asset in object storage. Only the
	// reference is stored, never the binary content.
	ImageURL string `json:"image_url,omitempty"`

	Tags pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`

	// CarbonSaving is the estimated kg of CO2 saved by swapping this book
	// instead of buying it new.
	CarbonSaving float64 `json:"carbon_saving"`

	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate is a GORM hook that generates a UUID for new books.
func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}
