package config

import "time"

const (
	// Listings
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxTagCount          = 10

	// DefaultCarbonSaving is the kg of CO2 credited for a swapped book
	// when the lister does not provide their own estimate.
	DefaultCarbonSaving = 2.7

	// Messaging
	MaxMessageLength = 2000

	// Cache
	LikeCountTTL = 5 * time.Minute

	// Auth
	TokenLifetime     = 72 * time.Hour
	MinPasswordLength = 8
)
