package chathub

import "swapx/backend/internal/models"

// Client is the interface for one connected consumer of the realtime
// feed. It abstracts the underlying transport so the hub can manage
// every connection type uniformly.
type Client interface {
	// GetUserID returns the unique identifier for the user associated
	// with the connection.
	GetUserID() string

	// GetSendChannel returns the channel the hub pushes events for this
	// client into. It is a send-only channel.
	GetSendChannel() chan<- models.ChatEvent

	// Run starts the client's read and write pumps.
	Run()
	// Close gracefully shuts down the connection and its channels.
	Close()
}
