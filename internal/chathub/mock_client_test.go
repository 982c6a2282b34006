package chathub_test

import "swapx/backend/internal/models"

// MockClient stands in for a websocket connection. RecvChannel is the
// other end of the send channel the hub writes into, so tests can assert
// on delivered events.
type MockClient struct {
	UserID      string
	RecvChannel chan models.ChatEvent
	Closed      bool
}

func NewMockClient(userID string) *MockClient {
	return &MockClient{
		UserID:      userID,
		RecvChannel: make(chan models.ChatEvent, 8),
	}
}

func (c *MockClient) GetUserID() string {
	return c.UserID
}

func (c *MockClient) GetSendChannel() chan<- models.ChatEvent {
	return c.RecvChannel
}

func (c *MockClient) Run() {}

func (c *MockClient) Close() {
	c.Closed = true
}
