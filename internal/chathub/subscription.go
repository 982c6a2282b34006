package chathub

import (
	"encoding/json"
	"log"
	"sync"

	"swapx/backend/internal/models"
)

// MessageHandler is invoked once per newly inserted message, in
// insertion order, for the lifetime of a subscription.
type MessageHandler func(evt models.ChatEvent)

// Subscription is a cancellable handle on a single match's message feed.
// Delivery is best-effort at-most-once: a subscriber that was offline at
// insert time catches up from History, and under retry a consumer may see
// an event whose message it already fetched, so de-duplicate by
// MessageID.
type Subscription struct {
	once sync.Once
	stop func()
}

// Cancel stops delivery and releases the underlying feed connection.
// It is safe to call any number of times, including after teardown.
func (s *Subscription) Cancel() {
	s.once.Do(s.stop)
}

// Subscribe registers a handler for new messages on the match. Events
// other than message inserts (typing, system) are filtered out here;
// websocket clients get those through the hub instead.
func (c *ConversationService) Subscribe(matchID string, fn MessageHandler) *Subscription {
	feed := c.Storage.SubscribeToMatch(matchID)

	go func() {
		for payload := range feed.Payloads() {
			var evt models.ChatEvent
			if err := json.Unmarshal([]byte(payload), &evt); err != nil {
				log.Printf("Error decoding feed event on match %s: %v", matchID, err)
				continue
			}
			if evt.Type != models.EventMessage {
				continue
			}
			fn(evt)
		}
	}()

	return &Subscription{
		stop: func() {
			if err := feed.Close(); err != nil {
				log.Printf("Error closing subscription on match %s: %v", matchID, err)
			}
		},
	}
}
