package chathub

import (
	"encoding/json"
	"log"

	"swapx/backend/internal/models"
	"swapx/backend/internal/storage"
)

// ManagerService is the hub: a single goroutine that owns the set of
// connected clients and routes realtime events between the Redis feed,
// the conversation service and the websocket connections.
type ManagerService struct {
	Clients map[string]Client

	// Channels
	IncomingCh   chan models.ChatEvent
	RegisterCh   chan Client
	UnregisterCh chan Client
	PubSubCh     chan models.ChatEvent

	Storage       storage.Storage
	Conversations *ConversationService
}

// NewManagerService creates the hub over the given storage.
func NewManagerService(s storage.Storage) *ManagerService {
	return &ManagerService{
		Clients:       make(map[string]Client),
		IncomingCh:    make(chan models.ChatEvent),
		RegisterCh:    make(chan Client),
		UnregisterCh:  make(chan Client),
		PubSubCh:      make(chan models.ChatEvent),
		Storage:       s,
		Conversations: NewConversationService(s),
	}
}

// Run is the hub's main dispatch loop. All access to the Clients map
// happens on this goroutine.
func (m *ManagerService) Run() {
	log.Println("Chat hub started.")
	for {
		select {
		case client := <-m.RegisterCh:
			// A reconnect displaces the previous connection for the user;
			// close it so its pumps wind down.
			if old, ok := m.Clients[client.GetUserID()]; ok && old != client {
				old.Close()
				log.Printf("Client displaced by reconnect: %s", client.GetUserID())
			}
			m.Clients[client.GetUserID()] = client
			log.Printf("Client registered: %s", client.GetUserID())

		case client := <-m.UnregisterCh:
			// Only the connection that owns the map entry may remove it. A
			// stale connection unregistering after a reconnect must not take
			// the fresh one down with it.
			if current, ok := m.Clients[client.GetUserID()]; ok && current == client {
				delete(m.Clients, client.GetUserID())
				client.Close()
				log.Printf("Client unregistered: %s", client.GetUserID())
			}

		case evt := <-m.IncomingCh:
			m.handleIncoming(evt)

		case evt := <-m.PubSubCh:
			m.handleFeedEvent(evt)
		}
	}
}

// StartFeedListener subscribes to every conversation channel on Redis
// and funnels the events into the hub loop. Runs as its own goroutine so
// that events published by other server instances reach clients
// connected here.
func (m *ManagerService) StartFeedListener() {
	go func() {
		feed := m.Storage.SubscribeToFeed()
		defer feed.Close()

		for payload := range feed.Payloads() {
			var evt models.ChatEvent
			if err := json.Unmarshal([]byte(payload), &evt); err != nil {
				log.Printf("Error decoding feed event: %v", err)
				continue
			}
			m.PubSubCh <- evt
		}
	}()
}

// handleIncoming processes an event read from a client connection.
// Messages and read receipts go through the conversation service so all
// validation and persistence lives in one place; typing indicators are
// published without being persisted.
func (m *ManagerService) handleIncoming(evt models.ChatEvent) {
	switch evt.Type {
	case models.EventMessage, "":
		if _, err := m.Conversations.Send(evt.MatchID, evt.SenderID, evt.Content); err != nil {
			log.Printf("Rejected message from %s on match %s: %v", evt.SenderID, evt.MatchID, err)
		}

	case models.EventRead:
		if err := m.Conversations.MarkRead(evt.MatchID, evt.SenderID); err != nil {
			log.Printf("Rejected read receipt from %s on match %s: %v", evt.SenderID, evt.MatchID, err)
		}

	case models.EventTyping:
		if err := m.Storage.PublishEvent(evt.MatchID, evt); err != nil {
			log.Printf("Failed to publish typing event on match %s: %v", evt.MatchID, err)
		}

	default:
		log.Printf("Dropping event of unknown type %q from %s", evt.Type, evt.SenderID)
	}
}

// handleFeedEvent delivers a feed event to the connected participants of
// its match. Delivery is best-effort: a client with a full send buffer is
// skipped rather than wedging the hub, and offline clients catch up from
// history.
func (m *ManagerService) handleFeedEvent(evt models.ChatEvent) {
	match, err := m.Storage.GetMatchByID(evt.MatchID)
	if err != nil || match == nil {
		log.Printf("WARNING: Feed event for unknown match %s. Skipping.", evt.MatchID)
		return
	}

	for _, userID := range []string{match.User1ID, match.User2ID} {
		client, ok := m.Clients[userID]
		if !ok {
			continue
		}
		select {
		case client.GetSendChannel() <- evt:
		default:
			log.Printf("Dropping event for slow client %s on match %s", userID, evt.MatchID)
		}
	}
}
