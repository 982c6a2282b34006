package storage

import (
	"encoding/json"

	"swapx/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// Feed channels are named "match:<matchID>" so a single pattern
// subscription can fan in every conversation.
const feedChannelPrefix = "match:"

func feedChannel(matchID string) string {
	return feedChannelPrefix + matchID
}

// FeedSubscription is one live subscription to the realtime feed. The
// payload channel closes once the subscription is torn down.
type FeedSubscription interface {
	Payloads() <-chan string
	Close() error
}

// redisSubscription adapts a Redis pub/sub connection to FeedSubscription.
type redisSubscription struct {
	pubsub   *redis.PubSub
	payloads chan string
}

func newRedisSubscription(pubsub *redis.PubSub) *redisSubscription {
	sub := &redisSubscription{
		pubsub:   pubsub,
		payloads: make(chan string),
	}
	go func() {
		defer close(sub.payloads)
		for msg := range pubsub.Channel() {
			sub.payloads <- msg.Payload
		}
	}()
	return sub
}

func (s *redisSubscription) Payloads() <-chan string {
	return s.payloads
}

func (s *redisSubscription) Close() error {
	return s.pubsub.Close()
}

// PublishEvent publishes a chat event on the match's Redis channel.
func (s *Service) PublishEvent(matchID string, evt models.ChatEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, feedChannel(matchID), string(payload)).Err()
}

// SubscribeToMatch subscribes to a single conversation's channel. Used by
// the per-match subscription handles.
func (s *Service) SubscribeToMatch(matchID string) FeedSubscription {
	return newRedisSubscription(s.Redis.Subscribe(s.Ctx, feedChannel(matchID)))
}

// SubscribeToFeed pattern-subscribes to every conversation channel. Used
// by the hub to route events to connected clients.
func (s *Service) SubscribeToFeed() FeedSubscription {
	return newRedisSubscription(s.Redis.PSubscribe(s.Ctx, feedChannelPrefix+"*"))
}
