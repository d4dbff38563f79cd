package events

import (
	"context"
	"encoding/json"
	"server/config"
	"server/internal/database"
	"server/internal/logger"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

// Event is one message on the bus. Payment events carry the application ID
// and new payment status in Data.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Channel   string         `json:"channel,omitempty"`
	UserID    string         `json:"userId,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type Subscriber func(event Event)

// EventBus publishes over valkey pub/sub so every server instance sees
// every event, and fans out to in-process subscribers (the websocket
// manager).
type EventBus struct {
	cache       database.CacheClient
	log         logger.Logger
	mu          sync.RWMutex
	subscribers map[string][]Subscriber
	cancel      context.CancelFunc
	done        chan struct{}
}

func New(cache database.CacheClient, config config.Config) *EventBus {
	bus := &EventBus{
		cache:       cache,
		log:         logger.New("events"),
		subscribers: make(map[string][]Subscriber),
		done:        make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	bus.cancel = cancel
	go bus.listen(ctx)

	return bus
}

func (b *EventBus) Publish(channel string, event Event) error {
	log := b.log.Function("Publish")

	payload, err := json.Marshal(event)
	if err != nil {
		return log.Err("failed to marshal event", err, "channel", channel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := b.cache.B().Publish().Channel(channel).Message(string(payload)).Build()
	if err := b.cache.Do(ctx, cmd).Error(); err != nil {
		return log.Err("failed to publish event", err, "channel", channel)
	}

	return nil
}

// Subscribe registers an in-process handler for a channel. Handlers run on
// the listener goroutine and must not block.
func (b *EventBus) Subscribe(channel string, fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[channel] = append(b.subscribers[channel], fn)
}

func (b *EventBus) listen(ctx context.Context) {
	log := b.log.Function("listen")
	defer close(b.done)

	err := b.cache.Receive(ctx, b.cache.B().Psubscribe().Pattern("*").Build(), func(msg valkey.PubSubMessage) {
		var event Event
		if err := json.Unmarshal([]byte(msg.Message), &event); err != nil {
			log.Er("failed to unmarshal event", err, "channel", msg.Channel)
			return
		}

		b.mu.RLock()
		handlers := append([]Subscriber(nil), b.subscribers[msg.Channel]...)
		b.mu.RUnlock()

		for _, handler := range handlers {
			handler(event)
		}
	})
	if err != nil && ctx.Err() == nil {
		log.Er("event subscription ended", err)
	}
}

func (b *EventBus) Close() error {
	b.cancel()
	select {
	case <-b.done:
	case <-time.After(2 * time.Second):
	}
	return nil
}
