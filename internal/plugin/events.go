package plugin

import (
	"context"
	"time"
)

// Event topics published by the advisor module.
const (
	TopicQueryServed = "advisor.query"
	TopicDegraded    = "advisor.degraded"
)

// QueryServed is the payload of a TopicQueryServed event.
type QueryServed struct {
	Query       string
	Categories  []string
	Scale       string
	ResultCount int
	Degraded    bool
}

// Event is a message published on the in-process event bus.
type Event struct {
	Topic     string
	Source    string
	Timestamp time.Time
	Payload   any
}

// EventHandler processes a published event. Handlers run synchronously on the
// publisher's goroutine and must not block.
type EventHandler func(ctx context.Context, event Event)

// EventBus is the publish/subscribe surface modules use to exchange events
// without depending on each other directly.
type EventBus interface {
	// Publish delivers the event to all matching subscribers.
	Publish(ctx context.Context, event Event) error

	// Subscribe registers a handler for a single topic. The returned function
	// removes the subscription.
	Subscribe(topic string, handler EventHandler) func()

	// SubscribeAll registers a handler for every topic.
	SubscribeAll(handler EventHandler) func()
}
