// Package event provides a synchronous in-process publish/subscribe bus used
// to decouple the advisor pipeline from observers such as the query history
// recorder.
package event

import (
	"context"
	"sort"
	"sync"

	"github.com/HerbHall/netadvisor/internal/plugin"
	"go.uber.org/zap"
)

// Compile-time interface guard.
var _ plugin.EventBus = (*Bus)(nil)

// Bus is a thread-safe event bus. Handlers are invoked synchronously in
// subscription order; a panicking handler is recovered and logged so one bad
// subscriber cannot take down the publisher.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]plugin.EventHandler // topic -> id -> handler
	wildcard map[int]plugin.EventHandler
	logger   *zap.Logger
}

// NewBus creates a new event bus.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[string]map[int]plugin.EventHandler),
		wildcard: make(map[int]plugin.EventHandler),
		logger:   logger,
	}
}

// Publish delivers the event to topic subscribers, then wildcard
// subscribers, each group in subscription order.
func (b *Bus) Publish(ctx context.Context, event plugin.Event) error {
	b.mu.RLock()
	targets := make([]plugin.EventHandler, 0, len(b.handlers[event.Topic])+len(b.wildcard))
	targets = appendOrdered(targets, b.handlers[event.Topic])
	targets = appendOrdered(targets, b.wildcard)
	b.mu.RUnlock()

	for _, h := range targets {
		b.dispatch(ctx, h, event)
	}
	return nil
}

// appendOrdered appends handlers by ascending subscription id.
func appendOrdered(dst []plugin.EventHandler, handlers map[int]plugin.EventHandler) []plugin.EventHandler {
	ids := make([]int, 0, len(handlers))
	for id := range handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		dst = append(dst, handlers[id])
	}
	return dst
}

// Subscribe registers a handler for a single topic and returns an
// unsubscribe function.
func (b *Bus) Subscribe(topic string, handler plugin.EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[int]plugin.EventHandler)
	}
	b.handlers[topic][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[topic], id)
	}
}

// SubscribeAll registers a handler for every topic and returns an
// unsubscribe function.
func (b *Bus) SubscribeAll(handler plugin.EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.wildcard[id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.wildcard, id)
	}
}

// dispatch invokes a single handler with panic recovery.
func (b *Bus) dispatch(ctx context.Context, handler plugin.EventHandler, event plugin.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("topic", event.Topic),
				zap.Any("panic", r),
			)
		}
	}()
	handler(ctx, event)
}
