package event

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/HerbHall/netadvisor/internal/plugin"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestPublishSubscribe(t *testing.T) {
	bus := NewBus(testLogger())
	var received plugin.Event

	bus.Subscribe("test.topic", func(ctx context.Context, e plugin.Event) {
		received = e
	})

	event := plugin.Event{
		Topic:     "test.topic",
		Source:    "test",
		Timestamp: time.Now(),
		Payload:   "hello",
	}

	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if received.Topic != "test.topic" {
		t.Errorf("received.Topic = %q, want %q", received.Topic, "test.topic")
	}
	if received.Payload != "hello" {
		t.Errorf("received.Payload = %v, want %q", received.Payload, "hello")
	}
}

func TestSubscribeAll(t *testing.T) {
	bus := NewBus(testLogger())
	var count int32

	bus.SubscribeAll(func(ctx context.Context, e plugin.Event) {
		atomic.AddInt32(&count, 1)
	})

	bus.Publish(context.Background(), plugin.Event{Topic: "a"})
	bus.Publish(context.Background(), plugin.Event{Topic: "b"})

	if got := atomic.LoadInt32(&count); got != 2 {
		t.Errorf("SubscribeAll handler called %d times, want 2", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus(testLogger())
	var count int32

	unsub := bus.Subscribe("t", func(ctx context.Context, e plugin.Event) {
		atomic.AddInt32(&count, 1)
	})

	bus.Publish(context.Background(), plugin.Event{Topic: "t"})
	unsub()
	bus.Publish(context.Background(), plugin.Event{Topic: "t"})

	if got := atomic.LoadInt32(&count); got != 1 {
		t.Errorf("handler called %d times after unsubscribe, want 1", got)
	}
}

func TestTopicIsolation(t *testing.T) {
	bus := NewBus(testLogger())
	var count int32

	bus.Subscribe("a", func(ctx context.Context, e plugin.Event) {
		atomic.AddInt32(&count, 1)
	})

	bus.Publish(context.Background(), plugin.Event{Topic: "b"})

	if got := atomic.LoadInt32(&count); got != 0 {
		t.Errorf("handler for topic a called %d times for topic b, want 0", got)
	}
}

func TestHandlersRunInSubscriptionOrder(t *testing.T) {
	bus := NewBus(testLogger())
	var order []int

	for i := 0; i < 8; i++ {
		i := i
		bus.Subscribe("t", func(ctx context.Context, e plugin.Event) {
			order = append(order, i)
		})
	}

	if err := bus.Publish(context.Background(), plugin.Event{Topic: "t"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(order) != 8 {
		t.Fatalf("delivered to %d handlers, want 8", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("delivery order = %v, want ascending subscription order", order)
		}
	}
}

func TestPanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := NewBus(testLogger())
	var count int32

	bus.Subscribe("t", func(ctx context.Context, e plugin.Event) {
		panic("boom")
	})
	bus.Subscribe("t", func(ctx context.Context, e plugin.Event) {
		atomic.AddInt32(&count, 1)
	})

	if err := bus.Publish(context.Background(), plugin.Event{Topic: "t"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if got := atomic.LoadInt32(&count); got != 1 {
		t.Errorf("second handler called %d times, want 1", got)
	}
}
