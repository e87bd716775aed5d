package testutil

import (
	"context"
	"testing"

	"github.com/HerbHall/netadvisor/internal/plugin"
	"github.com/HerbHall/netadvisor/pkg/catalog"
)

func TestNewProductDefaults(t *testing.T) {
	p := NewProduct()
	if p.Name == "" || !p.Category.Valid() || !p.ScaleTier.Valid() {
		t.Errorf("NewProduct() returned incomplete fixture: %+v", p)
	}
}

func TestNewProductOptions(t *testing.T) {
	p := NewProduct(
		WithCategory(catalog.CategoryFirewall),
		WithName("Guard", "G-1"),
		WithPriceRange(100, 200),
		WithFeatures("VPN"),
		WithScaleTier(catalog.TierEnterprise),
	)

	if p.Category != catalog.CategoryFirewall {
		t.Errorf("Category = %s", p.Category)
	}
	if p.DisplayName() != "Guard (G-1)" {
		t.Errorf("DisplayName() = %s", p.DisplayName())
	}
	if p.PriceRange() != "$100-200" {
		t.Errorf("PriceRange() = %s", p.PriceRange())
	}
	if len(p.Features) != 1 || p.Features[0] != "VPN" {
		t.Errorf("Features = %v", p.Features)
	}
	if p.ScaleTier != catalog.TierEnterprise {
		t.Errorf("ScaleTier = %s", p.ScaleTier)
	}
}

func TestMockBusRecordsEvents(t *testing.T) {
	bus := NewMockBus()

	_ = bus.Publish(context.Background(), plugin.Event{Topic: "a"})
	_ = bus.Publish(context.Background(), plugin.Event{Topic: "b"})

	events := bus.Events()
	if len(events) != 2 {
		t.Fatalf("Events() returned %d events, want 2", len(events))
	}
	if events[0].Topic != "a" || events[1].Topic != "b" {
		t.Errorf("recorded topics = %s, %s", events[0].Topic, events[1].Topic)
	}

	bus.Reset()
	if len(bus.Events()) != 0 {
		t.Error("Reset() did not clear recorded events")
	}
}

func TestNewStore(t *testing.T) {
	db := NewStore(t)
	if db.DB() == nil {
		t.Fatal("NewStore() returned store with nil DB")
	}
}
