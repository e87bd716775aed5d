package testutil

import "github.com/HerbHall/netadvisor/pkg/catalog"

// NewProduct returns a Product with sensible defaults, suitable for test
// fixtures. Override individual fields through options as needed.
func NewProduct(opts ...func(*catalog.Product)) catalog.Product {
	p := catalog.Product{
		Category:  catalog.CategorySwitch,
		Name:      "Test Switch",
		Model:     "TS-24",
		Type:      "Managed Switch",
		PriceLow:  300,
		PriceHigh: 500,
		Features:  []string{"VLAN", "QoS"},
		UseCase:   "Small office networks",
		ScaleTier: catalog.TierSmallBusiness,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithCategory sets the product category.
func WithCategory(c catalog.Category) func(*catalog.Product) {
	return func(p *catalog.Product) { p.Category = c }
}

// WithName sets the product name and model.
func WithName(name, model string) func(*catalog.Product) {
	return func(p *catalog.Product) {
		p.Name = name
		p.Model = model
	}
}

// WithPriceRange sets the product price bounds.
func WithPriceRange(low, high int) func(*catalog.Product) {
	return func(p *catalog.Product) {
		p.PriceLow = low
		p.PriceHigh = high
	}
}

// WithFeatures sets the product feature list.
func WithFeatures(features ...string) func(*catalog.Product) {
	return func(p *catalog.Product) { p.Features = features }
}

// WithScaleTier sets the product scale tier.
func WithScaleTier(t catalog.ScaleTier) func(*catalog.Product) {
	return func(p *catalog.Product) { p.ScaleTier = t }
}
