// Package catalog defines the static network product catalog shared by the
// advisor service and the MCP tool binary. The catalog is embedded at build
// time and immutable for the process lifetime.
package catalog

import "fmt"

// Category classifies a product by equipment type.
type Category string

// Known product categories.
const (
	CategoryRouter   Category = "router"
	CategorySwitch   Category = "switch"
	CategoryFirewall Category = "firewall"
	CategoryWireless Category = "wireless"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRouter, CategorySwitch, CategoryFirewall, CategoryWireless:
		return true
	}
	return false
}

// ScaleTier is the coarse business-size classification of a product.
type ScaleTier string

// Known scale tiers.
const (
	TierSmallBusiness ScaleTier = "small_business"
	TierEnterprise    ScaleTier = "enterprise"
)

// Valid reports whether t is one of the known tiers.
func (t ScaleTier) Valid() bool {
	return t == TierSmallBusiness || t == TierEnterprise
}

// Product is a single catalog record. Feature order is display order;
// matching does not depend on it. Specifications are free-form and not
// type-checked.
type Product struct {
	Category       Category          `yaml:"category" json:"category"`
	Name           string            `yaml:"name" json:"name"`
	Model          string            `yaml:"model" json:"model"`
	Type           string            `yaml:"type" json:"type"`
	PriceLow       int               `yaml:"price_low" json:"price_low"`
	PriceHigh      int               `yaml:"price_high" json:"price_high"`
	Features       []string          `yaml:"features" json:"features"`
	Specifications map[string]string `yaml:"specifications" json:"specifications,omitempty"`
	UseCase        string            `yaml:"use_case" json:"use_case"`
	ScaleTier      ScaleTier         `yaml:"scale_tier" json:"scale_tier"`
}

// DisplayName returns the vendor name with the model in parentheses.
func (p *Product) DisplayName() string {
	if p.Model == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Model)
}

// PriceRange formats the price bounds for display, e.g. "$200-400".
func (p *Product) PriceRange() string {
	return fmt.Sprintf("$%d-%d", p.PriceLow, p.PriceHigh)
}

// validate checks structural invariants of a single record.
func (p *Product) validate() error {
	if p.Name == "" {
		return fmt.Errorf("product with empty name")
	}
	if !p.Category.Valid() {
		return fmt.Errorf("product %q: unknown category %q", p.Name, p.Category)
	}
	if !p.ScaleTier.Valid() {
		return fmt.Errorf("product %q: unknown scale tier %q", p.Name, p.ScaleTier)
	}
	if p.PriceLow < 0 || p.PriceLow > p.PriceHigh {
		return fmt.Errorf("product %q: invalid price bounds %d-%d", p.Name, p.PriceLow, p.PriceHigh)
	}
	return nil
}
