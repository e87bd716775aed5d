package catalog

import "testing"

func TestCatalogProducts(t *testing.T) {
	cat := NewCatalog()
	products, err := cat.Products()
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected embedded catalog to have products")
	}

	for i := range products {
		p := &products[i]
		if !p.Category.Valid() {
			t.Errorf("%s: invalid category %q", p.Name, p.Category)
		}
		if !p.ScaleTier.Valid() {
			t.Errorf("%s: invalid scale tier %q", p.Name, p.ScaleTier)
		}
		if p.PriceLow > p.PriceHigh {
			t.Errorf("%s: price_low %d > price_high %d", p.Name, p.PriceLow, p.PriceHigh)
		}
		if len(p.Features) == 0 {
			t.Errorf("%s: no features", p.Name)
		}
	}
}

func TestCatalogCoversAllCategories(t *testing.T) {
	cat := NewCatalog()
	products, err := cat.Products()
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}

	seen := map[Category]bool{}
	for i := range products {
		seen[products[i].Category] = true
	}
	for _, c := range []Category{CategoryRouter, CategorySwitch, CategoryFirewall, CategoryWireless} {
		if !seen[c] {
			t.Errorf("no catalog record for category %q", c)
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	cat := NewCatalog()
	a, err := cat.Products()
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	a[0].Name = "mutated"

	b, err := cat.Products()
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	if b[0].Name == "mutated" {
		t.Error("Products() should return a defensive copy")
	}
}

func TestFromProducts(t *testing.T) {
	cat := FromProducts([]Product{
		{Category: CategoryRouter, Name: "Test Router", ScaleTier: TierSmallBusiness},
	})
	products, err := cat.Products()
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	if len(products) != 1 || products[0].Name != "Test Router" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestProductDisplayName(t *testing.T) {
	p := Product{Name: "Netgear ProSAFE", Model: "GS728TP"}
	if got, want := p.DisplayName(), "Netgear ProSAFE (GS728TP)"; got != want {
		t.Errorf("DisplayName() = %q, want %q", got, want)
	}

	p = Product{Name: "pfSense"}
	if got := p.DisplayName(); got != "pfSense" {
		t.Errorf("DisplayName() without model = %q, want %q", got, "pfSense")
	}
}

func TestProductPriceRange(t *testing.T) {
	p := Product{PriceLow: 200, PriceHigh: 400}
	if got, want := p.PriceRange(), "$200-400"; got != want {
		t.Errorf("PriceRange() = %q, want %q", got, want)
	}
}
