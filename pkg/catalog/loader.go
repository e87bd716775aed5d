package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var productsRawData []byte

// productsFile is the top-level structure of the embedded YAML.
type productsFile struct {
	Products []Product `yaml:"products"`
}

// Catalog provides lazy-loaded access to the embedded product catalog.
// Declaration order in the YAML is significant: it is the stable tie-break
// used by the recommendation engine.
type Catalog struct {
	once     sync.Once
	products []Product
	err      error
}

// NewCatalog creates a new Catalog that will parse the embedded YAML on first access.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// FromProducts creates a Catalog backed by the given records instead of the
// embedded data. Intended for tests and substitute catalogs.
func FromProducts(products []Product) *Catalog {
	c := &Catalog{}
	c.once.Do(func() {
		c.products = make([]Product, len(products))
		copy(c.products, products)
	})
	return c
}

// Products returns a copy of all catalog records in declaration order.
func (c *Catalog) Products() ([]Product, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	cp := make([]Product, len(c.products))
	copy(cp, c.products)
	return cp, nil
}

// load parses and validates the embedded YAML catalog data.
func (c *Catalog) load() {
	var f productsFile
	if err := yaml.Unmarshal(productsRawData, &f); err != nil {
		c.err = fmt.Errorf("catalog: parse yaml: %w", err)
		return
	}
	for i := range f.Products {
		if err := f.Products[i].validate(); err != nil {
			c.err = fmt.Errorf("catalog: %w", err)
			return
		}
	}
	c.products = f.Products
}
