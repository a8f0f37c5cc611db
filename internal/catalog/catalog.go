// Package catalog loads the product catalog and answers product lookups.
//
// Loading walks an ordered list of sources (API, static file, built-in
// placeholder) until one succeeds. An empty catalog is a valid state, not an
// error.
package catalog

import "optical-storefront/internal/domain"

// Catalog is an immutable, ordered snapshot of loaded products with an id
// index for lookups.
type Catalog struct {
	products []domain.Product
	byID     map[int64]domain.Product
}

// New builds a Catalog snapshot from an ordered product slice.
func New(products []domain.Product) *Catalog {
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp, byID: byID}
}

// List returns the products in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) List() []domain.Product {
	return c.products
}

// Get resolves a product by id.
func (c *Catalog) Get(id int64) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
