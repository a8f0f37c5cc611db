// Package quickview holds the transient "active product" selection behind
// the product detail overlay.
package quickview

import (
	"context"

	"optical-storefront/internal/cart"
	"optical-storefront/internal/domain"
)

// Viewer tracks at most one active product. State is volatile: it is never
// persisted and resets with the session.
type Viewer struct {
	resolver cart.Resolver
	store    *cart.Store
	active   *domain.Product
}

func New(resolver cart.Resolver, store *cart.Store) *Viewer {
	return &Viewer{resolver: resolver, store: store}
}

// Open selects the product as active. An unknown id is a silent no-op.
func (v *Viewer) Open(productID int64) {
	product, ok := v.resolver.Get(productID)
	if !ok {
		return
	}
	v.active = &product
}

// Active returns the currently open product, if any.
func (v *Viewer) Active() (domain.Product, bool) {
	if v.active == nil {
		return domain.Product{}, false
	}
	return *v.active, true
}

// Close clears the selection.
func (v *Viewer) Close() {
	v.active = nil
}

// AddToCart adds the active product to the cart and closes the view. With
// nothing open it is a no-op.
func (v *Viewer) AddToCart(ctx context.Context) error {
	if v.active == nil {
		return nil
	}
	err := v.store.AddItem(ctx, v.active.ID, 1)
	v.Close()
	return err
}
