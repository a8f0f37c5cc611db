// Package cart implements the shopping cart: an insertion-ordered set of
// line items with quantity arithmetic, best-effort persistence and
// synchronous change notification.
package cart

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"optical-storefront/internal/domain"
)

// ErrInvalidProduct indicates an add against a product id that does not
// resolve in the current catalog snapshot.
var ErrInvalidProduct = errors.New("product not in catalog")

// Resolver answers product lookups against the loaded catalog.
type Resolver interface {
	Get(id int64) (domain.Product, bool)
}

// LineItem pairs a product reference with a quantity. Quantity is always
// at least 1; a line whose quantity would drop to zero is removed instead.
type LineItem struct {
	ProductID int64    `json:"productId"`
	Name      string   `json:"name"`
	Price     int64    `json:"price"`
	Images    []string `json:"images,omitempty"`
	Quantity  int      `json:"quantity"`
}

// Subtotal is the line's price times quantity.
func (li LineItem) Subtotal() int64 {
	return li.Price * int64(li.Quantity)
}

// Store owns the cart state for one session. It is single-owner: all calls
// must come from the same goroutine, matching the event-driven UI model.
type Store struct {
	resolver  Resolver
	persister Persister
	logger    zerolog.Logger
	items     []LineItem
	subs      []func([]LineItem)
}

// NewStore builds an empty cart. persister may be nil for a purely
// in-memory cart.
func NewStore(resolver Resolver, persister Persister, logger zerolog.Logger) *Store {
	return &Store{resolver: resolver, persister: persister, logger: logger}
}

// Subscribe registers a callback invoked synchronously with a fresh
// snapshot after every mutation.
func (s *Store) Subscribe(fn func([]LineItem)) {
	s.subs = append(s.subs, fn)
}

// Restore rehydrates the cart from the persister. Missing or corrupt saved
// state is treated as an empty cart, never an error.
func (s *Store) Restore(ctx context.Context) {
	if s.persister == nil {
		return
	}
	items, err := s.persister.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("discarding saved cart")
		return
	}
	s.items = items
	s.notify()
}

// AddItem adds delta units of the given product, creating the line on first
// add. Returns ErrInvalidProduct when the id does not resolve.
func (s *Store) AddItem(ctx context.Context, productID int64, delta int) error {
	product, ok := s.resolver.Get(productID)
	if !ok {
		return ErrInvalidProduct
	}
	if delta < 1 {
		delta = 1
	}
	if line := s.find(productID); line != nil {
		line.Quantity += delta
	} else {
		s.items = append(s.items, LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Images:    product.ImageList(),
			Quantity:  delta,
		})
	}
	s.afterMutation(ctx)
	return nil
}

// SetQuantity sets a line's quantity. A result of zero or less removes the
// line. Unknown product ids are a no-op.
func (s *Store) SetQuantity(ctx context.Context, productID int64, quantity int) {
	line := s.find(productID)
	if line == nil {
		return
	}
	if quantity <= 0 {
		s.remove(productID)
	} else {
		line.Quantity = quantity
	}
	s.afterMutation(ctx)
}

// AdjustQuantity applies a delta to a line's quantity, removing the line
// when the result is zero or less. Unknown product ids are a no-op.
func (s *Store) AdjustQuantity(ctx context.Context, productID int64, delta int) {
	line := s.find(productID)
	if line == nil {
		return
	}
	s.SetQuantity(ctx, productID, line.Quantity+delta)
}

// RemoveItem deletes a line. Removing an absent line is a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID int64) {
	if s.find(productID) == nil {
		return
	}
	s.remove(productID)
	s.afterMutation(ctx)
}

// Clear empties the cart. Called after a successful order submission.
func (s *Store) Clear(ctx context.Context) {
	if len(s.items) == 0 {
		return
	}
	s.items = nil
	s.afterMutation(ctx)
}

// Snapshot returns a copy of the line items in display order. Mutating the
// returned slice does not affect the store.
func (s *Store) Snapshot() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the number of distinct lines.
func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) find(productID int64) *LineItem {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return &s.items[i]
		}
	}
	return nil
}

func (s *Store) remove(productID int64) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// afterMutation persists best-effort and notifies subscribers. The
// in-memory cart stays authoritative, so persistence failures are logged
// and never surfaced to the caller.
func (s *Store) afterMutation(ctx context.Context) {
	if s.persister != nil {
		if err := s.persister.Save(ctx, s.Snapshot()); err != nil {
			s.logger.Warn().Err(err).Msg("persist cart failed")
		}
	}
	s.notify()
}

func (s *Store) notify() {
	snapshot := s.Snapshot()
	for _, fn := range s.subs {
		fn(snapshot)
	}
}
