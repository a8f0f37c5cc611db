package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"optical-storefront/internal/kvstore"
)

// StateKey is the key the cart is stored under.
const StateKey = "cart:state"

// Persister saves and loads cart state across sessions.
type Persister interface {
	Save(ctx context.Context, items []LineItem) error
	Load(ctx context.Context) ([]LineItem, error)
}

type kvPersister struct {
	store kvstore.Store
}

// NewKVPersister persists the cart in a key-value store under StateKey.
func NewKVPersister(store kvstore.Store) Persister {
	return &kvPersister{store: store}
}

func (p *kvPersister) Save(ctx context.Context, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return p.store.Set(ctx, StateKey, data)
}

func (p *kvPersister) Load(ctx context.Context) ([]LineItem, error) {
	data, err := p.store.Get(ctx, StateKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return DecodeItems(data)
}

// persistedLine tolerates legacy saved records: quantity may be absent
// (defaults to 1) and images may appear as a single img string.
type persistedLine struct {
	ProductID int64    `json:"productId"`
	Name      string   `json:"name"`
	Price     int64    `json:"price"`
	Images    []string `json:"images"`
	Image     string   `json:"img"`
	Quantity  *int     `json:"quantity"`
}

// DecodeItems parses serialized cart state, applying legacy-record defaults.
func DecodeItems(data []byte) ([]LineItem, error) {
	var lines []persistedLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	items := make([]LineItem, 0, len(lines))
	for _, l := range lines {
		qty := 1
		if l.Quantity != nil && *l.Quantity > 0 {
			qty = *l.Quantity
		}
		images := l.Images
		if len(images) == 0 && l.Image != "" {
			images = []string{l.Image}
		}
		items = append(items, LineItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Images:    images,
			Quantity:  qty,
		})
	}
	return items, nil
}
