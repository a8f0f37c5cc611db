package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optical-storefront/internal/kvstore"
)

func TestPersisterRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := NewKVPersister(kvstore.NewMemory())

	items := []LineItem{
		{ProductID: 9, Name: "Reading Glasses", Price: 1200, Quantity: 3},
		{ProductID: 7, Name: "Aviator Frame", Price: 500, Images: []string{"aviator.jpg"}, Quantity: 1},
	}
	require.NoError(t, p.Save(ctx, items))

	loaded, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestPersisterLoadEmptyStore(t *testing.T) {
	p := NewKVPersister(kvstore.NewMemory())
	loaded, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDecodeItemsLegacyRecords(t *testing.T) {
	// Old saved carts had no quantity field and a single img string.
	data := []byte(`[
		{"productId": 3, "name": "Round Frame", "price": 899, "img": "round.jpg"},
		{"productId": 4, "name": "Square Frame", "price": 999, "quantity": 0},
		{"productId": 5, "name": "Cat Eye", "price": 1499, "images": ["a.jpg","b.jpg"], "quantity": 2}
	]`)

	items, err := DecodeItems(data)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, []string{"round.jpg"}, items[0].Images)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 2, items[2].Quantity)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, items[2].Images)
}

func TestDecodeItemsCorrupt(t *testing.T) {
	_, err := DecodeItems([]byte(`{"not": "a list"}`))
	assert.Error(t, err)
}
