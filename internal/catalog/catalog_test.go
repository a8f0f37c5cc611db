package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optical-storefront/internal/domain"
)

func TestCatalogLookup(t *testing.T) {
	cat := New([]domain.Product{
		{ID: 2, Name: "Round Frame", Price: 899},
		{ID: 1, Name: "Aviator Frame", Price: 500},
	})

	require.Equal(t, 2, cat.Len())

	// List preserves source order.
	assert.Equal(t, int64(2), cat.List()[0].ID)

	p, ok := cat.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Aviator Frame", p.Name)

	_, ok = cat.Get(99)
	assert.False(t, ok)
}

func TestCatalogEmptyIsValid(t *testing.T) {
	cat := New(nil)
	assert.Equal(t, 0, cat.Len())
	_, ok := cat.Get(1)
	assert.False(t, ok)
}
