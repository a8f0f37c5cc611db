package order

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optical-storefront/internal/domain"
)

func TestFileRepoCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "orders.json")
	repo := NewFile(path, zerolog.Nop())

	created, err := repo.Create(context.Background(), domain.Order{
		CustomerName: "Asha",
		Phone:        "9000000000",
		Address:      "12 Park St",
		Items:        []domain.OrderItem{{Name: "Aviator Frame", Price: 500, Quantity: 2}},
		Total:        1000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var stored []domain.Order
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "Asha", stored[0].CustomerName)
	assert.Equal(t, created.ID, stored[0].ID)
}

func TestFileRepoAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	repo := NewFile(path, zerolog.Nop())

	first, err := repo.Create(context.Background(), domain.Order{
		CustomerName: "Asha", Phone: "9000000000", Address: "x",
		Items: []domain.OrderItem{{Name: "a", Price: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), domain.Order{
		CustomerName: "Ravi", Phone: "9111111111", Address: "y",
		Items: []domain.OrderItem{{Name: "b", Price: 2, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var stored []domain.Order
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, "Ravi", stored[1].CustomerName)
}

func TestFileRepoCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	repo := NewFile(path, zerolog.Nop())

	_, err := repo.Create(context.Background(), domain.Order{
		CustomerName: "Asha", Phone: "9000000000", Address: "x",
		Items: []domain.OrderItem{{Name: "a", Price: 1, Quantity: 1}},
	})
	assert.Error(t, err)
}
