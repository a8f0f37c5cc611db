// Package seed loads the static product catalog file into Postgres.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"optical-storefront/internal/domain"
)

// Parse decodes a products JSON file.
func Parse(data []byte) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// Apply upserts every product from the JSON file at path. Idempotent via
// ON CONFLICT, so re-running after catalog edits is safe.
func Apply(ctx context.Context, pool *pgxpool.Pool, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read products file: %w", err)
	}
	products, err := Parse(raw)
	if err != nil {
		return 0, err
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return 0, fmt.Errorf("upsert product %d: %w", p.ID, err)
		}
	}
	return len(products), nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, price, description, img)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    price = EXCLUDED.price,
    description = EXCLUDED.description,
    img = EXCLUDED.img
`
	img := p.Image
	if img == "" && len(p.Images) > 0 {
		img = p.Images[0]
	}
	_, err := pool.Exec(ctx, q, p.ID, p.Name, p.Price, p.Description, img)
	return err
}
