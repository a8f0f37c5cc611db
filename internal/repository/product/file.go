package product

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"optical-storefront/internal/domain"
)

type fileRepo struct {
	path string
}

// NewFile serves products from a static JSON file. The file is re-read on
// every call so edits show up without a restart.
func NewFile(path string) Repository {
	return &fileRepo{path: path}
}

func (r *fileRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.load()
}

func (r *fileRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fileRepo) load() ([]domain.Product, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read products file: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode products file: %w", err)
	}
	return products, nil
}
