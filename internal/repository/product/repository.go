package product

import (
	"context"

	"optical-storefront/internal/domain"
)

// Repository serves the product catalog.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}
