package order

import (
	"context"

	"optical-storefront/internal/domain"
)

// Repository persists submitted orders. Create assigns the order id and
// creation timestamp.
type Repository interface {
	Create(ctx context.Context, in domain.Order) (*domain.Order, error)
}
