package product

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"optical-storefront/internal/domain"
)

type fallbackRepo struct {
	primary   Repository
	secondary Repository
	logger    zerolog.Logger
}

// NewFallback serves from primary and falls back to secondary on
// infrastructure errors. A clean ErrNotFound from the primary is
// authoritative and does not fall through.
func NewFallback(primary, secondary Repository, logger zerolog.Logger) Repository {
	return &fallbackRepo{primary: primary, secondary: secondary, logger: logger}
}

func (r *fallbackRepo) List(ctx context.Context) ([]domain.Product, error) {
	products, err := r.primary.List(ctx)
	if err == nil {
		return products, nil
	}
	r.logger.Warn().Err(err).Msg("primary product repo failed, using fallback")
	return r.secondary.List(ctx)
}

func (r *fallbackRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := r.primary.GetByID(ctx, id)
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		return p, err
	}
	r.logger.Warn().Err(err).Int64("id", id).Msg("primary product repo failed, using fallback")
	return r.secondary.GetByID(ctx, id)
}
