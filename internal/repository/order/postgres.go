package order

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"optical-storefront/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in domain.Order) (*domain.Order, error) {
	itemsJSON, err := json.Marshal(in.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	const q = `
INSERT INTO orders (customer_name, phone, email, address, notes, items, total)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at
`
	var id int64
	out := in
	err = r.pool.QueryRow(ctx, q,
		in.CustomerName, in.Phone, in.Email, in.Address, in.Notes, itemsJSON, in.Total,
	).Scan(&id, &out.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Msg("order repo: insert")
		return nil, err
	}
	out.ID = strconv.FormatInt(id, 10)
	r.logger.Info().Str("order_id", out.ID).Int64("total", out.Total).Msg("order stored")
	return &out, nil
}
