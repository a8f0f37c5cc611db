package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"optical-storefront/internal/domain"
)

type fileRepo struct {
	path   string
	logger zerolog.Logger
	mu     sync.Mutex
}

// NewFile appends orders to a JSON file, for running without a database.
// Orders get a UUID id since there is no sequence to draw from.
func NewFile(path string, logger zerolog.Logger) Repository {
	return &fileRepo{path: path, logger: logger}
}

func (r *fileRepo) Create(ctx context.Context, in domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return nil, err
	}

	out := in
	out.ID = uuid.NewString()
	out.CreatedAt = time.Now().UTC()
	orders = append(orders, out)

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode orders: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write orders file: %w", err)
	}
	r.logger.Info().Str("order_id", out.ID).Int64("total", out.Total).Msg("order stored (file)")
	return &out, nil
}

func (r *fileRepo) load() ([]domain.Order, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read orders file: %w", err)
	}
	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("decode orders file: %w", err)
	}
	return orders, nil
}
