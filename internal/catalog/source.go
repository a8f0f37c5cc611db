package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"optical-storefront/internal/domain"
)

// Source yields an ordered sequence of products, or an error when this
// source cannot serve right now.
type Source interface {
	Load(ctx context.Context) ([]domain.Product, error)
	Name() string
}

type httpSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource fetches the catalog from a product-list endpoint.
func NewHTTPSource(url string) Source {
	return &httpSource{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *httpSource) Name() string { return "api" }

func (s *httpSource) Load(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

type fileSource struct {
	path string
}

// NewFileSource reads the catalog from a static JSON file.
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string { return "file" }

func (s *fileSource) Load(_ context.Context) ([]domain.Product, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

type staticSource struct {
	products []domain.Product
}

// NewStaticSource serves a fixed product list. It never fails, so it makes a
// safe last entry in a chain.
func NewStaticSource(products []domain.Product) Source {
	return &staticSource{products: products}
}

func (s *staticSource) Name() string { return "static" }

func (s *staticSource) Load(_ context.Context) ([]domain.Product, error) {
	return s.products, nil
}

// Placeholder is the built-in product shown when no real catalog source is
// reachable.
func Placeholder() []domain.Product {
	return []domain.Product{{
		ID:          1,
		Name:        "Sample Frame",
		Price:       1999,
		Description: "Premium optical frame",
		Image:       "https://source.unsplash.com/800x800/?glasses",
	}}
}

// Chain tries sources in order and returns the first successful load.
type Chain struct {
	sources []Source
	logger  zerolog.Logger
}

// NewChain builds a fallback chain over the given sources.
func NewChain(logger zerolog.Logger, sources ...Source) *Chain {
	return &Chain{sources: sources, logger: logger}
}

// Load walks the chain. Individual source failures are logged and the next
// source is tried; the final error is returned only when every source fails.
func (c *Chain) Load(ctx context.Context) (*Catalog, error) {
	var lastErr error
	for _, src := range c.sources {
		products, err := src.Load(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Str("source", src.Name()).Msg("catalog source failed, trying next")
			lastErr = err
			continue
		}
		c.logger.Info().Str("source", src.Name()).Int("count", len(products)).Msg("catalog loaded")
		return New(products), nil
	}
	if lastErr == nil {
		return New(nil), nil
	}
	return nil, fmt.Errorf("all catalog sources failed: %w", lastErr)
}
