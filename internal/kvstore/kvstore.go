// Package kvstore provides the small durable key-value storage used for
// client-side state such as the persisted cart.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound indicates the key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is a durable key-value store. Implementations must return
// ErrNotFound from Get when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
