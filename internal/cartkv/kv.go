// Package cartkv is the key-value port behind the cart store. Production
// runs on redis, tests on the in-memory adapter.
package cartkv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

type KV interface {
	// Get returns the stored value or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
}
