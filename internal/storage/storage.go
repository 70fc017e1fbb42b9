// Package storage provides string key-value stores used for cart persistence.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("storage: key not found")

// KVStore is the persistence contract for the cart accumulator. Implementations
// must treat values as opaque strings; serialization is the caller's concern.
type KVStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
