// Package kv defines the durable key-value port backing the identity store.
// Values are JSON-encoded. A missing key is reported as ErrKeyNotFound,
// distinct from an I/O failure; implementations must never collapse the two.
package kv

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is a JSON-valued key-value store scoped to one installation.
type Store interface {
	// Set serializes value and writes it under key, overwriting any prior
	// value. A single key is the unit of atomicity.
	Set(ctx context.Context, key string, value any) error

	// Get reads the value at key into out. Returns ErrKeyNotFound if the
	// key was never set.
	Get(ctx context.Context, key string, out any) error

	// Remove deletes the value at key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error

	// Clear deletes every key the store has written.
	Clear(ctx context.Context) error
}
