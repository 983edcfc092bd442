// Package kv defines the persistence port of the expense store: a durable
// key-value store holding serialized text values under fixed keys.
package kv

import "context"

// Store is the outbound port the expense store persists through.
type Store interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Put writes value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	Close() error
}
