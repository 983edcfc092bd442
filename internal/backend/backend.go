// Package backend selects and constructs the persistence backend the
// expense store writes through.
package backend

import (
	"context"

	"ggmoney/internal/kv"
)

// Type identifies a persistence backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) String() string { return string(t) }

// IsValid reports whether the backend type is one of the supported set.
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases the resources a backend holds.
type CleanupFunc func() error

// Result contains the backend instance and its cleanup function.
type Result struct {
	Store   kv.Store
	Cleanup CleanupFunc
}

// Config holds what backend creation needs.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}
