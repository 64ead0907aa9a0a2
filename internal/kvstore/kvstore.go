// Package kvstore provides the string-keyed persistence layer backing all
// tracker state. Values are JSON documents; a missing key is reported via
// ErrNotFound so callers can fall back to defaults.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for a key.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a string key/value store with last-write-wins semantics.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
