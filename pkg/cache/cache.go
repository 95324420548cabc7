// Package cache stores generated symbols keyed by the content that produced
// them, so regenerating an unchanged icon against an unchanged template can
// skip composition.
//
// Two implementations are provided: [FileCache] for CLI use and [NullCache]
// when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the cached value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// SymbolKey returns the cache key for a symbol generated from the given
// icon and template contents with the given geometry parameters. params is
// JSON-encoded into the key, so any change to it yields a new key.
func SymbolKey(icon, template []byte, params any) string {
	return hashKey("symbol", Hash(icon), Hash(template), params)
}
