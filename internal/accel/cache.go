// Package accel wraps the synchronous generator with caching and a worker
// pool. Nothing here is required for correctness: every cache miss falls
// through to a fresh Generator.
package accel

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache stores compiled CSS by key. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Get returns the data for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// keyVersion is bumped whenever the stored entry format or rule output
// changes, so persistent caches never serve entries from an older build.
const keyVersion = "1"

// ClassListKey is the cache key for one class list compiled under scope,
// the fingerprint of the theme in use. Order matters because later tokens
// may override earlier ones.
func ClassListKey(scope string, classes []string) string {
	return "classes:" + Hash([]byte(keyVersion+"\x00"+scope+"\x00"+strings.Join(classes, " ")))
}

// NullCache never stores anything.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always misses.
func (c *NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(context.Context, string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
