// Package cache stores solved path results across runs.
//
// Solving a query costs a full Dijkstra run over a per-length graph, so
// repeated queries against the same dictionary are worth remembering.
// Keys bind a result to the exact dictionary contents (by hash), the
// word pair, and the distance bound - any dictionary edit invalidates
// everything automatically because the hash changes.
//
// Three backends are provided: a file cache for CLI usage, a Redis
// cache for the serve mode, and a null cache that disables storage.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long cached path results stay valid.
// Results are content-addressed by dictionary hash, so the TTL exists
// only to bound storage growth, not for correctness.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live.
	// A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for solved queries.
type Keyer interface {
	// PathKey returns the key for one solved query against the
	// dictionary identified by dictHash.
	PathKey(dictHash, from, to string, maxDistance int) string
}

// DefaultKeyer hashes key components into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// PathKey generates a path-result key: "path:" + hash of components.
func (k *DefaultKeyer) PathKey(dictHash, from, to string, maxDistance int) string {
	return hashKey("path", dictHash, from, to, maxDistance)
}
