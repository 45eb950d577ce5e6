// Package cache implements the tag-indexed response cache with TTL expiry
// and event-driven invalidation.
package cache

import (
	"context"
	"time"
)

// Store is the cache backend contract. Implementations must treat a read
// past an entry's expiry as a miss even if no sweep has run yet, and tag
// invalidation must be idempotent.
type Store interface {
	// Get returns the cached payload, or false on miss or expiry.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Has reports whether the key is present and unexpired.
	Has(ctx context.Context, key string) bool

	// Set stores a payload under the key with the given TTL, registering it
	// under every tag. A non-positive TTL falls back to the store default.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration, tags ...string)

	// Delete removes a single entry and detaches it from its tags.
	Delete(ctx context.Context, key string)

	// InvalidateTags removes every entry registered under any of the tags
	// and returns the number of entries removed. Unknown or already-emptied
	// tags are a no-op.
	InvalidateTags(ctx context.Context, tags ...string) int

	// Clear drops all entries and all tag indices.
	Clear(ctx context.Context)

	// Len returns the current entry count.
	Len() int

	// Close releases background resources.
	Close()
}
