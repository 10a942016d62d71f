package fetcher

import (
	"sync"
	"time"
)

// Cache holds the last successful fetch result and its timestamp. It is the
// one piece of shared mutable state in the pipeline: the feed has no push or
// invalidation mechanism, so results are polled and kept for a TTL.
//
// The clock is supplied by the caller on every read so TTL expiry is
// deterministic under test.
type Cache[T any] struct {
	mu        sync.RWMutex
	data      T
	fetchedAt time.Time
	valid     bool
}

// Get returns the cached value when one exists and its age is under ttl.
func (c *Cache[T]) Get(now time.Time, ttl time.Duration) (T, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid || now.Sub(c.fetchedAt) >= ttl {
		var zero T
		return zero, time.Time{}, false
	}
	return c.data, c.fetchedAt, true
}

// Peek returns the cached value regardless of age, for callers that want a
// best-effort placeholder while a refresh is in flight.
func (c *Cache[T]) Peek() (T, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		var zero T
		return zero, time.Time{}, false
	}
	return c.data, c.fetchedAt, true
}

// Put replaces the cached value wholesale.
func (c *Cache[T]) Put(data T, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
	c.fetchedAt = now
	c.valid = true
}

// Invalidate empties the cache. Called on any fetch failure so the next call
// is forced back to the network instead of serving data past a failed refresh.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.data = zero
	c.fetchedAt = time.Time{}
	c.valid = false
}
