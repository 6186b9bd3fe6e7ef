// internal/content/cache.go
//
// TTL cache for resolved content maps.
//
// Context
// -------
// The original site memoised resolved content in an unbounded module-level
// object with no invalidation; a stale overlay survived until the process
// restarted.  This cache keeps the fast path (one RLock, no network) but
// adds two liveness levers: entries expire after a TTL, and every
// customization write flushes the cache.
//
// Keys are "page:<slug>" and "product:<locale>/<slug>".  Values are stored
// as-is; the resolver hands out clones so cached inner maps are never
// mutated by callers.
package content

import (
	"sync"
	"time"
)

// Cache is safe for concurrent use.  Zero value is unusable; construct with
// NewCache.
type Cache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
	ttl  time.Duration
}

type cacheEntry struct {
	content  Map
	loadedAt time.Time
}

// NewCache returns a ready cache.  ttl <= 0 disables expiry, matching the
// original process-lifetime behaviour.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{data: make(map[string]cacheEntry), ttl: ttl}
}

// Get returns the cached map for key, or ok == false on miss or expiry.
func (c *Cache) Get(key string) (Map, bool) {
	c.mu.RLock()
	ent, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && time.Since(ent.loadedAt) > c.ttl {
		return nil, false
	}
	return ent.content, true
}

// Set stores or replaces the entry for key.
func (c *Cache) Set(key string, m Map) {
	c.mu.Lock()
	c.data[key] = cacheEntry{content: m, loadedAt: time.Now()}
	c.mu.Unlock()
}

// InvalidateAll empties the cache.  Called from the customization write
// path: cache keys are slug-based while writes are id-based, so the writer
// cannot target a single entry and flushes everything instead.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.data = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Len reports current size.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Cache key builders, shared by resolver and write path.

func pageKey(slug string) string { return "page:" + slug }

func productKey(locale, slug string) string { return "product:" + locale + "/" + slug }
