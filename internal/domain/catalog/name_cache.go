package catalog

import "sync"

// NameCache is the process-lifetime cache of item display names keyed by
// type id. Entries are append-only: item metadata changes rarely enough
// that invalidation within a process run is not worth the complexity.
//
// The cache is an explicit object injected into the resolver rather than a
// package global, so tests get a fresh cache per case and concurrent
// analyses share one safely behind the mutex.
type NameCache struct {
	mu    sync.RWMutex
	names map[int64]string
}

// NewNameCache creates an empty name cache.
func NewNameCache() *NameCache {
	return &NameCache{
		names: make(map[int64]string),
	}
}

// Get returns the cached name for a type id, if present.
func (c *NameCache) Get(typeID int64) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[typeID]
	return name, ok
}

// Put stores a name for a type id, overwriting any previous entry.
func (c *NameCache) Put(typeID int64, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[typeID] = name
}

// Len returns the number of cached entries.
func (c *NameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}
