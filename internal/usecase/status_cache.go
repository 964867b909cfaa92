package usecase

import "sync"

// MemoryStatusCache memoizes status name to id lookups for the lifetime of the
// process. Statuses are static reference data, so entries only ever grow and
// no invalidation is needed. Injected rather than package-global so tests can
// start from a clean cache.
type MemoryStatusCache struct {
	mu  sync.RWMutex
	ids map[string]string
}

func NewMemoryStatusCache() *MemoryStatusCache {
	return &MemoryStatusCache{ids: make(map[string]string)}
}

func (c *MemoryStatusCache) Get(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.ids[name]
	return id, ok
}

func (c *MemoryStatusCache) Set(name, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids[name] = id
}
