package settings

import "sync"

// Cache holds the active settings in memory so hot paths avoid a database
// read. Reload replaces the snapshot after every settings write.
type Cache struct {
	mu       sync.RWMutex
	snapshot AppSettings
}

// NewCache creates a Cache primed with defaults.
func NewCache() *Cache {
	return &Cache{snapshot: *Defaults()}
}

// Current returns a copy of the cached settings.
func (c *Cache) Current() AppSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Reload replaces the cached snapshot.
func (c *Cache) Reload(s *AppSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = *s
}
