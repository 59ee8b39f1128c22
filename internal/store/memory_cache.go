package store

import (
	"context"
	"sync"
)

// MemoryCache keeps play explanations in a thread-safe map for the process lifetime.
// Entries are never evicted.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache constructs an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]string),
	}
}

// Get retrieves a cached explanation by play id.
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	return v, ok, nil
}

// Put stores an explanation, replacing any previous value.
func (c *MemoryCache) Put(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
	return nil
}

// Len returns the number of cached explanations.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
