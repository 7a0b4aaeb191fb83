package theme

import (
	"context"
	"strings"
	"sync"
)

// Cache stores rendered markup keyed by identifier and geometry.
// Implementations report a missing key as ok=false with a nil error.
type Cache interface {
	// Get returns the cached markup for key, with ok reporting a hit.
	Get(ctx context.Context, key string) (markup string, ok bool, err error)

	// Put stores markup under key, overwriting any previous value.
	Put(ctx context.Context, key, markup string) error

	// Clear removes every cached render for the identifier.
	Clear(ctx context.Context, did string) error

	// Close releases any resources held by the cache.
	Close() error
}

// MemoryCache is an unbounded in-process Cache. Safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	markup, ok := c.entries[key]
	return markup, ok, nil
}

func (c *MemoryCache) Put(_ context.Context, key, markup string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = markup
	return nil
}

func (c *MemoryCache) Clear(_ context.Context, did string) error {
	prefix := clearPrefix(did)
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *MemoryCache) Close() error {
	return nil
}

// Len reports the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
