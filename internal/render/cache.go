package render

import (
	"math"
	"sync"
)

// cacheKey identifies one rendered variant of an artwork. Zoom is bucketed
// to hundredths so continuous zoom does not produce unbounded variants.
type cacheKey struct {
	ArtID      string
	Version    int
	ZoomBucket int
}

// Cache memoizes framed renders per artwork, content version, and zoom
// bucket. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*Framed
}

// NewCache creates an empty render cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*Framed)}
}

func zoomBucket(zoom float64) int {
	return int(math.Round(zoom * 100))
}

// Get returns the cached render for the artwork at the given content version
// and zoom, or nil.
func (c *Cache) Get(artID string, version int, zoom float64) *Framed {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[cacheKey{artID, version, zoomBucket(zoom)}]
}

// Put stores a render.
func (c *Cache) Put(artID string, version int, zoom float64, framed *Framed) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{artID, version, zoomBucket(zoom)}] = framed
}

// Invalidate drops every cached variant of one artwork. Called after any
// content-affecting edit.
func (c *Cache) Invalidate(artID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.ArtID == artID {
			delete(c.entries, k)
		}
	}
}

// Clear drops everything.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*Framed)
}

// Len reports the number of cached variants.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
