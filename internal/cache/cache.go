// Package cache provides the key/value cache handed to an analysis run.
package cache

import "sync"

// Cache stores values by symbol key. Implementations are scoped to a single
// analysis run, so entries never outlive the run that produced them.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Put(key string, value V)
	Len() int
}

// Memory is a map-backed Cache guarded by a RWMutex.
type Memory[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

// NewMemory creates an empty in-memory cache.
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{items: make(map[string]V)}
}

// Get returns the cached value for key.
func (c *Memory[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// Put stores value under key, replacing any previous entry.
func (c *Memory[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

// Len returns the number of cached entries.
func (c *Memory[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
