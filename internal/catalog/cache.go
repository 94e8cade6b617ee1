// ABOUTME: Thread-safe TTL cache for remote product lookups.
// ABOUTME: Bounds repeat FetchByID round-trips during a browsing session.

package catalog

import (
	"container/list"
	"sync"
	"time"
)

// cacheEntry stores a product, its insertion time, and its list element.
type cacheEntry struct {
	product   Product
	timestamp time.Time
	element   *list.Element
}

// Cache provides a thread-safe, TTL-based, size-limited cache for remote
// products keyed by id. Uses a doubly-linked list to maintain insertion
// order for O(1) eviction.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   *list.List // List of ids in insertion order (oldest at front)
	ttl     time.Duration
	maxSize int
}

// NewCache creates a product cache with the specified TTL and maximum size.
func NewCache(ttl time.Duration, maxSize int) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		order:   list.New(),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get returns the cached product for id if present and not expired.
func (c *Cache) Get(id string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[id]
	if !ok || time.Since(entry.timestamp) >= c.ttl {
		return Product{}, false
	}
	return entry.product, true
}

// Put records a product. If the cache is at capacity, the oldest entry is
// evicted to make room.
func (c *Cache) Put(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()

	// If the id already exists, refresh it and move to back
	if entry, exists := c.entries[p.ID]; exists {
		entry.product = p
		entry.timestamp = now
		c.order.MoveToBack(entry.element)
		return
	}

	// Evict oldest if at capacity
	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	elem := c.order.PushBack(p.ID)
	c.entries[p.ID] = &cacheEntry{
		product:   p,
		timestamp: now,
		element:   elem,
	}
}

// evictOldest removes the oldest entry. Must be called with mu held.
func (c *Cache) evictOldest() {
	front := c.order.Front()
	if front == nil {
		return
	}

	id, _ := front.Value.(string)
	c.order.Remove(front)
	delete(c.entries, id)
}

// Len reports the number of cached entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
