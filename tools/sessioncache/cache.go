// Package sessioncache keeps shopping documents alive between the search
// and booking steps. Entries expire after a fixed TTL so a stale offer can
// never be priced or booked.
package sessioncache

import (
	"sync"
	"time"
)

type (
	entry struct {
		value     interface{}
		expiresAt time.Time
	}

	Cache struct {
		mu      sync.RWMutex
		entries map[string]entry
		ttl     time.Duration
		done    chan struct{}
	}
)

const DefaultTTL = 30 * time.Minute

// New creates a cache whose entries live for ttl. A background janitor
// sweeps expired entries once per minute until Close is called.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	cache := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}

	go cache.janitor()

	return cache
}

func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Get returns the stored value, or false when the key is absent or expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	item, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(item.expiresAt) {
		c.Delete(key)
		return nil, false
	}

	return item.value, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Close stops the janitor. The cache stays usable, entries just expire
// lazily on Get.
func (c *Cache) Close() {
	close(c.done)
}

func (c *Cache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *Cache) sweep() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, item := range c.entries {
		if now.After(item.expiresAt) {
			delete(c.entries, key)
		}
	}
}
