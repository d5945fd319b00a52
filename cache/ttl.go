// cache/ttl.go
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value   interface{}
	expires time.Time
}

// TTLCache is a small in-memory lookup cache with per-cache TTL and a
// max-entry bound. Callers inject one per session so lifetime is explicit
// instead of hanging off package-level state.
type TTLCache struct {
	mtx        sync.Mutex
	entries    map[string]*entry
	ttl        time.Duration
	maxEntries int
}

func New(ttl time.Duration, maxEntries int) *TTLCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &TTLCache{
		entries:    make(map[string]*entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	e, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}

	return e.value, true
}

func (c *TTLCache) Set(key string, value interface{}) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}

	c.entries[key] = &entry{
		value:   value,
		expires: time.Now().Add(c.ttl),
	}
}

func (c *TTLCache) Delete(key string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	delete(c.entries, key)
}

func (c *TTLCache) Purge() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.entries = make(map[string]*entry)
}

func (c *TTLCache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.entries)
}

// evictLocked drops expired entries first, then the entry closest to
// expiry if the cache is still full.
func (c *TTLCache) evictLocked() {
	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, key)
		}
	}

	if len(c.entries) < c.maxEntries {
		return
	}

	var oldestKey string
	var oldest time.Time
	for key, e := range c.entries {
		if oldestKey == "" || e.expires.Before(oldest) {
			oldestKey = key
			oldest = e.expires
		}
	}
	delete(c.entries, oldestKey)
}
