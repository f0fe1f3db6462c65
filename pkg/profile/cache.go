package profile

import (
	"sync"
	"time"
)

// cacheEntry holds one generated text with a timestamp for TTL expiration.
type cacheEntry struct {
	text        string
	generatedAt time.Time
}

// Cache is a thread-safe in-memory cache for generated explanations.
// Expired entries are cleaned up lazily on Get, no background goroutine.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

// NewCache creates a cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached text if present and not expired.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if time.Since(entry.generatedAt) > c.ttl {
		// Expired. Re-check under the write lock: a concurrent Set may have
		// replaced the entry with a fresh one between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.generatedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return "", false
	}

	return entry.text, true
}

// Set stores text with the current timestamp.
func (c *Cache) Set(key, text string) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		text:        text,
		generatedAt: time.Now(),
	}
	c.mu.Unlock()
}

// Len reports the number of entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
