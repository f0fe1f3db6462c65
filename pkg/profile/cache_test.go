package profile

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExplanationCache_SetAndGet(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("key-1", "Strong fit on the core stack.")

	text, ok := cache.Get("key-1")
	assert.True(t, ok)
	assert.Equal(t, "Strong fit on the core stack.", text)
}

func TestExplanationCache_Miss(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	text, ok := cache.Get("absent")
	assert.False(t, ok)
	assert.Equal(t, "", text)
}

func TestExplanationCache_TTLExpiry(t *testing.T) {
	cache := NewCache(50 * time.Millisecond)

	cache.Set("key-1", "text")

	text, ok := cache.Get("key-1")
	assert.True(t, ok)
	assert.Equal(t, "text", text)

	time.Sleep(60 * time.Millisecond)

	text, ok = cache.Get("key-1")
	assert.False(t, ok)
	assert.Equal(t, "", text)
	// The expired entry is dropped, not just hidden.
	assert.Equal(t, 0, cache.Len())
}

func TestExplanationCache_Overwrite(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("key-1", "old text")
	cache.Set("key-1", "new text")

	text, ok := cache.Get("key-1")
	assert.True(t, ok)
	assert.Equal(t, "new text", text)
	assert.Equal(t, 1, cache.Len())
}

func TestExplanationCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache(1 * time.Minute)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Set("shared-key", "text")
		}()
	}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Get("shared-key")
		}()
	}
	wg.Wait()

	text, ok := cache.Get("shared-key")
	assert.True(t, ok)
	assert.Equal(t, "text", text)
}
