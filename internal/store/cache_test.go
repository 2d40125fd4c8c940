package store

import (
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests advance cache time manually.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestCache() (*MemoryCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewMemoryCache()
	cache.now = clock.Now
	return cache, clock
}

func TestMemoryCache_GetSetExpiry(t *testing.T) {
	cache, clock := newTestCache()

	cache.Set("k", "v", 30*time.Second)

	if v, ok := cache.Get("k"); !ok || v != "v" {
		t.Fatalf("Get(k) = %v, %v; want v, true", v, ok)
	}

	clock.Advance(31 * time.Second)

	if _, ok := cache.Get("k"); ok {
		t.Error("Get(k) after expiry = true, want miss")
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (expired entry dropped on read)", cache.Len())
	}
}

func TestMemoryCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache()

	cache.Set("k", 1, time.Minute)
	cache.Invalidate("k")

	if _, ok := cache.Get("k"); ok {
		t.Error("Get(k) after Invalidate = true, want miss")
	}
}

func TestMemoryCache_CleanExpired(t *testing.T) {
	cache, clock := newTestCache()

	cache.Set("short", 1, 10*time.Second)
	cache.Set("long", 2, 10*time.Minute)

	clock.Advance(time.Minute)

	if dropped := cache.CleanExpired(); dropped != 1 {
		t.Errorf("CleanExpired() = %d, want 1", dropped)
	}
	if _, ok := cache.Get("long"); !ok {
		t.Error("Get(long) = miss, want hit")
	}
}

func TestMemoryCache_SetRefreshesExpiry(t *testing.T) {
	cache, clock := newTestCache()

	cache.Set("k", 1, 10*time.Second)
	clock.Advance(8 * time.Second)
	cache.Set("k", 2, 10*time.Second)
	clock.Advance(8 * time.Second)

	v, ok := cache.Get("k")
	if !ok || v != 2 {
		t.Errorf("Get(k) = %v, %v; want 2, true (expiry refreshed)", v, ok)
	}
}
