package cache

import (
	"context"
	"sync"
	"time"

	"github.com/DanielPeled7/StockMarketProject/internal/model"
)

type memoryEntry struct {
	series    model.TimeSeries
	expiresAt time.Time
}

// MemoryCache is an in-process SeriesCache with lazy expiry.
type MemoryCache struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]memoryEntry
}

// NewMemoryCache creates a new MemoryCache.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl: ttl,
		m:   make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (model.TimeSeries, bool) {
	c.mu.RLock()
	entry, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.m, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.series, true
}

func (c *MemoryCache) Set(_ context.Context, key string, series model.TimeSeries) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = memoryEntry{
		series:    series,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *MemoryCache) Close() error { return nil }
