package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"demclean/internal/model"
)

// MemoryCache implements in-memory caching of extracted event sets
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves an event set from the cache
func (c *MemoryCache) Get(key string) (*model.EventSet, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*model.EventSet), true
	}
	return nil, false
}

// Set stores an event set with the given TTL
func (c *MemoryCache) Set(key string, events *model.EventSet, ttl time.Duration) {
	c.cache.Set(key, events, ttl)
}

// Nop is a disabled cache; every lookup misses
type Nop struct{}

func (Nop) Get(string) (*model.EventSet, bool)         { return nil, false }
func (Nop) Set(string, *model.EventSet, time.Duration) {}
