package cache

import (
	"clockstore-backend/pkg/cache"
	"clockstore-backend/pkg/logger"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates the in-process cache used for catalog listings and enums.
// Items expire after defaultExpiration unless Set overrides it; expired items are
// swept every cleanupInterval.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) cache.CacheService {
	store := gocache.New(defaultExpiration, cleanupInterval)
	store.OnEvicted(func(key string, _ interface{}) {
		logger.Debug().Str("key", key).Msg("cache entry evicted")
	})
	return &memoryCache{store: store}
}

func (c *memoryCache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *memoryCache) Set(key string, value interface{}, duration time.Duration) {
	c.store.Set(key, value, duration)
}

func (c *memoryCache) Count() int {
	return c.store.ItemCount()
}
