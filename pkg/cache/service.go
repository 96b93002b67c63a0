package cache

import "time"

// CacheService defines the behavior for caching mechanisms
type CacheService interface {
	// Get returns the value and true when key is present and not expired
	Get(key string) (interface{}, bool)

	// Set adds a value to the cache with a duration
	Set(key string, value interface{}, duration time.Duration)

	// Count returns the number of cached items, expired ones included until swept
	Count() int
}

// Remember returns the cached value for key, or computes, stores and returns it.
// Errors from load are returned as-is and nothing is cached.
func Remember[T any](c CacheService, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if val, found := c.Get(key); found {
		if typed, ok := val.(T); ok {
			return typed, nil
		}
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v, ttl)
	return v, nil
}
