package cache

import "time"

// CacheService is an in-process TTL cache.
type CacheService interface {
	// Get returns the value and true if the key is present and not expired.
	Get(key string) (interface{}, bool)

	// Set stores value under key for duration. A zero duration uses the
	// cache default; NoExpiration keeps it until deleted.
	Set(key string, value interface{}, duration time.Duration)

	Delete(key string)

	// Flush removes all items
	Flush()

	// ItemCount includes expired items not yet cleaned up.
	ItemCount() int
}

// NoExpiration keeps an item until it is deleted.
const NoExpiration time.Duration = -1
