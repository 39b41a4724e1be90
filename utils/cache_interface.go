package utils

import (
	"context"
	"log"
	"sync"
	"time"
)

// Cache defines the interface for cache operations
type Cache interface {
	Get(ctx context.Context, key string) (CacheResult, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	IsHealthy() bool
}

// cacheEntry represents a cached item with expiration
type cacheEntry struct {
	Value     string
	ExpiresAt time.Time
}

// MemoryCache implements Cache using in-memory storage with a bounded
// capacity. When full, the entry that was inserted first is evicted to make
// room, regardless of how recently it was read.
type MemoryCache struct {
	mu            sync.Mutex
	data          map[string]cacheEntry
	order         []string
	maxSize       int
	cleanInterval time.Duration
}

// NewMemoryCache creates a new memory cache instance. A cleanInterval of
// zero disables the background cleaner; expired entries are then dropped
// lazily on read.
func NewMemoryCache(maxSize int, cleanInterval time.Duration) *MemoryCache {
	mc := &MemoryCache{
		data:          make(map[string]cacheEntry),
		maxSize:       maxSize,
		cleanInterval: cleanInterval,
	}

	if cleanInterval > 0 {
		go mc.startCleaner()
	}

	return mc
}

// Get retrieves a value from memory cache
func (mc *MemoryCache) Get(ctx context.Context, key string) (CacheResult, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	entry, ok := mc.data[key]
	if !ok {
		return CacheResult{Found: false}, nil
	}

	if time.Now().After(entry.ExpiresAt) {
		mc.deleteLocked(key)
		return CacheResult{Found: false}, nil
	}

	log.Printf("Serving cached result from memory for key: %s\n", key)
	return CacheResult{Data: entry.Value, Found: true}, nil
}

// Set stores a value in memory cache, evicting the oldest entry when the
// cache is at capacity.
func (mc *MemoryCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.data[key]; !exists {
		if len(mc.data) >= mc.maxSize && len(mc.order) > 0 {
			mc.deleteLocked(mc.order[0])
		}
		mc.order = append(mc.order, key)
	}

	mc.data[key] = cacheEntry{
		Value:     value,
		ExpiresAt: time.Now().Add(expiration),
	}
	return nil
}

// IsHealthy always returns true for memory cache
func (mc *MemoryCache) IsHealthy() bool {
	return true
}

// Len reports the number of live entries, expired ones included until they
// are cleaned.
func (mc *MemoryCache) Len() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.data)
}

// deleteLocked removes an entry and its insertion-order slot. Callers hold
// the mutex.
func (mc *MemoryCache) deleteLocked(key string) {
	delete(mc.data, key)
	for i, k := range mc.order {
		if k == key {
			mc.order = append(mc.order[:i], mc.order[i+1:]...)
			break
		}
	}
}

// startCleaner runs a periodic cleanup of expired entries
func (mc *MemoryCache) startCleaner() {
	ticker := time.NewTicker(mc.cleanInterval)
	defer ticker.Stop()

	for range ticker.C {
		mc.cleanExpired()
	}
}

// cleanExpired removes all expired entries
func (mc *MemoryCache) cleanExpired() {
	now := time.Now()

	mc.mu.Lock()
	defer mc.mu.Unlock()

	for key, entry := range mc.data {
		if now.After(entry.ExpiresAt) {
			mc.deleteLocked(key)
		}
	}
}

// FallbackCache implements Cache with primary and fallback caches
type FallbackCache struct {
	primary  Cache
	fallback Cache
}

// NewFallbackCache creates a new fallback cache
func NewFallbackCache(primary, fallback Cache) *FallbackCache {
	return &FallbackCache{
		primary:  primary,
		fallback: fallback,
	}
}

// Get tries primary cache first, then fallback
func (fc *FallbackCache) Get(ctx context.Context, key string) (CacheResult, error) {
	// Try primary cache if healthy
	if fc.primary.IsHealthy() {
		result, err := fc.primary.Get(ctx, key)
		if err == nil {
			// Primary cache worked (hit or miss), return the result
			// No need to check fallback since we do dual-write
			return result, nil
		}
		// Primary cache had an error, fall through to fallback
	}

	// Primary unhealthy or errored, try fallback cache
	return fc.fallback.Get(ctx, key)
}

// Set attempts to write to both caches
func (fc *FallbackCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	var primaryErr error

	// Try primary cache
	if fc.primary.IsHealthy() {
		primaryErr = fc.primary.Set(ctx, key, value, expiration)
	}

	// Always set to fallback
	fallbackErr := fc.fallback.Set(ctx, key, value, expiration)

	// Return primary error if exists, otherwise fallback error
	if primaryErr != nil {
		return primaryErr
	}
	return fallbackErr
}

// IsHealthy returns true if either cache is healthy
func (fc *FallbackCache) IsHealthy() bool {
	return fc.primary.IsHealthy() || fc.fallback.IsHealthy()
}

// IsPrimaryHealthy returns true if the primary cache (Redis) is healthy
func (fc *FallbackCache) IsPrimaryHealthy() bool {
	return fc.primary.IsHealthy()
}
