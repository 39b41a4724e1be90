package utils

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisProbeInterval is how often the background prober re-checks a Redis
// connection. A failed Get/Set marks the cache unhealthy immediately; the
// prober is what brings it back.
var redisProbeInterval = 30 * time.Second

// RedisCache is the Redis-backed implementation of Cache used as the
// primary store for lookup results. It tracks its own health so the
// FallbackCache can route around a dead Redis without waiting on timeouts.
type RedisCache struct {
	client  *redis.Client
	mu      sync.RWMutex
	healthy bool
}

// NewRedisCache wraps a Redis client, probes it once, and starts the
// background health prober.
func NewRedisCache(client *redis.Client) *RedisCache {
	rc := &RedisCache{client: client}
	rc.probe(true)
	go rc.runProber()
	return rc
}

// Get retrieves a cached lookup result. An unhealthy connection reports a
// miss instead of an error so callers fall through to the next cache.
func (rc *RedisCache) Get(ctx context.Context, key string) (CacheResult, error) {
	if !rc.IsHealthy() {
		return CacheResult{Found: false}, nil
	}

	value, err := rc.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		log.Printf("Redis cache hit for %s\n", key)
		return CacheResult{Data: value, Found: true}, nil
	case err == redis.Nil:
		return CacheResult{Found: false}, nil
	default:
		rc.setHealthy(false)
		return CacheResult{Found: false}, err
	}
}

// Set stores a lookup result with the given TTL. Writes are skipped while
// the connection is unhealthy; the memory fallback still receives them.
func (rc *RedisCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if !rc.IsHealthy() {
		return nil
	}

	if err := rc.client.Set(ctx, key, value, expiration).Err(); err != nil {
		rc.setHealthy(false)
		return err
	}
	return nil
}

// IsHealthy reports whether the last probe or operation succeeded.
func (rc *RedisCache) IsHealthy() bool {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.healthy
}

func (rc *RedisCache) setHealthy(healthy bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.healthy = healthy
}

// probe pings Redis and updates the health flag, logging only on state
// transitions so a Redis outage does not flood the log every interval.
func (rc *RedisCache) probe(initial bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	wasHealthy := rc.IsHealthy()
	_, err := rc.client.Ping(ctx).Result()

	if err != nil {
		rc.setHealthy(false)
		if initial {
			log.Printf("⚠ Redis unavailable: %v\n", err)
		} else if wasHealthy {
			log.Printf("⚠ Redis connection lost: %v\n", err)
		}
		return
	}

	rc.setHealthy(true)
	if !initial && !wasHealthy {
		log.Println("✓ Redis connection restored")
	}
}

func (rc *RedisCache) runProber() {
	ticker := time.NewTicker(redisProbeInterval)
	defer ticker.Stop()

	for range ticker.C {
		rc.probe(false)
	}
}
