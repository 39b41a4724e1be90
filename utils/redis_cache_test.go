package utils

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// deadRedisClient points at a port nothing listens on, so every operation
// fails fast.
func deadRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedisCacheUnreachableReportsUnhealthy(t *testing.T) {
	rc := NewRedisCache(deadRedisClient())

	if rc.IsHealthy() {
		t.Fatal("cache backed by an unreachable Redis must report unhealthy")
	}
}

func TestRedisCacheUnhealthySkipsOperations(t *testing.T) {
	rc := NewRedisCache(deadRedisClient())

	// Reads degrade to misses so the fallback cache gets consulted.
	result, err := rc.Get(context.Background(), "domain:example.com")
	if err != nil {
		t.Fatalf("Get on unhealthy cache must not error, got %v", err)
	}
	if result.Found {
		t.Error("Get on unhealthy cache must report a miss")
	}

	// Writes are dropped silently; the fallback still receives them.
	if err := rc.Set(context.Background(), "domain:example.com", "{}", time.Hour); err != nil {
		t.Errorf("Set on unhealthy cache must not error, got %v", err)
	}
}
