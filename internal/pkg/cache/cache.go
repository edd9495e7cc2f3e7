package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/telecloudhq/telecloud/internal/pkg/env"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// SetupCache connects the shared Redis client (DB 0; sessions use DB 1 and
// OAuth state DB 2 on the same server).
func SetupCache() {
	addr := fmt.Sprintf("%s:%s",
		env.GetEnv("CACHE_HOST", "127.0.0.1"),
		env.GetEnv("CACHE_PORT", "6379"),
	)

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: env.GetEnv("CACHE_USER", ""),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis not reachable, cache disabled")
	}
}

// GetClient returns the shared Redis client (nil before SetupCache).
func GetClient() *redis.Client {
	return client
}

// Set stores a key with TTL. A zero TTL keeps the key forever.
func Set(key string, value string, ttl time.Duration) error {
	if client == nil {
		return fmt.Errorf("cache not initialized")
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Get returns the value for key, or "" when missing or on error.
func Get(key string) string {
	if client == nil {
		return ""
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// Delete removes a key.
func Delete(key string) error {
	if client == nil {
		return fmt.Errorf("cache not initialized")
	}
	return client.Del(ctx, key).Err()
}
