// Package cache implements the query-result cache backed by Redis.
package cache

import (
	"context"
	"fmt"
	"time"

	redis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keyPrefix = "opportunities:"

// ResultCache stores serialized analysis responses keyed by query
// parameters, with TTL expiry. A nil *ResultCache (or one without a live
// Redis connection) is safe to use and behaves as a no-op, so the server
// degrades to uncached operation when Redis is unavailable.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// Key builds the cache key for one parameter combination.
func Key(fromStation, toStation string, maxCargo, minProfit int64) string {
	return fmt.Sprintf("%s%s:%s:%d:%d", keyPrefix, fromStation, toStation, maxCargo, minProfit)
}

// Connect parses a Redis URL, connects, and verifies the connection with a
// ping. Returns an error rather than a half-usable cache when Redis is
// unreachable; callers decide whether to run uncached.
func Connect(ctx context.Context, redisURL string, ttl time.Duration, logger *zap.Logger) (*ResultCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Available reports whether the cache has a live Redis connection.
func (c *ResultCache) Available() bool {
	return c != nil && c.client != nil
}

// Get returns the cached payload for a key, or ("", false) on miss or any
// cache failure. Read errors are logged, never surfaced: the cache is an
// optimization, not a dependency.
func (c *ResultCache) Get(ctx context.Context, key string) (string, bool) {
	if !c.Available() {
		return "", false
	}

	payload, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return payload, true
}

// Set stores a payload under a key with the configured TTL. Write errors
// are logged and swallowed.
func (c *ResultCache) Set(ctx context.Context, key, payload string) {
	if !c.Available() {
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Stats describes the state of the cache keyspace.
type Stats struct {
	Keys    int64    `json:"cache_keys"`
	Entries []string `json:"cache_entries"`
}

// GetStats returns the number of cached result keys and a sample of them.
func (c *ResultCache) GetStats(ctx context.Context) (*Stats, error) {
	if !c.Available() {
		return nil, fmt.Errorf("cache not available")
	}

	keys, err := c.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cache keys: %w", err)
	}

	sample := keys
	if len(sample) > 10 {
		sample = sample[:10]
	}
	return &Stats{
		Keys:    int64(len(keys)),
		Entries: sample,
	}, nil
}

// Clear deletes all cached result keys and returns how many were removed.
func (c *ResultCache) Clear(ctx context.Context) (int64, error) {
	if !c.Available() {
		return 0, fmt.Errorf("cache not available")
	}

	keys, err := c.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return 0, fmt.Errorf("failed to list cache keys: %w", err)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return 0, fmt.Errorf("failed to delete cache keys: %w", err)
	}
	return int64(len(keys)), nil
}

// Close releases the Redis connection.
func (c *ResultCache) Close() error {
	if !c.Available() {
		return nil
	}
	return c.client.Close()
}
