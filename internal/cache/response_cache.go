// Package cache provides the distributed response cache used by the GET
// endpoints, backed by Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCacheService is the read/write/invalidate contract for cached
// response bodies.
type ResponseCacheService interface {
	// Get returns the cached body for key, or "" when absent.
	Get(ctx context.Context, key string) (string, error)
	// Set stores body under key with an absolute TTL.
	Set(ctx context.Context, key string, body string, ttl time.Duration) error
	// Remove deletes every key starting with pattern. A pattern matching no
	// keys is a no-op.
	Remove(ctx context.Context, pattern string) error
}

// RedisResponseCache implements ResponseCacheService on a shared Redis client.
type RedisResponseCache struct {
	client *redis.Client
}

// NewRedisResponseCache creates a cache service over client.
func NewRedisResponseCache(client *redis.Client) *RedisResponseCache {
	return &RedisResponseCache{client: client}
}

// Get returns the cached body for key, or "" when the key is absent.
func (c *RedisResponseCache) Get(ctx context.Context, key string) (string, error) {
	body, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return body, nil
}

// Set stores body under key with ttl. Empty bodies are not cached.
func (c *RedisResponseCache) Set(ctx context.Context, key string, body string, ttl time.Duration) error {
	if body == "" {
		return nil
	}
	if err := c.client.Set(ctx, key, body, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Remove scans for pattern* and deletes every match.
func (c *RedisResponseCache) Remove(ctx context.Context, pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return fmt.Errorf("cache pattern cannot be empty")
	}

	iter := c.client.Scan(ctx, 0, pattern+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys for %s: %w", pattern, err)
	}
	return nil
}

// KeyFromRequest builds the deterministic cache key: the request path followed
// by the sorted query pairs, each appended as "|key-value".
func KeyFromRequest(path string, query map[string]string) string {
	var b strings.Builder
	b.WriteString(path)

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("-")
		b.WriteString(query[k])
	}
	return b.String()
}

// Pattern builds the invalidation prefix for a controller action, e.g.
// Pattern("/api/v1", "Products", "GetAllProducts") = "/api/v1/Products/GetAllProducts".
// Removing it clears every query-parameter variant of that listing.
func Pattern(apiBase, controller, action string) string {
	return fmt.Sprintf("%s/%s/%s", apiBase, controller, action)
}
