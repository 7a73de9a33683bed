// Package cache provides the Redis-backed active-content cache and its
// pass-through fallback. The cache is a disposable replica of the store's
// active versions; losing it degrades latency, never correctness.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domain "templar/internal/domain/template"
)

const activeContentKeyFormat = "template:%s:%s:active"

// RedisActiveContentCache caches active template content per
// (template key, language) with a fixed TTL. Entries are removed by an
// explicit invalidation on activation or by expiry, never rewritten in
// place.
type RedisActiveContentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisActiveContentCache(client *redis.Client, ttl time.Duration) *RedisActiveContentCache {
	return &RedisActiveContentCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisActiveContentCache) Get(ctx context.Context, templateKey, language string) (string, bool, error) {
	key := cacheKey(templateKey, language)

	content, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get cached content: %w", err)
	}

	return content, true, nil
}

func (c *RedisActiveContentCache) Set(ctx context.Context, templateKey, language, content string) error {
	key := cacheKey(templateKey, language)

	if err := c.client.Set(ctx, key, content, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache content: %w", err)
	}

	return nil
}

func (c *RedisActiveContentCache) Invalidate(ctx context.Context, templateKey, language string) error {
	key := cacheKey(templateKey, language)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached content: %w", err)
	}

	return nil
}

func cacheKey(templateKey, language string) string {
	return fmt.Sprintf(activeContentKeyFormat, templateKey, language)
}

// NoopActiveContentCache is the pass-through used when no cache backend is
// configured or reachable: every read is a miss, so callers always hit the
// store directly.
type NoopActiveContentCache struct{}

func NewNoopActiveContentCache() *NoopActiveContentCache {
	return &NoopActiveContentCache{}
}

func (c *NoopActiveContentCache) Get(ctx context.Context, templateKey, language string) (string, bool, error) {
	return "", false, nil
}

func (c *NoopActiveContentCache) Set(ctx context.Context, templateKey, language, content string) error {
	return nil
}

func (c *NoopActiveContentCache) Invalidate(ctx context.Context, templateKey, language string) error {
	return nil
}

var (
	_ domain.ActiveContentCache = (*RedisActiveContentCache)(nil)
	_ domain.ActiveContentCache = (*NoopActiveContentCache)(nil)
)
