package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return mr, client
}

func TestRedisActiveContentCache_SetAndGet(t *testing.T) {
	_, client := setupTestRedis(t)
	c := NewRedisActiveContentCache(client, time.Hour)
	ctx := context.Background()

	err := c.Set(ctx, "welcome_email", "en", "Hello {{.name}}")
	require.NoError(t, err)

	content, ok, err := c.Get(ctx, "welcome_email", "en")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Hello {{.name}}", content)
}

func TestRedisActiveContentCache_MissIsNotAnError(t *testing.T) {
	_, client := setupTestRedis(t)
	c := NewRedisActiveContentCache(client, time.Hour)

	content, ok, err := c.Get(context.Background(), "welcome_email", "en")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, content)
}

func TestRedisActiveContentCache_KeysAreScopedPerLanguage(t *testing.T) {
	_, client := setupTestRedis(t)
	c := NewRedisActiveContentCache(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "welcome_email", "en", "Hello"))
	require.NoError(t, c.Set(ctx, "welcome_email", "fr", "Bonjour"))

	_, ok, err := c.Get(ctx, "welcome_email", "de")
	require.NoError(t, err)
	assert.False(t, ok)

	content, ok, err := c.Get(ctx, "welcome_email", "fr")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Bonjour", content)
}

func TestRedisActiveContentCache_Invalidate(t *testing.T) {
	_, client := setupTestRedis(t)
	c := NewRedisActiveContentCache(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "welcome_email", "en", "Hello"))
	require.NoError(t, c.Invalidate(ctx, "welcome_email", "en"))

	_, ok, err := c.Get(ctx, "welcome_email", "en")
	require.NoError(t, err)
	assert.False(t, ok, "invalidation removes the entry entirely")
}

func TestRedisActiveContentCache_InvalidateMissingKey(t *testing.T) {
	_, client := setupTestRedis(t)
	c := NewRedisActiveContentCache(client, time.Hour)

	err := c.Invalidate(context.Background(), "welcome_email", "en")
	assert.NoError(t, err)
}

func TestRedisActiveContentCache_EntriesExpire(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisActiveContentCache(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "welcome_email", "en", "Hello"))

	mr.FastForward(time.Hour + time.Minute)

	_, ok, err := c.Get(ctx, "welcome_email", "en")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisActiveContentCache_GetAfterBackendGone(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisActiveContentCache(client, time.Hour)

	mr.Close()

	_, _, err := c.Get(context.Background(), "welcome_email", "en")
	assert.Error(t, err)
}

func TestNoopActiveContentCache(t *testing.T) {
	c := NewNoopActiveContentCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "welcome_email", "en", "Hello"))

	content, ok, err := c.Get(ctx, "welcome_email", "en")
	require.NoError(t, err)
	assert.False(t, ok, "noop cache never serves a hit")
	assert.Empty(t, content)

	assert.NoError(t, c.Invalidate(ctx, "welcome_email", "en"))
}
