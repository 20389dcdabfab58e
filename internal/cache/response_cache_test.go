package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/cache"
)

func newTestCache(t *testing.T) (*cache.RedisResponseCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return cache.NewRedisResponseCache(client), mr
}

func TestRedisResponseCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	t.Run("miss returns empty string", func(t *testing.T) {
		body, err := c.Get(ctx, "/api/v1/Products/GetAllProducts")
		require.NoError(t, err)
		assert.Empty(t, body)
	})

	t.Run("roundtrip", func(t *testing.T) {
		key := "/api/v1/Products/GetAllProducts|page-1"
		require.NoError(t, c.Set(ctx, key, `{"data":[]}`, time.Hour))

		body, err := c.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, `{"data":[]}`, body)
	})

	t.Run("empty body is not stored", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "empty-key", "", time.Hour))
		assert.False(t, mr.Exists("empty-key"))
	})

	t.Run("entry expires after the ttl", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "expiring", "body", time.Minute))
		mr.FastForward(time.Minute + time.Second)

		body, err := c.Get(ctx, "expiring")
		require.NoError(t, err)
		assert.Empty(t, body)
	})
}

func TestRedisResponseCache_Remove(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	prefix := "/api/v1/Products/GetAllProducts"
	require.NoError(t, c.Set(ctx, prefix, "plain", time.Hour))
	require.NoError(t, c.Set(ctx, prefix+"|page-1", "first", time.Hour))
	require.NoError(t, c.Set(ctx, prefix+"|page-2", "second", time.Hour))
	require.NoError(t, c.Set(ctx, "/api/v1/UserProfiles/GetAllUserProfiles", "other", time.Hour))

	require.NoError(t, c.Remove(ctx, prefix))

	assert.False(t, mr.Exists(prefix))
	assert.False(t, mr.Exists(prefix+"|page-1"))
	assert.False(t, mr.Exists(prefix+"|page-2"))
	assert.True(t, mr.Exists("/api/v1/UserProfiles/GetAllUserProfiles"))

	t.Run("no matches is a no-op", func(t *testing.T) {
		assert.NoError(t, c.Remove(ctx, "/api/v1/Nothing/Here"))
	})

	t.Run("empty pattern is rejected", func(t *testing.T) {
		assert.Error(t, c.Remove(ctx, ""))
		assert.Error(t, c.Remove(ctx, "   "))
	})
}

func TestKeyFromRequest(t *testing.T) {
	t.Run("no query", func(t *testing.T) {
		key := cache.KeyFromRequest("/api/v1/Products/GetAllProducts", nil)
		assert.Equal(t, "/api/v1/Products/GetAllProducts", key)
	})

	t.Run("query pairs are sorted", func(t *testing.T) {
		key := cache.KeyFromRequest("/api/v1/Products/GetAllProducts", map[string]string{
			"size": "10",
			"page": "2",
		})
		assert.Equal(t, "/api/v1/Products/GetAllProducts|page-2|size-10", key)
	})
}

func TestPattern(t *testing.T) {
	pattern := cache.Pattern("/api/v1", "Products", "GetAllProducts")
	assert.Equal(t, "/api/v1/Products/GetAllProducts", pattern)
}

func TestNoopResponseCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNoopResponseCache()

	require.NoError(t, c.Set(ctx, "key", "body", time.Hour))
	body, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Empty(t, body)
	assert.NoError(t, c.Remove(ctx, "anything"))
}
