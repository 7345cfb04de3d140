package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client, err := DialRedis(context.Background(), addr, "", 0)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisCarts(t *testing.T) {
	client := getRedisClient(t)
	ctx := t.Context()
	carts := NewRedisCarts(client, time.Minute)

	const visitor = "redis-test-visitor"
	require.NoError(t, client.Del(ctx, "kanoha_cart:"+visitor).Err())

	data, err := carts.LoadCart(ctx, visitor)
	require.NoError(t, err)
	assert.Nil(t, data)

	payload := `[{"id":"1","name":"Fan","img":"","quantity":3}]`
	require.NoError(t, carts.SaveCart(ctx, visitor, []byte(payload)))

	data, err = carts.LoadCart(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))

	ttl, err := client.TTL(ctx, "kanoha_cart:"+visitor).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, carts.DeleteCart(ctx, visitor))
	data, err = carts.LoadCart(ctx, visitor)
	require.NoError(t, err)
	assert.Nil(t, data)
}
