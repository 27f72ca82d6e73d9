package ratelimit

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisAttemptLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisAttemptLimiter(client, 5)
	ctx := context.Background()

	key := "otp:handover:1"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, allowed, "6th attempt should be denied")
}

func TestRedisAttemptLimiter_Allow_KeysIndependent(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisAttemptLimiter(client, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "otp:handover:1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "otp:handover:1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "otp:delivery:1")
	require.NoError(t, err)
	assert.True(t, allowed, "a different key has its own window")
}

func TestRedisAttemptLimiter_Allow_ZeroLimitDisables(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisAttemptLimiter(client, 0)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		allowed, err := limiter.Allow(ctx, "otp:handover:1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisAttemptLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisAttemptLimiter(client, 1)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "otp:delivery:9")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "otp:delivery:9")
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "otp:delivery:9"))

	allowed, err = limiter.Allow(ctx, "otp:delivery:9")
	require.NoError(t, err)
	assert.True(t, allowed)
}
