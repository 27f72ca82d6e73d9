package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAttemptLimiter throttles passcode verification attempts using a
// sliding one-minute window per key. A burst of wrong guesses against a
// claim or order locks further attempts out until the window drains.
type RedisAttemptLimiter struct {
	client         *redis.Client
	attemptsPerMin int
}

func NewRedisAttemptLimiter(client *redis.Client, attemptsPerMin int) *RedisAttemptLimiter {
	return &RedisAttemptLimiter{
		client:         client,
		attemptsPerMin: attemptsPerMin,
	}
}

func (l *RedisAttemptLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.attemptsPerMin <= 0 {
		return true, nil
	}

	now := time.Now()
	redisKey := l.getKey(key)
	windowStart := now.Add(-time.Minute).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, 2*time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return zcard.Val() < int64(l.attemptsPerMin), nil
}

// Reset clears the attempt window for a key.
func (l *RedisAttemptLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	return nil
}

func (l *RedisAttemptLimiter) getKey(identifier string) string {
	return fmt.Sprintf("ratelimit:%s", identifier)
}
