// Package ratelimit bounds complaint submissions per client address.
package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const windowSeconds = 60

// Limiter decides whether a client may submit another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

var allowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[2])
end
if current > tonumber(ARGV[1]) then
  return 0
end
return 1
`)

var _ Limiter = (*RedisLimiter)(nil)

// RedisLimiter is a fixed-window per-minute rate limiter backed by Redis.
type RedisLimiter struct {
	client    *redis.Client
	perMinute int64
	now       func() time.Time
}

// NewRedisLimiter builds a limiter allowing perMinute requests per key.
func NewRedisLimiter(client *redis.Client, perMinute int) (*RedisLimiter, error) {
	return newRedisLimiter(client, int64(perMinute), time.Now)
}

func newRedisLimiter(client *redis.Client, perMinute int64, nowFn func() time.Time) (*RedisLimiter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if perMinute <= 0 {
		return nil, fmt.Errorf("perMinute must be positive, got %d", perMinute)
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &RedisLimiter{client: client, perMinute: perMinute, now: nowFn}, nil
}

// Allow reports whether the key may proceed within the current window.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	normalized := strings.TrimSpace(key)
	if normalized == "" {
		return false, fmt.Errorf("key is required")
	}

	window := l.now().UTC().Unix() / windowSeconds
	redisKey := fmt.Sprintf("ratelimit:intake:%s:%d", normalized, window)
	result, err := allowScript.Run(ctx, l.client, []string{redisKey}, l.perMinute, windowSeconds).Int()
	if err != nil {
		return false, fmt.Errorf("evaluate rate limit: %w", err)
	}
	return result == 1, nil
}
