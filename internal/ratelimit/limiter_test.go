package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, perMinute int64, nowFn func() time.Time) *RedisLimiter {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter, err := newRedisLimiter(client, perMinute, nowFn)
	if err != nil {
		t.Fatalf("newRedisLimiter() error = %v", err)
	}
	return limiter
}

func TestAllowWithinLimit(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, 3, func() time.Time { return fixed })

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(context.Background(), "203.0.113.7")
		if err != nil {
			t.Fatalf("Allow() call %d error = %v", i+1, err)
		}
		if !allowed {
			t.Fatalf("Allow() call %d = false, want true", i+1)
		}
	}

	allowed, err := limiter.Allow(context.Background(), "203.0.113.7")
	if err != nil {
		t.Fatalf("Allow() over-limit error = %v", err)
	}
	if allowed {
		t.Error("Allow() over limit = true, want false")
	}
}

func TestAllowIsPerKey(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, 1, func() time.Time { return fixed })

	if allowed, _ := limiter.Allow(context.Background(), "203.0.113.7"); !allowed {
		t.Fatal("first key first call should be allowed")
	}
	if allowed, _ := limiter.Allow(context.Background(), "203.0.113.7"); allowed {
		t.Fatal("first key second call should be denied")
	}
	if allowed, _ := limiter.Allow(context.Background(), "198.51.100.9"); !allowed {
		t.Fatal("second key should have its own budget")
	}
}

func TestAllowResetsOnNewWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, 1, func() time.Time { return now })

	if allowed, _ := limiter.Allow(context.Background(), "203.0.113.7"); !allowed {
		t.Fatal("first call should be allowed")
	}
	if allowed, _ := limiter.Allow(context.Background(), "203.0.113.7"); allowed {
		t.Fatal("second call in same window should be denied")
	}

	now = now.Add(time.Minute)
	if allowed, _ := limiter.Allow(context.Background(), "203.0.113.7"); !allowed {
		t.Fatal("call in next window should be allowed")
	}
}

func TestAllowRejectsEmptyKey(t *testing.T) {
	limiter := newTestLimiter(t, 1, nil)

	if _, err := limiter.Allow(context.Background(), "  "); err == nil {
		t.Error("Allow() with blank key expected error")
	}
}

func TestNewRedisLimiterValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewRedisLimiter(nil, 10); err == nil {
		t.Error("NewRedisLimiter(nil client) expected error")
	}

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	if _, err := NewRedisLimiter(client, 0); err == nil {
		t.Error("NewRedisLimiter(limit 0) expected error")
	}
}
