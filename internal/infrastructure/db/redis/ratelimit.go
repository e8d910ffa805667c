package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<key>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewRateLimiter creates a limiter allowing max hits per window.
func NewRateLimiter(client *redis.Client, max int, window time.Duration) *RateLimiter {
	if max <= 0 {
		max = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, max: int64(max), window: window}
}

// Allow records a hit for key and reports whether it is still within the
// window budget. The counter key expires with the window, so idle keys cost
// nothing.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.windowKey(key, time.Now())

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *RateLimiter) windowKey(key string, now time.Time) string {
	windowStart := now.Unix() - now.Unix()%int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", key, windowStart)
}
