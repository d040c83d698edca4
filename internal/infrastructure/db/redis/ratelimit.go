package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RateLimiter is a fixed-window request counter backed by Redis.
// Key format: ratelimit:<bucket>:<client>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter allows limit requests per key within each window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, limit: int64(limit), window: window, now: time.Now}
}

// Allow counts one request for key and reports whether it fits in the
// current window. retryAfter is the time left until the window resets.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	start, retryAfter := windowBounds(l.now(), l.window)
	k := windowKey(key, start)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		p.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return incr.Val() <= l.limit, retryAfter, nil
}

// windowBounds returns the start of the window containing now and the time
// remaining until it ends.
func windowBounds(now time.Time, window time.Duration) (time.Time, time.Duration) {
	start := now.Truncate(window)
	return start, start.Add(window).Sub(now)
}

func windowKey(key string, start time.Time) string {
	return keyPrefix + key + ":" + strconv.FormatInt(start.Unix(), 10)
}
