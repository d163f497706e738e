// Package ratelimit provides fixed-window and token-bucket limiters keyed by
// caller. Both satisfy the application-service RateLimiter port.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const fixedWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter shares a fixed window across API replicas.
type RedisLimiter struct {
	client  redis.Scripter
	limit   int
	window  time.Duration
	prefix  string
	timeout time.Duration
	script  *redis.Script
}

func NewRedisLimiter(client redis.Scripter, limit int, window time.Duration, prefix string) *RedisLimiter {
	return &RedisLimiter{
		client:  client,
		limit:   limit,
		window:  window,
		prefix:  prefix,
		timeout: 250 * time.Millisecond,
		script:  redis.NewScript(fixedWindowScript),
	}
}

// Allow reports whether key is within its window budget. Redis errors are
// returned to the caller, which decides whether to fail open.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.client == nil || l.limit <= 0 || l.window <= 0 || key == "" {
		return true, nil
	}
	redisKey := key
	if l.prefix != "" {
		redisKey = l.prefix + ":" + key
	}
	ttl := l.window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{redisKey}, ttl, l.limit).Int64()
	if err != nil {
		return true, err
	}
	return allowed == 1, nil
}

// LocalLimiter is a per-process token bucket per key, used when no Redis is
// configured. Buckets idle for a full window are full again, so Sweep can
// drop them without changing any decision.
type LocalLimiter struct {
	mu       sync.Mutex
	limiters map[string]*localBucket
	rate     rate.Limit
	burst    int
	window   time.Duration
	now      func() time.Time
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLocalLimiter allows limit events per window with a burst of limit.
func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	if limit <= 0 || window <= 0 {
		return &LocalLimiter{limiters: make(map[string]*localBucket), rate: rate.Inf, now: time.Now}
	}
	return &LocalLimiter{
		limiters: make(map[string]*localBucket),
		rate:     rate.Limit(float64(limit) / window.Seconds()),
		burst:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l == nil || l.rate == rate.Inf || key == "" {
		return true, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	bucket, ok := l.limiters[key]
	if !ok {
		bucket = &localBucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = bucket
	}
	bucket.lastSeen = now
	return bucket.limiter.AllowN(now, 1), nil
}

// Sweep drops buckets unused for at least one window and reports how many
// were removed.
func (l *LocalLimiter) Sweep() int {
	if l == nil || l.window <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	removed := 0
	for key, bucket := range l.limiters {
		if !bucket.lastSeen.After(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// Len is the number of tracked keys.
func (l *LocalLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// RunSweeper sweeps once per window until ctx is done.
func (l *LocalLimiter) RunSweeper(ctx context.Context) {
	if l == nil || l.window <= 0 {
		return
	}
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}
