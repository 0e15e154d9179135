// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

const rateLimitKeyPrefix = "ratelimit:"

// redisRateLimiter counts attempts in Redis so every API instance shares the window.
type redisRateLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewRedisRateLimiter creates a fixed-window limiter backed by Redis.
func NewRedisRateLimiter(client *redis.Client, maxAttempts int, window time.Duration) adapter.RateLimiter {
	return &redisRateLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (rl *redisRateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := rateLimitKeyPrefix + key

	attempts, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to record attempt: %w", err)
	}
	if attempts == 1 {
		// The first attempt opens the window; later ones must not extend it.
		if err := rl.client.PExpire(ctx, redisKey, rl.window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to start window: %w", err)
		}
	}

	if attempts <= int64(rl.maxAttempts) {
		return true, 0, nil
	}

	retryAfter, err := rl.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to read window: %w", err)
	}
	if retryAfter <= 0 {
		retryAfter = rl.window
	}
	return false, retryAfter, nil
}

func (rl *redisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := rl.client.Del(ctx, rateLimitKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset attempts: %w", err)
	}
	return nil
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// memoryRateLimiter keeps the window in process memory. Used when Redis is disabled.
type memoryRateLimiter struct {
	mu          sync.Mutex
	entries     map[string]*rateLimitEntry
	maxAttempts int
	window      time.Duration
	clock       adapter.Clock
}

// NewMemoryRateLimiter creates a fixed-window limiter local to this process.
func NewMemoryRateLimiter(maxAttempts int, window time.Duration, clock adapter.Clock) adapter.RateLimiter {
	return &memoryRateLimiter{
		entries:     make(map[string]*rateLimitEntry),
		maxAttempts: maxAttempts,
		window:      window,
		clock:       clock,
	}
}

func (rl *memoryRateLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	rl.evictExpired(now)

	entry, exists := rl.entries[key]
	if !exists {
		rl.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(rl.window),
		}
		return true, 0, nil
	}

	if entry.attempts < rl.maxAttempts {
		entry.attempts++
		return true, 0, nil
	}

	return false, entry.resetTime.Sub(now), nil
}

func (rl *memoryRateLimiter) Reset(_ context.Context, key string) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.entries, key)
	return nil
}

// evictExpired must be called with mu held.
func (rl *memoryRateLimiter) evictExpired(now time.Time) {
	for key, entry := range rl.entries {
		if !now.Before(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}
