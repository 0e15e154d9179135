package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestRedisRateLimiter(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	ctx := context.Background()
	limiter := NewRedisRateLimiter(client, 2, time.Minute)

	for i := 0; i < 2; i++ {
		allowed, _, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, retryAfter, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)

	allowed, _, err = limiter.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, allowed, "keys are counted separately")

	server.FastForward(time.Minute)

	allowed, _, err = limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed, "window expired")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	ctx := context.Background()
	limiter := NewRedisRateLimiter(client, 1, time.Minute)

	allowed, _, _ := limiter.Allow(ctx, "k")
	assert.True(t, allowed)
	allowed, _, _ = limiter.Allow(ctx, "k")
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "k"))

	allowed, _, _ = limiter.Allow(ctx, "k")
	assert.True(t, allowed)
}

func TestMemoryRateLimiter(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	limiter := NewMemoryRateLimiter(3, 15*time.Minute, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	clock.now = clock.now.Add(5 * time.Minute)
	allowed, retryAfter, err := limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 10*time.Minute, retryAfter)

	clock.now = clock.now.Add(10 * time.Minute)
	allowed, _, err = limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, allowed)
}
