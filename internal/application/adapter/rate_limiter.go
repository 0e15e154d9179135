// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// RateLimiter counts attempts per key inside a fixed window.
type RateLimiter interface {
	// Allow records an attempt and reports whether it is within the limit.
	// When it is not, the returned duration is how long until the window resets.
	Allow(ctx context.Context, key string) (bool, time.Duration, error)

	// Reset clears the attempts recorded for key.
	Reset(ctx context.Context, key string) error
}
