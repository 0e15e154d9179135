// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// RateLimiter limits requests per client IP using an adapter.RateLimiter.
type RateLimiter struct {
	limiter adapter.RateLimiter
	scope   string
}

// NewRateLimiter creates a middleware counting attempts under scope, e.g. "login".
func NewRateLimiter(limiter adapter.RateLimiter, scope string) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		scope:   scope,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		key := rl.scope + ":" + clientIP
		allowed, retryAfter, err := rl.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// Fail open.
			slog.Error("Rate limiter unavailable", "error", err, "scope", rl.scope)
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()

		// A successful attempt starts the client over.
		if c.Writer.Status() < http.StatusBadRequest {
			if err := rl.limiter.Reset(c.Request.Context(), key); err != nil {
				slog.Warn("Failed to reset rate limit", "error", err, "scope", rl.scope)
			}
		}
	}
}
