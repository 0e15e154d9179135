package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pocket-ledger/backend/internal/integration/adapters"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newLoginRouter(succeed *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	limiter := adapters.NewMemoryRateLimiter(2, time.Minute, fixedClock{time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)})

	router := gin.New()
	router.POST("/login", NewRateLimiter(limiter, "login").Middleware(), func(c *gin.Context) {
		if *succeed {
			c.Status(http.StatusOK)
			return
		}
		c.Status(http.StatusUnauthorized)
	})
	return router
}

func login(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	t.Run("blocks once the window is used up", func(t *testing.T) {
		succeed := false
		router := newLoginRouter(&succeed)

		assert.Equal(t, http.StatusUnauthorized, login(router).Code)
		assert.Equal(t, http.StatusUnauthorized, login(router).Code)

		blocked := login(router)
		assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
		assert.Equal(t, "60", blocked.Header().Get("Retry-After"))
	})

	t.Run("success resets the counter", func(t *testing.T) {
		succeed := false
		router := newLoginRouter(&succeed)

		assert.Equal(t, http.StatusUnauthorized, login(router).Code)
		succeed = true
		assert.Equal(t, http.StatusOK, login(router).Code)

		succeed = false
		assert.Equal(t, http.StatusUnauthorized, login(router).Code)
		assert.Equal(t, http.StatusUnauthorized, login(router).Code)
		assert.Equal(t, http.StatusTooManyRequests, login(router).Code)
	})
}
