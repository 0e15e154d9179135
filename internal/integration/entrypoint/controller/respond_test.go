package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domainerror.ErrMissingCategory, http.StatusBadRequest},
		{"not found", domainerror.ErrJarNotFound, http.StatusNotFound},
		{"conservation", fmt.Errorf("%w: boom", domainerror.ErrJarTransferIncomplete), http.StatusConflict},
		{"email taken", domainerror.ErrEmailAlreadyExists, http.StatusConflict},
		{"bad credentials", domainerror.ErrInvalidCredentials, http.StatusUnauthorized},
		{"bad token", domainerror.ErrInvalidToken, http.StatusUnauthorized},
		{"unknown", errors.New("driver: bad connection"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}

func TestRespondError(t *testing.T) {
	t.Run("coded errors expose code and message", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodPost, "/api/v1/savings/x/transfer", nil)

		respondError(ctx, domainerror.NewSavingsError(domainerror.ErrCodeJarNotFound, "savings jar not found", domainerror.ErrJarNotFound))

		require.Equal(t, http.StatusNotFound, w.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "savings jar not found", body.Error)
		assert.Equal(t, string(domainerror.ErrCodeJarNotFound), body.Code)
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)

		respondError(ctx, errors.New("pq: password authentication failed"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "pq:")
	})
}

func TestHealthCheck(t *testing.T) {
	for _, tc := range []struct {
		healthy bool
		code    int
		status  string
	}{
		{true, http.StatusOK, "ok"},
		{false, http.StatusServiceUnavailable, "degraded"},
	} {
		healthy := tc.healthy
		router := gin.New()
		router.GET("/health", NewHealthController(func(context.Context) bool { return healthy }).Check)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, tc.code, w.Code)
		var body HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.status, body.Status)
	}
}
