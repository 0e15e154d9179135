package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

func TestTokenService_RoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	service := NewTokenService("secret", time.Hour, clock)
	userID := uuid.New()

	token, err := service.GenerateAccessToken(context.Background(), userID, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(time.Hour), token.ExpiresAt)

	claims, err := service.ValidateAccessToken(context.Background(), token.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@b.co", claims.Email)
}

func TestTokenService_Rejects(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	service := NewTokenService("secret", time.Hour, clock)

	token, err := service.GenerateAccessToken(context.Background(), uuid.New(), "a@b.co")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other", time.Hour, clock)
		_, err := other.ValidateAccessToken(context.Background(), token.Token)
		assert.True(t, errors.Is(err, domainerror.ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokenService("secret", time.Hour, &fakeClock{now: clock.now.Add(2 * time.Hour)})
		_, err := later.ValidateAccessToken(context.Background(), token.Token)
		assert.True(t, errors.Is(err, domainerror.ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateAccessToken(context.Background(), "not-a-jwt")
		assert.True(t, errors.Is(err, domainerror.ErrInvalidToken))
	})
}

func TestPasswordService(t *testing.T) {
	service := NewPasswordServiceWithCost(bcrypt.MinCost)

	hash, err := service.HashPassword("correct horse")
	require.NoError(t, err)

	assert.NoError(t, service.VerifyPassword(hash, "correct horse"))
	assert.Error(t, service.VerifyPassword(hash, "wrong"))
	assert.Error(t, service.ValidatePasswordStrength("short"))
	assert.NoError(t, service.ValidatePasswordStrength("long enough"))
}
