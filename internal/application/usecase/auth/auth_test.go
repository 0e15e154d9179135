package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

type memUsers struct {
	byEmail map[string]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: map[string]*entity.User{}}
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

// plainPasswords "hashes" by prefixing, which is enough to tell the flows apart.
type plainPasswords struct{}

func (plainPasswords) HashPassword(p string) (string, error) { return "hashed:" + p, nil }

func (plainPasswords) VerifyPassword(hashed, p string) error {
	if hashed != "hashed:"+p {
		return errors.New("mismatch")
	}
	return nil
}

func (plainPasswords) ValidatePasswordStrength(p string) error {
	if len(p) < 8 {
		return errors.New("too short")
	}
	return nil
}

type stubTokens struct{}

func (stubTokens) GenerateAccessToken(_ context.Context, userID uuid.UUID, _ string) (*adapter.AccessToken, error) {
	return &adapter.AccessToken{Token: "token-" + userID.String(), ExpiresAt: time.Unix(0, 0)}, nil
}

func (stubTokens) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	register := NewRegisterUserUseCase(users, plainPasswords{}, stubTokens{})
	login := NewLoginUserUseCase(users, plainPasswords{}, stubTokens{})

	reg, err := register.Execute(ctx, RegisterUserInput{Email: " Priya@Example.com ", Name: "Priya", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", reg.User.Email)
	assert.Equal(t, "hashed:s3cret-pass", reg.User.PasswordHash)
	assert.Equal(t, "token-"+reg.User.ID.String(), reg.AccessToken)

	out, err := login.Execute(ctx, LoginUserInput{Email: "PRIYA@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := register.Execute(ctx, RegisterUserInput{Email: "priya@example.com", Name: "Again", Password: "another-pass"})
		assert.ErrorIs(t, err, domainerror.ErrEmailAlreadyExists)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, wrongPass := login.Execute(ctx, LoginUserInput{Email: "priya@example.com", Password: "nope-nope"})
		_, unknown := login.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "s3cret-pass"})

		assert.ErrorIs(t, wrongPass, domainerror.ErrInvalidCredentials)
		assert.ErrorIs(t, unknown, domainerror.ErrInvalidCredentials)
		assert.Equal(t, wrongPass.Error(), unknown.Error())
	})
}

func TestRegister_Validation(t *testing.T) {
	uc := NewRegisterUserUseCase(newMemUsers(), plainPasswords{}, stubTokens{})

	_, err := uc.Execute(context.Background(), RegisterUserInput{Email: "not-an-email", Password: "long-enough"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidEmail)

	_, err = uc.Execute(context.Background(), RegisterUserInput{Email: "a@b.io", Password: "short"})
	assert.ErrorIs(t, err, domainerror.ErrWeakPassword)
	assert.True(t, domainerror.IsValidation(err))
}
