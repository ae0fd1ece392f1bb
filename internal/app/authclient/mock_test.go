package authclient

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/learnhub/internal/pkg/apperrors"
	"github.com/learnhub/learnhub/internal/pkg/auth"
)

func newTestProvider(t *testing.T) (*MockProvider, *time.Time) {
	t.Helper()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})

	now := time.Unix(1700000000, 0)
	provider := NewMockProvider(jwtService, zerolog.Nop())
	provider.Now = func() time.Time { return now }
	provider.GenerateOTP = func(length int) string {
		code := "123456"
		return code[:length]
	}
	return provider, &now
}

func TestMockProvider_SignupVerifyLogin(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	_, err := provider.Signup(ctx, "Ada Lovelace", "ada@example.com", "password123")
	require.NoError(t, err)

	// Login before verification issues no token.
	login, err := provider.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, login.EmailVerified)
	assert.Empty(t, login.Token)

	verified, err := provider.VerifyEmail(ctx, "ada@example.com", "1234")
	require.NoError(t, err)
	assert.NotEmpty(t, verified.Token)

	login, err = provider.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, login.EmailVerified)
	assert.NotEmpty(t, login.Token)
}

func TestMockProvider_DuplicateSignup(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	_, err := provider.Signup(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	_, err = provider.Signup(ctx, "Ada Again", "ADA@example.com", "password456")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestMockProvider_WrongCredentials(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	_, err := provider.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = provider.Signup(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	_, err = provider.Login(ctx, "ada@example.com", "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestMockProvider_VerifyOTPMismatchAndExpiry(t *testing.T) {
	provider, now := newTestProvider(t)
	ctx := context.Background()

	_, err := provider.Signup(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	_, err = provider.VerifyEmail(ctx, "ada@example.com", "9999")
	assert.ErrorIs(t, err, apperrors.ErrOTPMismatch)

	*now = now.Add(76 * time.Second)
	_, err = provider.VerifyEmail(ctx, "ada@example.com", "1234")
	assert.ErrorIs(t, err, apperrors.ErrOTPExpired)
}

func TestMockProvider_PasswordResetRoundTrip(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	_, err := provider.Signup(ctx, "Ada", "ada@example.com", "oldpassword1")
	require.NoError(t, err)
	_, err = provider.VerifyEmail(ctx, "ada@example.com", "1234")
	require.NoError(t, err)

	require.NoError(t, provider.RequestPasswordReset(ctx, "ada@example.com"))
	require.NoError(t, provider.VerifyResetOTP(ctx, "ada@example.com", "123456"))
	require.NoError(t, provider.ResetPassword(ctx, "ada@example.com", "123456", "newpassword1"))

	_, err = provider.Login(ctx, "ada@example.com", "oldpassword1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	login, err := provider.Login(ctx, "ada@example.com", "newpassword1")
	require.NoError(t, err)
	assert.True(t, login.EmailVerified)
}

func TestMockProvider_ResetForUnknownEmailSucceedsSilently(t *testing.T) {
	provider, _ := newTestProvider(t)

	// No account enumeration: the request itself never fails.
	assert.NoError(t, provider.RequestPasswordReset(context.Background(), "ghost@example.com"))
	assert.ErrorIs(t, provider.VerifyResetOTP(context.Background(), "ghost@example.com", "123456"),
		apperrors.ErrOTPExpired)
}
