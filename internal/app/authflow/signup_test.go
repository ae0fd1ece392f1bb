package authflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/learnhub/internal/app/authclient"
	"github.com/learnhub/learnhub/internal/pkg/apperrors"
)

func newSignupFlow(client authclient.Client, clock *fixedClock) *SignupFlow {
	return NewSignupFlow(client, 60*time.Second, clock.Now)
}

func TestSignupFlow_SignupThenVerify(t *testing.T) {
	client := &fakeClient{
		SignupFunc: func(_ context.Context, fullName, email, password string) (authclient.SignupResult, error) {
			assert.Equal(t, "Ada Lovelace", fullName)
			assert.Equal(t, "ada@example.com", email)
			return authclient.SignupResult{Message: "check your email"}, nil
		},
		VerifyEmailFunc: func(_ context.Context, email, otp string) (authclient.VerifyResult, error) {
			assert.Equal(t, "ada@example.com", email)
			assert.Equal(t, "1234", otp)
			return authclient.VerifyResult{Token: "tok-123"}, nil
		},
	}
	flow := newSignupFlow(client, &fixedClock{now: time.Now()})
	ctx := context.Background()

	result, err := flow.Signup(ctx, "Ada Lovelace", "Ada@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "check your email", result.Message)
	assert.Equal(t, PhasePendingVerification, flow.State().Phase)
	assert.Equal(t, "ada@example.com", flow.State().Email)

	verified, err := flow.Verify(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", verified.Token)
	assert.Equal(t, PhaseAuthenticated, flow.State().Phase)
}

func TestSignupFlow_ValidationNeverReachesClient(t *testing.T) {
	called := false
	client := &fakeClient{
		SignupFunc: func(context.Context, string, string, string) (authclient.SignupResult, error) {
			called = true
			return authclient.SignupResult{}, nil
		},
	}
	flow := newSignupFlow(client, &fixedClock{now: time.Now()})
	ctx := context.Background()

	_, err := flow.Signup(ctx, "", "ada@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = flow.Signup(ctx, "Ada", "not-an-email", "password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	_, err = flow.Signup(ctx, "Ada", "ada@example.com", "short")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	assert.False(t, called)
	assert.Equal(t, PhaseUnauthenticated, flow.State().Phase)
}

func TestSignupFlow_VerifyRequiresFourDigits(t *testing.T) {
	flow := newSignupFlow(&fakeClient{}, &fixedClock{now: time.Now()})
	ctx := context.Background()

	_, err := flow.Signup(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	_, err = flow.Verify(ctx, "123456")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOTP, "reset-length codes are rejected here")

	_, err = flow.Verify(ctx, "12ab")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOTP)

	assert.Equal(t, PhasePendingVerification, flow.State().Phase)
}

func TestSignupFlow_LoginVerifiedAuthenticates(t *testing.T) {
	flow := newSignupFlow(&fakeClient{}, &fixedClock{now: time.Now()})

	result, err := flow.Login(context.Background(), "ada@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, result.EmailVerified)
	assert.Equal(t, PhaseAuthenticated, flow.State().Phase)
}

func TestSignupFlow_LoginUnverifiedParksPending(t *testing.T) {
	client := &fakeClient{
		LoginFunc: func(context.Context, string, string) (authclient.LoginResult, error) {
			return authclient.LoginResult{Message: "verify first", EmailVerified: false}, nil
		},
	}
	flow := newSignupFlow(client, &fixedClock{now: time.Now()})

	result, err := flow.Login(context.Background(), "ada@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, result.EmailVerified)
	assert.Equal(t, PhasePendingVerification, flow.State().Phase)
	assert.Equal(t, "ada@example.com", flow.State().Email)
}

func TestSignupFlow_LoginFailureStaysUnauthenticated(t *testing.T) {
	client := &fakeClient{
		LoginFunc: func(context.Context, string, string) (authclient.LoginResult, error) {
			return authclient.LoginResult{}, apperrors.ErrInvalidCredentials
		},
	}
	flow := newSignupFlow(client, &fixedClock{now: time.Now()})

	_, err := flow.Login(context.Background(), "ada@example.com", "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, PhaseUnauthenticated, flow.State().Phase)
}

func TestSignupFlow_ResendCooldown(t *testing.T) {
	resends := 0
	client := &fakeClient{
		ResendVerificationFunc: func(context.Context, string) error {
			resends++
			return nil
		},
	}
	clock := &fixedClock{now: time.Unix(1700000000, 0)}
	flow := newSignupFlow(client, clock)
	ctx := context.Background()

	_, err := flow.Signup(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	assert.ErrorIs(t, flow.Resend(ctx), apperrors.ErrResendOnCooldown)
	assert.Equal(t, 0, resends)

	clock.Advance(61 * time.Second)
	require.NoError(t, flow.Resend(ctx))
	assert.Equal(t, 1, resends)
}

func TestSignupFlow_ResumedFlowCanResendImmediately(t *testing.T) {
	resends := 0
	client := &fakeClient{
		ResendVerificationFunc: func(context.Context, string) error {
			resends++
			return nil
		},
	}
	flow := ResumePendingSignupFlow(client, "ada@example.com", 60*time.Second, nil)

	assert.Equal(t, PhasePendingVerification, flow.State().Phase)
	require.NoError(t, flow.Resend(context.Background()))
	assert.Equal(t, 1, resends)
}

func TestSignupFlow_LogoutResets(t *testing.T) {
	flow := newSignupFlow(&fakeClient{}, &fixedClock{now: time.Now()})

	_, err := flow.Login(context.Background(), "ada@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, PhaseAuthenticated, flow.State().Phase)

	flow.Logout()
	assert.Equal(t, PhaseUnauthenticated, flow.State().Phase)
	assert.Empty(t, flow.State().Email)
}
