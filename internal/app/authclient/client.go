// Package authclient defines the auth API capability the flow machines are
// built against, with a real HTTP implementation and an in-memory provider
// for the mock build variant and tests.
package authclient

import "context"

// OTP lengths per flow. The signup/verification path uses 4-digit codes and
// the password-reset path uses 6-digit codes; the asymmetry is part of the
// upstream contract and deliberately not unified.
const (
	VerifyOTPLength = 4
	ResetOTPLength  = 6
)

// SignupResult reports a successful registration.
type SignupResult struct {
	Message string
}

// VerifyResult carries the session token issued once an email is verified.
type VerifyResult struct {
	Token   string
	Message string
}

// LoginResult reports a login outcome. When EmailVerified is false the
// account exists but the token is withheld until verification completes.
type LoginResult struct {
	Token         string
	Message       string
	EmailVerified bool
}

// Client is the auth API capability. Implementations map transport failures
// to apperrors sentinels; callers branch on the result, never on transport
// detail.
type Client interface {
	Signup(ctx context.Context, fullName, email, password string) (SignupResult, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	VerifyEmail(ctx context.Context, email, otp string) (VerifyResult, error)
	ResendVerification(ctx context.Context, email string) error

	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}
