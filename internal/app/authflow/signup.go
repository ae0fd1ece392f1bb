package authflow

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/learnhub/learnhub/internal/app/authclient"
	"github.com/learnhub/learnhub/internal/pkg/apperrors"
)

// Phase identifies where a visitor is in the signup/login lifecycle.
type Phase string

const (
	PhaseUnauthenticated     Phase = "unauthenticated"
	PhasePendingVerification Phase = "pending-verification"
	PhaseAuthenticated       Phase = "authenticated"
)

// SignupState is a read-only snapshot of a signup flow.
type SignupState struct {
	Phase             Phase
	Email             string
	ResendAvailableIn time.Duration
}

// SignupFlow drives account creation and login. Signing up or logging in
// with an unverified address parks the flow at pending-verification until
// the emailed code is confirmed. The same single-submission rule as the
// reset flow applies.
type SignupFlow struct {
	mu     sync.Mutex
	client authclient.Client
	now    func() time.Time

	phase      Phase
	email      string
	inFlight   bool
	generation uint64

	cooldown time.Duration
	lastSent time.Time
}

// NewSignupFlow starts a flow in the unauthenticated phase.
func NewSignupFlow(client authclient.Client, resendCooldown time.Duration, now func() time.Time) *SignupFlow {
	if now == nil {
		now = time.Now
	}
	return &SignupFlow{
		client:   client,
		now:      now,
		phase:    PhaseUnauthenticated,
		cooldown: resendCooldown,
	}
}

// ResumePendingSignupFlow reconstructs a flow already parked at
// pending-verification, for requests that carry a pending email but whose
// in-memory flow is gone.
func ResumePendingSignupFlow(client authclient.Client, email string, resendCooldown time.Duration, now func() time.Time) *SignupFlow {
	f := NewSignupFlow(client, resendCooldown, now)
	f.phase = PhasePendingVerification
	f.email = email
	return f
}

// State reports the current phase and how long until a resend is allowed.
func (f *SignupFlow) State() SignupState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := SignupState{Phase: f.phase, Email: f.email}
	if f.phase == PhasePendingVerification && !f.lastSent.IsZero() {
		if remaining := f.cooldown - f.now().Sub(f.lastSent); remaining > 0 {
			state.ResendAvailableIn = remaining
		}
	}
	return state
}

// Signup creates the account and parks the flow at pending-verification.
func (f *SignupFlow) Signup(ctx context.Context, fullName, email, password string) (authclient.SignupResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	gen, err := f.begin(PhaseUnauthenticated, func() error {
		if strings.TrimSpace(fullName) == "" {
			return apperrors.ErrValidationFailed
		}
		if err := ValidateEmail(email); err != nil {
			return err
		}
		return ValidatePassword(password)
	})
	if err != nil {
		return authclient.SignupResult{}, err
	}

	result, callErr := f.client.Signup(ctx, fullName, email, password)

	err = f.finish(gen, callErr, func() {
		f.email = email
		f.phase = PhasePendingVerification
		f.lastSent = f.now()
	})
	if err != nil {
		return authclient.SignupResult{}, err
	}
	return result, nil
}

// Login authenticates directly, or drops to pending-verification when the
// backend reports the address has never been confirmed.
func (f *SignupFlow) Login(ctx context.Context, email, password string) (authclient.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	gen, err := f.begin(PhaseUnauthenticated, func() error {
		if err := ValidateEmail(email); err != nil {
			return err
		}
		if password == "" {
			return apperrors.ErrValidationFailed
		}
		return nil
	})
	if err != nil {
		return authclient.LoginResult{}, err
	}

	result, callErr := f.client.Login(ctx, email, password)

	err = f.finish(gen, callErr, func() {
		f.email = email
		if result.EmailVerified {
			f.phase = PhaseAuthenticated
		} else {
			f.phase = PhasePendingVerification
			f.lastSent = f.now()
		}
	})
	if err != nil {
		return authclient.LoginResult{}, err
	}
	return result, nil
}

// Verify confirms the four-digit code and authenticates the flow.
func (f *SignupFlow) Verify(ctx context.Context, otp string) (authclient.VerifyResult, error) {
	gen, err := f.begin(PhasePendingVerification, func() error {
		return ValidateOTP(otp, authclient.VerifyOTPLength)
	})
	if err != nil {
		return authclient.VerifyResult{}, err
	}

	result, callErr := f.client.VerifyEmail(ctx, f.email, otp)

	err = f.finish(gen, callErr, func() {
		f.phase = PhaseAuthenticated
	})
	if err != nil {
		return authclient.VerifyResult{}, err
	}
	return result, nil
}

// Resend re-sends the verification code, rate limited by the cooldown.
func (f *SignupFlow) Resend(ctx context.Context) error {
	f.mu.Lock()
	if f.phase != PhasePendingVerification {
		f.mu.Unlock()
		return apperrors.ErrInvalidTransition
	}
	if f.inFlight {
		f.mu.Unlock()
		return apperrors.ErrSubmissionInFlight
	}
	if f.now().Sub(f.lastSent) < f.cooldown {
		f.mu.Unlock()
		return apperrors.ErrResendOnCooldown
	}
	f.inFlight = true
	gen := f.generation
	email := f.email
	f.mu.Unlock()

	callErr := f.client.ResendVerification(ctx, email)

	return f.finish(gen, callErr, func() {
		f.lastSent = f.now()
	})
}

// Logout drops back to unauthenticated and invalidates anything in flight.
func (f *SignupFlow) Logout() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.phase = PhaseUnauthenticated
	f.email = ""
	f.generation++
	f.inFlight = false
}

func (f *SignupFlow) begin(expect Phase, validate func() error) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != expect {
		return 0, apperrors.ErrInvalidTransition
	}
	if err := validate(); err != nil {
		return 0, err
	}
	if f.inFlight {
		return 0, apperrors.ErrSubmissionInFlight
	}

	f.inFlight = true
	return f.generation, nil
}

func (f *SignupFlow) finish(gen uint64, callErr error, apply func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.generation != gen {
		return nil
	}

	f.inFlight = false
	if callErr != nil {
		return callErr
	}

	apply()
	return nil
}
