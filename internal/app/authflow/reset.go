package authflow

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/learnhub/learnhub/internal/app/authclient"
	"github.com/learnhub/learnhub/internal/pkg/apperrors"
)

// Step identifies the screen of the multi-step password reset.
type Step string

const (
	StepEmail       Step = "email"
	StepOTP         Step = "otp"
	StepNewPassword Step = "new-password"
	StepComplete    Step = "complete"
)

// FlowState is a read-only snapshot of a flow, safe to render.
type FlowState struct {
	Step              Step
	Email             string
	ResendAvailableIn time.Duration
}

// PasswordResetFlow drives the forgot-password sequence. Exactly one
// backend submission may be in flight at a time; a second submission while
// one is pending fails with ErrSubmissionInFlight instead of queueing.
// Back cancels the current step: any submission still in flight when Back
// runs has its result discarded, so a slow response can never advance a
// flow the user has already left.
type PasswordResetFlow struct {
	mu     sync.Mutex
	client authclient.Client
	now    func() time.Time

	step       Step
	email      string
	otp        string
	inFlight   bool
	generation uint64

	cooldown time.Duration
	lastSent time.Time
}

// NewPasswordResetFlow starts a flow at the email step.
func NewPasswordResetFlow(client authclient.Client, resendCooldown time.Duration, now func() time.Time) *PasswordResetFlow {
	if now == nil {
		now = time.Now
	}
	return &PasswordResetFlow{
		client:   client,
		now:      now,
		step:     StepEmail,
		cooldown: resendCooldown,
	}
}

// State reports the current step without holding the lock across any call.
func (f *PasswordResetFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := FlowState{Step: f.step, Email: f.email}
	if f.step == StepOTP && !f.lastSent.IsZero() {
		if remaining := f.cooldown - f.now().Sub(f.lastSent); remaining > 0 {
			state.ResendAvailableIn = remaining
		}
	}
	return state
}

// SubmitEmail validates the address, asks the backend to send a reset code
// and advances to the OTP step.
func (f *PasswordResetFlow) SubmitEmail(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	gen, err := f.begin(StepEmail, func() error { return ValidateEmail(email) })
	if err != nil {
		return err
	}

	callErr := f.client.RequestPasswordReset(ctx, email)

	return f.finish(gen, callErr, func() {
		f.email = email
		f.step = StepOTP
		f.lastSent = f.now()
	})
}

// SubmitOTP checks the six-digit code with the backend and advances to the
// new-password step. The code is retained for the final reset call.
func (f *PasswordResetFlow) SubmitOTP(ctx context.Context, otp string) error {
	gen, err := f.begin(StepOTP, func() error { return ValidateOTP(otp, authclient.ResetOTPLength) })
	if err != nil {
		return err
	}

	callErr := f.client.VerifyResetOTP(ctx, f.email, otp)

	return f.finish(gen, callErr, func() {
		f.otp = otp
		f.step = StepNewPassword
	})
}

// SubmitNewPassword completes the reset and moves the flow to its terminal
// step.
func (f *PasswordResetFlow) SubmitNewPassword(ctx context.Context, password string) error {
	gen, err := f.begin(StepNewPassword, func() error { return ValidatePassword(password) })
	if err != nil {
		return err
	}

	callErr := f.client.ResetPassword(ctx, f.email, f.otp, password)

	return f.finish(gen, callErr, func() {
		f.otp = ""
		f.step = StepComplete
	})
}

// Resend re-requests the code, rate limited by the cooldown window.
func (f *PasswordResetFlow) Resend(ctx context.Context) error {
	f.mu.Lock()
	if f.step != StepOTP {
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

	callErr := f.client.RequestPasswordReset(ctx, email)

	return f.finish(gen, callErr, func() {
		f.lastSent = f.now()
	})
}

// Back returns to the previous step and invalidates any submission that is
// still in flight.
func (f *PasswordResetFlow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepOTP:
		f.step = StepEmail
	case StepNewPassword:
		f.otp = ""
		f.step = StepOTP
	case StepComplete:
		return apperrors.ErrFlowComplete
	default:
		return apperrors.ErrInvalidTransition
	}

	f.generation++
	f.inFlight = false
	return nil
}

// begin validates input, claims the in-flight slot and records the
// generation the caller belongs to. Validation failures never reach the
// backend and never change state.
func (f *PasswordResetFlow) begin(expect Step, validate func() error) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step == StepComplete {
		return 0, apperrors.ErrFlowComplete
	}
	if f.step != expect {
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

// finish releases the in-flight slot and applies the transition, unless
// Back has bumped the generation while the backend call was running.
func (f *PasswordResetFlow) finish(gen uint64, callErr error, apply func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.generation != gen {
		// The user navigated away mid-call. Drop the result.
		return nil
	}

	f.inFlight = false
	if callErr != nil {
		return callErr
	}

	apply()
	return nil
}
