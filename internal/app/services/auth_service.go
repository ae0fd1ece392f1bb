package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub/internal/app/authclient"
	"github.com/learnhub/learnhub/internal/app/authflow"
)

// AuthService owns the live flow machines. Signup flows are keyed by the
// pending email so a browser can resume verification across requests;
// password reset flows live in a TTL registry keyed by an opaque id.
type AuthService struct {
	client   authclient.Client
	cooldown time.Duration
	now      func() time.Time
	logger   zerolog.Logger

	mu          sync.Mutex
	signupFlows map[string]*authflow.SignupFlow

	resetFlows *authflow.Registry
}

// NewAuthService wires the service to the configured auth backend.
func NewAuthService(client authclient.Client, resendCooldown, flowTTL time.Duration, logger zerolog.Logger) *AuthService {
	return &AuthService{
		client:      client,
		cooldown:    resendCooldown,
		now:         time.Now,
		logger:      logger,
		signupFlows: make(map[string]*authflow.SignupFlow),
		resetFlows:  authflow.NewRegistry(flowTTL, nil),
	}
}

// Signup creates an account and parks a flow at pending-verification.
func (s *AuthService) Signup(ctx context.Context, fullName, email, password string) (authclient.SignupResult, string, error) {
	flow := authflow.NewSignupFlow(s.client, s.cooldown, s.now)

	result, err := flow.Signup(ctx, fullName, email, password)
	if err != nil {
		return authclient.SignupResult{}, "", err
	}

	pending := flow.State().Email
	s.storeSignupFlow(pending, flow)
	return result, pending, nil
}

// Login authenticates against the backend. When the address is unverified
// no token is issued and a pending flow is parked instead; the second
// return value carries the pending email in that case.
func (s *AuthService) Login(ctx context.Context, email, password string) (authclient.LoginResult, string, error) {
	flow := authflow.NewSignupFlow(s.client, s.cooldown, s.now)

	result, err := flow.Login(ctx, email, password)
	if err != nil {
		return authclient.LoginResult{}, "", err
	}

	if !result.EmailVerified {
		pending := flow.State().Email
		s.storeSignupFlow(pending, flow)
		return result, pending, nil
	}
	return result, "", nil
}

// VerifyEmail confirms the emailed code for the pending address and returns
// the session token.
func (s *AuthService) VerifyEmail(ctx context.Context, email, otp string) (authclient.VerifyResult, error) {
	flow := s.signupFlow(email)

	result, err := flow.Verify(ctx, otp)
	if err != nil {
		return authclient.VerifyResult{}, err
	}

	s.dropSignupFlow(email)
	return result, nil
}

// ResendVerification re-sends the code, subject to the cooldown.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	return s.signupFlow(email).Resend(ctx)
}

// PendingState reports the resume state for a pending address, used to
// render the verification screen with its cooldown timer.
func (s *AuthService) PendingState(email string) authflow.SignupState {
	return s.signupFlow(email).State()
}

// Logout drops any parked flow for the address.
func (s *AuthService) Logout(email string) {
	if email != "" {
		s.dropSignupFlow(email)
	}
}

// StartPasswordReset begins a reset flow and returns its registry id.
func (s *AuthService) StartPasswordReset(ctx context.Context, email string) (string, authflow.FlowState, error) {
	flow := authflow.NewPasswordResetFlow(s.client, s.cooldown, s.now)

	if err := flow.SubmitEmail(ctx, email); err != nil {
		return "", authflow.FlowState{}, err
	}

	id := s.resetFlows.Put(flow)
	return id, flow.State(), nil
}

// SubmitResetOTP advances the identified flow past the code step.
func (s *AuthService) SubmitResetOTP(ctx context.Context, flowID, otp string) (authflow.FlowState, error) {
	flow, err := s.resetFlows.Get(flowID)
	if err != nil {
		return authflow.FlowState{}, err
	}

	if err := flow.SubmitOTP(ctx, otp); err != nil {
		return flow.State(), err
	}
	return flow.State(), nil
}

// CompleteReset sets the new password and retires the flow.
func (s *AuthService) CompleteReset(ctx context.Context, flowID, password string) (authflow.FlowState, error) {
	flow, err := s.resetFlows.Get(flowID)
	if err != nil {
		return authflow.FlowState{}, err
	}

	if err := flow.SubmitNewPassword(ctx, password); err != nil {
		return flow.State(), err
	}

	s.resetFlows.Remove(flowID)
	return flow.State(), nil
}

// ResetBack reverts the identified flow one step.
func (s *AuthService) ResetBack(flowID string) (authflow.FlowState, error) {
	flow, err := s.resetFlows.Get(flowID)
	if err != nil {
		return authflow.FlowState{}, err
	}

	if err := flow.Back(); err != nil {
		return flow.State(), err
	}
	return flow.State(), nil
}

// ResendResetOTP re-sends the reset code, subject to the cooldown.
func (s *AuthService) ResendResetOTP(ctx context.Context, flowID string) (authflow.FlowState, error) {
	flow, err := s.resetFlows.Get(flowID)
	if err != nil {
		return authflow.FlowState{}, err
	}

	if err := flow.Resend(ctx); err != nil {
		return flow.State(), err
	}
	return flow.State(), nil
}

// AbandonReset drops the identified flow, if it still exists.
func (s *AuthService) AbandonReset(flowID string) {
	s.resetFlows.Remove(flowID)
}

func (s *AuthService) signupFlow(email string) *authflow.SignupFlow {
	email = strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	flow, ok := s.signupFlows[email]
	if !ok {
		// The server no longer holds this browser's flow (restart or
		// eviction); rebuild it from the pending cookie.
		flow = authflow.ResumePendingSignupFlow(s.client, email, s.cooldown, s.now)
		s.signupFlows[email] = flow
	}
	return flow
}

func (s *AuthService) storeSignupFlow(email string, flow *authflow.SignupFlow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signupFlows[email] = flow
}

func (s *AuthService) dropSignupFlow(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.signupFlows, strings.ToLower(email))
}
