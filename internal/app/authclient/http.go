package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub/internal/pkg/apperrors"
)

// HTTPClient talks to the remote auth API. Known status codes map to
// sentinel errors (401 invalid credentials, 409 duplicate email); anything
// else surfaces as a generic message without leaking upstream detail.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewHTTPClient creates a client for the remote auth API.
func NewHTTPClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type apiMessage struct {
	Message       string `json:"message"`
	Token         string `json:"token"`
	EmailVerified *bool  `json:"emailVerified"`
}

func (c *HTTPClient) Signup(ctx context.Context, fullName, email, password string) (SignupResult, error) {
	body, status, err := c.post(ctx, "/auth/signup", map[string]string{
		"fullName": fullName,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return SignupResult{}, err
	}

	switch {
	case status == http.StatusConflict:
		return SignupResult{}, apperrors.ErrEmailAlreadyExists
	case status < 200 || status >= 300:
		return SignupResult{}, c.apiError(status, body.Message, "signup failed")
	}

	return SignupResult{Message: body.Message}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body, status, err := c.post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	if status == http.StatusUnauthorized {
		return LoginResult{}, apperrors.ErrInvalidCredentials
	}

	// An unverified account is reported in the body, not via status code.
	if body.EmailVerified != nil && !*body.EmailVerified {
		return LoginResult{Message: body.Message, EmailVerified: false}, nil
	}

	if status < 200 || status >= 300 {
		return LoginResult{}, c.apiError(status, body.Message, "login failed")
	}

	return LoginResult{Token: body.Token, Message: body.Message, EmailVerified: true}, nil
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, email, otp string) (VerifyResult, error) {
	body, status, err := c.post(ctx, "/auth/verify-email", map[string]string{
		"email": email,
		"otp":   otp,
	})
	if err != nil {
		return VerifyResult{}, err
	}

	if status < 200 || status >= 300 {
		return VerifyResult{}, c.apiError(status, body.Message, "email verification failed")
	}

	return VerifyResult{Token: body.Token, Message: body.Message}, nil
}

func (c *HTTPClient) ResendVerification(ctx context.Context, email string) error {
	body, status, err := c.post(ctx, "/auth/resend-verification", map[string]string{"email": email})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return c.apiError(status, body.Message, "failed to resend verification code")
	}
	return nil
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	body, status, err := c.post(ctx, "/auth/forgot-password", map[string]string{"email": email})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return c.apiError(status, body.Message, "failed to request password reset")
	}
	return nil
}

func (c *HTTPClient) VerifyResetOTP(ctx context.Context, email, otp string) error {
	body, status, err := c.post(ctx, "/auth/forgot-password/verify", map[string]string{
		"email": email,
		"otp":   otp,
	})
	if err != nil {
		return err
	}
	if status == http.StatusBadRequest || status == http.StatusUnauthorized {
		return apperrors.ErrOTPMismatch
	}
	if status < 200 || status >= 300 {
		return c.apiError(status, body.Message, "reset code verification failed")
	}
	return nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	body, status, err := c.post(ctx, "/auth/reset-password", map[string]string{
		"email":    email,
		"otp":      otp,
		"password": newPassword,
	})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return c.apiError(status, body.Message, "failed to reset password")
	}
	return nil
}

func (c *HTTPClient) post(ctx context.Context, endpoint string, payload map[string]string) (apiMessage, int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return apiMessage{}, 0, fmt.Errorf("failed to encode auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(raw))
	if err != nil {
		return apiMessage{}, 0, fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Auth API request failed")
		return apiMessage{}, 0, apperrors.ErrUnexpected
	}
	defer resp.Body.Close()

	// Error bodies still carry a message; decode failures on them are not
	// themselves errors.
	var body apiMessage
	_ = json.NewDecoder(resp.Body).Decode(&body)

	return body, resp.StatusCode, nil
}

func (c *HTTPClient) apiError(status int, message, fallback string) error {
	c.logger.Warn().Int("status", status).Str("message", message).Msg("Auth API returned error status")
	if message == "" {
		message = fallback
	}
	return apperrors.NewCustomError(apperrors.ErrUpstreamUnavailable, message)
}
