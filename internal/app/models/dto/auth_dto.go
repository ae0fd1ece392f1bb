package dto

// SignupRequest represents a new account registration.
type SignupRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignupResponse acknowledges a registration pending verification.
type SignupResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// VerifyEmailRequest carries the 4-digit signup verification code. The email
// is normally resumed from the pending-verification cookie, so it is optional
// in the body.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse reports a login outcome. EmailVerified is false when the
// account exists but still awaits verification; the caller is then moved to
// the pending-verification state rather than authenticated.
type LoginResponse struct {
	Message       string `json:"message"`
	EmailVerified bool   `json:"emailVerified"`
}

// ForgotPasswordRequest starts a password-reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetOTPRequest carries the 6-digit reset code.
type ResetOTPRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// ResetPasswordRequest carries the replacement password.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// FlowStateResponse reports the current step of a password-reset flow.
type FlowStateResponse struct {
	Step    string `json:"step"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
	// ResendAvailableIn is the remaining resend cooldown in whole seconds.
	ResendAvailableIn int `json:"resendAvailableIn,omitempty"`
}
