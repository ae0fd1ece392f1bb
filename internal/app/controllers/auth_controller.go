package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub/internal/app/authflow"
	"github.com/learnhub/learnhub/internal/app/models/dto"
	"github.com/learnhub/learnhub/internal/app/services"
	"github.com/learnhub/learnhub/internal/middleware"
	"github.com/learnhub/learnhub/internal/pkg/apperrors"
	"github.com/learnhub/learnhub/internal/pkg/session"
)

// AuthController handles signup, login and the password reset flow. All
// browser state lives in httpOnly cookies managed through the session
// store; handlers never read cookies directly.
type AuthController struct {
	authService *services.AuthService
	sessions    session.Store
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, sessions session.Store, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Signup creates an account and parks the browser at pending-verification.
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, pendingEmail, err := c.authService.Signup(ctx.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.sessions.SetPendingEmail(ctx, pendingEmail)

	c.logger.Info().Str("email", pendingEmail).Msg("Signup accepted, verification pending")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SignupResponse{Message: result.Message, Email: pendingEmail},
	})
}

// VerifyEmail confirms the emailed code and opens a session. The pending
// address is resumed from its cookie; when the cookie has expired the code
// is treated as expired too.
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	email := req.Email
	if email == "" {
		email = c.sessions.PendingEmail(ctx)
	}
	if email == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrOTPExpired)
		return
	}

	result, err := c.authService.VerifyEmail(ctx.Request.Context(), email, req.OTP)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.sessions.ClearPendingEmail(ctx)
	c.sessions.SetSession(ctx, result.Token, false)

	c.logger.Info().Str("email", email).Msg("Email verified, session opened")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: result.Message},
	})
}

// ResendVerification re-sends the code for the pending address.
func (c *AuthController) ResendVerification(ctx *gin.Context) {
	email := c.sessions.PendingEmail(ctx)
	if email == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrOTPExpired)
		return
	}

	if err := c.authService.ResendVerification(ctx.Request.Context(), email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The cookie lifetime tracks the code lifetime, so refresh it.
	c.sessions.SetPendingEmail(ctx, email)

	state := c.authService.PendingState(email)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FlowStateResponse{
			Step:              string(state.Phase),
			Email:             email,
			Message:           "Verification code sent",
			ResendAvailableIn: cooldownSeconds(state.ResendAvailableIn),
		},
	})
}

// Login authenticates and opens a session, or parks the browser at
// pending-verification when the address was never confirmed.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, pendingEmail, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !result.EmailVerified {
		c.sessions.SetPendingEmail(ctx, pendingEmail)
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data: dto.LoginResponse{Message: result.Message, EmailVerified: false},
		})
		return
	}

	c.sessions.SetSession(ctx, result.Token, req.RememberMe)

	c.logger.Info().Str("email", req.Email).Bool("rememberMe", req.RememberMe).Msg("Login successful")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.LoginResponse{Message: result.Message, EmailVerified: true},
	})
}

// Logout clears the session cookie. Always succeeds, even without one.
// Any password reset flow the browser had in progress is abandoned.
func (c *AuthController) Logout(ctx *gin.Context) {
	if sess := c.sessions.Session(ctx); sess != nil {
		c.authService.Logout(sess.Email)
	}
	if flowID := c.sessions.ResetFlowID(ctx); flowID != "" {
		c.authService.AbandonReset(flowID)
	}

	c.sessions.ClearSession(ctx)
	c.sessions.ClearPendingEmail(ctx)
	c.sessions.ClearResetFlowID(ctx)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Logged out"},
	})
}

// ForgotPassword starts a password reset flow and hands the browser its
// flow id via cookie.
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	flowID, state, err := c.authService.StartPasswordReset(ctx.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.sessions.SetResetFlowID(ctx, flowID)

	c.logger.Info().Str("email", req.Email).Msg("Password reset flow started")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: flowStateDTO(state, "Reset code sent"),
	})
}

// ForgotPasswordVerifyOTP advances the browser's flow past the code step.
func (c *AuthController) ForgotPasswordVerifyOTP(ctx *gin.Context) {
	var req dto.ResetOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	flowID := c.sessions.ResetFlowID(ctx)
	if flowID == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrFlowNotFound)
		return
	}

	state, err := c.authService.SubmitResetOTP(ctx.Request.Context(), flowID, req.OTP)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: flowStateDTO(state, "")})
}

// ForgotPasswordReset sets the new password and retires the flow.
func (c *AuthController) ForgotPasswordReset(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	flowID := c.sessions.ResetFlowID(ctx)
	if flowID == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrFlowNotFound)
		return
	}

	state, err := c.authService.CompleteReset(ctx.Request.Context(), flowID, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.sessions.ClearResetFlowID(ctx)

	c.logger.Info().Msg("Password reset completed")
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: flowStateDTO(state, "Password reset successful"),
	})
}

// ForgotPasswordResend re-sends the reset code, subject to the cooldown.
func (c *AuthController) ForgotPasswordResend(ctx *gin.Context) {
	flowID := c.sessions.ResetFlowID(ctx)
	if flowID == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrFlowNotFound)
		return
	}

	state, err := c.authService.ResendResetOTP(ctx.Request.Context(), flowID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: flowStateDTO(state, "Reset code sent"),
	})
}

// ForgotPasswordBack reverts the browser's flow one step.
func (c *AuthController) ForgotPasswordBack(ctx *gin.Context) {
	flowID := c.sessions.ResetFlowID(ctx)
	if flowID == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrFlowNotFound)
		return
	}

	state, err := c.authService.ResetBack(flowID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: flowStateDTO(state, "")})
}

func flowStateDTO(state authflow.FlowState, message string) dto.FlowStateResponse {
	return dto.FlowStateResponse{
		Step:              string(state.Step),
		Email:             state.Email,
		Message:           message,
		ResendAvailableIn: cooldownSeconds(state.ResendAvailableIn),
	}
}

// cooldownSeconds rounds a remaining cooldown up to whole seconds so a
// client never retries a moment too early.
func cooldownSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
