package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub/internal/app/models"
	"github.com/learnhub/learnhub/internal/pkg/auth"
)

// Cookie names owned by this package. Everything is httpOnly; nothing here
// is readable from page scripts.
const (
	authCookie        = "auth-token"
	verifyEmailCookie = "verify-email"
	resetFlowCookie   = "reset-flow"
)

// Store reads and writes the browser session cookies. Handlers receive a
// Store instead of touching gin's cookie API directly, which keeps cookie
// policy in one place and lets tests substitute a fake.
type Store interface {
	// Session returns the authenticated session, or nil when the request
	// carries no valid token.
	Session(c *gin.Context) *models.Session
	SetSession(c *gin.Context, token string, rememberMe bool)
	ClearSession(c *gin.Context)

	// PendingEmail is the address awaiting verification, empty if none.
	PendingEmail(c *gin.Context) string
	SetPendingEmail(c *gin.Context, email string)
	ClearPendingEmail(c *gin.Context)

	// ResetFlowID identifies the live password-reset flow, empty if none.
	ResetFlowID(c *gin.Context) string
	SetResetFlowID(c *gin.Context, id string)
	ClearResetFlowID(c *gin.Context)
}

// CookieStore is the production Store backed by httpOnly cookies. Tokens
// are validated on every read so an expired or tampered cookie behaves the
// same as a missing one.
type CookieStore struct {
	jwt        *auth.JWTService
	tokenTTL   time.Duration
	pendingTTL time.Duration
	secure     bool
}

// NewCookieStore wires the store to the token validator. pendingTTL is the
// verify-email cookie lifetime and should match the OTP validity window.
// secure controls the Secure cookie attribute and is set in production.
func NewCookieStore(jwtService *auth.JWTService, tokenTTL, pendingTTL time.Duration, secure bool) *CookieStore {
	return &CookieStore{
		jwt:        jwtService,
		tokenTTL:   tokenTTL,
		pendingTTL: pendingTTL,
		secure:     secure,
	}
}

func (s *CookieStore) Session(c *gin.Context) *models.Session {
	token, err := c.Cookie(authCookie)
	if err != nil || token == "" {
		return nil
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil
	}

	return &models.Session{
		Email:     claims.Email,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}

func (s *CookieStore) SetSession(c *gin.Context, token string, rememberMe bool) {
	maxAge := 0 // session-scoped
	if rememberMe {
		maxAge = int(s.tokenTTL.Seconds())
	}
	s.set(c, authCookie, token, maxAge)
}

func (s *CookieStore) ClearSession(c *gin.Context) {
	s.set(c, authCookie, "", -1)
}

func (s *CookieStore) PendingEmail(c *gin.Context) string {
	email, err := c.Cookie(verifyEmailCookie)
	if err != nil {
		return ""
	}
	return email
}

func (s *CookieStore) SetPendingEmail(c *gin.Context, email string) {
	s.set(c, verifyEmailCookie, email, int(s.pendingTTL.Seconds()))
}

func (s *CookieStore) ClearPendingEmail(c *gin.Context) {
	s.set(c, verifyEmailCookie, "", -1)
}

func (s *CookieStore) ResetFlowID(c *gin.Context) string {
	id, err := c.Cookie(resetFlowCookie)
	if err != nil {
		return ""
	}
	return id
}

func (s *CookieStore) SetResetFlowID(c *gin.Context, id string) {
	s.set(c, resetFlowCookie, id, 0)
}

func (s *CookieStore) ClearResetFlowID(c *gin.Context) {
	s.set(c, resetFlowCookie, "", -1)
}

func (s *CookieStore) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", s.secure, true)
}
