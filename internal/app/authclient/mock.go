package authclient

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub/internal/pkg/apperrors"
	"github.com/learnhub/learnhub/internal/pkg/auth"
)

// otpTTL is the validity window of issued codes. The pending-verification
// cookie lifetime matches it.
const otpTTL = 75 * time.Second

type mockAccount struct {
	FullName     string
	PasswordHash string
	Verified     bool
}

type otpEntry struct {
	Code      string
	ExpiresAt time.Time
}

// MockProvider is the in-memory auth backend for the mock build variant. It
// stores accounts with bcrypt-hashed passwords, issues short-lived numeric
// codes, and signs real session tokens. There is no email delivery; issued
// codes are logged the way the development mail path logs verification
// links.
type MockProvider struct {
	mu         sync.Mutex
	accounts   map[string]*mockAccount
	verifyOTPs map[string]otpEntry
	resetOTPs  map[string]otpEntry
	jwt        *auth.JWTService
	logger     zerolog.Logger

	// Now and GenerateOTP are seams for deterministic tests.
	Now         func() time.Time
	GenerateOTP func(length int) string
}

// NewMockProvider creates an empty in-memory auth backend.
func NewMockProvider(jwtService *auth.JWTService, logger zerolog.Logger) *MockProvider {
	return &MockProvider{
		accounts:    make(map[string]*mockAccount),
		verifyOTPs:  make(map[string]otpEntry),
		resetOTPs:   make(map[string]otpEntry),
		jwt:         jwtService,
		logger:      logger,
		Now:         time.Now,
		GenerateOTP: randomOTP,
	}
}

func (m *MockProvider) Signup(_ context.Context, fullName, email, password string) (SignupResult, error) {
	email = strings.ToLower(email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[email]; exists {
		return SignupResult{}, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return SignupResult{}, apperrors.ErrUnexpected
	}

	m.accounts[email] = &mockAccount{FullName: fullName, PasswordHash: hash}
	m.issueVerifyOTPLocked(email)

	return SignupResult{Message: "Signup successful. Please verify your email."}, nil
}

func (m *MockProvider) Login(_ context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(email)

	m.mu.Lock()
	defer m.mu.Unlock()

	account, exists := m.accounts[email]
	if !exists || !auth.CheckPassword(account.PasswordHash, password) {
		return LoginResult{}, apperrors.ErrInvalidCredentials
	}

	if !account.Verified {
		m.issueVerifyOTPLocked(email)
		return LoginResult{Message: "Please verify your email", EmailVerified: false}, nil
	}

	token, _, err := m.jwt.GenerateToken(email)
	if err != nil {
		return LoginResult{}, apperrors.ErrUnexpected
	}

	return LoginResult{Token: token, Message: "Login successful", EmailVerified: true}, nil
}

func (m *MockProvider) VerifyEmail(_ context.Context, email, otp string) (VerifyResult, error) {
	email = strings.ToLower(email)

	m.mu.Lock()
	defer m.mu.Unlock()

	account, exists := m.accounts[email]
	if !exists {
		return VerifyResult{}, apperrors.ErrAccountNotFound
	}

	if err := m.checkOTPLocked(m.verifyOTPs, email, otp); err != nil {
		return VerifyResult{}, err
	}

	delete(m.verifyOTPs, email)
	account.Verified = true

	token, _, err := m.jwt.GenerateToken(email)
	if err != nil {
		return VerifyResult{}, apperrors.ErrUnexpected
	}

	return VerifyResult{Token: token, Message: "Email successfully verified"}, nil
}

func (m *MockProvider) ResendVerification(_ context.Context, email string) error {
	email = strings.ToLower(email)

	m.mu.Lock()
	defer m.mu.Unlock()

	account, exists := m.accounts[email]
	if !exists {
		return apperrors.ErrAccountNotFound
	}
	if account.Verified {
		return apperrors.NewConflictError("email already verified")
	}

	m.issueVerifyOTPLocked(email)
	return nil
}

func (m *MockProvider) RequestPasswordReset(_ context.Context, email string) error {
	email = strings.ToLower(email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[email]; !exists {
		// Succeed silently for unknown addresses; the response never
		// reveals whether an account exists.
		m.logger.Debug().Str("email", email).Msg("Password reset requested for unknown account")
		return nil
	}

	code := m.GenerateOTP(ResetOTPLength)
	m.resetOTPs[email] = otpEntry{Code: code, ExpiresAt: m.Now().Add(otpTTL)}
	m.logger.Info().Str("email", email).Str("otp", code).Msg("Password reset code issued (development delivery)")
	return nil
}

func (m *MockProvider) VerifyResetOTP(_ context.Context, email, otp string) error {
	email = strings.ToLower(email)

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.checkOTPLocked(m.resetOTPs, email, otp)
}

func (m *MockProvider) ResetPassword(_ context.Context, email, otp, newPassword string) error {
	email = strings.ToLower(email)

	m.mu.Lock()
	defer m.mu.Unlock()

	account, exists := m.accounts[email]
	if !exists {
		return apperrors.ErrAccountNotFound
	}

	if err := m.checkOTPLocked(m.resetOTPs, email, otp); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.ErrUnexpected
	}

	delete(m.resetOTPs, email)
	account.PasswordHash = hash
	return nil
}

func (m *MockProvider) issueVerifyOTPLocked(email string) {
	code := m.GenerateOTP(VerifyOTPLength)
	m.verifyOTPs[email] = otpEntry{Code: code, ExpiresAt: m.Now().Add(otpTTL)}
	m.logger.Info().Str("email", email).Str("otp", code).Msg("Verification code issued (development delivery)")
}

func (m *MockProvider) checkOTPLocked(entries map[string]otpEntry, email, otp string) error {
	entry, exists := entries[email]
	if !exists || m.Now().After(entry.ExpiresAt) {
		delete(entries, email)
		return apperrors.ErrOTPExpired
	}
	if entry.Code != otp {
		return apperrors.ErrOTPMismatch
	}
	return nil
}

// randomOTP generates a numeric code using crypto/rand.
func randomOTP(length int) string {
	const digits = "0123456789"
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			out[i] = digits[int(time.Now().UnixNano())%len(digits)]
			continue
		}
		out[i] = digits[n.Int64()]
	}
	return string(out)
}
