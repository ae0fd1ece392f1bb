package authflow

import (
	"regexp"
	"unicode"

	"github.com/learnhub/learnhub/internal/pkg/apperrors"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`)

// ValidateEmail checks the address shape before any backend call is made.
// Input is expected lowercase.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

// ValidateOTP requires exactly length digits.
func ValidateOTP(otp string, length int) error {
	if len(otp) != length {
		return apperrors.ErrInvalidOTP
	}
	for _, r := range otp {
		if !unicode.IsDigit(r) {
			return apperrors.ErrInvalidOTP
		}
	}
	return nil
}

// ValidatePassword enforces the minimum length rule shared by signup and
// password reset.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.ErrInvalidPassword
	}
	return nil
}
