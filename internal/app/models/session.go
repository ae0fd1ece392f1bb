package models

import "time"

// Session mirrors the browser-held auth session. The cookie store owns it;
// this struct is the in-process view read by the auth guard.
type Session struct {
	Email      string    `json:"email,omitempty"`
	Token      string    `json:"-"`
	ExpiresAt  time.Time `json:"expiresAt,omitempty"`
	RememberMe bool      `json:"rememberMe"`
}

// Valid reports whether the session carries a usable token.
func (s Session) Valid(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}
