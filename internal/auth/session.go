package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the explicit session context passed to every authenticated
// API call. It replaces module-global token storage so the token lifecycle
// is injectable and testable. The token is set once per login flow and
// read many times afterward; reads and writes are never concurrent.
type Session struct {
	token string
}

// NewSession creates a session holding the given opaque token. An empty
// token yields an unauthenticated session.
func NewSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the stored opaque token ("" when unauthenticated).
func (s *Session) Token() string {
	return s.token
}

// SetToken replaces the stored token. Called on successful login.
func (s *Session) SetToken(token string) {
	s.token = token
}

// Clear drops the stored token. Called on logout.
func (s *Session) Clear() {
	s.token = ""
}

// Authenticated reports whether a token is present. It says nothing about
// whether the server still accepts it.
func (s *Session) Authenticated() bool {
	return s.token != ""
}

// Expired reports whether the token carries a JWT expiry that has passed.
// The client has no signing key, so claims are parsed unverified — this is
// a local heuristic to prompt a fresh login before a doomed request, not a
// security check. Tokens without a parsable expiry are assumed live.
func (s *Session) Expired() bool {
	if s.token == "" {
		return false
	}
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}
