package domain

import (
	"context"
	"time"
)

// SessionState is the lifecycle position of a session token.
type SessionState int

const (
	SessionAbsent SessionState = iota
	SessionValid
	SessionExpired
)

func (s SessionState) String() string {
	switch s {
	case SessionValid:
		return "valid"
	case SessionExpired:
		return "expired"
	default:
		return "absent"
	}
}

// Role codes carried by backend-issued tokens.
const (
	RoleUser      = "user"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// Session is the caller's capability token together with the claims it declares.
// It is passed explicitly (request context) instead of being read from ambient storage.
type Session struct {
	Token     string
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// State compares the declared expiry against now. A nil or token-less session is absent;
// a session without an expiry never expires.
func (s *Session) State(now time.Time) SessionState {
	if s == nil || s.Token == "" {
		return SessionAbsent
	}
	if !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt) {
		return SessionExpired
	}
	return SessionValid
}

// HasRole reports whether the session carries role.
func (s *Session) HasRole(role string) bool {
	return s != nil && s.Role == role
}

// SessionVerifier turns a raw bearer token into a Session.
type SessionVerifier interface {
	Verify(token string) (*Session, error)
}

type sessionKey struct{}

// WithSession returns a context carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by WithSession, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
