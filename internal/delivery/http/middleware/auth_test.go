package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionVerifier implements domain.SessionVerifier for tests.
type fakeSessionVerifier struct {
	session *domain.Session
	err     error
}

func (f *fakeSessionVerifier) Verify(token string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := *f.session
	s.Token = token
	return &s, nil
}

func TestRequireSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	tests := []struct {
		name          string
		authHeader    string
		verifier      domain.SessionVerifier
		wantStatus    int
		wantMessage   string
		nextCalled    bool
		wantContextID string
	}{
		{
			name:          "valid token sets session and calls next",
			authHeader:    "Bearer valid-token",
			verifier:      &fakeSessionVerifier{session: &domain.Session{UserID: "user-123", ExpiresAt: now.Add(time.Hour)}},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantContextID: "user-123",
		},
		{
			name:          "token without expiry is valid",
			authHeader:    "Bearer forever",
			verifier:      &fakeSessionVerifier{session: &domain.Session{UserID: "user-9"}},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantContextID: "user-9",
		},
		{
			name:        "missing authorization header",
			verifier:    &fakeSessionVerifier{session: &domain.Session{UserID: "user-123"}},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "missing authorization header",
		},
		{
			name:        "invalid authorization format no Bearer prefix",
			authHeader:  "Basic abc",
			verifier:    &fakeSessionVerifier{session: &domain.Session{UserID: "user-123"}},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid authorization format",
		},
		{
			name:        "empty token after Bearer",
			authHeader:  "Bearer ",
			verifier:    &fakeSessionVerifier{session: &domain.Session{UserID: "user-123"}},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "missing token",
		},
		{
			name:        "verifier returns error",
			authHeader:  "Bearer bad-token",
			verifier:    &fakeSessionVerifier{err: errors.New("signature is invalid")},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid token",
		},
		{
			name:        "expired session",
			authHeader:  "Bearer old-token",
			verifier:    &fakeSessionVerifier{session: &domain.Session{UserID: "user-123", ExpiresAt: now}},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "session expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var capturedUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if s, ok := domain.SessionFromContext(r.Context()); ok {
					capturedUserID = s.UserID
				}
				w.WriteHeader(http.StatusOK)
			})
			handler := RequireSession(tt.verifier, logger, clock)(next)

			req := httptest.NewRequest(http.MethodGet, "http://test/organizer/events", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			if tt.nextCalled {
				assert.Equal(t, tt.wantContextID, capturedUserID, "user ID in context")
				return
			}
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
			assert.Equal(t, tt.wantMessage, envelope.Error.Message)
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := RequireRole(domain.RoleAdmin)(ok)

	tests := []struct {
		name       string
		session    *domain.Session
		wantStatus int
	}{
		{"admin", &domain.Session{Token: "t", UserID: "u", Role: domain.RoleAdmin}, http.StatusOK},
		{"organizer", &domain.Session{Token: "t", UserID: "u", Role: domain.RoleOrganizer}, http.StatusForbidden},
		{"no session", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/snapshot/refresh", nil)
			if tt.session != nil {
				req = req.WithContext(domain.WithSession(req.Context(), tt.session))
			}
			rr := httptest.NewRecorder()
			handler(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
