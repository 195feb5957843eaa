package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// RequireSession returns a wrapper that validates the Bearer token and stores the resulting
// domain.Session in the request context. Missing, malformed, invalid and expired tokens get a 401
// and next is not called.
func RequireSession(verifier domain.SessionVerifier, logger *slog.Logger, now func() time.Time) func(http.HandlerFunc) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			session, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "session rejected", "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid token")
				return
			}
			switch session.State(now()) {
			case domain.SessionExpired:
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, domain.ErrSessionExpired.Error())
				return
			case domain.SessionAbsent:
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			next(w, r.WithContext(domain.WithSession(r.Context(), session)))
		}
	}
}

// RequireRole responds 403 unless the session placed by RequireSession carries role.
func RequireRole(role string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session, ok := domain.SessionFromContext(r.Context())
			if !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
				return
			}
			if !session.HasRole(role) {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
				return
			}
			next(w, r)
		}
	}
}
