package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"syroswaitlist/internal/delivery/http/helpers"
)

// RequireAdmin returns a wrapper that checks the Authorization header
// against the static shared admin secret using a constant-time comparison.
// An empty secret disables the guarded endpoints entirely rather than
// leaving them open.
func RequireAdmin(secret string, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				logger.Warn("admin endpoint hit but no admin secret is configured", "path", r.URL.Path)
				helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			provided := strings.TrimSpace(auth[len(prefix):])
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				logger.Warn("rejected admin request", "path", r.URL.Path)
				helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next(w, r)
		}
	}
}
