package helpers

import (
	"net/http"
	"strings"
)

// ClientIP derives the rate-limit client key for a request: the first entry
// of X-Forwarded-For, falling back to X-Real-IP, falling back to "unknown".
// Behind a trusted proxy these headers identify the real caller; without one
// everything buckets under "unknown", which only makes the limiter stricter.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return "unknown"
}
