package ratelimit

import (
	"sync"
	"time"

	"syroswaitlist/internal/domain"
)

// Counter state is in-memory only. Losing it on restart is acceptable:
// the limiter exists for abuse mitigation, not as a security boundary.

// maxTrackedKeys caps the counter map. When a new window would push the map
// past this size, expired windows are swept first.
const maxTrackedKeys = 10000

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindow is a per-key fixed-window request counter: each key gets at
// most limit requests per window, with the count resetting when the window
// elapses. Safe for concurrent use.
type FixedWindow struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	length  time.Duration
	now     func() time.Time
}

// NewFixedWindow returns a FixedWindow allowing limit requests per key per
// window length.
func NewFixedWindow(limit int, length time.Duration) *FixedWindow {
	return &FixedWindow{
		windows: make(map[string]*window),
		limit:   limit,
		length:  length,
		now:     time.Now,
	}
}

// Allow reports whether key may perform another request now, consuming one
// slot of the current window if so. A key's first request, or its first
// request after the window elapsed, starts a fresh window.
func (l *FixedWindow) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		if len(l.windows) >= maxTrackedKeys {
			l.sweep(now)
		}
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.length)}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// sweep drops expired windows. Caller must hold l.mu.
func (l *FixedWindow) sweep(now time.Time) {
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}

var _ domain.RateLimiter = (*FixedWindow)(nil)
