package domain

// RateLimiter decides whether the client identified by key may perform
// another request right now, consuming one slot if so.
//
// Implementations may be fixed-window counters, token buckets, or an
// external cache; the admission pipeline only depends on this port.
type RateLimiter interface {
	Allow(key string) bool
}
