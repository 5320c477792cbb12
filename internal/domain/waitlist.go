package domain

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Sentinel errors for waitlist operations.
var (
	ErrDuplicateEmail = errors.New("email already on the waitlist")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrRateLimited    = errors.New("rate limit exceeded")
)

// Field limits for waitlist signups, counted in characters. Emails longer
// than MaxEmailLength are rejected; name and source are silently truncated.
const (
	MaxEmailLength  = 320
	MaxNameLength   = 100
	MaxSourceLength = 50

	// DefaultSource tags signups that arrive without a referring surface.
	DefaultSource = "direct"
)

// Deliberately permissive local@domain.tld shape, not full RFC 5322.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// WaitlistEntry represents a single waitlist signup. Entries are insert-only:
// once created they are never updated or deleted by this service.
// swagger:model WaitlistEntry
type WaitlistEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeEmail lowercases and trims an email address. All storage and
// uniqueness checks operate on the normalized form.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidEmail reports whether a normalized email address is acceptable.
func ValidEmail(email string) bool {
	return email != "" && utf8.RuneCountInString(email) <= MaxEmailLength && emailRegexp.MatchString(email)
}

// truncateRunes shortens s to at most max characters. Slicing on a rune
// boundary keeps the result valid UTF-8, which the store requires.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// SanitizeName trims and truncates an optional display name.
func SanitizeName(raw string) string {
	return truncateRunes(strings.TrimSpace(raw), MaxNameLength)
}

// SanitizeSource trims and truncates the referring-surface tag,
// falling back to DefaultSource when empty.
func SanitizeSource(raw string) string {
	source := strings.TrimSpace(raw)
	if source == "" {
		return DefaultSource
	}
	return truncateRunes(source, MaxSourceLength)
}

// SubmitStatus distinguishes the two success shapes of a signup submission.
type SubmitStatus int

const (
	// SubmitCreated means a new entry was persisted.
	SubmitCreated SubmitStatus = iota
	// SubmitAlreadySubscribed means the email was already on the list.
	// This is a soft success, not an error.
	SubmitAlreadySubscribed
)

// WaitlistRepository defines the interface for waitlist storage.
// Create must enforce email uniqueness and return ErrDuplicateEmail on
// conflict, so that two racing submissions for the same address cannot both
// insert.
type WaitlistRepository interface {
	Create(ctx context.Context, entry *WaitlistEntry) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]WaitlistEntry, error)
}

// WaitlistService defines the business logic for waitlist admission.
type WaitlistService interface {
	// Submit runs the admission pipeline for one signup request.
	// It returns ErrRateLimited or ErrInvalidEmail for rejected requests,
	// a wrapped storage error on persistence failure, and otherwise one of
	// the SubmitStatus values. Welcome-email delivery is best effort and
	// never affects the result.
	Submit(ctx context.Context, clientKey, email, name, source string) (SubmitStatus, error)
	List(ctx context.Context) ([]WaitlistEntry, error)
}
