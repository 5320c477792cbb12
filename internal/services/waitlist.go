package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"syroswaitlist/internal/domain"
)

type waitlistService struct {
	repo    domain.WaitlistRepository
	limiter domain.RateLimiter
	emails  domain.EmailService
	logger  *slog.Logger
}

// NewWaitlistService creates a WaitlistService with the given repository,
// rate limiter, and email service. The email service may be nil, in which
// case no welcome email is attempted.
func NewWaitlistService(repo domain.WaitlistRepository, limiter domain.RateLimiter, emails domain.EmailService, logger *slog.Logger) domain.WaitlistService {
	return &waitlistService{
		repo:    repo,
		limiter: limiter,
		emails:  emails,
		logger:  logger,
	}
}

// Submit runs the admission pipeline: rate limit, validate, check for an
// existing signup, insert, then attempt the welcome email. Only the insert
// can fail the request; a duplicate insert (two submissions racing past the
// existence check) is folded into the already-subscribed soft success so
// submitting the same email is always idempotent from the caller's view.
func (s *waitlistService) Submit(ctx context.Context, clientKey, email, name, source string) (domain.SubmitStatus, error) {
	if !s.limiter.Allow(clientKey) {
		return 0, domain.ErrRateLimited
	}

	normalized := domain.NormalizeEmail(email)
	if !domain.ValidEmail(normalized) {
		return 0, domain.ErrInvalidEmail
	}

	exists, err := s.repo.ExistsByEmail(ctx, normalized)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing signup: %w", err)
	}
	if exists {
		return domain.SubmitAlreadySubscribed, nil
	}

	entry := &domain.WaitlistEntry{
		ID:        uuid.NewString(),
		Email:     normalized,
		Name:      domain.SanitizeName(name),
		Source:    domain.SanitizeSource(source),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return domain.SubmitAlreadySubscribed, nil
		}
		return 0, fmt.Errorf("failed to store signup: %w", err)
	}
	s.logger.Info("waitlist signup", "email", entry.Email, "source", entry.Source)

	// Best effort: the entry is committed, a failed welcome email only gets logged.
	if s.emails != nil {
		data := &domain.WelcomeEmailData{Email: entry.Email, Name: entry.Name}
		if _, err := s.emails.SendWelcome(ctx, data); err != nil {
			s.logger.Warn("failed to send welcome email", "email", entry.Email, "err", err)
		}
	}

	return domain.SubmitCreated, nil
}

func (s *waitlistService) List(ctx context.Context) ([]domain.WaitlistEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	return entries, nil
}
