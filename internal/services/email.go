package services

import (
	"context"
	"fmt"
	"time"

	"syroswaitlist/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	baseURL  string
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer. baseURL is interpolated into templates that link back
// to the site.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, baseURL string) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, baseURL: baseURL}
}

// SendWelcome sends the waitlist welcome email using the "welcome" template.
func (s *emailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("welcome email data is nil")
	}
	data.BaseURL = s.baseURL
	data.Year = time.Now().Year()
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", data)
	if err != nil {
		return "", fmt.Errorf("failed to render welcome template: %w", err)
	}
	id, err := s.mailer.Send(ctx, domain.OutboundEmail{
		To:      data.Email,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
		Tags:    []domain.EmailTag{{Name: "category", Value: "waitlist-welcome"}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send welcome email: %w", err)
	}
	return id, nil
}

// Send dispatches an ad-hoc email with the given subject and HTML body.
func (s *emailService) Send(ctx context.Context, to, subject, html string) (string, error) {
	id, err := s.mailer.Send(ctx, domain.OutboundEmail{To: to, Subject: subject, HTML: html})
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return id, nil
}
