package domain

import "context"

// EmailTag is a provider-side tag attached to an outbound message
// (e.g. for analytics in the SES console).
type EmailTag struct {
	Name  string
	Value string
}

// OutboundEmail is a single transactional email to be dispatched.
type OutboundEmail struct {
	To      string
	Subject string
	HTML    string
	Text    string
	Tags    []EmailTag
}

// Mailer defines the contract for sending emails (infrastructure port).
// Send returns the provider-assigned message ID, which may be empty for
// providers that do not report one (e.g. the noop mailer).
type Mailer interface {
	Send(ctx context.Context, msg OutboundEmail) (messageID string, err error)
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData holds data for the waitlist welcome email.
type WelcomeEmailData struct {
	Email   string
	Name    string
	BaseURL string
	Year    int
}

// EmailService defines the contract for sending domain-level emails.
// Callers on the signup path must treat failures as non-fatal.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) (messageID string, err error)
	Send(ctx context.Context, to, subject, html string) (messageID string, err error)
}
