package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"syroswaitlist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMailer implements domain.Mailer for tests.
type fakeMailer struct {
	sent    []domain.OutboundEmail
	sendErr error
	id      string
}

func (f *fakeMailer) Send(ctx context.Context, msg domain.OutboundEmail) (string, error) {
	f.sent = append(f.sent, msg)
	if f.sendErr != nil {
		return "", f.sendErr
	}
	return f.id, nil
}

// fakeRenderer implements domain.EmailTemplateRenderer for tests.
type fakeRenderer struct {
	lastTemplate string
	lastData     any
	renderErr    error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.lastTemplate = templateName
	f.lastData = data
	if f.renderErr != nil {
		return "", "", "", f.renderErr
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendWelcome(t *testing.T) {
	mailer := &fakeMailer{id: "ses-id-1"}
	renderer := &fakeRenderer{}
	svc := NewEmailService(mailer, renderer, "https://syros.tech")

	id, err := svc.SendWelcome(context.Background(), &domain.WelcomeEmailData{Email: "jane@example.com", Name: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "ses-id-1", id)

	assert.Equal(t, "welcome", renderer.lastTemplate)
	data, ok := renderer.lastData.(*domain.WelcomeEmailData)
	require.True(t, ok)
	assert.Equal(t, "https://syros.tech", data.BaseURL)
	assert.Equal(t, time.Now().Year(), data.Year)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "jane@example.com", msg.To)
	assert.Equal(t, "subject", msg.Subject)
	assert.Equal(t, "<p>html</p>", msg.HTML)
	assert.Equal(t, "text", msg.Text)
	require.Len(t, msg.Tags, 1)
	assert.Equal(t, "waitlist-welcome", msg.Tags[0].Value)
}

func TestEmailService_SendWelcome_Errors(t *testing.T) {
	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{}, "")
		_, err := svc.SendWelcome(context.Background(), nil)
		require.Error(t, err)
	})

	t.Run("render failure", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{renderErr: errors.New("missing template")}, "")
		_, err := svc.SendWelcome(context.Background(), &domain.WelcomeEmailData{Email: "jane@example.com"})
		require.Error(t, err)
		assert.Empty(t, mailer.sent)
	})

	t.Run("mailer failure", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{sendErr: errors.New("throttled")}, &fakeRenderer{}, "")
		_, err := svc.SendWelcome(context.Background(), &domain.WelcomeEmailData{Email: "jane@example.com"})
		require.Error(t, err)
	})
}

func TestEmailService_Send(t *testing.T) {
	mailer := &fakeMailer{id: "ses-id-2"}
	svc := NewEmailService(mailer, &fakeRenderer{}, "")

	id, err := svc.Send(context.Background(), "to@example.com", "Hi", "<b>hi</b>")
	require.NoError(t, err)
	assert.Equal(t, "ses-id-2", id)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "to@example.com", mailer.sent[0].To)
	assert.Empty(t, mailer.sent[0].Tags)
}
