package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syroswaitlist/internal/domain"
)

type fakeEmailService struct {
	sendID  string
	sendErr error
	gotTo   string
}

func (f *fakeEmailService) SendWelcome(_ context.Context, _ *domain.WelcomeEmailData) (string, error) {
	return f.sendID, f.sendErr
}

func (f *fakeEmailService) Send(_ context.Context, to, _, _ string) (string, error) {
	f.gotTo = to
	return f.sendID, f.sendErr
}

type fakeInboundService struct {
	receiveErr error
	gotBody    []byte
	gotSig     string
}

func (f *fakeInboundService) Receive(_ context.Context, rawBody []byte, signature string) error {
	f.gotBody = rawBody
	f.gotSig = signature
	return f.receiveErr
}

func TestEmailSend(t *testing.T) {
	svc := &fakeEmailService{sendID: "msg-123"}
	ctrl := NewEmailController(testLogger(), svc, &fakeInboundService{})

	body := `{"to":"ada@example.com","subject":"Hello","html":"<p>Hi</p>"}`
	req := httptest.NewRequest(http.MethodPost, "/email/send", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Send(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"id":"msg-123"}`, rec.Body.String())
	assert.Equal(t, "ada@example.com", svc.gotTo)
}

func TestEmailSendMissingFields(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantText string
	}{
		{"all missing", `{}`, "Missing required fields: to, subject, html"},
		{"no subject", `{"to":"a@b.co","html":"<p>x</p>"}`, "Missing required fields: subject"},
		{"blank html", `{"to":"a@b.co","subject":"s","html":"  "}`, "Missing required fields: html"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := NewEmailController(testLogger(), &fakeEmailService{}, &fakeInboundService{})

			req := httptest.NewRequest(http.MethodPost, "/email/send", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			ctrl.Send(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantText)
		})
	}
}

func TestEmailSendFailure(t *testing.T) {
	svc := &fakeEmailService{sendErr: errors.New("ses unavailable")}
	ctrl := NewEmailController(testLogger(), svc, &fakeInboundService{})

	body := `{"to":"ada@example.com","subject":"Hello","html":"<p>Hi</p>"}`
	req := httptest.NewRequest(http.MethodPost, "/email/send", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Send(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to send email"}`, rec.Body.String())
}

func TestInboundWebhookAck(t *testing.T) {
	inbound := &fakeInboundService{}
	ctrl := NewEmailController(testLogger(), &fakeEmailService{}, inbound)

	payload := `{"type":"email.received","data":{"from":"x@y.co"}}`
	req := httptest.NewRequest(http.MethodPost, "/email/inbound", strings.NewReader(payload))
	req.Header.Set("Resend-Signature", "abc123")
	rec := httptest.NewRecorder()
	ctrl.InboundWebhook(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	assert.Equal(t, []byte(payload), inbound.gotBody)
	assert.Equal(t, "abc123", inbound.gotSig)
}

func TestInboundWebhookInvalidSignature(t *testing.T) {
	inbound := &fakeInboundService{receiveErr: domain.ErrInvalidSignature}
	ctrl := NewEmailController(testLogger(), &fakeEmailService{}, inbound)

	req := httptest.NewRequest(http.MethodPost, "/email/inbound", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	ctrl.InboundWebhook(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid signature"}`, rec.Body.String())
}

func TestInboundWebhookOversizedPayloadAckedAndDropped(t *testing.T) {
	inbound := &fakeInboundService{receiveErr: domain.ErrInvalidSignature}
	ctrl := NewEmailController(testLogger(), &fakeEmailService{}, inbound)

	// One byte over the cap. The truncated read would never verify, so the
	// payload must be dropped without consulting the receiver at all.
	body := strings.NewReader(strings.Repeat("a", maxInboundBody+1))
	req := httptest.NewRequest(http.MethodPost, "/email/inbound", body)
	req.Header.Set("Resend-Signature", "whatever")
	rec := httptest.NewRecorder()
	ctrl.InboundWebhook(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	assert.Nil(t, inbound.gotBody, "oversized payloads never reach the receiver")
}

func TestInboundWebhookAcksOtherErrors(t *testing.T) {
	inbound := &fakeInboundService{receiveErr: errors.New("db down")}
	ctrl := NewEmailController(testLogger(), &fakeEmailService{}, inbound)

	req := httptest.NewRequest(http.MethodPost, "/email/inbound", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	ctrl.InboundWebhook(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}
