package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidSignature is returned by the webhook receiver when a signing
// secret is configured and the payload signature does not match.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// EventEmailReceived is the only webhook event type this service processes.
const EventEmailReceived = "email.received"

// InboundEmail represents a verified inbound email delivered by the provider
// webhook. Only messages addressed to the configured inbound address are
// persisted.
type InboundEmail struct {
	ID          string    `json:"id"`
	FromAddress string    `json:"from_address"`
	ToAddresses []string  `json:"to_addresses"`
	CcAddresses []string  `json:"cc_addresses"`
	Subject     string    `json:"subject"`
	BodyText    string    `json:"body_text,omitempty"`
	BodyHTML    string    `json:"body_html,omitempty"`
	ReceivedAt  time.Time `json:"received_at"`
	RawPayload  []byte    `json:"-"`
}

// InboundEnvelope is the provider's webhook payload shape.
type InboundEnvelope struct {
	Type      string              `json:"type"`
	CreatedAt time.Time           `json:"created_at"`
	Data      InboundEnvelopeData `json:"data"`
}

// InboundEnvelopeData carries the email fields of an inbound envelope.
type InboundEnvelopeData struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Cc      []string `json:"cc"`
	Bcc     []string `json:"bcc"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

// InboundEmailRepository defines the interface for inbound email storage.
type InboundEmailRepository interface {
	Create(ctx context.Context, msg *InboundEmail) error
}

// InboundEmailService receives raw webhook deliveries.
//
// Receive returns ErrInvalidSignature only when verification explicitly
// fails with a configured secret. Every other failure mode (malformed
// payload, unmatched event or recipient, storage error) is logged and
// reported as success so the provider does not retry.
type InboundEmailService interface {
	Receive(ctx context.Context, rawBody []byte, signature string) error
}
