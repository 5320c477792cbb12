package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"syroswaitlist/internal/domain"
)

type inboundEmailService struct {
	repo          domain.InboundEmailRepository
	signingSecret string
	targetAddress string
	logger        *slog.Logger
}

// NewInboundEmailService creates the webhook receiver. An empty signingSecret
// disables signature verification (dev mode). targetAddress is the inbound
// address this deployment accepts mail for; anything else is acknowledged and
// dropped.
func NewInboundEmailService(repo domain.InboundEmailRepository, signingSecret, targetAddress string, logger *slog.Logger) domain.InboundEmailService {
	return &inboundEmailService{
		repo:          repo,
		signingSecret: signingSecret,
		targetAddress: strings.ToLower(strings.TrimSpace(targetAddress)),
		logger:        logger,
	}
}

// Receive verifies, parses, filters, and persists one webhook delivery.
// Apart from a failed signature check, every step's failure is logged and
// mapped to a success acknowledgment: the contract with the provider is to
// never trigger a retry storm over a payload we won't process anyway.
func (s *inboundEmailService) Receive(ctx context.Context, rawBody []byte, signature string) error {
	if err := s.verifySignature(rawBody, signature); err != nil {
		s.logger.Error("rejecting inbound webhook", "err", err)
		return err
	}

	var env domain.InboundEnvelope
	if err := json.Unmarshal(rawBody, &env); err != nil {
		s.logger.Warn("discarding malformed inbound payload", "err", err)
		return nil
	}
	if env.Type != domain.EventEmailReceived {
		s.logger.Debug("ignoring inbound event", "type", env.Type)
		return nil
	}
	if !s.addressedToUs(env.Data.To) {
		s.logger.Info("ignoring email not addressed to us", "to", env.Data.To)
		return nil
	}

	receivedAt := env.CreatedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}
	subject := env.Data.Subject
	if subject == "" {
		subject = "(no subject)"
	}
	msg := &domain.InboundEmail{
		ID:          uuid.NewString(),
		FromAddress: env.Data.From,
		ToAddresses: env.Data.To,
		CcAddresses: env.Data.Cc,
		Subject:     subject,
		BodyText:    env.Data.Text,
		BodyHTML:    env.Data.HTML,
		ReceivedAt:  receivedAt,
		RawPayload:  rawBody,
	}
	if msg.CcAddresses == nil {
		msg.CcAddresses = []string{}
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		// Still ack: local durability loses to not triggering upstream retries.
		s.logger.Error("failed to store inbound email", "from", msg.FromAddress, "err", err)
		return nil
	}
	s.logger.Info("inbound email stored", "from", msg.FromAddress, "subject", msg.Subject)
	return nil
}

// verifySignature checks the hex HMAC-SHA256 of the raw body against the
// provider signature header using a constant-time comparison.
func (s *inboundEmailService) verifySignature(rawBody []byte, signature string) error {
	if s.signingSecret == "" {
		s.logger.Warn("webhook signing secret not set, skipping verification")
		return nil
	}
	if signature == "" {
		return domain.ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, []byte(s.signingSecret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return domain.ErrInvalidSignature
	}
	return nil
}

func (s *inboundEmailService) addressedToUs(to []string) bool {
	for _, addr := range to {
		if strings.Contains(strings.ToLower(addr), s.targetAddress) {
			return true
		}
	}
	return false
}
