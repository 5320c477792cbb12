package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"syroswaitlist/internal/delivery/http/helpers"
	"syroswaitlist/internal/domain"
)

// signatureHeader is the provider's webhook signature header.
const signatureHeader = "Resend-Signature"

// maxInboundBody caps webhook payloads; anything larger than this is not a
// legitimate inbound email envelope.
const maxInboundBody = 10 << 20

// SendRequest is the request body for POST /email/send.
type SendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendResponse is the response body for POST /email/send.
type SendResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}

// InboundAck is the acknowledgment body for POST /email/inbound.
type InboundAck struct {
	Received bool `json:"received"`
}

// EmailController handles outbound email dispatch and the inbound webhook.
type EmailController struct {
	Logger  *slog.Logger
	Emails  domain.EmailService
	Inbound domain.InboundEmailService
}

// NewEmailController creates an EmailController with the given logger and services.
func NewEmailController(logger *slog.Logger, emails domain.EmailService, inbound domain.InboundEmailService) *EmailController {
	return &EmailController{Logger: logger, Emails: emails, Inbound: inbound}
}

// Send godoc
// @Summary Send an email
// @Description Dispatch a one-off email from the site address. Requires the admin Bearer secret.
// @Tags email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendRequest true "to, subject, and html are all required"
// @Success 200 {object} SendResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /email/send [post]
func (c *EmailController) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var missing []string
	if strings.TrimSpace(req.To) == "" {
		missing = append(missing, "to")
	}
	if strings.TrimSpace(req.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(req.HTML) == "" {
		missing = append(missing, "html")
	}
	if len(missing) > 0 {
		helpers.WriteError(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	id, err := c.Emails.Send(r.Context(), req.To, req.Subject, req.HTML)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SendResponse{Success: true, ID: id})
}

// InboundWebhook godoc
// @Summary Inbound email webhook
// @Description Receives provider webhook deliveries for inbound email. Responds 200 to everything except an explicit signature verification failure, so the provider never retries payloads that will not be processed.
// @Tags email
// @Accept json
// @Produce json
// @Success 200 {object} InboundAck
// @Failure 401 {object} helpers.ErrorResponse "invalid signature"
// @Router /email/inbound [post]
func (c *EmailController) InboundWebhook(w http.ResponseWriter, r *http.Request) {
	rawBody, err := io.ReadAll(io.LimitReader(r.Body, maxInboundBody+1))
	if err != nil {
		// Can't verify what we couldn't read; still ack to avoid retries.
		c.Logger.ErrorContext(r.Context(), "failed to read webhook body", "err", err)
		helpers.WriteJSON(w, http.StatusOK, InboundAck{Received: true})
		return
	}
	if len(rawBody) > maxInboundBody {
		// A truncated body would fail signature verification and turn into a
		// 401 retry loop; drop it outright and ack.
		c.Logger.WarnContext(r.Context(), "discarding oversized webhook payload", "bytes", len(rawBody))
		helpers.WriteJSON(w, http.StatusOK, InboundAck{Received: true})
		return
	}

	if err := c.Inbound.Receive(r.Context(), rawBody, r.Header.Get(signatureHeader)); err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			helpers.WriteError(w, http.StatusUnauthorized, "Invalid signature")
			return
		}
		c.Logger.ErrorContext(r.Context(), "inbound webhook error", "err", err)
	}
	helpers.WriteJSON(w, http.StatusOK, InboundAck{Received: true})
}
