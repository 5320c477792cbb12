package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"syroswaitlist/internal/delivery/http/helpers"
	"syroswaitlist/internal/domain"
)

// User-facing copy for the public signup form. The generic retry-later
// message deliberately covers every backend failure.
const (
	msgCreated       = "You're on the list! We'll notify you when we launch. 🎉"
	msgAlreadyOnList = "You're already on the waitlist! We'll be in touch soon."
	errEmailRequired = "Email is required."
	errEmailInvalid  = "Please enter a valid email address."
	errTooManyReqs   = "Too many requests. Please try again later."
	errTryAgain      = "Something went wrong. Please try again."
)

// SubmitRequest is the request body for POST /waitlist.
type SubmitRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// AdminListResponse is the response body for GET /admin/waitlist.
type AdminListResponse struct {
	Entries []domain.WaitlistEntry `json:"entries"`
	Count   int                    `json:"count"`
}

// WaitlistController handles the public signup endpoint and the admin listing.
type WaitlistController struct {
	Logger  *slog.Logger
	Service domain.WaitlistService
}

// NewWaitlistController creates a WaitlistController with the given logger and service.
func NewWaitlistController(logger *slog.Logger, svc domain.WaitlistService) *WaitlistController {
	return &WaitlistController{Logger: logger, Service: svc}
}

// Submit godoc
// @Summary Join the waitlist
// @Description Register an email address on the waitlist. Rate limited per client IP. Submitting an address that is already registered is a success (200), not an error.
// @Tags waitlist
// @Accept json
// @Produce json
// @Param body body SubmitRequest true "Signup data (email required; name and source optional)"
// @Success 201 {object} helpers.MessageResponse "new registration"
// @Success 200 {object} helpers.MessageResponse "already registered"
// @Failure 400 {object} helpers.ErrorResponse "missing or invalid email"
// @Failure 429 {object} helpers.ErrorResponse "rate limit exceeded"
// @Failure 500 {object} helpers.ErrorResponse "persistence failure"
// @Router /waitlist [post]
func (c *WaitlistController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An unparseable body still goes through the pipeline with an empty
		// email so it consumes a rate-limit slot before failing validation.
		req = SubmitRequest{}
	}

	status, err := c.Service.Submit(r.Context(), helpers.ClientIP(r), req.Email, req.Name, req.Source)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRateLimited):
			helpers.WriteError(w, http.StatusTooManyRequests, errTooManyReqs)
		case errors.Is(err, domain.ErrInvalidEmail):
			if strings.TrimSpace(req.Email) == "" {
				helpers.WriteError(w, http.StatusBadRequest, errEmailRequired)
				return
			}
			helpers.WriteError(w, http.StatusBadRequest, errEmailInvalid)
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteError(w, http.StatusInternalServerError, errTryAgain)
		}
		return
	}

	if status == domain.SubmitAlreadySubscribed {
		helpers.WriteMessage(w, http.StatusOK, msgAlreadyOnList)
		return
	}
	helpers.WriteMessage(w, http.StatusCreated, msgCreated)
}

// AdminList godoc
// @Summary List waitlist entries
// @Description Returns all waitlist entries, newest first. Requires the admin Bearer secret.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AdminListResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /admin/waitlist [get]
func (c *WaitlistController) AdminList(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}
	if entries == nil {
		entries = []domain.WaitlistEntry{}
	}
	helpers.WriteJSON(w, http.StatusOK, AdminListResponse{Entries: entries, Count: len(entries)})
}
