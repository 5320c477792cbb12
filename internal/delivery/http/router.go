package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"syroswaitlist/internal/delivery/http/controllers"
	"syroswaitlist/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes.
// adminSecret guards the internal endpoints; an empty value disables them.
func NewRouter(waitlist *controllers.WaitlistController, email *controllers.EmailController, adminSecret string, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	requireAdmin := middleware.RequireAdmin(adminSecret, logger)

	// Public
	mux.HandleFunc("POST /waitlist", waitlist.Submit)

	// Webhook (authenticated by payload signature, not the admin secret)
	mux.HandleFunc("POST /email/inbound", email.InboundWebhook)

	// Internal
	mux.HandleFunc("GET /admin/waitlist", requireAdmin(waitlist.AdminList))
	mux.HandleFunc("POST /email/send", requireAdmin(email.Send))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
