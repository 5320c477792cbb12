package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"syroswaitlist/config"
	_ "syroswaitlist/docs"
	"syroswaitlist/internal/adapters/email"
	"syroswaitlist/internal/adapters/ratelimit"
	deliveryhttp "syroswaitlist/internal/delivery/http"
	"syroswaitlist/internal/delivery/http/controllers"
	"syroswaitlist/internal/delivery/http/helpers"
	"syroswaitlist/internal/delivery/http/middleware"
	"syroswaitlist/internal/repository/postgres"
	"syroswaitlist/internal/services"
)

// @title Syros Waitlist API
// @version 1.0
// @description Waitlist signup and inbound email service for the Syros landing page.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	waitlistRepo := postgres.NewWaitlistRepository(db)
	inboundRepo := postgres.NewInboundEmailRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SES.Region,
			AccessKeyID:        cfg.Email.SES.AccessKeyID,
			SecretAccessKey:    cfg.Email.SES.SecretAccessKey,
			InsecureSkipVerify: cfg.Email.SES.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to initialize mailer", "err", err)
		os.Exit(1)
	}

	limiter := ratelimit.NewFixedWindow(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.BaseURL)
	waitlistSvc := services.NewWaitlistService(waitlistRepo, limiter, emailSvc, logger)
	inboundSvc := services.NewInboundEmailService(inboundRepo, cfg.Webhook.SigningSecret, cfg.Webhook.InboundAddress, logger)

	waitlistCtrl := controllers.NewWaitlistController(logger, waitlistSvc)
	emailCtrl := controllers.NewEmailController(logger, emailSvc, inboundSvc)

	mux := deliveryhttp.NewRouter(waitlistCtrl, emailCtrl, cfg.AdminSecret, logger)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			helpers.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"email_provider", cfg.Email.Provider,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
