package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"red-remodels-backend/config"
	v1 "red-remodels-backend/internal/delivery/http/v1"
	"red-remodels-backend/internal/usecase"
	"red-remodels-backend/pkg/email"
	"red-remodels-backend/pkg/logger"
	"red-remodels-backend/pkg/recaptcha"
	"red-remodels-backend/pkg/redis"
	"red-remodels-backend/pkg/security"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init()
	security.InitSecurityLogger("red-remodels-backend", cfg.Environment)
	logger.Log.Info("Starting site backend", "host", cfg.Host, "port", cfg.Port, "contact_route", cfg.ContactRoute)

	// 3. Setup Redis (optional; the rate limiter falls back to its
	// in-memory counter when unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 4. Setup Mail Transport
	mailer := email.NewSMTPMailer(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Mail transport not fully configured - contact form delivery will fail")
	}

	// 5. Setup Verification + UseCase
	verifier := recaptcha.NewVerifier(cfg.RecaptchaSecret, cfg.RecaptchaMinScore)
	if cfg.RecaptchaSecret == "" {
		logger.Log.Warn("RECAPTCHA_SECRET not set - human verification is skipped")
	}
	contactUC := usecase.NewContactUsecase(cfg, mailer, verifier)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()
	logger.Log.Info("Server running", "addr", srv.Addr, "public_dir", cfg.PublicDir)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
