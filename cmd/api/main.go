package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-prodigy-backend/config"
	_ "go-prodigy-backend/docs" // Important for Swagger
	v1 "go-prodigy-backend/internal/delivery/http/v1"
	"go-prodigy-backend/internal/usecase"
	"go-prodigy-backend/pkg/email"
	"go-prodigy-backend/pkg/logger"
	"go-prodigy-backend/pkg/validation"
)

// @title           Prodigy Labs Backend API
// @version         1.0
// @description     Backend for the Prodigy Labs marketing site: contact form delivery and health.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.IsProduction())
	logger.Log.Info("Starting prodigy backend", "port", cfg.Port, "env", cfg.AppEnv)

	// 3. Setup Mail Transport
	transport := email.NewSMTPTransport(cfg)
	if missing := cfg.MissingMailerFields(); len(missing) > 0 {
		logger.Log.Warn("Mailer not fully configured - contact form will be unavailable", "missing", missing)
	}
	if cfg.SMTPTLSSkipVerify {
		logger.Log.Warn("SMTP certificate verification is DISABLED - do not run this way in production")
	}

	// 4. Setup UseCases
	validate := validation.New()
	contactUC := usecase.NewContactUsecase(cfg, validate, transport)
	healthUC := usecase.NewHealthUsecase(cfg)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

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
