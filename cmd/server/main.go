package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/chayachobi/summercamp-backend/internal/config"
	"github.com/chayachobi/summercamp-backend/internal/database"
	"github.com/chayachobi/summercamp-backend/internal/handler"
	"github.com/chayachobi/summercamp-backend/internal/logger"
	"github.com/chayachobi/summercamp-backend/internal/payment"
	"github.com/chayachobi/summercamp-backend/internal/repository"
	"github.com/chayachobi/summercamp-backend/internal/router"
	"github.com/chayachobi/summercamp-backend/internal/service"
	"github.com/chayachobi/summercamp-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet; a bare fatal is all we can do.
		bootLog := logger.Setup("info", "pretty")
		bootLog.Fatal().Err(err).Msg("Configuration error")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Summer Camp Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool, cfg.DBTimeout)
	classRepo := repository.NewClassRepository(pool, cfg.DBTimeout)
	selectionRepo := repository.NewSelectionRepository(pool, cfg.DBTimeout)
	enrollmentRepo := repository.NewEnrollmentRepository(pool, cfg.DBTimeout)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo)
	classService := service.NewClassService(classRepo)
	enrollmentService := service.NewEnrollmentService(selectionRepo, enrollmentRepo)
	paymentService := service.NewPaymentService(payment.NewStripeClient(cfg.PaymentSecretKey))

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		User:       handler.NewUserHandler(userService),
		Class:      handler.NewClassHandler(classService),
		Enrollment: handler.NewEnrollmentHandler(enrollmentService),
		Payment:    handler.NewPaymentHandler(paymentService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, userService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
