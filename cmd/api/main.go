package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ekyc-labs/ekyc-api/internal/api"
	"github.com/ekyc-labs/ekyc-api/internal/auth"
	"github.com/ekyc-labs/ekyc-api/internal/config"
	"github.com/ekyc-labs/ekyc-api/internal/database"
	"github.com/ekyc-labs/ekyc-api/internal/face"
	"github.com/ekyc-labs/ekyc-api/internal/repository"
	"github.com/ekyc-labs/ekyc-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting eKYC API",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Audit store. Startup does not depend on the database: when it is
	// absent or unreachable the API keeps verifying without history.
	var store service.VerificationStoreInterface
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, running without audit store")
	} else {
		pool, err := database.NewPool(ctx, database.DefaultPoolConfig(cfg.DatabaseURL))
		if err != nil {
			logger.Warn("database unavailable, running without audit store",
				slog.Any("error", err))
		} else {
			defer pool.Close()
			store = repository.NewVerificationRepository(pool)
			logger.Info("audit store connected")
		}
	}

	// Face provider. Same policy: a failed init means degraded mode,
	// verify and detect return 503 until restart.
	faceProvider, err := face.NewFaceProvider(ctx, cfg)
	if err != nil {
		logger.Warn("face provider unavailable, running in degraded mode",
			slog.String("provider", cfg.ProviderType),
			slog.Any("error", err))
		faceProvider = nil
	} else {
		logger.Info("face provider initialized", slog.String("provider", cfg.ProviderType))
	}

	verificationService := service.NewVerificationService(store, faceProvider, cfg.Threshold, logger)

	jwtService := auth.NewJWTService(cfg.JWTSecret, "ekyc-api", cfg.TokenTTL)
	credentials := auth.NewStaticCredentials(cfg.AdminUsername, cfg.AdminPassword)
	authService := auth.NewService(credentials, jwtService, cfg.TokenTTL, logger)

	// Setup router
	router := api.NewRouter(logger, &api.Dependencies{
		VerificationService: verificationService,
		AuthService:         authService,
		JWTService:          jwtService,
		Device:              cfg.Device,
	})
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}
