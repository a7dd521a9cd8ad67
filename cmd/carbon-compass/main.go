package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/carboncompass/footprint/internal/api"
	"github.com/carboncompass/footprint/internal/carbon"
	"github.com/carboncompass/footprint/internal/config"
	"github.com/carboncompass/footprint/internal/store"
)

func main() {
	flags, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flags); err != nil {
		fmt.Fprintf(os.Stderr, "[carbon-compass] Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads the file named by flags, then applies environment and
// flag overrides, in that order.
func loadConfig(flags *Flags) (*config.Config, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if flags.ListenAddr != "" {
		cfg.Server.ListenAddr = flags.ListenAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, flags *Flags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logger := config.NewLogger(cfg.Logging, os.Stderr)
	log.Logger = logger

	config.ValidateTestModeEnv(logger)
	testMode := config.IsTestMode()
	if testMode {
		logger = logger.Level(zerolog.DebugLevel)
		logger.Info().Msg("Test mode enabled")
	}

	cors, err := config.ParseCORSConfig(logger)
	if err != nil {
		return err
	}

	db, err := store.NewSQLiteStore(cfg.Database.Path, config.ComponentLogger(logger, "store"))
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close store")
		}
	}()

	srv := api.NewServer(api.Options{
		Estimator:            carbon.NewEstimator(),
		Store:                db,
		Logger:               logger,
		Tokens:               cfg.Auth.Tokens,
		PointsPerCalculation: cfg.Points.PerCalculation,
		MaxBodyBytes:         cfg.Server.MaxBodyBytes,
		RequestsPerSecond:    cfg.RateLimit.RequestsPerSecond,
		Burst:                cfg.RateLimit.Burst,
		TrustProxyHeaders:    cfg.Server.TrustProxyHeaders,
		CORS:                 cors,
		TestMode:             testMode,
	})
	defer srv.Close()

	if len(cfg.Auth.Tokens) == 0 {
		logger.Warn().Msg("No API tokens configured; authenticated routes will reject every request")
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", cfg.Server.ListenAddr).
			Str("database", db.Path()).
			Msg("Starting carbon compass server")
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Received shutdown signal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	logger.Info().Msg("Server stopped")
	return nil
}
