package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/insightdelivered/card-statement-parser/internal/api"
	"github.com/insightdelivered/card-statement-parser/internal/config"
	"github.com/insightdelivered/card-statement-parser/internal/extractor"
	"github.com/insightdelivered/card-statement-parser/internal/logging"
	"github.com/insightdelivered/card-statement-parser/internal/metrics"
	"github.com/insightdelivered/card-statement-parser/internal/storage"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	slog.SetDefault(logger)

	if cfg.Features.OCREnabled && !extractor.OCRAvailable() {
		logger.Warn("OCR enabled but unavailable; scanned statements will be rejected")
	}

	h := &api.Handler{
		Extractor:      extractor.New(cfg.Features.OCREnabled, logger),
		Metrics:        metrics.New(),
		Logger:         logger,
		Version:        version,
		MaxUploadBytes: cfg.Server.MaxUploadBytes(),
	}

	if cfg.Database.Enabled() {
		db, err := storage.NewDatabase(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		h.Store = db
		logger.Info("statement history enabled", slog.String("path", cfg.Database.Path))
	}

	app := api.NewApp(h, api.ServerOptions{
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		EnableMetrics:    cfg.Features.MetricsEnabled,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", cfg.Server.Addr()), slog.String("version", version))
		errCh <- app.Listen(cfg.Server.Addr())
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-sc:
		logger.Info("shutting down", slog.String("signal", sig.String()))
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("shutdown failed", slog.Any("error", err))
		}
	}
	logger.Info("server stopped")
	return nil
}
