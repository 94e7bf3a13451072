package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clarkher/piggerTimeLine/internal/api"
	"github.com/clarkher/piggerTimeLine/internal/config"
	"github.com/clarkher/piggerTimeLine/internal/feed"
	"github.com/clarkher/piggerTimeLine/internal/refresh"
	"github.com/clarkher/piggerTimeLine/internal/view"
)

func main() {
	// Logger
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Palette
	palette := view.DefaultPalette()
	if cfg.PalettePath != "" {
		palette, err = view.LoadPalette(cfg.PalettePath)
		if err != nil {
			logger.Error("failed to load palette", "path", cfg.PalettePath, "error", err)
			os.Exit(1)
		}
	}

	// Feed source
	var source feed.Source
	switch cfg.FeedSource {
	case config.SourceSheets:
		source, err = feed.NewSheetsSource(context.Background(), cfg.GoogleAPIKey, cfg.SheetID, cfg.SheetRange)
		if err != nil {
			logger.Error("failed to create sheets source", "error", err)
			os.Exit(1)
		}
	default:
		source = feed.NewHTTPSource(cfg.FeedEndpoint, cfg.FetchTimeout)
	}

	loader := feed.NewLoader(source, logger)

	// Background refresh, scoped so shutdown cancels any in-flight fetch
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()

	refresher := refresh.New(loader, cfg.RefreshInterval, logger)
	go refresher.Run(refreshCtx)

	// View builder
	builder := view.NewBuilder(view.Options{
		Policy:  cfg.ColoringPolicy,
		Palette: palette,
		PadDays: cfg.WindowPadDays,
	})

	// Router
	router := api.NewRouter(refresher, builder, logger)

	// Server
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("timeline server starting", "addr", addr, "source", source.Name(), "interval", cfg.RefreshInterval.String())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")
	stopRefresh()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
