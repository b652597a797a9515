package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vanshika/campusdraw/internal/config"
	"github.com/vanshika/campusdraw/internal/logging"
	"github.com/vanshika/campusdraw/internal/server"
	"github.com/vanshika/campusdraw/internal/source"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	pathSource, err := source.Open(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to open path source", "source", cfg.Upstream.PathSource, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := pathSource.Close(context.Background()); err != nil {
			logger.Warn("closing path source failed", "error", err)
		}
	}()

	templates, err := server.LoadTemplates()
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:           server.PathSourceHealth{Source: pathSource},
		Pages:            server.NewPageHandlers(logger, pathSource, templates),
		API:              server.NewAPIHandlers(logger, pathSource),
		AllowedOrigins:   cfg.HTTP.AllowedOrigins(),
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
