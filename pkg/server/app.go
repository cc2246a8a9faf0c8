package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "SADE/internal/domain/repository"
	"SADE/pkg/config"
	xhttp "SADE/pkg/http"
	applogger "SADE/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
	store      domrepo.SnapshotStore
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, store domrepo.SnapshotStore) *App {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(cfg.Metrics.Path))
	}

	return &App{
		cfg:        cfg,
		logger:     l,
		httpServer: xhttp.NewServer(handler, l, opts...),
		store:      store,
	}
}

// Server exposes the HTTP server, mainly for tests.
func (a *App) Server() *xhttp.Server { return a.httpServer }

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("SADE backend running",
		applogger.String("addr", a.httpServer.Addr()),
		applogger.String("env", a.cfg.Environment),
		applogger.String("cache", a.cfg.Cache.Backend),
		applogger.Bool("metrics", a.cfg.Metrics.Enabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	a.logger.Info("shutdown signal received")
	return a.Shutdown(context.Background())
}

// Shutdown gracefully stops the HTTP server and releases the store.
func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var firstErr error
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		firstErr = err
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("snapshot store close error", applogger.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	a.logger.Info("shutdown complete")
	return firstErr
}
