package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"simples/internal/simples/config"
	"simples/internal/simples/handler"
	"simples/internal/simples/metrics"
	"simples/internal/simples/repository"
	"simples/internal/simples/router"
	"simples/internal/simples/service"
	"simples/internal/simples/util"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Init Logger
	if err := util.InitLogger(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to init logger:", err)
		os.Exit(1)
	}
	logger := util.GetLogger()
	defer func() { _ = logger.Sync() }()

	// 3. Init MySQL pool. Nothing is dialed yet.
	db, err := repository.OpenPool(cfg.DB)
	if err != nil {
		logger.Error("Failed to open database pool", zap.Error(err))
		os.Exit(1)
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		logger.Error("Failed to listen", zap.String("addr", cfg.Addr()), zap.Error(err))
		_ = db.Close()
		os.Exit(1)
	}

	// Buffered so a signal arriving before run selects on it is kept.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	if err := run(cfg, ln, db, logger, quit); err != nil {
		logger.Error("Server failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("Server exited properly")
}

// run serves until a signal arrives on quit, then stops the listener and
// closes the pool. A nil return means a clean, signal-driven exit.
func run(cfg *config.Config, ln net.Listener, db *sql.DB, logger *zap.Logger, quit <-chan os.Signal) error {
	repo := repository.NewMySQLRepository(db, cfg.DB.Timeout)

	collector := metrics.NewCollector()
	if err := collector.RegisterDB(db, cfg.DB.Name); err != nil {
		logger.Warn("Failed to register pool metrics", zap.Error(err))
	}

	svc := service.NewService(repo, logger, collector)
	h := handler.NewSystemHandler(svc)

	opts := router.Options{Logger: logger, Metrics: collector}
	if cfg.MetricsEnabled {
		opts.MetricsHandler = promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})
	}
	e := router.New(h, opts)

	srv := &http.Server{
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go checkDatabase(repo, logger)

	serveErr := make(chan error, 1)
	go func() {
		port := cfg.Port
		if addr, ok := ln.Addr().(*net.TCPAddr); ok {
			port = addr.Port
		}
		logger.Info("API server running",
			zap.Int("port", port),
			zap.String("health_check", fmt.Sprintf("http://localhost:%d/health", port)),
			zap.String("api_endpoint", fmt.Sprintf("http://localhost:%d/simples/system/{mapId}/{systemId}", port)),
		)

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		_ = repo.Close()
		return fmt.Errorf("serve: %w", err)
	case sig := <-quit:
		logger.Info("Signal received, shutting down gracefully", zap.String("signal", signalName(sig)))
	}

	shutdown(srv, repo, logger, cfg)
	return nil
}

// shutdown stops accepting requests, then closes the pool, which waits for
// queries already running. Failures are logged; the exit stays clean.
func shutdown(srv *http.Server, repo repository.SystemRepository, logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", zap.Error(err))
	}

	if err := repo.Close(); err != nil {
		logger.Error("Failed to close database pool", zap.Error(err))
	}
}

func checkDatabase(repo repository.SystemRepository, logger *zap.Logger) {
	if err := repo.Ping(context.Background()); err != nil {
		logger.Warn("Database not reachable yet", zap.Error(err))
		return
	}
	logger.Info("Database connection verified")
}

func signalName(sig os.Signal) string {
	switch sig {
	case syscall.SIGTERM:
		return "SIGTERM"
	case os.Interrupt:
		return "SIGINT"
	default:
		return sig.String()
	}
}
