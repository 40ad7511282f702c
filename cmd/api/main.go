// Package main starts the condominium dashboard gateway. It only wires
// dependencies; behaviour lives under internal/.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // report time zone must resolve in minimal images

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/comdominio/dashboard/internal/backend"
	"github.com/comdominio/dashboard/internal/config"
	"github.com/comdominio/dashboard/internal/handler"
	"github.com/comdominio/dashboard/internal/middleware"
	"github.com/comdominio/dashboard/internal/repo"
	"github.com/comdominio/dashboard/internal/service"
)

const (
	retryBackoff    = 200 * time.Millisecond
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("gateway stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("gateway stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	reportLoc, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		return fmt.Errorf("report time zone %q: %w", cfg.ReportTimezone, err)
	}

	// The ledger database only records forwarded submissions.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	logger.Info("database connection established")

	api, err := backend.New(cfg.BackendURL,
		backend.WithTimeout(cfg.BackendTimeout),
		backend.WithRetries(cfg.BackendMaxRetries, retryBackoff),
	)
	if err != nil {
		return err
	}

	submissions := repo.NewSubmissionRepo(pool)
	server := handler.NewServer(handler.Services{
		Auth:         service.NewAuthService(api),
		Condominiums: service.NewCondominiumService(api, submissions, logger),
		Maintenances: service.NewMaintenanceService(api, submissions, logger),
		Dashboard:    service.NewDashboardService(api),
		Reports:      service.NewReportService(api, logger, service.WithLocation(reportLoc)),
		Submissions:  service.NewSubmissionService(submissions),
	}, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", server.Routes())

	// WriteTimeout leaves room for upstream retries and report rendering.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "backend", cfg.BackendURL)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
