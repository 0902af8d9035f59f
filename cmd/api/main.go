// Copyright (c) 2026 Randfin. All rights reserved.

// Command api is the entry point for the Randfin HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Load and compile the rate tables.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/randfin/randfin/internal/api"
	"github.com/randfin/randfin/internal/auth"
	"github.com/randfin/randfin/internal/calc/duty"
	"github.com/randfin/randfin/internal/calc/incometax"
	"github.com/randfin/randfin/internal/calc/invest"
	"github.com/randfin/randfin/internal/calc/loan"
	"github.com/randfin/randfin/internal/calc/salary"
	"github.com/randfin/randfin/internal/content/article"
	"github.com/randfin/randfin/internal/content/category"
	"github.com/randfin/randfin/internal/content/comment"
	"github.com/randfin/randfin/internal/content/media"
	"github.com/randfin/randfin/internal/platform/config"
	"github.com/randfin/randfin/internal/platform/constants"
	"github.com/randfin/randfin/internal/platform/migration"
	pgstore "github.com/randfin/randfin/internal/platform/postgres"
	redisstore "github.com/randfin/randfin/internal/platform/redis"
	"github.com/randfin/randfin/internal/platform/sec"
	"github.com/randfin/randfin/internal/rates"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Randfin] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Rate Tables ────────────────────────────────────────────────────
	rateStore, err := rates.Load(cfg.RatesPath, log)
	must(log, err, "load rate tables")

	// ── 7. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
		CheckRates: func() error {
			if rateStore.Year(rateStore.DefaultYear()) == nil {
				return fmt.Errorf("default tax year %q is not loaded", rateStore.DefaultYear())
			}
			return nil
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	accountRepository := auth.NewPostgresAccountRepository(pool)
	sessionRepository := auth.NewRedisSessionRepository(rdb)
	authService := auth.NewService(accountRepository, sessionRepository, jwtSvc, log)

	categoryService := category.NewService(category.NewPostgresRepository(pool), log)
	articleService := article.NewService(article.NewPostgresRepository(pool), log)
	commentService := comment.NewService(
		comment.NewPostgresRepository(pool),
		comment.NewRedisLikeRegistry(rdb),
		log,
	)

	blobStore, err := media.NewFSBlobStore(cfg.MediaDir)
	must(log, err, "initialize media blob store")
	mediaService := media.NewService(media.NewPostgresRepository(pool), blobStore, log)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,

		Auth: auth.NewHandler(authService),

		IncomeTax: incometax.NewHandler(rateStore),
		Loan:      loan.NewHandler(),
		Invest:    invest.NewHandler(),
		Duty:      duty.NewHandler(rateStore),
		Salary:    salary.NewHandler(rateStore),

		Category: category.NewHandler(categoryService),
		Article:  article.NewHandler(articleService),
		Comment:  comment.NewHandler(commentService),
		Media:    media.NewHandler(mediaService),
	}

	// Long-lived context for background middleware loops (rate limiter cleanup).
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
