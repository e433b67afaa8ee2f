// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Inkpress HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/inkpress/internal/api"
	"github.com/taibuivan/inkpress/internal/core/blog"
	"github.com/taibuivan/inkpress/internal/core/category"
	"github.com/taibuivan/inkpress/internal/core/company"
	"github.com/taibuivan/inkpress/internal/core/interview"
	"github.com/taibuivan/inkpress/internal/core/story"
	"github.com/taibuivan/inkpress/internal/platform/assets"
	"github.com/taibuivan/inkpress/internal/platform/config"
	"github.com/taibuivan/inkpress/internal/platform/constants"
	"github.com/taibuivan/inkpress/internal/platform/migration"
	pgstore "github.com/taibuivan/inkpress/internal/platform/postgres"
	redisstore "github.com/taibuivan/inkpress/internal/platform/redis"
	"github.com/taibuivan/inkpress/internal/platform/sec"
	"github.com/taibuivan/inkpress/internal/site/contact"
	"github.com/taibuivan/inkpress/internal/site/sitedetail"
	"github.com/taibuivan/inkpress/internal/users/admin"
	"github.com/taibuivan/inkpress/internal/users/user"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "inkpress"))
	slog.SetDefault(log)

	log.Info("[Inkpress] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "inkpress"))
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

	// ── 6. Token Service & Asset Host ─────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.TokenTTL)
	must(log, err, "initialize jwt service")

	uploader, err := assets.NewS3Uploader(startupCtx, cfg)
	must(log, err, "initialize asset uploader")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userService := user.NewService(user.NewPostgresRepository(pool), jwtSvc, log)
	userHandler := user.NewHandler(userService, cfg.IsProduction())

	adminService := admin.NewService(admin.NewPostgresRepository(pool), jwtSvc, log)
	adminHandler := admin.NewHandler(adminService)

	storyService := story.NewService(story.NewPostgresRepository(pool), uploader, log)
	storyHandler := story.NewHandler(storyService)

	companyService := company.NewService(company.NewPostgresRepository(pool), log)
	companyHandler := company.NewHandler(companyService)

	blogService := blog.NewService(blog.NewPostgresRepository(pool), uploader, log)
	blogHandler := blog.NewHandler(blogService)

	interviewService := interview.NewService(interview.NewPostgresRepository(pool), uploader, log)
	interviewHandler := interview.NewHandler(interviewService)

	categoryRepository := category.NewCachedRepository(category.NewPostgresRepository(pool), rdb)
	categoryService := category.NewService(categoryRepository, log)
	categoryHandler := category.NewHandler(categoryService)

	contactService := contact.NewService(contact.NewPostgresRepository(pool), log)
	contactHandler := contact.NewHandler(contactService)

	siteDetailService := sitedetail.NewService(sitedetail.NewPostgresRepository(pool), log)
	siteDetailHandler := sitedetail.NewHandler(siteDetailService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		User:       userHandler,
		Admin:      adminHandler,
		Story:      storyHandler,
		Company:    companyHandler,
		Blog:       blogHandler,
		Interview:  interviewHandler,
		Category:   categoryHandler,
		Contact:    contactHandler,
		SiteDetail: siteDetailHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
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
