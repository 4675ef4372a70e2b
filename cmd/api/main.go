// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

// Command api is the entry point for the blog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Build the token service and session guard.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
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

	"github.com/padrocha/blog-api/internal/api"
	"github.com/padrocha/blog-api/internal/like"
	"github.com/padrocha/blog-api/internal/platform/config"
	"github.com/padrocha/blog-api/internal/platform/constants"
	"github.com/padrocha/blog-api/internal/platform/migration"
	pgstore "github.com/padrocha/blog-api/internal/platform/postgres"
	redisstore "github.com/padrocha/blog-api/internal/platform/redis"
	"github.com/padrocha/blog-api/internal/platform/sec"
	"github.com/padrocha/blog-api/internal/post"
	"github.com/padrocha/blog-api/internal/tag"
	"github.com/padrocha/blog-api/internal/user"
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

	log.Info("service_initializing")

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

	// ── 6. Token Service & Session Guard ──────────────────────────────────
	// An absent signing secret is a fatal misconfiguration; refusing to start
	// beats issuing credentials signed with an empty key.
	tokenService, err := sec.NewTokenService(cfg.SessionSecret, time.Now)
	must(log, err, "initialize token service")

	userRepository := user.NewPostgresRepository(pool)
	guard := sec.NewGuard(tokenService, user.NewIdentityStore(userRepository), time.Now)

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
	userService := user.NewService(userRepository, tokenService)
	userHandler := user.NewHandler(userService)

	postRepository := post.NewPostgresRepository(pool)
	postService := post.NewService(postRepository, log, time.Now)
	postHandler := post.NewHandler(postService)

	tagRepository := tag.NewPostgresRepository(pool)
	tagService := tag.NewService(tagRepository)
	tagHandler := tag.NewHandler(tagService)

	likeRepository := like.NewPostgresRepository(pool)
	likeCache := like.NewRedisCountCache(rdb)
	likeService := like.NewService(likeRepository, likeCache, log)
	likeHandler := like.NewHandler(likeService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		User:      userHandler,
		Post:      postHandler,
		Tag:       tagHandler,
		Like:      likeHandler,
	}

	// The server context outlives startup: it feeds the rate limiter's
	// cleanup loop, which runs for the life of the process.
	server := api.NewServer(context.Background(), cfg, log, guard, handlers)

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
