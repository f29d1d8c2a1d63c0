// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Folio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL and run migrations, when DATABASE_URL is set.
//  4. Connect to Redis, when REDIS_URL is set; otherwise use the in-process store.
//  5. Wire domain services and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/taibuivan/folio/internal/api"
	"github.com/taibuivan/folio/internal/contact"
	"github.com/taibuivan/folio/internal/logs"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/kvstore"
	"github.com/taibuivan/folio/internal/platform/metrics"
	"github.com/taibuivan/folio/internal/platform/migration"
	pgstore "github.com/taibuivan/folio/internal/platform/postgres"
	redisstore "github.com/taibuivan/folio/internal/platform/redis"
	"github.com/taibuivan/folio/internal/portfolio/gallery"
	"github.com/taibuivan/folio/internal/portfolio/project"
	"github.com/taibuivan/folio/internal/search"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Folio] service_initializing", slog.String("version", constants.AppVersion))

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
		slog.Bool("database", cfg.HasDatabase()),
		slog.Bool("redis", cfg.HasRedis()),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	health := api.HealthDependencies{}

	// ── 3. PostgreSQL (optional) ──────────────────────────────────────────
	var archive contact.MessageRepository
	if cfg.HasDatabase() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		archive = contact.NewPostgresMessageRepository(pool)
		health.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	} else {
		log.Warn("contact_archive_disabled", slog.String("reason", "DATABASE_URL not set"))
	}

	// ── 4. Key-value store ────────────────────────────────────────────────
	var store kvstore.Store
	if cfg.HasRedis() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		store = kvstore.NewRedisStore(rdb)
		health.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	} else {
		log.Warn("kvstore_in_memory", slog.String("reason", "REDIS_URL not set"))
		store = kvstore.NewMemoryStore()
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	registry := metrics.New()

	projectRepository, err := project.NewEmbeddedRepository()
	must(log, err, "load project catalog")
	projectService := project.NewService(projectRepository)

	galleryService := gallery.NewService(projectService,
		gallery.NewKVSessionRepository(store, cfg.GallerySessionTTL), registry)

	logSource := logs.NewSource(cfg.LogsSource, cfg.LogsFetchTimeout)
	logService := logs.NewService(logSource,
		logs.NewKVVisitorStateRepository(store, cfg.VisitorStateTTL))
	health.CheckLogs = func() error {
		_, err := logSource.Load(context.Background())
		return err
	}

	merger := search.NewMerger(projectRepository,
		logs.NewSource(cfg.SearchLogsSource, cfg.LogsFetchTimeout),
		search.EmptyQueryPolicy(cfg.SearchEmptyQuery), registry)

	relay := contact.NewHTTPRelay(cfg.ContactRelayURL, &http.Client{Timeout: cfg.ContactRelayTimeout})
	contactService := contact.NewService(relay, archive, cfg.ContactEmail, registry)

	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Project:   project.NewHandler(projectService),
		Gallery:   gallery.NewHandler(galleryService),
		Logs:      logs.NewHandler(logService),
		Search:    search.NewHandler(merger),
		Contact:   contact.NewHandler(contactService),
		Metrics:   registry,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
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
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
