// Command server runs the event discovery API.
//
//	@title						EventHub Discovery API
//	@version					1.0
//	@description				Search, filter, categorize and paginate ticketed events.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventhub/config"
	_ "eventhub/docs"
	"eventhub/internal/adapters/auth"
	"eventhub/internal/adapters/backend"
	"eventhub/internal/adapters/fixture"
	deliveryhttp "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
	"eventhub/internal/repository/postgres"
	rediscache "eventhub/internal/repository/redis"
	"eventhub/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := newEventSource(ctx, cfg)
	if err != nil {
		logger.Error("event source init failed", "source", cfg.EventsSource, "err", err)
		os.Exit(1)
	}
	defer closeSource()

	var cache domain.SnapshotCache
	if cfg.RedisURL != "" {
		rdb, err := rediscache.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, running without snapshot cache", "err", err)
		} else {
			defer rdb.Close()
			cache = rediscache.NewSnapshotCache(rdb, rediscache.DefaultSnapshotKey, cfg.SnapshotTTL)
		}
	}

	svc := services.NewDiscoveryService(source, cache, logger, cfg.PageSize, cfg.RequestTimeout)
	if err := svc.Refresh(ctx); err != nil {
		// Queries retry lazily; the cron refresher keeps trying too.
		logger.Warn("initial snapshot load failed", "err", err)
	}

	refresher, err := services.NewRefresher(svc, cfg.RefreshCron, cfg.RequestTimeout, logger)
	if err != nil {
		logger.Error("refresher init failed", "err", err)
		os.Exit(1)
	}
	refresher.Start()

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET empty: organizer and admin routes will reject every token")
	}
	mux := deliveryhttp.NewRouter(svc, auth.NewJWTVerifier(cfg.JWTSecret), logger)
	handler := middleware.CORS(cfg.CORSOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2 * cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr, "source", cfg.EventsSource, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server crashed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	refresher.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}

func newEventSource(ctx context.Context, cfg *config.Config) (domain.EventSource, func(), error) {
	switch cfg.EventsSource {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewEventRepository(db), func() { db.Close() }, nil
	case config.SourceFile:
		return fixture.NewFileEventSource(cfg.EventsFile), func() {}, nil
	default:
		client := &http.Client{Timeout: cfg.RequestTimeout}
		return backend.NewHTTPEventSource(client, cfg.BackendURL, cfg.BackendRPS), func() {}, nil
	}
}
