package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/svgforge/svgforge/pkg/audit"
	"github.com/svgforge/svgforge/pkg/config"
	"github.com/svgforge/svgforge/pkg/httpserver"
	"github.com/svgforge/svgforge/pkg/logger"
	"github.com/svgforge/svgforge/pkg/ratelimit"
	"github.com/svgforge/svgforge/pkg/requestid"
	"github.com/svgforge/svgforge/svc/optimize"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"svgforged"`

	RateLimit       int           `env:"RATE_LIMIT" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	RedisURL        string        `env:"REDIS_URL"`

	AuditDB string `env:"AUDIT_DB"`

	Pipeline optimize.Config
	HTTP     httpserver.Config
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "svgforged:", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	mode := logger.WithDevelopment(cfg.ServiceName)
	if cfg.Env == "production" {
		mode = logger.WithProduction(cfg.ServiceName)
	}
	log := logger.New(mode, logger.WithContextExtractors(requestid.LoggerExtractor()))

	store, closeStore, err := newLimiterStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	limiter, err := ratelimit.NewFixedWindow(store, cfg.RateLimit, cfg.RateLimitWindow)
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	storage, closeStorage, err := newAuditStorage(cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	svcOpts := []optimize.ServiceOption{
		optimize.WithRecorder(audit.NewRecorder(storage, log)),
		optimize.WithLogger(log),
	}
	if cfg.Pipeline.WebhookURL != "" {
		svcOpts = append(svcOpts, optimize.WithNotifier(
			optimize.NewNotifier(cfg.Pipeline.WebhookURL, cfg.Pipeline.WebhookSecret, log),
		))
	}
	svc := optimize.NewService(cfg.Pipeline, svcOpts...)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler())
	r.Mount("/v1", optimize.Router(svc, optimize.RouterOptions{
		Limiter: limiter,
		Logger:  log,
	}))

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server started", "addr", cfg.HTTP.Addr)
		}),
	)
	return srv.Run(context.Background(), r)
}

func newLimiterStore(cfg appConfig, log *slog.Logger) (ratelimit.Store, func(), error) {
	if cfg.RedisURL == "" {
		store := ratelimit.NewMemoryStore()
		return store, store.Close, nil
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	store, err := ratelimit.NewRedisStore(client)
	if err != nil {
		return nil, nil, err
	}
	log.Info("rate limit store", "backend", "redis")
	return store, func() { _ = client.Close() }, nil
}

func newAuditStorage(cfg appConfig, log *slog.Logger) (audit.Storage, func(), error) {
	if cfg.AuditDB == "" {
		return audit.NewMemoryStorage(), func() {}, nil
	}

	storage, err := audit.NewSQLiteStorage(cfg.AuditDB)
	if err != nil {
		return nil, nil, fmt.Errorf("open audit db: %w", err)
	}
	log.Info("audit storage", "backend", "sqlite", "path", cfg.AuditDB)
	return storage, func() { _ = storage.Close() }, nil
}
