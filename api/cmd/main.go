package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"net/url"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"

	"github.com/PhaniVeludurthi/catalog-service/internal/application/event"
	"github.com/PhaniVeludurthi/catalog-service/internal/application/venue"
	"github.com/PhaniVeludurthi/catalog-service/internal/config"
	rediscache "github.com/PhaniVeludurthi/catalog-service/internal/infrastructure/caching/redis"
	"github.com/PhaniVeludurthi/catalog-service/internal/infrastructure/db/postgres"
	rabbitpub "github.com/PhaniVeludurthi/catalog-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/PhaniVeludurthi/catalog-service/internal/infrastructure/webhook"
	"github.com/PhaniVeludurthi/catalog-service/internal/logger"
	"github.com/PhaniVeludurthi/catalog-service/internal/seed"
	"github.com/PhaniVeludurthi/catalog-service/internal/transport/http/handlers"
	appmw "github.com/PhaniVeludurthi/catalog-service/internal/transport/http/middleware"
	"github.com/PhaniVeludurthi/catalog-service/internal/transport/http/router"
)

// sysClock implements event.Clock using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB

	Publisher *rabbitpub.Publisher
	Cache     *rediscache.Client
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	u, _ := url.Parse(cfg.DatabaseURL)
	zlog.Info().
		Str("db_user", u.User.Username()).
		Str("db_host", u.Host).
		Str("db_db", u.Path).
		Msg("db config loaded")

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("db ping failed")
		}
	}

	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := postgres.RunMigrations(ctx, db); err != nil {
			zlog.Fatal().Err(err).Msg("migrations failed")
		}
		if err := seed.New(db, cfg.SeedDir).Run(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("seeding failed")
		}
	}

	app := NewApp(cfg, db)
	defer func() {
		if app.Publisher != nil {
			_ = app.Publisher.Close()
		}
		if app.Cache != nil {
			_ = app.Cache.Close()
		}
	}()

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func NewApp(cfg *config.Config, db *sql.DB) *App {
	// 1) Infrastructure
	eventRepo := postgres.NewEventRepo(db)
	venueRepo := postgres.NewVenueRepo(db)

	var rabbit *rabbitpub.Publisher
	var pub event.EventPublisher = event.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		rabbit = p
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	var rdb *rediscache.Client
	var cache event.Cache
	if cfg.RedisURL != "" {
		c, err := rediscache.New(cfg.RedisURL)
		if err != nil {
			zlog.Fatal().Err(err).Msg("redis init failed")
		}
		rdb = c
		cache = c
		zlog.Info().Msg("redis cache ready")
	} else {
		zlog.Warn().Msg("REDIS_URL empty: event detail caching disabled")
	}

	notifier := webhook.NewOrderServiceClient(cfg.OrderServiceURL, cfg.WebhookTimeout)

	// 2) Application
	evSvc := event.New(eventRepo, venueRepo, sysClock{}, notifier, pub, cache, cfg.CacheTTLDetails)
	vnSvc := venue.New(venueRepo)

	// 3) Transport
	events := handlers.NewEventsHandler(evSvc)
	venues := handlers.NewVenuesHandler(vnSvc)
	health := handlers.NewHealthHandler(db)

	var auth *appmw.AuthMiddleware
	if cfg.JWTSecret != "" {
		auth = appmw.NewAuth(cfg.JWTSecret, cfg.JWTIssuer)
	} else {
		zlog.Warn().Msg("JWT_SECRET empty: mutating routes are unauthenticated")
	}

	// 4) Router
	httpHandler := router.New(events, venues, health, auth, cfg)

	// 5) Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		DB:        db,
		Publisher: rabbit,
		Cache:     rdb,
	}
}
