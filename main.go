package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vybe/internal/config"
	"vybe/internal/database"
	"vybe/internal/repositories"
	"vybe/internal/seed"
	"vybe/internal/server"
	"vybe/internal/services"
	"vybe/internal/stylist"
	"vybe/internal/tracing"
	"vybe/pkg/cache"
	"vybe/pkg/rabbitmq"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logOpts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsDevelopment() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, logOpts)))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, logOpts)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.OTLPEndpoint, "vybe", cfg.Env)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("tracer shutdown failed", slog.String("error", err.Error()))
		}
	}()

	// --- Database ---
	db, err := database.Open(database.Config{
		Driver:          cfg.DatabaseDriver,
		DSN:             cfg.DatabaseDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		LogQueries:      cfg.IsDevelopment(),
	})
	if err != nil {
		return err
	}
	defer database.Close(db)
	if err := database.Migrate(db); err != nil {
		return err
	}

	// --- Cache ---
	var facetCache cache.Cache = cache.NewMemoryCache()
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisURL, "vybe")
		if err != nil {
			return err
		}
		defer redisCache.Close()
		facetCache = redisCache
	}

	// --- Events ---
	var events services.EventPublisher = services.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			return err
		}
		defer mqClient.Close()
		events = mqClient

		go func() {
			slog.Info("starting event consumer", slog.String("queue", rabbitmq.EventsQueue))
			if err := mqClient.Consume(rabbitmq.LogEvent); err != nil {
				slog.Error("event consumer stopped", slog.String("error", err.Error()))
			}
		}()
	}

	// --- Stylist ---
	var outfitStylist stylist.Stylist = stylist.NewTemplateStylist()
	if cfg.AI.Enabled() {
		outfitStylist = stylist.NewAIStylist(stylist.AIConfig{
			APIKey:          cfg.AI.APIKey,
			Endpoint:        cfg.AI.Endpoint,
			Model:           cfg.AI.Model,
			Timeout:         cfg.AI.Timeout,
			BreakerFailures: cfg.AI.BreakerFailures,
			BreakerCooldown: cfg.AI.BreakerCooldown,
		})
		slog.Info("AI stylist enabled", slog.String("model", cfg.AI.Model))
	} else {
		slog.Info("AI stylist disabled, using style templates")
	}

	// --- Repositories and services ---
	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	savedRepo := repositories.NewGORMSavedItemRepository(db)
	outfitRepo := repositories.NewGORMOutfitRepository(db)

	svc := server.Services{
		Auth:     services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL),
		Products: services.NewProductService(productRepo, reviewRepo, savedRepo, facetCache, cfg.CacheTTL),
		Accounts: services.NewAccountService(userRepo, savedRepo, productRepo, reviewRepo, outfitRepo, events),
		Outfits: services.NewOutfitService(outfitRepo, productRepo, userRepo, outfitStylist, events, services.OutfitServiceConfig{
			DailyLimit: cfg.DailyGenerationCap,
			Location:   cfg.StoreLocation,
		}),
	}

	if cfg.SeedCatalog {
		if _, err := seed.Catalog(ctx, productRepo, svc.Products); err != nil {
			return err
		}
	}

	app := server.NewApp(svc, server.Options{RequestLog: true})

	// --- Start HTTP Server ---
	listenErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", slog.String("port", cfg.Port), slog.String("env", cfg.Env))
		listenErr <- app.Listen(cfg.Port)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return err
		}
		return errors.New("server stopped unexpectedly")
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("error during fiber shutdown", slog.String("error", err.Error()))
	}
	slog.Info("server gracefully stopped")
	return nil
}
