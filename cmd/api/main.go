package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jvboschetti/acai-storefront/api/routes"
	"github.com/jvboschetti/acai-storefront/internal/catalog"
	checkoutsvc "github.com/jvboschetti/acai-storefront/internal/checkout"
	internalorders "github.com/jvboschetti/acai-storefront/internal/orders"
	"github.com/jvboschetti/acai-storefront/internal/pix"
	"github.com/jvboschetti/acai-storefront/internal/realtime"
	"github.com/jvboschetti/acai-storefront/pkg/config"
	"github.com/jvboschetti/acai-storefront/pkg/db"
	"github.com/jvboschetti/acai-storefront/pkg/logger"
	"github.com/jvboschetti/acai-storefront/pkg/metrics"
	"github.com/jvboschetti/acai-storefront/pkg/migrate"
	"github.com/jvboschetti/acai-storefront/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, realtime fan-out limited to this instance")
	}

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStorefrontMetrics(registry)

	hub := realtime.NewHub()
	broadcaster := realtime.NewBroadcaster(hub, redisClient, logg)
	if err := broadcaster.Start(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to start realtime bridge", err)
		os.Exit(1)
	}
	defer broadcaster.Close()

	pixBuilder, err := pix.NewBuilder(pix.Merchant{
		Key:  cfg.Pix.Key,
		Name: cfg.Pix.MerchantName,
		City: cfg.Pix.MerchantCity,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to configure pix merchant", err)
		os.Exit(1)
	}

	ordersSvc := internalorders.NewService(
		internalorders.NewRepository(dbClient),
		broadcaster,
		storeMetrics,
		logg,
	)

	sessionManager := checkoutsvc.NewManager(cfg.Checkout, logg, storeMetrics)
	sessionManager.StartJanitor(context.Background())
	defer sessionManager.Close()

	checkoutService := checkoutsvc.NewService(
		sessionManager,
		catalog.Default(),
		ordersSvc,
		pixBuilder,
		cfg.Checkout.PixWindow,
		logg,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	// A typed nil would make readiness report redis as down instead of
	// absent.
	var redisPinger redis.Pinger
	if redisClient != nil {
		redisPinger = redisClient
	}

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Redis:    redisPinger,
			Catalog:  catalog.Default(),
			Checkout: checkoutService,
			Orders:   ordersSvc,
			Hub:      hub,
			Registry: registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
