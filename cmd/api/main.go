package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/themosthappypiano/thewoofingoven/api/routes"
	cartpkg "github.com/themosthappypiano/thewoofingoven/internal/cart"
	"github.com/themosthappypiano/thewoofingoven/internal/catalog"
	checkoutsvc "github.com/themosthappypiano/thewoofingoven/internal/checkout"
	"github.com/themosthappypiano/thewoofingoven/internal/contact"
	"github.com/themosthappypiano/thewoofingoven/internal/orders"
	"github.com/themosthappypiano/thewoofingoven/internal/reviews"
	"github.com/themosthappypiano/thewoofingoven/internal/shipping"
	"github.com/themosthappypiano/thewoofingoven/pkg/config"
	"github.com/themosthappypiano/thewoofingoven/pkg/db"
	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
	"github.com/themosthappypiano/thewoofingoven/pkg/metrics"
	"github.com/themosthappypiano/thewoofingoven/pkg/redis"
	"github.com/themosthappypiano/thewoofingoven/pkg/stripe"
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

	if cfg.DB.AutoMigrate {
		if err := catalog.AutoMigrate(dbClient.DB()); err != nil {
			logg.Error(context.Background(), "failed to run migrations", err)
			os.Exit(1)
		}
	}
	if cfg.DB.SeedCatalog {
		if err := catalog.Seed(context.Background(), dbClient.DB()); err != nil {
			logg.Error(context.Background(), "failed to seed catalog", err)
			os.Exit(1)
		}
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	stripeClient, err := stripe.NewClient(context.Background(), cfg.Stripe, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to configure stripe", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	catalogRepo := catalog.NewRepository(dbClient.DB())
	ordersRepo := orders.NewRepository(dbClient.DB())
	reviewsRepo := reviews.NewRepository(dbClient.DB())
	contactRepo := contact.NewRepository(dbClient.DB())
	cartStore := cartpkg.NewSessionStore(redisClient, cfg.Cart.SessionTTL, logg)
	engine := shipping.NewEngine(cfg.Shipping)

	var checkoutService *checkoutsvc.Service
	if stripeClient != nil {
		checkoutService, err = checkoutsvc.NewService(catalogRepo, ordersRepo, stripeClient, engine, checkoutMetrics, cfg.Stripe.BaseURL, logg)
	} else {
		checkoutService, err = checkoutsvc.NewService(catalogRepo, ordersRepo, nil, engine, checkoutMetrics, cfg.Stripe.BaseURL, logg)
	}
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

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

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Redis:    redisClient,
			Catalog:  catalogRepo,
			Cart:     cartStore,
			Checkout: checkoutService,
			Orders:   ordersRepo,
			Reviews:  reviewsRepo,
			Contact:  contactRepo,
			Registry: registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
