package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pos-backend/application/integrator"
	"pos-backend/application/services"
	"pos-backend/infrastructure/cache"
	"pos-backend/infrastructure/config"
	"pos-backend/infrastructure/eventbus"
	"pos-backend/infrastructure/persistence/memory"
	"pos-backend/interfaces/http/rest"
	"pos-backend/interfaces/http/rest/handlers"
	"pos-backend/interfaces/http/rest/middleware"
	"pos-backend/pkg/auth"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting pos-backend",
		zap.String("version", version),
		zap.String("environment", cfg.Environment),
		zap.String("address", cfg.ServerAddress),
		zap.String("cacheBackend", cfg.Cache.Backend),
	)

	watcher, err := config.NewWatcher(*configPath, cfg, logger)
	if err != nil {
		return fmt.Errorf("init config watcher: %w", err)
	}
	defer watcher.Stop()
	watcher.OnReload(func(next *config.Config) {
		// Wiring is fixed at startup; a reload only surfaces what changed.
		logger.Info("configuration file changed, restart to apply structural changes",
			zap.String("logLevel", next.LogLevel),
			zap.String("cacheBackend", next.Cache.Backend),
		)
	})

	store, err := newCacheStore(cfg, logger)
	if err != nil {
		return fmt.Errorf("init cache store: %w", err)
	}
	defer store.Close()

	bus := eventbus.New(logger)

	productStore := memory.NewProductStore()
	categoryStore := memory.NewCategoryStore()
	orderStore := memory.NewOrderStore()
	customerStore := memory.NewCustomerStore()
	staffStore := memory.NewStaffStore()

	productSvc := services.NewProductService(productStore, bus, cfg.Inventory.LowStockThreshold, logger)
	categorySvc := services.NewCategoryService(categoryStore, bus, logger)
	orderSvc := services.NewOrderService(orderStore, productStore, bus, logger)
	customerSvc := services.NewCustomerService(customerStore, bus, logger)
	staffSvc := services.NewStaffService(staffStore, bus, logger)

	si := integrator.New(bus, orderSvc, productSvc, customerSvc, logger)
	si.Initialize()
	defer si.Shutdown()

	invalidator := cache.NewInvalidator(store, cache.NewRules(nil), logger)
	invalidator.Bind(bus)

	var validator *auth.Validator
	if cfg.EnableAuth {
		validator, err = auth.NewValidator(cfg.JWTSecret, cfg.JWTIssuer)
		if err != nil {
			return fmt.Errorf("init token validator: %w", err)
		}
	}

	respCache := middleware.NewResponseCache(store, cache.NewResolver(nil), logger)
	router := rest.NewRouter(cfg, rest.Handlers{
		Health:     handlers.NewHealthHandler(version),
		Products:   handlers.NewProductHandler(productSvc, logger),
		Categories: handlers.NewCategoryHandler(categorySvc, logger),
		Orders:     handlers.NewOrderHandler(orderSvc, logger),
		Customers:  handlers.NewCustomerHandler(customerSvc, logger),
		Staff:      handlers.NewStaffHandler(staffSvc, logger),
	}, respCache, validator, logger)

	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("address", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown", zap.Error(err))
	}

	// Let queued event reactions finish before the process exits.
	bus.Close()
	logger.Info("shutdown complete")
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

func newCacheStore(cfg *config.Config, logger *zap.Logger) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Cache.RedisAddr, err)
		}
		return cache.NewRedisStore(client, cfg.Cache.DefaultTTL, logger), nil
	case config.CacheBackendMemory:
		store := cache.NewMemoryStore(cfg.Cache.DefaultTTL, logger)
		store.StartSweep(cfg.Cache.SweepInterval)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
