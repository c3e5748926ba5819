package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ducktide/factory-service/config"
	"github.com/ducktide/factory-service/pkg/cache"
	"github.com/ducktide/factory-service/pkg/clock"
	"github.com/ducktide/factory-service/pkg/logger"

	catRepoPkg "github.com/ducktide/factory-service/internal/catalog/repository"
	catUCPkg "github.com/ducktide/factory-service/internal/catalog/usecase"

	invRepoPkg "github.com/ducktide/factory-service/internal/inventory/repository"
	invUCPkg "github.com/ducktide/factory-service/internal/inventory/usecase"

	fulUCPkg "github.com/ducktide/factory-service/internal/fulfillment/usecase"

	prodRepoPkg "github.com/ducktide/factory-service/internal/production/repository"
	prodUCPkg "github.com/ducktide/factory-service/internal/production/usecase"

	priceUCPkg "github.com/ducktide/factory-service/internal/pricing/usecase"

	salesRepoPkg "github.com/ducktide/factory-service/internal/sales/repository"
	salesUCPkg "github.com/ducktide/factory-service/internal/sales/usecase"

	purchRepoPkg "github.com/ducktide/factory-service/internal/purchasing/repository"
	purchUCPkg "github.com/ducktide/factory-service/internal/purchasing/usecase"

	"github.com/ducktide/factory-service/internal/ops"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User,
		cfg.Postgres.Password, cfg.Postgres.DBName, cfg.Postgres.SSLMode,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second)
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis (optional; pricing falls back to recompute-only)
	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, pricing cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 5. Clock. SIM_CLOCK_START pins the process to a simulated clock and
	// enables the time operations.
	var appClock clock.Clock = clock.System{}
	var simClock *clock.Simulated
	if start := os.Getenv("SIM_CLOCK_START"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			appLogger.Fatal("Invalid SIM_CLOCK_START", zap.String("value", start), zap.Error(err))
		}
		simClock = clock.NewSimulated(t)
		appClock = simClock
		appLogger.Info("Running on simulated clock", zap.Time("start", t))
	}

	// 6. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	salesRepo := salesRepoPkg.NewPGRepository(db)
	purchRepo := purchRepoPkg.NewPGRepository(db)

	// 7. Initialize UseCases
	catUC := catUCPkg.NewCatalogUseCase(catRepo, cfg.Pricing, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, catUC, appLogger)
	fulUC := fulUCPkg.NewFulfillmentUseCase(catUC, invUC, cfg.Fulfillment, appClock, appLogger)
	prodUC := prodUCPkg.NewProductionUseCase(prodRepo, invUC, cfg.Production, appClock, appLogger)
	priceUC := priceUCPkg.NewPricingUseCase(catUC, cfg.Pricing, redisClient, appLogger)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, catUC, priceUC, appClock, appLogger)
	purchUC := purchUCPkg.NewPurchasingUseCase(purchRepo, catUC, appClock, appLogger)

	// 8. Build the operation registry and HTTP surface
	registry := ops.Build(ops.Deps{
		Catalog:     catUC,
		Inventory:   invUC,
		Fulfillment: fulUC,
		Production:  prodUC,
		Pricing:     priceUC,
		Sales:       salesUC,
		Purchasing:  purchUC,
		Clock:       appClock,
		SimClock:    simClock,
	})

	if !logConfig.IsDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	ops.NewHandler(registry, appLogger).RegisterRoutes(router)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
