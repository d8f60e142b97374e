package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"delivery-fees/internal/core/cache"
	"delivery-fees/internal/core/config"
	"delivery-fees/internal/core/logger"
	"delivery-fees/internal/core/metrics"
	"delivery-fees/internal/core/server"
	feeadapter "delivery-fees/internal/features/deliveryfee/adapters"
	feehandler "delivery-fees/internal/features/deliveryfee/handler"
	"delivery-fees/internal/features/deliveryfee/ports"
	feeservice "delivery-fees/internal/features/deliveryfee/service"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// @title Delivery Fees API
// @version 1.0
// @description Delivery fee parameters and quotes for the marketplace checkout.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("persistence_enabled", cfg.Persistence.Enabled()),
	)

	// Optional persistence: the store is the source of truth, Redis only keeps it across restarts.
	var repo ports.ParameterRepository
	var storeOpts []feeservice.StoreOption
	if cfg.Persistence.Enabled() {
		redisCache, err := cache.NewRedisAdapter(cfg.Persistence.RedisURL)
		if err != nil {
			l.Fatal("Failed to create Redis adapter", zap.Error(err))
		}
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Persistence.Timeout())
		err = redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			l.Fatal("Redis Health Check Failed", zap.Error(err))
		}
		l.Info("Redis connection verified")

		repo = feeadapter.NewRedisParameterRepository(redisCache)
		storeOpts = append(storeOpts, feeservice.WithCommitHook(feeservice.PersistHook(repo, cfg.Persistence.Timeout())))
	}

	store := feeservice.NewParameterStore(storeOpts...)
	feeSvc := feeservice.NewFeeService(store, repo, metrics.NewFeeMetrics(prometheus.DefaultRegisterer))

	loadCtx, cancel := context.WithTimeout(context.Background(), cfg.Persistence.Timeout())
	err = feeSvc.Bootstrap(loadCtx)
	cancel()
	if err != nil {
		l.Fatal("Failed to load fee parameters", zap.Error(err))
	}

	feeHdl := feehandler.NewFeeHandler(feeSvc, cfg.Admin.APIKey)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/delivery-fee/parameters", feeHdl.GetParameters)
	srv.App.Patch("/delivery-fee/parameters", feeHdl.UpdateParameters)
	srv.App.Post("/delivery-fee/parameters/reset", feeHdl.ResetParameters)
	srv.App.Post("/delivery-fee/quote", feeHdl.Quote)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		l.Info("Shutting down server")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
