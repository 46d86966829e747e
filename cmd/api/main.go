package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"catalog-manager/internal/cache"
	"catalog-manager/internal/config"
	"catalog-manager/internal/handlers"
	"catalog-manager/internal/logger"
	"catalog-manager/internal/metrics"
	"catalog-manager/internal/repository"
	"catalog-manager/internal/routes"
	"catalog-manager/internal/selection"
	"catalog-manager/internal/sku"
	"catalog-manager/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, err := store.Open(ctx, cfg)
	if err != nil {
		zlog.Fatal("could not open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer kv.Close()

	skus := sku.NewGenerator(kv, sku.WithLogger(zlog))
	repo, err := repository.NewProductRepository(ctx, kv, skus, repository.WithLogger(zlog))
	if err != nil {
		zlog.Fatal("could not load products", zap.Error(err))
	}

	pageCache := cache.New(cfg.CacheTTL)
	go pageCache.RunJanitor(ctx, 5*time.Minute)

	m := metrics.New()
	h := handlers.NewProductHandler(repo, selection.NewListState(cfg.PageSize), pageCache, m, zlog)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), handlers.RequestID(), handlers.Logger(zlog))
	routes.RegisterRoutes(router, h, m)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("🚀 Server running", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
}
