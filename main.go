package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/robotstore/robot-store/backend/go-services/handlers"
	"github.com/robotstore/robot-store/backend/go-services/internal/config"
	"github.com/robotstore/robot-store/backend/go-services/internal/database"
	"github.com/robotstore/robot-store/backend/go-services/internal/errorlog"
	"github.com/robotstore/robot-store/backend/go-services/internal/product/service"
	"github.com/robotstore/robot-store/backend/go-services/internal/router"
	"github.com/robotstore/robot-store/backend/go-services/pkg/logger"
	"github.com/robotstore/robot-store/backend/go-services/pkg/metrics"
	"github.com/robotstore/robot-store/backend/go-services/pkg/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: env=%s mongo=%v redis=%v rate_limit=%v",
		cfg.Server.Environment, cfg.MongoDB.URI != "", cfg.RedisAddr() != "", cfg.RateLimit.Enabled)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]handlers.Check{}

	// Storage: MongoDB when configured, otherwise in-memory (data is lost on exit).
	var products *service.Service
	var errorRepo errorlog.Repository
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		gw := database.NewGateway(client, cfg.MongoDB.Database)
		products = service.NewMongoService(gw.Collection(database.ProductsCollection))
		errorRepo = errorlog.NewMongoRepository(gw.Collection(database.ErrorsCollection))
		checks["mongo"] = gw.Ping
		logger.Infof("using MongoDB database %q", cfg.MongoDB.Database)
	} else {
		logger.Warn("MONGODB_URI not set; using in-memory storage")
		products = service.NewMemoryService()
		errorRepo = errorlog.NewMemoryRepository()
	}

	// Redis is only needed by the distributed rate limiter.
	var rdb *redis.Client
	if cfg.RedisAddr() != "" && cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", cfg.RedisAddr(), err)
		} else {
			logger.Infof("connected to Redis for rate limiting: %s", cfg.RedisAddr())
		}
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	var rateLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			rateLimit = middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		} else {
			rateLimit = middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	errorLog := middleware.NewErrorLogger(errorlog.NewService(errorRepo), cfg.ErrorLog.Timeout)
	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router.Handler(router.Deps{
			Products:       products,
			ErrorLog:       errorLog,
			RateLimit:      rateLimit,
			Checks:         checks,
			TrustedProxies: cfg.Server.TrustedProxies,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("robot-store listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
	// pending error-log writes are bounded by ERROR_LOG_TIMEOUT
	errorLog.Wait()
	logger.Info("error log drained")
}
