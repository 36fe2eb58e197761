package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greenmiles/greenroute/internal/routing"
	"github.com/greenmiles/greenroute/pkg/common"
	"github.com/greenmiles/greenroute/pkg/config"
	"github.com/greenmiles/greenroute/pkg/errors"
	"github.com/greenmiles/greenroute/pkg/logger"
	"github.com/greenmiles/greenroute/pkg/middleware"
	redisClient "github.com/greenmiles/greenroute/pkg/redis"
	"github.com/greenmiles/greenroute/pkg/resilience"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	serviceName = "routes-service"
	version     = "1.0.0"
)

func main() {
	if os.Getenv("PORT") == "" {
		os.Setenv("PORT", "8081")
	}
	cfg, err := config.Load(serviceName)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting routes service",
		zap.String("service", serviceName),
		zap.String("version", version),
	)

	sentryConfig := errors.DefaultSentryConfig()
	sentryConfig.ServerName = serviceName
	sentryConfig.Release = version
	if err := errors.InitSentry(sentryConfig); err != nil {
		logger.Warn("Failed to initialize Sentry, continuing without error tracking", zap.Error(err))
	} else {
		defer errors.Flush(2 * time.Second)
	}

	redis, err := redisClient.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, continuing without caching", zap.Error(err))
		redis = nil
	} else {
		defer redis.Close()
		logger.Info("Connected to Redis")
	}

	var redisIface redisClient.ClientInterface
	if redis != nil {
		redisIface = redis
	}

	geocoder := routing.NewNominatimGeocoder(
		cfg.Upstream.NominatimBaseURL,
		cfg.Upstream.UserAgent,
		cfg.Upstream.Timeout(),
		redisIface,
	)
	routeSource := routing.NewOSRMRouteSource(
		cfg.Upstream.OSRMBaseURL,
		cfg.Upstream.UserAgent,
		cfg.Upstream.Timeout(),
	)

	if cfg.Resilience.CircuitBreaker.Enabled {
		cbCfg := cfg.Resilience.CircuitBreaker
		geocoder.SetCircuitBreaker(resilience.NewCircuitBreaker(resilience.Settings{
			Name:             "nominatim",
			Interval:         time.Duration(cbCfg.IntervalSeconds) * time.Second,
			Timeout:          time.Duration(cbCfg.TimeoutSeconds) * time.Second,
			FailureThreshold: uint32(cbCfg.FailureThreshold),
			SuccessThreshold: uint32(cbCfg.SuccessThreshold),
		}, nil))
		routeSource.SetCircuitBreaker(resilience.NewCircuitBreaker(resilience.Settings{
			Name:             "osrm",
			Interval:         time.Duration(cbCfg.IntervalSeconds) * time.Second,
			Timeout:          time.Duration(cbCfg.TimeoutSeconds) * time.Second,
			FailureThreshold: uint32(cbCfg.FailureThreshold),
			SuccessThreshold: uint32(cbCfg.SuccessThreshold),
		}, nil))
		logger.Info("Circuit breakers enabled for upstream geo services")
	}

	service := routing.NewService(geocoder, routeSource, redisIface)
	handler := routing.NewHandler(service)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RecoveryWithSentry())
	router.Use(middleware.SentryMiddleware())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestTimeout(cfg.Server.RequestTimeoutDuration()))
	router.Use(middleware.RequestLogger(serviceName))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics(serviceName))
	router.Use(middleware.ErrorHandler())

	router.GET("/healthz", common.HealthCheck(serviceName, version))
	router.GET("/health/live", common.LivenessProbe(serviceName, version))

	healthChecks := make(map[string]func() error)
	if redis != nil {
		healthChecks["redis"] = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redis.Ping(ctx).Err()
		}
	}
	router.GET("/health/ready", common.ReadinessProbe(serviceName, version, healthChecks))

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": serviceName, "version": version})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}
