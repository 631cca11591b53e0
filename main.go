package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/employeedir/employeedir/backend/go-services/handlers"
	"github.com/employeedir/employeedir/backend/go-services/internal/config"
	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/employeedir/employeedir/backend/go-services/internal/employee/handler"
	"github.com/employeedir/employeedir/backend/go-services/internal/employee/service"
	"github.com/employeedir/employeedir/backend/go-services/internal/employee/store"
	"github.com/employeedir/employeedir/backend/go-services/pkg/logger"
	"github.com/employeedir/employeedir/backend/go-services/pkg/metrics"
	"github.com/employeedir/employeedir/backend/go-services/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	// LOG_LEVEL may be overridden by .env, so re-init after config load
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.Infof("config loaded: backend=%s env=%s rate_limit=%v", cfg.Store.Backend, cfg.Server.Environment, cfg.RateLimit.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := store.New(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open %s store: %v", cfg.Store.Backend, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warnf("closing store: %v", err)
		}
	}()

	if cfg.Store.Seed {
		if err := st.InitializeIfAbsent(ctx, employee.Seed()); err != nil {
			logger.Fatalf("failed to initialize employee document: %v", err)
		}
	}

	svc := service.NewDirectory(st)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.CORS(), gin.Logger(), gin.Recovery())

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis {
			rc := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
			defer rc.Close()
			if err := rc.Ping(ctx).Err(); err != nil {
				logger.Warnf("rate limiter: redis %s unreachable, using in-memory limiter: %v", cfg.RedisAddr(), err)
				r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			} else {
				win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
				r.Use(middleware.RedisRateLimitMiddleware(rc, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			}
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.RegisterHealth(r, st, cfg.Store.Backend)
	handlers.RegisterSwagger(r)
	handler.RegisterEmployeeRoutes(r, svc)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("employee directory listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server failed: %v", err)
		}
	case <-ctx.Done():
		logger.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("graceful shutdown failed: %v", err)
		}
	}
}
