package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charadas/charadas-api/internal/app"
	"github.com/charadas/charadas-api/internal/config"
	"github.com/charadas/charadas-api/pkg/logger"
	"github.com/charadas/charadas-api/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL is read before the config so config errors are visible
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: store=%s redis=%v rate_limit=%v", cfg.Store.Driver, cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, closeStore, err := app.OpenService(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	redisClient := app.ConnectRedis(ctx, cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := app.NewRouter(cfg, svc, redisClient, startTime)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("starting charadas API on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Errorf("server failed: %v", err)
		}
	case <-ctx.Done():
		logger.Infof("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
