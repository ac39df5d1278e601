package app

import (
	"time"

	"github.com/charadas/charadas-api/handlers"
	"github.com/charadas/charadas-api/internal/charada/handler"
	"github.com/charadas/charadas-api/internal/charada/service"
	"github.com/charadas/charadas-api/internal/config"
	"github.com/charadas/charadas-api/pkg/logger"
	"github.com/charadas/charadas-api/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// NewRouter assembles the gin engine: middleware chain, charadas routes and
// operational endpoints. redisClient may be nil.
func NewRouter(cfg *config.Config, svc service.Service, redisClient *redis.Client, started time.Time) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.CORS())
	r.Use(gin.LoggerWithWriter(logger.Writer(), "/health", "/ready", "/metrics"), gin.Recovery())

	redisLimiter := cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis && redisClient != nil
	if cfg.RateLimit.Enabled {
		if redisLimiter {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			logger.Infof("rate limiter enabled (redis, rps=%.2f burst=%d window=%s)", cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiter enabled (memory, rps=%.2f burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	handler.RegisterCharadaRoutes(r, svc)
	handlers.RegisterHealth(r, handlers.HealthDeps{
		Store:        svc,
		Redis:        redisClient,
		RequireRedis: redisLimiter,
		Started:      started,
	})
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
