package app

import (
	"context"
	"time"

	"github.com/charadas/charadas-api/internal/config"
	"github.com/charadas/charadas-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// ConnectRedis returns a client for the configured Redis, or nil when no host
// is set or the server does not answer a ping. A nil client makes NewRouter
// fall back to the in-memory rate limiter.
func ConnectRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if cfg.Redis.Host == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})

	pctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		logger.Warnf("failed to connect to Redis (%s), using in-memory rate limiter: %v", cfg.Redis.Addr(), err)
		_ = client.Close()
		return nil
	}
	logger.Infof("connected to Redis: %s", cfg.Redis.Addr())
	return client
}
