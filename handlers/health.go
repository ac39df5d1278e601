package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthDeps lists the dependencies checked by /ready. Redis is only
// checked when RequireRedis is set.
type HealthDeps struct {
	Store        Pinger
	Redis        *redis.Client
	RequireRedis bool
	Started      time.Time
	PingTimeout  time.Duration
}

// RegisterHealth registers /health (liveness) and /ready (readiness).
func RegisterHealth(r *gin.Engine, deps HealthDeps) {
	if deps.PingTimeout <= 0 {
		deps.PingTimeout = 2 * time.Second
	}
	if deps.Started.IsZero() {
		deps.Started = time.Now()
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), deps.PingTimeout)
		defer cancel()

		ready := true
		status := map[string]bool{}

		status["store"] = deps.Store != nil && deps.Store.Ping(ctx) == nil
		if !status["store"] {
			ready = false
		}

		if deps.RequireRedis {
			status["redis"] = deps.Redis != nil && deps.Redis.Ping(ctx).Err() == nil
			if !status["redis"] {
				ready = false
			}
		}

		body := gin.H{"deps": status, "uptime": time.Since(deps.Started).String()}
		if !ready {
			body["status"] = "not_ready"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		body["status"] = "ready"
		c.JSON(http.StatusOK, body)
	})
}
