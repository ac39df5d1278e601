package middleware

import (
	"net/http"
	"sync"

	"github.com/charadas/charadas-api/pkg/metrics"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterStore holds one token bucket per client key.
type limiterStore struct {
	rps     float64
	burst   int
	buckets sync.Map // map[string]*rate.Limiter
}

func (s *limiterStore) get(key string) *rate.Limiter {
	if v, ok := s.buckets.Load(key); ok {
		return v.(*rate.Limiter)
	}
	v, _ := s.buckets.LoadOrStore(key, rate.NewLimiter(rate.Limit(s.rps), s.burst))
	return v.(*rate.Limiter)
}

func clientKey(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

// RateLimitMiddleware enforces an in-process token bucket per client IP.
// rps = allowed events per second, burst = maximum tokens in bucket.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	store := &limiterStore{rps: rps, burst: burst}
	return func(c *gin.Context) {
		if !store.get(clientKey(c)).Allow() {
			c.Header("Retry-After", "1")
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"mensagem": "Erro! - Limite de requisições excedido"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		c.Next()
	}
}
