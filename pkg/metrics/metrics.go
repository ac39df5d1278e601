package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CharadaRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "charadas", Name: "requests_total", Help: "Number of charadas API responses by operation and status code."},
		[]string{"operation", "status"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "charadas", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "charadas", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(CharadaRequests)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
