package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics wraps a dedicated prometheus.Registry (not the global
// default) so tests can stand up independent servers without
// colliding on metric registration.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the http_requests_total / http_request_duration_seconds
// pair labeled {code, method, route}, matching the code/method/route
// convention used for request metrics across the pack.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests handled.",
	}, []string{"code", "method", "route"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"code", "method", "route"})

	reg.MustRegister(requests, duration)

	return &Metrics{registry: reg, requests: requests, duration: duration}
}

// Middleware records request count and latency for every route except
// /metrics itself, which would otherwise scrape its own traffic.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "invalid"
		}
		code := statusBucket(c.Writer.Status())

		m.requests.WithLabelValues(code, c.Request.Method, route).Inc()
		m.duration.WithLabelValues(code, c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry in the Prometheus text exposition
// format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func statusBucket(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2XX"
	case status >= 300 && status < 400:
		return "3XX"
	case status >= 400 && status < 500:
		return "4XX"
	case status >= 500:
		return "5XX"
	default:
		return "invalid"
	}
}
