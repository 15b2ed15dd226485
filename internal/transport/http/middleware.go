package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	requestIDKey  = "rid"
	sessionIDKey  = "sid"
	sessionHeader = "X-Session-ID"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	ordersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Total number of order placement attempts",
		},
		[]string{"status"},
	)
)

// RequestID assigns each request an id, honoring one supplied by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// SessionID resolves the caller's session, minting one when the header is
// absent. The id is echoed back so browsers without cookies can persist it.
func SessionID(newID func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(sessionHeader)
		if sid == "" {
			sid = newID()
		}
		c.Set(sessionIDKey, sid)
		c.Writer.Header().Set(sessionHeader, sid)
		c.Next()
	}
}

// Logger emits one structured access log line per request.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http request",
			zap.String("rid", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Metrics collects per-route Prometheus counters and latency histograms.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

func recordOrderPlaced(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	ordersPlacedTotal.WithLabelValues(status).Inc()
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
