package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// ContentWalkFaults counts directory listings and chapter parses that
	// degraded to an empty result instead of failing the request.
	ContentWalkFaults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_walk_faults_total",
			Help: "Total number of content tree faults degraded to empty results",
		},
		[]string{"operation"},
	)

	QuestionsServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "questions_served_total",
			Help: "Total number of question records returned by the API",
		},
	)

	StateMerges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_merges_total",
			Help: "Total number of progress state merge attempts",
		},
		[]string{"outcome"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ContentWalkFaults)
	prometheus.MustRegister(QuestionsServed)
	prometheus.MustRegister(StateMerges)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
