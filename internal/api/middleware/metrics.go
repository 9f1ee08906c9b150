package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts requests by matched route and status code
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profits_http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"route", "status"})

	// queryDuration tracks handler latency; queries are in-memory so buckets start small
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "profits_query_duration_seconds",
		Help:    "Handler duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"route"})
)

// Metrics records request counts and latency. Unmatched routes are grouped
// under "unmatched" to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		queryDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
