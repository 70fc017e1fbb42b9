// Package metrics provides Prometheus metrics collection for the storefront service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CatalogSearchesTotal tracks catalog searches, labelled by whether a query was supplied.
	CatalogSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of catalog searches",
		},
		[]string{"filtered"},
	)

	// CartAdditionsTotal tracks cart line item additions.
	CartAdditionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_additions_total",
			Help: "Total number of cart additions",
		},
		[]string{"status"},
	)

	// CartCorruptionResetsTotal tracks how many times a corrupt persisted cart was reset.
	CartCorruptionResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_corruption_resets_total",
			Help: "Total number of corrupt cart states reset to an empty list",
		},
	)

	// CartItems tracks the current number of persisted cart line items.
	CartItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_items",
			Help: "Current number of persisted cart line items",
		},
	)

	// SelectionsActive tracks the number of currently open selections.
	SelectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "selections_active",
			Help: "Number of currently open product selections",
		},
	)

	// ToastsPushedTotal tracks pushed success notifications.
	ToastsPushedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "toasts_pushed_total",
			Help: "Total number of pushed toast notifications",
		},
	)

	// CacheOperationsTotal tracks search cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCatalogSearch records a catalog search.
func RecordCatalogSearch(filtered bool) {
	CatalogSearchesTotal.WithLabelValues(strconv.FormatBool(filtered)).Inc()
}

// RecordCartAddition records a cart addition outcome.
func RecordCartAddition(status string) {
	CartAdditionsTotal.WithLabelValues(status).Inc()
}

// RecordCartCorruptionReset records a corrupt cart reset.
func RecordCartCorruptionReset() {
	CartCorruptionResetsTotal.Inc()
}

// UpdateCartItems updates the persisted cart size gauge.
func UpdateCartItems(count int) {
	CartItems.Set(float64(count))
}

// RecordToastPushed records a pushed toast notification.
func RecordToastPushed() {
	ToastsPushedTotal.Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
