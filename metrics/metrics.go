// Package metrics defines the Prometheus instruments exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "nutrikart"

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Order metrics
	OrdersPlacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	OrderStatusUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_order_status_updates_total",
			Help: "Total number of order status transitions",
		},
		[]string{"to"},
	)

	// Restaurant approval metrics
	RestaurantDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_restaurant_decisions_total",
			Help: "Total number of admin approval decisions",
		},
		[]string{"decision"},
	)

	// Nutrition cache metrics
	NutritionCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_nutrition_cache_hits_total",
			Help: "Nutrition lookups served from stored data",
		},
	)

	NutritionCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_nutrition_cache_misses_total",
			Help: "Nutrition lookups that required a provider refresh",
		},
	)

	NutritionRefreshes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_nutrition_refreshes_total",
			Help: "Successful nutrition refreshes persisted",
		},
	)
)
