package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "albadr_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "albadr_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Business metrics
	OrdersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "albadr_orders_placed_total",
			Help: "Total number of orders created",
		},
	)

	QuoteResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "albadr_delivery_quotes_total",
			Help: "Delivery quote resolutions by outcome",
		},
		[]string{"result"},
	)

	// Authentication metrics
	LoginAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "albadr_login_attempts_total",
			Help: "Total number of staff login attempts",
		},
	)

	LoginFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "albadr_login_failures_total",
			Help: "Total number of failed staff logins",
		},
	)
)
