package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTP
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tyreshop_http_requests_total",
		Help: "The total number of HTTP requests served",
	}, []string{"method", "route", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tyreshop_http_request_duration_seconds",
		Help:    "The latency of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Filtering
	FilterRecomputes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tyreshop_filter_recomputes_total",
		Help: "The total number of filter recomputations",
	}, []string{"trigger"})

	FilterResultSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tyreshop_filter_result_size",
		Help:    "The number of tyres left after filtering",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	// Sessions and cart
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tyreshop_active_sessions",
		Help: "The current number of visitor sessions",
	})

	CartOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tyreshop_cart_operations_total",
		Help: "The total number of cart operations",
	}, []string{"op"})

	// Orders
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tyreshop_orders_placed_total",
		Help: "The total number of orders placed through checkout",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests)
	prometheus.MustRegister(HTTPDuration)
	prometheus.MustRegister(FilterRecomputes)
	prometheus.MustRegister(FilterResultSize)
	prometheus.MustRegister(ActiveSessions)
	prometheus.MustRegister(CartOperations)
	prometheus.MustRegister(OrdersPlaced)
}
