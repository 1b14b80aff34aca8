// Package metrics provides Prometheus instrumentation for the terminal.
//
// Wire it up once in the router:
//
//	r.Use(metrics.Middleware)
//	r.Get("/metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "brewpos",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brewpos",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// PaymentsTotal counts settled payments by tender method.
	PaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brewpos",
			Subsystem: "pos",
			Name:      "payments_total",
			Help:      "Total settled payments.",
		},
		[]string{"method"}, // "card" | "cash"
	)

	// OrdersCompleted counts checked-out counter orders.
	OrdersCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "brewpos",
			Subsystem: "pos",
			Name:      "orders_completed_total",
			Help:      "Total completed counter orders.",
		},
	)

	// OnlineOrdersReceived counts inbound delivery-platform orders.
	OnlineOrdersReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brewpos",
			Subsystem: "pos",
			Name:      "online_orders_received_total",
			Help:      "Total inbound online orders.",
		},
		[]string{"platform"},
	)
)

// Registry is the Prometheus registry used by the terminal.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	Registry.MustRegister(
		RequestDuration,
		RequestTotal,
		PaymentsTotal,
		OrdersCompleted,
		OnlineOrdersReceived,
	)
}

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request duration and count for every request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rr, r)

		status := strconv.Itoa(rr.status)
		RequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
		RequestTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
	})
}

// Handler exposes the Prometheus metrics page. Mount it on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return h.ServeHTTP
}
