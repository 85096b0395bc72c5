// Package metrics provides Prometheus instrumentation for the finance engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ProjectionsTotal counts calculator runs, partitioned by kind.
	ProjectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finlab_projections_total",
		Help: "Total calculator projections computed",
	}, []string{"kind"})

	// TradesTotal counts simulator trades, partitioned by side.
	TradesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finlab_trades_total",
		Help: "Total simulator trades settled",
	}, []string{"side"})

	// TradeRejections counts trades refused by validation (insufficient
	// funds/shares, bad quantity).
	TradeRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finlab_trade_rejections_total",
		Help: "Simulator trades rejected by validation",
	}, []string{"reason"})

	// GamesStarted counts game sessions, partitioned by kind.
	GamesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finlab_games_started_total",
		Help: "Game sessions started",
	}, []string{"kind"})

	// GamesCompleted counts sessions that reached their terminal turn.
	GamesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finlab_games_completed_total",
		Help: "Game sessions played to the end",
	}, []string{"kind"})

	// WebSocketClients tracks connected WebSocket clients.
	WebSocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "finlab_websocket_clients",
		Help: "Number of connected WebSocket clients",
	})

	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finlab_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "finlab_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware returns an HTTP middleware that records request metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		duration := time.Since(start).Seconds()

		// Use the raw path for the label; the API surface is small enough
		// that cardinality stays bounded.
		path := r.URL.Path
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
