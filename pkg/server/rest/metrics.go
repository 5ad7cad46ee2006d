package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	ExpandedEdges prometheus.Counter
	ExpandedPaths prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "number of http requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "duration of http requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		ExpandedEdges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "expanded_edges_total",
			Help: "number of original edges produced by path expansion.",
		}),
		ExpandedPaths: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "expanded_paths_total",
			Help: "number of paths expanded.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.ExpandedEdges, m.ExpandedPaths)
	return m
}

const unmatchedRoute = "unmatched"

// PromeHttpMiddleware records every request under its chi route pattern, requests no
// route matched share the "unmatched" label.
func PromeHttpMiddleware(m *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			// path mentah tidak dipakai sebagai label, jumlah label harus terbatas
			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
