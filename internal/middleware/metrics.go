package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "media_store"

var (
	inFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Requests currently being served.",
	})

	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requests by route and status class.",
	}, []string{"method", "route", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Request latency by route.",
		// оплата ждет шлюз, поэтому длинный хвост
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "route"})

	responseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "Response body size by route.",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 7),
	}, []string{"route"})

	replaysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "idempotent_replays_total",
		Help:      "Responses served from the idempotency store instead of the handler.",
	}, []string{"route"})
)

// ReplayHeader выставляется, когда ответ взят из хранилища идемпотентности.
const ReplayHeader = "Idempotent-Replayed"

// Metrics считает запросы по шаблону маршрута chi.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inFlight.Inc()
		defer inFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)
		next.ServeHTTP(rw, r)

		route := routePattern(r)
		requestsTotal.WithLabelValues(r.Method, route, statusClass(rw.status)).Inc()
		requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		responseSize.WithLabelValues(route).Observe(float64(rw.bytes))
		if rw.Header().Get(ReplayHeader) != "" {
			replaysTotal.WithLabelValues(route).Inc()
		}
	})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return "unknown"
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}
