package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "client error", status: http.StatusConflict, wantLevel: "level=WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(Logger(logger), Metrics)
			r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte("hello"))
			})

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

			assert.Equal(t, tc.status, rr.Code)
			out := buf.String()
			assert.Contains(t, out, tc.wantLevel)
			assert.Contains(t, out, "path=/orders/42")
			assert.Contains(t, out, "bytes=5")
		})
	}
}

func TestMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Post("/orders/{id}/payment", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Idempotency-Key") == "seen" {
			w.Header().Set(ReplayHeader, "true")
		}
		w.WriteHeader(http.StatusOK)
	})

	const route = "/orders/{id}/payment"
	okBefore := value(t, requestsTotal.WithLabelValues(http.MethodPost, route, "2xx"))
	replaysBefore := value(t, replaysTotal.WithLabelValues(route))

	for _, key := range []string{"new", "seen"} {
		req := httptest.NewRequest(http.MethodPost, "/orders/1/payment", nil)
		req.Header.Set("Idempotency-Key", key)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, okBefore+2, value(t, requestsTotal.WithLabelValues(http.MethodPost, route, "2xx")))
	assert.Equal(t, replaysBefore+1, value(t, replaysTotal.WithLabelValues(route)))
	assert.Zero(t, value(t, inFlight))
}

func value(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatal(err)
	}
	if m.Counter != nil {
		return m.Counter.GetValue()
	}
	return m.Gauge.GetValue()
}
