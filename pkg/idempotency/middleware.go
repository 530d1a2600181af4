package idempotency

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const (
	Header         = "Idempotency-Key"
	ReplayedHeader = "Idempotent-Replayed"
)

// Middleware replays the stored response for a repeated Idempotency-Key.
// Requests without the header pass through. Server errors are not stored.
func Middleware(logger *slog.Logger, store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			key := store.Key(r.Method+" "+r.URL.Path, id)

			stored, started, err := store.Begin(ctx, key)
			switch {
			case errors.Is(err, ErrInProgress):
				writeJSON(w, http.StatusConflict, []byte(`{"message":"request is already in progress"}`))
				return
			case err != nil:
				// без redis запрос все равно выполняется
				logger.ErrorContext(ctx, "idempotency store unavailable", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			case !started:
				w.Header().Set(ReplayedHeader, "true")
				writeJSON(w, stored.Status, stored.Body)
				return
			}

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status >= http.StatusInternalServerError || !json.Valid(rec.body.Bytes()) {
				if err := store.Abort(ctx, key); err != nil {
					logger.ErrorContext(ctx, "failed to release idempotency key", slog.Any("error", err))
				}
				return
			}
			if err := store.Complete(ctx, key, Response{Status: rec.status, Body: rec.body.Bytes()}); err != nil {
				logger.ErrorContext(ctx, "failed to store idempotent response", slog.Any("error", err))
			}
		})
	}
}

type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func writeJSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}
