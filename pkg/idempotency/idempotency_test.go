package idempotency_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/pkg/idempotency"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func str(v any) string {
	switch v := v.(type) {
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = str(value)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = str(value)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := idempotency.NewStore(newFakeRedis(), time.Hour)
	key := store.Key("POST /orders/1/payment", "abc")
	assert.Equal(t, "idem:POST /orders/1/payment:abc", key)

	_, started, err := store.Begin(ctx, key)
	require.NoError(t, err)
	require.True(t, started)

	_, _, err = store.Begin(ctx, key)
	require.ErrorIs(t, err, idempotency.ErrInProgress)

	require.NoError(t, store.Complete(ctx, key, idempotency.Response{Status: 200, Body: []byte(`{"ok":true}`)}))
	res, started, err := store.Begin(ctx, key)
	require.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, 200, res.Status)
	assert.JSONEq(t, `{"ok":true}`, string(res.Body))

	require.NoError(t, store.Abort(ctx, key))
	_, started, err = store.Begin(ctx, key)
	require.NoError(t, err)
	assert.True(t, started)
}

func TestMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	calls := 0
	status := http.StatusOK
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = fmt.Fprintf(w, `{"call":%d}`, calls)
	})

	do := func(h http.Handler, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/orders/1/payment", nil)
		if key != "" {
			req.Header.Set(idempotency.Header, key)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	t.Run("replays stored response", func(t *testing.T) {
		calls = 0
		h := idempotency.Middleware(logger, idempotency.NewStore(newFakeRedis(), time.Hour))(next)

		first := do(h, "k1")
		second := do(h, "k1")

		assert.Equal(t, 1, calls)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))

		do(h, "")
		assert.Equal(t, 2, calls)
	})

	t.Run("server errors are not stored", func(t *testing.T) {
		calls = 0
		status = http.StatusInternalServerError
		defer func() { status = http.StatusOK }()
		h := idempotency.Middleware(logger, idempotency.NewStore(newFakeRedis(), time.Hour))(next)

		do(h, "k2")
		do(h, "k2")
		assert.Equal(t, 2, calls)
	})

	t.Run("store unavailable", func(t *testing.T) {
		calls = 0
		rdb := newFakeRedis()
		rdb.err = errors.New("connection refused")
		h := idempotency.Middleware(logger, idempotency.NewStore(rdb, time.Hour))(next)

		rr := do(h, "k3")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, calls)
	})
}
