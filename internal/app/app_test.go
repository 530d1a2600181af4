package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConsumer struct {
	consumed atomic.Bool
	closed   atomic.Bool
}

func (c *fakeConsumer) Consume(ctx context.Context) {
	c.consumed.Store(true)
	<-ctx.Done()
}

func (c *fakeConsumer) Close() error {
	c.closed.Store(true)
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func TestApplication_Lifecycle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(logger, testConfig())

	consumer := &fakeConsumer{}
	started := make(chan struct{})
	var stopped atomic.Bool
	a.SetConsumers(consumer)
	a.SetStarters(StarterFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		stopped.Store(true)
		return ctx.Err()
	}))

	errClose := errors.New("close failed")
	a.SetClosers(closerFunc(func() error { return errClose }))

	require.NoError(t, a.Start(context.Background()))

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("starter was not run")
	}
	assert.Eventually(t, consumer.consumed.Load, time.Second, 10*time.Millisecond)

	err := a.Stop()
	assert.ErrorIs(t, err, errClose)
	assert.True(t, consumer.closed.Load())
	assert.True(t, stopped.Load())
}

func TestApplication_StarterError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(logger, testConfig())

	errBoom := errors.New("boom")
	a.SetStarters(StarterFunc(func(context.Context) error { return errBoom }))

	require.NoError(t, a.Start(context.Background()))
	assert.ErrorIs(t, a.Stop(), errBoom)
}
