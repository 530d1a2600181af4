package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/config"
	"github.com/SergeyBogomolovv/media-store-orders/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter
	closers   []Closer

	cancel context.CancelFunc
	group  *errgroup.Group
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Idempotency-Key"},
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:  logger,
		httpSrv: httpSrv,
		router:  router,
	}
}

type HttpHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HttpHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = consumers
}

// Starter is a background job bound to the application lifetime.
// It must stop once ctx is cancelled.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

// Closer releases a resource after consumers and the server are stopped.
type Closer interface {
	Close() error
}

func (a *application) SetClosers(closers ...Closer) {
	a.closers = closers
}

// StarterFunc adapts a function to Starter.
type StarterFunc func(ctx context.Context) error

func (f StarterFunc) Start(ctx context.Context) error {
	return f(ctx)
}

func (a *application) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen %s: %w", a.httpSrv.Addr, err)
	}

	ctx, a.cancel = context.WithCancel(ctx)
	a.group, ctx = errgroup.WithContext(ctx)

	for _, s := range a.starters {
		a.group.Go(func() error {
			err := s.Start(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	for _, c := range a.consumers {
		a.group.Go(func() error {
			c.Consume(ctx)
			return nil
		})
	}

	a.group.Go(func() error {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	a.logger.Info("application started")
	return nil
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	var errs []error

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	if a.cancel != nil {
		a.cancel()
	}
	if a.group != nil {
		if err := a.group.Wait(); err != nil {
			errs = append(errs, err)
		}
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
