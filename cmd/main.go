package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/media-store-orders/internal/app"
	"github.com/SergeyBogomolovv/media-store-orders/internal/config"
	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/internal/handler"
	"github.com/SergeyBogomolovv/media-store-orders/internal/notify"
	"github.com/SergeyBogomolovv/media-store-orders/internal/payment"
	"github.com/SergeyBogomolovv/media-store-orders/internal/postgres"
	"github.com/SergeyBogomolovv/media-store-orders/internal/repo"
	"github.com/SergeyBogomolovv/media-store-orders/internal/reservation"
	"github.com/SergeyBogomolovv/media-store-orders/internal/service"
	"github.com/SergeyBogomolovv/media-store-orders/internal/statemachine"
	"github.com/SergeyBogomolovv/media-store-orders/internal/stock"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/cache"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/idempotency"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/trm"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/utils"

	_ "github.com/SergeyBogomolovv/media-store-orders/docs"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// @title           Media Store Orders API
// @version         1.0
// @description     Жизненный цикл заказов, резервирование и оплата
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	st := newStorage(ctx, logger, conf)
	defer st.close()

	reservations := reservation.NewManager(logger, st.ledger, reservation.NewMemoryStore(),
		reservation.WithSweepInterval(conf.Reservation.SweepInterval))
	machine := statemachine.New(logger, st.tx, st.orders, st.history)
	validator := stock.NewValidator(logger, st.ledger, reservations, conf.Pricing.LowStockThreshold)
	statsCache := cache.NewLRU[[]byte](conf.Stats.CacheCapacity, conf.Stats.CacheTTL)

	var payments service.PaymentGateway
	switch conf.Payment.Mode {
	case config.PaymentHTTP:
		payments = payment.NewHTTPGateway(logger, conf.Payment)
	default:
		payments = payment.NewSandbox(logger)
	}

	var (
		notifier     service.Notifier
		closers      []app.Closer
		paymentGuard []func(http.Handler) http.Handler
	)
	if conf.Storage == config.StoragePostgres {
		kn := notify.NewKafkaNotifier(logger, conf.Kafka)
		notifier = kn
		closers = append(closers, kn)

		rdb := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		panicIfErr("failed to connect to redis", rdb.Ping(ctx).Err())
		logger.Info("redis connected")
		closers = append(closers, rdb)

		store := idempotency.NewStore(rdb, conf.Redis.IdempotencyTTL)
		paymentGuard = append(paymentGuard, idempotency.Middleware(logger, store))
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	workflow := service.NewOrderWorkflow(logger, service.Config{
		VATRate:      decimal.NewFromFloat(conf.Pricing.VATRate),
		PaymentHold:  conf.Reservation.PaymentHold,
		ApprovalHold: conf.Reservation.ApprovalHold,
		StatusPoll: utils.RetryConfig{
			MaxAttempts:  conf.Payment.StatusPollAttempts,
			InitialDelay: conf.Payment.StatusPollDelay,
		},
	}, service.Deps{
		TxManager:    st.tx,
		Repo:         st.orders,
		Machine:      machine,
		Reservations: reservations,
		Validator:    validator,
		Ledger:       st.ledger,
		Payments:     payments,
		Notifier:     notifier,
		Cache:        statsCache,
	})

	httpHandler := handler.NewHTTPHandler(logger, workflow, paymentGuard...)

	application := app.New(logger, conf)
	application.SetHTTPHandlers(httpHandler)
	application.SetStarters(reservations, app.StarterFunc(func(ctx context.Context) error {
		return statsCache.RunJanitor(ctx, conf.Stats.CacheTTL)
	}))
	application.SetClosers(closers...)

	if conf.Storage == config.StoragePostgres {
		handler.RegisterMetrics()
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, workflow))
	}

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

type orderStore interface {
	service.OrderRepo
	statemachine.StatusStore
}

type ledgerStore interface {
	service.Ledger
	reservation.Ledger
}

type storage struct {
	tx      trm.Manager
	orders  orderStore
	ledger  ledgerStore
	history statemachine.HistoryStore
	close   func()
}

func newStorage(ctx context.Context, logger *slog.Logger, conf config.Config) storage {
	if conf.Storage == config.StorageMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		return storage{
			tx:      trm.NewNopManager(),
			orders:  repo.NewMemoryOrders(),
			ledger:  repo.NewMemoryLedger(demoCatalog()...),
			history: statemachine.NewMemoryHistory(conf.Reservation.HistoryLimit),
			close:   func() {},
		}
	}

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	logger.Info("postgres connected")
	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))

	return storage{
		tx:      trm.NewManager(db),
		orders:  repo.NewOrdersRepo(db),
		ledger:  repo.NewLedgerRepo(db),
		history: repo.NewHistoryRepo(db),
		close:   func() { db.Close() },
	}
}

func demoCatalog() []entities.Product {
	return []entities.Product{
		{ID: "vinyl-kind-of-blue", Title: "Kind of Blue (LP)", Price: decimal.RequireFromString("34.99"), Stock: 12},
		{ID: "cd-ok-computer", Title: "OK Computer (CD)", Price: decimal.RequireFromString("14.50"), Stock: 30},
		{ID: "bluray-blade-runner", Title: "Blade Runner (Blu-ray)", Price: decimal.RequireFromString("19.90"), Stock: 5},
		{ID: "cassette-nevermind", Title: "Nevermind (Cassette)", Price: decimal.RequireFromString("9.00"), Stock: 2},
	}
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
