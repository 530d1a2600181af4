package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/internal/statemachine"
	"github.com/SergeyBogomolovv/media-store-orders/internal/stock"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/keymutex"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/trm"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/utils"
	"github.com/shopspring/decimal"
)

// SystemActor is recorded for transitions made by the service itself.
const SystemActor = "system"

type OrderRepo interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	// CreateOrder persists a new order and returns it with line ids assigned.
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	UpdateTotals(ctx context.Context, order entities.Order) error
	SetInvoice(ctx context.Context, orderID, invoiceRef string) error
	SetLinesDeducted(ctx context.Context, orderID string, lineIDs []int64, deducted bool) error
	SaveTransaction(ctx context.Context, txn entities.Transaction) error
}

type StateMachine interface {
	Transition(ctx context.Context, req statemachine.Request) (entities.TransitionRecord, error)
	RecordCreation(ctx context.Context, orderID, actorID string) error
	History(ctx context.Context, orderID string) ([]entities.TransitionRecord, error)
	HistoryBetween(ctx context.Context, from, to time.Time) ([]entities.TransitionRecord, error)
	ValidNextStates(status entities.OrderStatus) []entities.OrderStatus
	CurrentStatus(ctx context.Context, orderID string) (entities.OrderStatus, error)
}

type Reservations interface {
	Reserve(ctx context.Context, productID string, quantity int, reservationID string, timeout time.Duration) (bool, error)
	Confirm(ctx context.Context, reservationID string) error
	Release(ctx context.Context, reservationID string)
}

type StockValidator interface {
	ValidateBulk(ctx context.Context, items []stock.Item) stock.BulkResult
	ValidateOrderLines(ctx context.Context, lines []entities.OrderLine) stock.BulkResult
}

type Ledger interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	AdjustStock(ctx context.Context, productID string, delta int) (int, error)
	SetStock(ctx context.Context, productID string, quantity int) error
}

type PaymentGateway interface {
	Pay(ctx context.Context, order entities.Order, paymentMethodID string) (entities.Transaction, error)
	Refund(ctx context.Context, orderID, originalRef string, amount decimal.Decimal, reason string) (entities.Transaction, error)
	CheckStatus(ctx context.Context, txnID string) (entities.Transaction, error)
}

// Notifier failures are logged and never roll back a transition.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, order entities.Order, from, to entities.OrderStatus, note string) error
	NotifyApproval(ctx context.Context, order entities.Order, managerID, note string) error
	NotifyRejection(ctx context.Context, order entities.Order, managerID, reason, note string) error
	NotifyCancellation(ctx context.Context, order entities.Order, actorID, note string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type Config struct {
	VATRate      decimal.Decimal
	PaymentHold  time.Duration
	ApprovalHold time.Duration
	// StatusPoll controls how long a pending payment is polled before giving up.
	StatusPoll utils.RetryConfig
}

type OrderWorkflow struct {
	logger       *slog.Logger
	cfg          Config
	txManager    trm.Manager
	repo         OrderRepo
	machine      StateMachine
	reservations Reservations
	validator    StockValidator
	ledger       Ledger
	payments     PaymentGateway
	notifier     Notifier
	cache        Cache
	// locks serializes mutating operations on the same order
	locks *keymutex.KeyMutex
	now   func() time.Time
}

type Deps struct {
	TxManager    trm.Manager
	Repo         OrderRepo
	Machine      StateMachine
	Reservations Reservations
	Validator    StockValidator
	Ledger       Ledger
	Payments     PaymentGateway
	Notifier     Notifier
	Cache        Cache
}

func NewOrderWorkflow(logger *slog.Logger, cfg Config, deps Deps) *OrderWorkflow {
	return &OrderWorkflow{
		logger:       logger.With(slog.String("service", "order_workflow")),
		cfg:          cfg,
		txManager:    deps.TxManager,
		repo:         deps.Repo,
		machine:      deps.Machine,
		reservations: deps.Reservations,
		validator:    deps.Validator,
		ledger:       deps.Ledger,
		payments:     deps.Payments,
		notifier:     deps.Notifier,
		cache:        deps.Cache,
		locks:        keymutex.New(),
		now:          time.Now,
	}
}

// Result is returned by every lifecycle operation.
type Result struct {
	OrderID    string
	From       entities.OrderStatus
	To         entities.OrderStatus
	Record     entities.TransitionRecord
	InvoiceRef string
	// ReservationIDs lists holds created by the operation and still active.
	ReservationIDs []string
	Transaction    *entities.Transaction
	Refund         *entities.Transaction
	RestoredLines  []int64
	// UnrestoredLines are deducted lines whose stock could not be returned.
	UnrestoredLines []int64
	Warnings        []string
}

func newResult(order entities.Order) Result {
	return Result{OrderID: order.ID, From: order.Status, To: order.Status}
}

var knownErrors = []error{
	entities.ErrOrderNotFound,
	entities.ErrProductNotFound,
	entities.ErrInvalidTransition,
	entities.ErrConcurrentUpdate,
	entities.ErrReservationNotFound,
	entities.ErrReservationExpired,
	entities.ErrReservationExists,
	entities.ErrInsufficientStock,
	entities.ErrInvalidArgument,
	entities.ErrValidation,
	entities.ErrInventory,
	entities.ErrPaymentFailed,
	entities.ErrStockUpdateFailed,
	entities.ErrInternal,
	context.Canceled,
	context.DeadlineExceeded,
}

// boundary recovers panics and hides unexpected collaborator errors behind
// entities.ErrInternal. It must be deferred with a pointer to the named error.
func (s *OrderWorkflow) boundary(ctx context.Context, op, orderID string, errp *error) {
	if r := recover(); r != nil {
		s.logger.ErrorContext(ctx, "panic in order workflow",
			slog.String("operation", op),
			slog.String("order_id", orderID),
			slog.Any("panic", r),
			slog.String("stack", string(debug.Stack())),
		)
		operationsTotal.WithLabelValues(op, "panic").Inc()
		*errp = fmt.Errorf("%s: %w", op, entities.ErrInternal)
		return
	}

	err := *errp
	switch {
	case err == nil:
		operationsTotal.WithLabelValues(op, "ok").Inc()
	case slices.ContainsFunc(knownErrors, func(target error) bool { return errors.Is(err, target) }):
		operationsTotal.WithLabelValues(op, "rejected").Inc()
	default:
		s.logger.ErrorContext(ctx, "order workflow failed",
			slog.String("operation", op),
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
		operationsTotal.WithLabelValues(op, "error").Inc()
		*errp = fmt.Errorf("%s: %w", op, entities.ErrInternal)
	}
}

// requireStatus fails before any side effect if the order is not in one of allowed.
func requireStatus(order entities.Order, to entities.OrderStatus, allowed ...entities.OrderStatus) error {
	if slices.Contains(allowed, order.Status) {
		return nil
	}
	return &entities.TransitionError{
		OrderID:    order.ID,
		From:       order.Status,
		To:         to,
		Violations: []string{fmt.Sprintf("order must be in one of %v", allowed)},
	}
}

// ensureCurrent fails with entities.ErrConcurrentUpdate if the order has moved
// on since it was loaded. Called before side effects that a failed transition
// would have to compensate.
func (s *OrderWorkflow) ensureCurrent(ctx context.Context, order entities.Order) error {
	status, err := s.machine.CurrentStatus(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("failed to get order status: %w", err)
	}
	if status != order.Status {
		return fmt.Errorf("order %s is %s, loaded as %s: %w", order.ID, status, order.Status, entities.ErrConcurrentUpdate)
	}
	return nil
}

func holdID(purpose, orderID string, lineID int64) string {
	return fmt.Sprintf("%s:%s:%d", purpose, orderID, lineID)
}

func (s *OrderWorkflow) notify(ctx context.Context, kind, orderID string, fn func() error) {
	if err := fn(); err != nil {
		notificationFailures.WithLabelValues(kind).Inc()
		s.logger.WarnContext(ctx, "failed to send notification",
			slog.String("kind", kind),
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
	}
}

func (s *OrderWorkflow) notifyStatus(ctx context.Context, order entities.Order, from, to entities.OrderStatus, note string) {
	s.notify(ctx, "status_change", order.ID, func() error {
		return s.notifier.NotifyStatusChange(ctx, order, from, to, note)
	})
}

func pendingLines(order entities.Order) []entities.OrderLine {
	var lines []entities.OrderLine
	for _, l := range order.Lines {
		if !l.StockDeducted {
			lines = append(lines, l)
		}
	}
	return lines
}

func lineIDs(lines []entities.OrderLine) []int64 {
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	return ids
}

func stockViolations(bulk stock.BulkResult) []string {
	violations := make([]string, 0, len(bulk.Failed))
	for _, f := range bulk.Failed {
		violations = append(violations, fmt.Sprintf("%s: %s", f.ProductID, f.Message))
	}
	if len(violations) == 0 {
		violations = append(violations, bulk.Warnings...)
	}
	return violations
}
