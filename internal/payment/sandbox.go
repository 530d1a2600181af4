package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Методы оплаты, которыми можно управлять исходом в песочнице.
const (
	MethodDecline = "decline"
	MethodPending = "pending"
	MethodError   = "error"
)

// Sandbox is an in-process gateway for local runs and tests.
// Payments above MaxAmount are declined, pending payments succeed on the
// first status check.
type Sandbox struct {
	logger    *slog.Logger
	MaxAmount decimal.Decimal

	mu    sync.Mutex
	txns  map[string]entities.Transaction
	spent map[string]decimal.Decimal
}

func NewSandbox(logger *slog.Logger) *Sandbox {
	return &Sandbox{
		logger:    logger.With(slog.String("gateway", "sandbox")),
		MaxAmount: decimal.NewFromInt(10_000),
		txns:      make(map[string]entities.Transaction),
		spent:     make(map[string]decimal.Decimal),
	}
}

func (s *Sandbox) Pay(ctx context.Context, order entities.Order, paymentMethodID string) (entities.Transaction, error) {
	method := strings.ToLower(paymentMethodID)
	if method == MethodError {
		return entities.Transaction{}, fmt.Errorf("sandbox: gateway unavailable")
	}

	txn := entities.Transaction{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		Kind:       entities.TransactionPayment,
		Status:     entities.TransactionSucceeded,
		Amount:     order.TotalDue,
		GatewayRef: "sbx_pay_" + uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
	}
	switch {
	case method == MethodDecline:
		txn.Status = entities.TransactionFailed
		txn.Message = "card declined"
	case method == MethodPending:
		txn.Status = entities.TransactionPending
	case order.TotalDue.GreaterThan(s.MaxAmount):
		txn.Status = entities.TransactionFailed
		txn.Message = "amount too high"
	}

	s.mu.Lock()
	s.txns[txn.GatewayRef] = txn
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "payment processed",
		slog.String("order_id", order.ID),
		slog.String("gateway_ref", txn.GatewayRef),
		slog.String("status", string(txn.Status)),
	)
	return txn, nil
}

func (s *Sandbox) Refund(ctx context.Context, orderID, originalRef string, amount decimal.Decimal, reason string) (entities.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := entities.Transaction{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		Kind:        entities.TransactionRefund,
		Status:      entities.TransactionSucceeded,
		Amount:      amount,
		GatewayRef:  "sbx_ref_" + uuid.NewString(),
		OriginalRef: originalRef,
		Message:     reason,
		CreatedAt:   time.Now().UTC(),
	}

	orig, ok := s.txns[originalRef]
	switch {
	case !ok:
		return entities.Transaction{}, fmt.Errorf("sandbox: unknown payment %s", originalRef)
	case orig.Status != entities.TransactionSucceeded:
		txn.Status = entities.TransactionFailed
		txn.Message = "payment was not captured"
	case s.spent[originalRef].Add(amount).GreaterThan(orig.Amount):
		txn.Status = entities.TransactionFailed
		txn.Message = "refund exceeds captured amount"
	default:
		s.spent[originalRef] = s.spent[originalRef].Add(amount)
	}
	s.txns[txn.GatewayRef] = txn

	s.logger.InfoContext(ctx, "refund processed",
		slog.String("order_id", orderID),
		slog.String("original_ref", originalRef),
		slog.String("status", string(txn.Status)),
	)
	return txn, nil
}

func (s *Sandbox) CheckStatus(_ context.Context, txnID string) (entities.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.txns[txnID]
	if !ok {
		return entities.Transaction{}, fmt.Errorf("sandbox: unknown transaction %s", txnID)
	}
	if txn.Status == entities.TransactionPending {
		txn.Status = entities.TransactionSucceeded
		s.txns[txnID] = txn
	}
	return txn, nil
}
