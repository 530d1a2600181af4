package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/internal/repo"
	"github.com/SergeyBogomolovv/media-store-orders/internal/reservation"
	"github.com/SergeyBogomolovv/media-store-orders/internal/service"
	mocks "github.com/SergeyBogomolovv/media-store-orders/internal/service/mocks"
	"github.com/SergeyBogomolovv/media-store-orders/internal/statemachine"
	"github.com/SergeyBogomolovv/media-store-orders/internal/stock"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/cache"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/trm"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var vat = decimal.RequireFromString("0.10")

type harness struct {
	wf           *service.OrderWorkflow
	orders       *repo.MemoryOrders
	ledger       *repo.MemoryLedger
	reservations *reservation.Manager
	payments     *mocks.MockPaymentGateway
	notifier     *mocks.MockNotifier
}

type passValidator struct{}

func (passValidator) ValidateBulk(context.Context, []stock.Item) stock.BulkResult {
	return stock.BulkResult{AllValid: true}
}

func (passValidator) ValidateOrderLines(context.Context, []entities.OrderLine) stock.BulkResult {
	return stock.BulkResult{AllValid: true}
}

func newHarness(t *testing.T, products []entities.Product, opts ...func(*service.Deps)) *harness {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	orders := repo.NewMemoryOrders()
	ledger := repo.NewMemoryLedger(products...)
	tx := trm.NewNopManager()
	machine := statemachine.New(logger, tx, orders, statemachine.NewMemoryHistory(0))
	reservations := reservation.NewManager(logger, ledger, reservation.NewMemoryStore())

	h := &harness{
		orders:       orders,
		ledger:       ledger,
		reservations: reservations,
		payments:     mocks.NewMockPaymentGateway(t),
		notifier:     mocks.NewMockNotifier(t),
	}
	h.notifier.EXPECT().NotifyStatusChange(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	h.notifier.EXPECT().NotifyApproval(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	h.notifier.EXPECT().NotifyRejection(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	h.notifier.EXPECT().NotifyCancellation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	deps := service.Deps{
		TxManager:    tx,
		Repo:         orders,
		Machine:      machine,
		Reservations: reservations,
		Validator:    stock.NewValidator(logger, ledger, reservations, 0),
		Ledger:       ledger,
		Payments:     h.payments,
		Notifier:     h.notifier,
		Cache:        cache.NewLRU[[]byte](10, time.Minute),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	h.wf = service.NewOrderWorkflow(logger, service.Config{
		VATRate:      vat,
		PaymentHold:  15 * time.Minute,
		ApprovalHold: time.Hour,
		StatusPoll:   utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
	}, deps)
	return h
}

func product(id string, stock int) entities.Product {
	return entities.Product{ID: id, Title: "Title " + id, Price: decimal.RequireFromString("10.00"), Stock: stock}
}

func line(productID string, qty int) entities.OrderLine {
	return entities.OrderLine{
		Product:  entities.ProductSnapshot{ID: productID, Title: "Title " + productID, UnitPrice: decimal.RequireFromString("10.00")},
		Quantity: qty,
	}
}

func deducted(l entities.OrderLine) entities.OrderLine {
	l.StockDeducted = true
	return l
}

func (h *harness) seedOrder(t *testing.T, status entities.OrderStatus, txns []entities.Transaction, lines ...entities.OrderLine) entities.Order {
	t.Helper()
	order := entities.Order{
		ID:           uuid.NewString(),
		Status:       status,
		OrderedAt:    time.Now(),
		CustomerID:   "customer-1",
		Lines:        lines,
		Transactions: txns,
	}
	order.ComputeTotals(vat, decimal.Zero)
	created, err := h.orders.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	return created
}

func (h *harness) order(t *testing.T, id string) entities.Order {
	t.Helper()
	o, err := h.orders.GetOrder(context.Background(), id)
	require.NoError(t, err)
	return o
}

func (h *harness) stock(t *testing.T, productID string) int {
	t.Helper()
	s, err := h.ledger.GetStock(context.Background(), productID)
	require.NoError(t, err)
	return s
}

func (h *harness) available(t *testing.T, productID string) int {
	t.Helper()
	s, err := h.reservations.AvailableStock(context.Background(), productID)
	require.NoError(t, err)
	return s
}

func paid(ref string) []entities.Transaction {
	return []entities.Transaction{{
		ID:         uuid.NewString(),
		Kind:       entities.TransactionPayment,
		Status:     entities.TransactionSucceeded,
		Amount:     decimal.RequireFromString("22.00"),
		GatewayRef: ref,
		CreatedAt:  time.Now(),
	}}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("OK", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("dvd", 5), product("cd", 1)})

		order, err := h.wf.PlaceOrder(ctx, "customer-1", []service.CartItem{
			{ProductID: "dvd", Quantity: 2, RushEligible: true},
			{ProductID: "cd", Quantity: 1},
		})
		require.NoError(t, err)

		assert.Equal(t, entities.StatusPendingDeliveryInfo, order.Status)
		require.Len(t, order.Lines, 2)
		assert.True(t, order.Lines[0].RushEligible)
		assert.Equal(t, "30.00", order.TotalExclTax.StringFixed(2))
		assert.Equal(t, "33.00", order.TotalInclTax.StringFixed(2))
		assert.Equal(t, "33.00", order.TotalDue.StringFixed(2))

		history, err := h.wf.GetHistory(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, entities.ReasonOrderPlaced, history[0].ReasonCode)

		// заказ не резервирует товар
		assert.Equal(t, 5, h.available(t, "dvd"))
	})

	t.Run("insufficient stock", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("dvd", 1)})

		_, err := h.wf.PlaceOrder(ctx, "customer-1", []service.CartItem{{ProductID: "dvd", Quantity: 3}})
		require.ErrorIs(t, err, entities.ErrValidation)

		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr)
		report, ok := verr.Details.(stock.ShortfallReport)
		require.True(t, ok)
		assert.Equal(t, "reduce to 1", report.Lines[0].Remediation)
	})

	t.Run("empty cart", func(t *testing.T) {
		h := newHarness(t, nil)
		_, err := h.wf.PlaceOrder(ctx, "customer-1", nil)
		assert.ErrorIs(t, err, entities.ErrValidation)
	})
}

func TestConfirmDeliveryInfo(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("dvd", 5)})
	order := h.seedOrder(t, entities.StatusPendingDeliveryInfo, nil, line("dvd", 1))

	_, err := h.wf.ConfirmDeliveryInfo(ctx, order.ID, "customer-1", decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, entities.ErrValidation)

	res, err := h.wf.ConfirmDeliveryInfo(ctx, order.ID, "customer-1", decimal.RequireFromString("3.00"))
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPendingPayment, res.To)

	got := h.order(t, order.ID)
	assert.Equal(t, entities.StatusPendingPayment, got.Status)
	assert.Equal(t, "3.00", got.DeliveryFee.StringFixed(2))
	assert.Equal(t, "14.00", got.TotalDue.StringFixed(2))
	assert.NoError(t, got.CheckTotals(vat))
}

func TestApproveOrder_ReservesStock(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("Y", 2)})
	order := h.seedOrder(t, entities.StatusPendingProcessing, nil, line("Y", 2))

	res, err := h.wf.ApproveOrder(ctx, order.ID, "manager-1", "looks good")
	require.NoError(t, err)

	assert.Equal(t, entities.StatusApproved, res.To)
	assert.Len(t, res.ReservationIDs, 1)
	assert.Equal(t, entities.StatusApproved, h.order(t, order.ID).Status)
	assert.Equal(t, 0, h.available(t, "Y"))
	assert.Equal(t, 2, h.stock(t, "Y"))
	h.notifier.AssertCalled(t, "NotifyApproval", mock.Anything, mock.Anything, "manager-1", "looks good")
}

func TestApproveOrder_Rejected(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		status    entities.OrderStatus
		stock     int
		managerID string
		wantErr   error
	}{
		{name: "no manager", status: entities.StatusPendingProcessing, stock: 5, managerID: "", wantErr: entities.ErrValidation},
		{name: "wrong status", status: entities.StatusPendingPayment, stock: 5, managerID: "manager-1", wantErr: entities.ErrInvalidTransition},
		{name: "not enough stock", status: entities.StatusPendingProcessing, stock: 1, managerID: "manager-1", wantErr: entities.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, []entities.Product{product("Y", tc.stock)})
			order := h.seedOrder(t, tc.status, nil, line("Y", 2))

			_, err := h.wf.ApproveOrder(ctx, order.ID, tc.managerID, "")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.status, h.order(t, order.ID).Status)
			assert.Equal(t, tc.stock, h.available(t, "Y"))
		})
	}
}

func TestApproveOrder_ReleasesPartialReservations(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 5), product("B", 2)}, func(d *service.Deps) {
		d.Validator = passValidator{}
	})
	order := h.seedOrder(t, entities.StatusPendingProcessing, nil, line("A", 1), line("B", 2))

	// чужая корзина держит единицу B
	ok, err := h.reservations.Reserve(ctx, "B", 1, "other-cart", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = h.wf.ApproveOrder(ctx, order.ID, "manager-1", "")
	require.ErrorIs(t, err, entities.ErrInventory)

	assert.Equal(t, entities.StatusPendingProcessing, h.order(t, order.ID).Status)
	assert.Equal(t, 5, h.available(t, "A"))
	assert.Equal(t, 1, h.available(t, "B"))
}

func TestApproveOrder_HoldsArePerLine(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 5), product("B", 5)})
	order := h.seedOrder(t, entities.StatusPendingProcessing, nil, line("A", 1), line("B", 3))

	res, err := h.wf.ApproveOrder(ctx, order.ID, "manager-1", "")
	require.NoError(t, err)
	require.Len(t, res.ReservationIDs, 2)

	h.reservations.Release(ctx, res.ReservationIDs[0])

	_, ok := h.reservations.Get(res.ReservationIDs[0])
	assert.False(t, ok)
	hold, ok := h.reservations.Get(res.ReservationIDs[1])
	require.True(t, ok)
	assert.Equal(t, "B", hold.ProductID)
	assert.Equal(t, 3, hold.Quantity)
	assert.Equal(t, 5, h.available(t, "A"))
	assert.Equal(t, 2, h.available(t, "B"))
}

func TestRejectOrder_RefundsAndRestoresStock(t *testing.T) {
	ctx := context.Background()

	t.Run("refund succeeds", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("Y", 0)})
		order := h.seedOrder(t, entities.StatusPendingProcessing, paid("pay-ref-1"), deducted(line("Y", 2)))

		h.payments.EXPECT().Refund(mock.Anything, order.ID, "pay-ref-1", mock.Anything, mock.Anything).
			Return(entities.Transaction{GatewayRef: "refund-1", Status: entities.TransactionSucceeded}, nil).Once()

		res, err := h.wf.RejectOrder(ctx, order.ID, "manager-1", "PRICE_ERROR", "wrong price")
		require.NoError(t, err)

		assert.Equal(t, entities.StatusRejected, res.To)
		require.NotNil(t, res.Refund)
		assert.Equal(t, "pay-ref-1", res.Refund.OriginalRef)
		assert.Len(t, res.RestoredLines, 1)
		assert.Equal(t, 2, h.stock(t, "Y"))

		got := h.order(t, order.ID)
		assert.Equal(t, entities.StatusRejected, got.Status)
		assert.False(t, got.Lines[0].StockDeducted)
		_, stillPaid := got.SuccessfulPayment()
		assert.False(t, stillPaid)
		h.notifier.AssertCalled(t, "NotifyRejection", mock.Anything, mock.Anything, "manager-1", "PRICE_ERROR", "wrong price")
	})

	t.Run("refund fails", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("Y", 0)})
		order := h.seedOrder(t, entities.StatusPendingProcessing, paid("pay-ref-1"), deducted(line("Y", 2)))

		h.payments.EXPECT().Refund(mock.Anything, order.ID, "pay-ref-1", mock.Anything, mock.Anything).
			Return(entities.Transaction{}, errors.New("gateway timeout")).Once()

		res, err := h.wf.RejectOrder(ctx, order.ID, "manager-1", "", "")
		require.NoError(t, err)

		assert.Nil(t, res.Refund)
		assert.NotEmpty(t, res.Warnings)
		assert.Equal(t, 2, h.stock(t, "Y"))
		assert.Equal(t, entities.StatusRejected, h.order(t, order.ID).Status)
	})
}

func TestProcessPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("OK", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("A", 5)})
		order := h.seedOrder(t, entities.StatusPendingPayment, nil, line("A", 2))

		h.payments.EXPECT().Pay(mock.Anything, mock.Anything, "card-1").
			Return(entities.Transaction{GatewayRef: "pay-ref-1", Status: entities.TransactionSucceeded}, nil).Once()

		res, err := h.wf.ProcessPayment(ctx, order.ID, "card-1")
		require.NoError(t, err)

		assert.Equal(t, entities.StatusPendingProcessing, res.To)
		assert.NotEmpty(t, res.InvoiceRef)
		assert.Equal(t, 3, h.stock(t, "A"))
		assert.Equal(t, 3, h.available(t, "A"))

		got := h.order(t, order.ID)
		assert.Equal(t, entities.StatusPendingProcessing, got.Status)
		assert.Equal(t, res.InvoiceRef, got.InvoiceRef)
		assert.True(t, got.Lines[0].StockDeducted)
		payment, ok := got.SuccessfulPayment()
		require.True(t, ok)
		assert.True(t, payment.Amount.Equal(order.TotalDue))
	})

	t.Run("declined", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("A", 5)})
		order := h.seedOrder(t, entities.StatusPendingPayment, nil, line("A", 2))

		h.payments.EXPECT().Pay(mock.Anything, mock.Anything, "card-1").
			Return(entities.Transaction{GatewayRef: "pay-ref-1", Status: entities.TransactionFailed, Message: "card declined"}, nil).Once()

		res, err := h.wf.ProcessPayment(ctx, order.ID, "card-1")
		require.ErrorIs(t, err, entities.ErrPaymentFailed)

		assert.Equal(t, entities.StatusPaymentFailed, res.To)
		assert.Equal(t, entities.StatusPaymentFailed, h.order(t, order.ID).Status)
		assert.Equal(t, 5, h.stock(t, "A"))
		assert.Equal(t, 5, h.available(t, "A"))
	})

	t.Run("gateway error", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("A", 5)})
		order := h.seedOrder(t, entities.StatusPendingPayment, nil, line("A", 2))

		h.payments.EXPECT().Pay(mock.Anything, mock.Anything, "card-1").
			Return(entities.Transaction{}, errors.New("connection refused")).Once()

		_, err := h.wf.ProcessPayment(ctx, order.ID, "card-1")
		require.ErrorIs(t, err, entities.ErrPaymentFailed)
		assert.Equal(t, entities.StatusPaymentFailed, h.order(t, order.ID).Status)
		assert.Equal(t, 5, h.available(t, "A"))
	})

	t.Run("pending then succeeded", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("A", 5)})
		order := h.seedOrder(t, entities.StatusPendingPayment, nil, line("A", 1))

		h.payments.EXPECT().Pay(mock.Anything, mock.Anything, "card-1").
			Return(entities.Transaction{GatewayRef: "pay-ref-1", Status: entities.TransactionPending}, nil).Once()
		h.payments.EXPECT().CheckStatus(mock.Anything, "pay-ref-1").
			Return(entities.Transaction{Status: entities.TransactionPending}, nil).Once()
		h.payments.EXPECT().CheckStatus(mock.Anything, "pay-ref-1").
			Return(entities.Transaction{Status: entities.TransactionSucceeded}, nil).Once()

		res, err := h.wf.ProcessPayment(ctx, order.ID, "card-1")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPendingProcessing, res.To)
		assert.Equal(t, 4, h.stock(t, "A"))
	})

	t.Run("stock changed before payment", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("A", 1)})
		order := h.seedOrder(t, entities.StatusPendingPayment, nil, line("A", 2))

		_, err := h.wf.ProcessPayment(ctx, order.ID, "card-1")
		require.ErrorIs(t, err, entities.ErrValidation)
		assert.Equal(t, entities.StatusPendingPayment, h.order(t, order.ID).Status)
	})

	t.Run("wrong status", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("A", 5)})
		order := h.seedOrder(t, entities.StatusApproved, nil, line("A", 1))

		_, err := h.wf.ProcessPayment(ctx, order.ID, "card-1")
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})
}

func TestProcessPayment_ConfirmationFails(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 5), product("B", 2)})
	order := h.seedOrder(t, entities.StatusPendingPayment, nil, line("A", 1), line("B", 2))

	h.payments.EXPECT().Pay(mock.Anything, mock.Anything, "card-1").
		RunAndReturn(func(ctx context.Context, _ entities.Order, _ string) (entities.Transaction, error) {
			// склад списали мимо резерва, пока шла оплата
			require.NoError(t, h.ledger.SetStock(ctx, "B", 1))
			return entities.Transaction{GatewayRef: "pay-ref-1", Status: entities.TransactionSucceeded}, nil
		}).Once()

	res, err := h.wf.ProcessPayment(ctx, order.ID, "card-1")
	require.ErrorIs(t, err, entities.ErrStockUpdateFailed)

	assert.Equal(t, entities.StatusErrorStockUpdateFailed, res.To)
	got := h.order(t, order.ID)
	assert.Equal(t, entities.StatusErrorStockUpdateFailed, got.Status)
	assert.True(t, got.Lines[0].StockDeducted)
	assert.False(t, got.Lines[1].StockDeducted)
	_, ok := got.SuccessfulPayment()
	assert.True(t, ok)

	assert.Equal(t, 4, h.stock(t, "A"))
	assert.Equal(t, 1, h.stock(t, "B"))
	assert.Equal(t, 1, h.available(t, "B"))
}

func TestRetryPayment(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 5)})
	order := h.seedOrder(t, entities.StatusPaymentFailed, nil, line("A", 1))

	res, err := h.wf.RetryPayment(ctx, order.ID, "customer-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPendingPayment, res.To)

	_, err = h.wf.RetryPayment(ctx, order.ID, "customer-1")
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
}

func TestSubmitForApproval(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		status  entities.OrderStatus
		txns    []entities.Transaction
		actor   string
		wantErr error
	}{
		{name: "pending payment without payment", status: entities.StatusPendingPayment, actor: "customer-1", wantErr: entities.ErrInvalidTransition},
		{name: "rejected with payment", status: entities.StatusRejected, txns: paid("pay-ref-1"), actor: "customer-1"},
		{name: "rejected without payment", status: entities.StatusRejected, actor: "customer-1", wantErr: entities.ErrInvalidTransition},
		{name: "stock error with payment", status: entities.StatusErrorStockUpdateFailed, txns: paid("pay-ref-1"), actor: "operator-1"},
		{name: "stock error without payment", status: entities.StatusErrorStockUpdateFailed, actor: "operator-1", wantErr: entities.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, []entities.Product{product("A", 5)})
			order := h.seedOrder(t, tc.status, tc.txns, line("A", 1))

			res, err := h.wf.SubmitForApproval(ctx, order.ID, tc.actor)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.status, h.order(t, order.ID).Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusPendingProcessing, res.To)

			// повторная отправка ничего не меняет
			res, err = h.wf.SubmitForApproval(ctx, order.ID, tc.actor)
			require.NoError(t, err)
			assert.Equal(t, "true", res.Record.Metadata["noop"])
		})
	}
}

func TestSubmitForApproval_AfterRefundedRejection(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 3)})
	order := h.seedOrder(t, entities.StatusPendingProcessing, paid("pay-ref-1"), deducted(line("A", 2)))

	h.payments.EXPECT().Refund(mock.Anything, order.ID, "pay-ref-1", mock.Anything, mock.Anything).
		Return(entities.Transaction{GatewayRef: "refund-1", Status: entities.TransactionSucceeded}, nil).Once()

	_, err := h.wf.RejectOrder(ctx, order.ID, "manager-1", "", "out of policy")
	require.NoError(t, err)
	assert.Equal(t, 5, h.stock(t, "A"))

	_, err = h.wf.SubmitForApproval(ctx, order.ID, "customer-1")
	require.ErrorIs(t, err, entities.ErrInvalidTransition)

	// без оплаты заказ не доходит до одобрения и отгрузки
	_, err = h.wf.ApproveOrder(ctx, order.ID, "manager-1", "")
	require.ErrorIs(t, err, entities.ErrInvalidTransition)
	_, err = h.wf.ShipOrder(ctx, order.ID, "warehouse-1")
	require.ErrorIs(t, err, entities.ErrInvalidTransition)

	assert.Equal(t, entities.StatusRejected, h.order(t, order.ID).Status)
	assert.Equal(t, 5, h.stock(t, "A"))
	assert.Equal(t, 5, h.available(t, "A"))
}

// staleOrders serves snapshot for its order instead of the stored state.
type staleOrders struct {
	*repo.MemoryOrders
	snapshot *entities.Order
}

func (s *staleOrders) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if s.snapshot != nil && s.snapshot.ID == orderID {
		return *s.snapshot, nil
	}
	return s.MemoryOrders.GetOrder(ctx, orderID)
}

func newStaleHarness(t *testing.T, products []entities.Product) (*harness, *staleOrders) {
	stale := &staleOrders{}
	h := newHarness(t, products, func(d *service.Deps) {
		stale.MemoryOrders = d.Repo.(*repo.MemoryOrders)
		d.Repo = stale
	})
	return h, stale
}

func TestProcessPayment_StaleOrderIsNotChargedTwice(t *testing.T) {
	ctx := context.Background()
	h, stale := newStaleHarness(t, []entities.Product{product("A", 5)})
	order := h.seedOrder(t, entities.StatusPendingPayment, nil, line("A", 2))
	before := h.order(t, order.ID)

	h.payments.EXPECT().Pay(mock.Anything, mock.Anything, "card-1").
		Return(entities.Transaction{GatewayRef: "pay-ref-1", Status: entities.TransactionSucceeded}, nil).Once()

	_, err := h.wf.ProcessPayment(ctx, order.ID, "card-1")
	require.NoError(t, err)
	assert.Equal(t, 3, h.stock(t, "A"))

	// второй запрос прочитал заказ до оплаты
	stale.snapshot = &before
	_, err = h.wf.ProcessPayment(ctx, order.ID, "card-1")
	require.ErrorIs(t, err, entities.ErrConcurrentUpdate)

	stale.snapshot = nil
	got := h.order(t, order.ID)
	assert.Equal(t, entities.StatusPendingProcessing, got.Status)
	assert.Len(t, got.Transactions, 1)
	assert.Equal(t, 3, h.stock(t, "A"))
	assert.Equal(t, 3, h.available(t, "A"))
}

func TestProcessPayment_ConcurrentRequests(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 5)})
	order := h.seedOrder(t, entities.StatusPendingPayment, nil, line("A", 2))

	h.payments.EXPECT().Pay(mock.Anything, mock.Anything, "card-1").
		Return(entities.Transaction{GatewayRef: "pay-ref-1", Status: entities.TransactionSucceeded}, nil).Once()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range 2 {
		wg.Go(func() {
			if _, err := h.wf.ProcessPayment(ctx, order.ID, "card-1"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 3, h.stock(t, "A"))
	assert.Len(t, h.order(t, order.ID).Transactions, 1)
}

func TestCancelOrder_StaleOrderAlreadyShipped(t *testing.T) {
	ctx := context.Background()
	h, stale := newStaleHarness(t, []entities.Product{product("A", 3)})
	order := h.seedOrder(t, entities.StatusPendingProcessing, paid("pay-ref-1"), deducted(line("A", 2)))
	before := h.order(t, order.ID)

	_, err := h.wf.ApproveOrder(ctx, order.ID, "manager-1", "")
	require.NoError(t, err)
	_, err = h.wf.ShipOrder(ctx, order.ID, "warehouse-1")
	require.NoError(t, err)

	// отмена прочитала заказ до одобрения
	stale.snapshot = &before
	res, err := h.wf.CancelOrder(ctx, order.ID, "customer-1", "too slow")
	require.ErrorIs(t, err, entities.ErrConcurrentUpdate)
	assert.Empty(t, res.RestoredLines)
	assert.Nil(t, res.Refund)

	stale.snapshot = nil
	got := h.order(t, order.ID)
	assert.Equal(t, entities.StatusShipping, got.Status)
	assert.True(t, got.Lines[0].StockDeducted)
	_, stillPaid := got.SuccessfulPayment()
	assert.True(t, stillPaid)
	assert.Equal(t, 3, h.stock(t, "A"))
	h.notifier.AssertNotCalled(t, "NotifyCancellation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("paid order", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("A", 3)})
		order := h.seedOrder(t, entities.StatusPendingProcessing, paid("pay-ref-1"), deducted(line("A", 2)))

		h.payments.EXPECT().Refund(mock.Anything, order.ID, "pay-ref-1", mock.Anything, mock.Anything).
			Return(entities.Transaction{GatewayRef: "refund-1", Status: entities.TransactionSucceeded}, nil).Once()

		res, err := h.wf.CancelOrder(ctx, order.ID, "customer-1", "changed my mind")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCancelled, res.To)
		assert.NotNil(t, res.Refund)
		assert.Equal(t, 5, h.stock(t, "A"))
		h.notifier.AssertCalled(t, "NotifyCancellation", mock.Anything, mock.Anything, "customer-1", "changed my mind")
	})

	t.Run("refund declined", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("A", 3)})
		order := h.seedOrder(t, entities.StatusPendingProcessing, paid("pay-ref-1"), deducted(line("A", 2)))

		h.payments.EXPECT().Refund(mock.Anything, order.ID, "pay-ref-1", mock.Anything, mock.Anything).
			Return(entities.Transaction{GatewayRef: "refund-1", Status: entities.TransactionFailed, Message: "expired card"}, nil).Once()

		res, err := h.wf.CancelOrder(ctx, order.ID, "customer-1", "")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCancelled, h.order(t, order.ID).Status)
		assert.NotEmpty(t, res.Warnings)
		assert.Equal(t, 5, h.stock(t, "A"))

		// неуспешный возврат тоже записан
		got := h.order(t, order.ID)
		require.Len(t, got.Transactions, 2)
		assert.Equal(t, entities.TransactionFailed, got.Transactions[1].Status)
	})

	t.Run("unpaid order", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("A", 3)})
		order := h.seedOrder(t, entities.StatusPendingDeliveryInfo, nil, line("A", 2))

		res, err := h.wf.CancelOrder(ctx, order.ID, "", "")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCancelled, res.To)
		assert.Equal(t, service.SystemActor, res.Record.ActorID)
		assert.Equal(t, 3, h.stock(t, "A"))
	})

	t.Run("approved order is not cancellable", func(t *testing.T) {
		h := newHarness(t, []entities.Product{product("A", 3)})
		order := h.seedOrder(t, entities.StatusApproved, nil, line("A", 2))

		_, err := h.wf.CancelOrder(ctx, order.ID, "customer-1", "")
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})
}

func TestFulfilment(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 5), product("B", 5)})
	order := h.seedOrder(t, entities.StatusPendingProcessing, paid("pay-ref-1"), deducted(line("A", 1)), line("B", 2))

	res, err := h.wf.ApproveOrder(ctx, order.ID, "manager-1", "")
	require.NoError(t, err)
	require.Len(t, res.ReservationIDs, 1)
	assert.Equal(t, 3, h.available(t, "B"))

	res, err = h.wf.ShipOrder(ctx, order.ID, "warehouse")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusShipping, res.To)
	assert.Equal(t, 3, h.stock(t, "B"))
	assert.Equal(t, 3, h.available(t, "B"))
	assert.True(t, h.order(t, order.ID).Lines[1].StockDeducted)

	_, err = h.wf.DeliverOrder(ctx, order.ID, "carrier")
	require.NoError(t, err)

	h.payments.EXPECT().Refund(mock.Anything, order.ID, "pay-ref-1", mock.Anything, "damaged").
		Return(entities.Transaction{}, errors.New("gateway down")).Once()
	_, err = h.wf.RefundOrder(ctx, order.ID, "support", "damaged")
	require.ErrorIs(t, err, entities.ErrPaymentFailed)
	assert.Equal(t, entities.StatusDelivered, h.order(t, order.ID).Status)

	h.payments.EXPECT().Refund(mock.Anything, order.ID, "pay-ref-1", mock.Anything, "damaged").
		Return(entities.Transaction{GatewayRef: "refund-1", Status: entities.TransactionSucceeded}, nil).Once()
	res, err = h.wf.RefundOrder(ctx, order.ID, "support", "damaged")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusRefunded, res.To)
	assert.Equal(t, "refund-1", res.Record.Metadata["refund_ref"])

	next, err := h.wf.GetValidNextStates(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusRefunded, next.Current)
	assert.Empty(t, next.Next)
}

func TestShipOrder_LostHold(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 5)})
	order := h.seedOrder(t, entities.StatusPendingProcessing, nil, line("A", 2))

	res, err := h.wf.ApproveOrder(ctx, order.ID, "manager-1", "")
	require.NoError(t, err)
	h.reservations.Release(ctx, res.ReservationIDs[0])

	_, err = h.wf.ShipOrder(ctx, order.ID, "warehouse")
	require.NoError(t, err)
	assert.Equal(t, 3, h.stock(t, "A"))

	h2 := newHarness(t, []entities.Product{product("A", 5)})
	order = h2.seedOrder(t, entities.StatusPendingProcessing, nil, line("A", 2))
	res, err = h2.wf.ApproveOrder(ctx, order.ID, "manager-1", "")
	require.NoError(t, err)
	h2.reservations.Release(ctx, res.ReservationIDs[0])
	require.NoError(t, h2.ledger.SetStock(ctx, "A", 1))

	_, err = h2.wf.ShipOrder(ctx, order.ID, "warehouse")
	require.ErrorIs(t, err, entities.ErrInventory)
	assert.Equal(t, entities.StatusApproved, h2.order(t, order.ID).Status)
}

func TestGetOrderStateStatistics(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 5)})
	from := time.Now().Add(-time.Hour)

	approved := h.seedOrder(t, entities.StatusPendingProcessing, nil, line("A", 1))
	rejected := h.seedOrder(t, entities.StatusPendingProcessing, nil, line("A", 1))

	_, err := h.wf.ApproveOrder(ctx, approved.ID, "manager-1", "")
	require.NoError(t, err)
	_, err = h.wf.RejectOrder(ctx, rejected.ID, "manager-1", "PRICE_ERROR", "")
	require.NoError(t, err)

	stats, err := h.wf.GetOrderStateStatistics(ctx, from, time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalTransitions)
	assert.Equal(t, 2, stats.SuccessfulTransitions)
	assert.Equal(t, 1, stats.Approvals)
	assert.Equal(t, 1, stats.Rejections)
	assert.InDelta(t, 0.5, stats.ApprovalRate, 1e-9)
	assert.Equal(t, 2, stats.ActorActivity["manager-1"])
	require.Len(t, stats.TopRejectionReasons, 1)
	assert.Equal(t, entities.ReasonCode("PRICE_ERROR"), stats.TopRejectionReasons[0].Reason)

	_, err = h.wf.GetOrderStateStatistics(ctx, time.Now(), from)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 1)})
	order := h.seedOrder(t, entities.StatusPendingPayment, nil, line("A", 2))

	next, err := h.wf.GetValidNextStates(ctx, order.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []entities.OrderStatus{
		entities.StatusPendingProcessing,
		entities.StatusPaymentFailed,
		entities.StatusCancelled,
		entities.StatusErrorStockUpdateFailed,
	}, next.Next)

	check, err := h.wf.ValidateOrderStock(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, check.Result.AllValid)
	assert.True(t, check.Report.CanProceedPartially)

	_, err = h.wf.GetOrder(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	_, err = h.wf.GetHistory(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	require.NoError(t, h.wf.Restock(ctx, "A", 10))
	assert.Equal(t, 10, h.stock(t, "A"))
	assert.ErrorIs(t, h.wf.Restock(ctx, "A", -1), entities.ErrValidation)
	assert.ErrorIs(t, h.wf.Restock(ctx, "missing", 1), entities.ErrProductNotFound)
}

func TestBoundary_RecoversPanics(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, []entities.Product{product("A", 5)})
	order := h.seedOrder(t, entities.StatusPendingPayment, nil, line("A", 1))

	h.payments.EXPECT().Pay(mock.Anything, mock.Anything, "card-1").
		RunAndReturn(func(context.Context, entities.Order, string) (entities.Transaction, error) {
			panic("gateway client bug")
		}).Once()

	_, err := h.wf.ProcessPayment(ctx, order.ID, "card-1")
	require.ErrorIs(t, err, entities.ErrInternal)
	assert.Equal(t, entities.StatusPendingPayment, h.order(t, order.ID).Status)
}
