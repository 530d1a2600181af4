package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/internal/statemachine"
	"github.com/SergeyBogomolovv/media-store-orders/internal/stock"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var storeRetry = utils.RetryConfig{
	InitialDelay: 50 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

type CartItem struct {
	ProductID    string
	Quantity     int
	RushEligible bool
}

// PlaceOrder converts a cart into an order in PendingDeliveryInfo. Prices
// and titles are copied from the catalog at this moment.
func (s *OrderWorkflow) PlaceOrder(ctx context.Context, customerID string, items []CartItem) (_ entities.Order, err error) {
	defer s.boundary(ctx, "place_order", "", &err)

	if len(items) == 0 {
		return entities.Order{}, entities.NewValidationError(nil, "order must contain at least one item")
	}

	check := make([]stock.Item, 0, len(items))
	for _, it := range items {
		check = append(check, stock.Item{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	bulk := s.validator.ValidateBulk(ctx, check)
	if !bulk.AllValid {
		return entities.Order{}, entities.NewValidationError(stock.BuildShortfallReport(bulk), stockViolations(bulk)...)
	}

	order := entities.Order{
		ID:         uuid.NewString(),
		Status:     entities.StatusPendingDeliveryInfo,
		OrderedAt:  s.now().UTC(),
		CustomerID: customerID,
		Lines:      make([]entities.OrderLine, 0, len(items)),
	}
	for _, it := range items {
		product, err := s.ledger.GetProduct(ctx, it.ProductID)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
		}
		order.Lines = append(order.Lines, entities.OrderLine{
			Product: entities.ProductSnapshot{
				ID:        product.ID,
				Title:     product.Title,
				UnitPrice: product.Price,
			},
			Quantity:     it.Quantity,
			RushEligible: it.RushEligible,
		})
	}
	order.ComputeTotals(s.cfg.VATRate, decimal.Zero)

	actor := customerID
	if actor == "" {
		actor = SystemActor
	}

	var created entities.Order
	err = utils.Retry(ctx, storeRetry, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			if created, err = s.repo.CreateOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.machine.RecordCreation(ctx, created.ID, actor); err != nil {
				return fmt.Errorf("failed to record order creation: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", created.ID),
		slog.String("customer_id", customerID),
		slog.String("total_due", created.TotalDue.StringFixed(2)),
	)
	return created, nil
}

// ConfirmDeliveryInfo sets the delivery fee and moves the order to PendingPayment.
func (s *OrderWorkflow) ConfirmDeliveryInfo(ctx context.Context, orderID, actorID string, deliveryFee decimal.Decimal) (res Result, err error) {
	defer s.boundary(ctx, "confirm_delivery_info", orderID, &err)
	defer s.locks.Lock(orderID)()

	if deliveryFee.IsNegative() {
		return res, entities.NewValidationError(nil, "delivery fee must not be negative")
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	res = newResult(order)
	if err := requireStatus(order, entities.StatusPendingPayment, entities.StatusPendingDeliveryInfo); err != nil {
		return res, err
	}

	order.ComputeTotals(s.cfg.VATRate, deliveryFee)
	if err := order.CheckTotals(s.cfg.VATRate); err != nil {
		return res, entities.NewValidationError(nil, err.Error())
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateTotals(ctx, order); err != nil {
			return fmt.Errorf("failed to update totals: %w", err)
		}
		rec, err := s.machine.Transition(ctx, statemachine.Request{
			OrderID:  orderID,
			From:     order.Status,
			To:       entities.StatusPendingPayment,
			ActorID:  actorID,
			Reason:   entities.ReasonDeliveryInfoProvided,
			Metadata: map[string]string{"delivery_fee": deliveryFee.StringFixed(2)},
		})
		res.Record = rec
		return err
	})
	if err != nil {
		return res, err
	}

	res.To = entities.StatusPendingPayment
	s.notifyStatus(ctx, order, res.From, res.To, "")
	return res, nil
}

// RetryPayment returns an order with a declined payment to PendingPayment.
func (s *OrderWorkflow) RetryPayment(ctx context.Context, orderID, actorID string) (res Result, err error) {
	defer s.boundary(ctx, "retry_payment", orderID, &err)
	defer s.locks.Lock(orderID)()

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	res = newResult(order)
	if err := requireStatus(order, entities.StatusPendingPayment, entities.StatusPaymentFailed); err != nil {
		return res, err
	}

	if res.Record, err = s.machine.Transition(ctx, statemachine.Request{
		OrderID: orderID,
		From:    order.Status,
		To:      entities.StatusPendingPayment,
		ActorID: actorID,
		Reason:  entities.ReasonPaymentRetry,
	}); err != nil {
		return res, err
	}
	res.To = entities.StatusPendingPayment
	return res, nil
}

// SubmitForApproval moves the order to PendingProcessing. The order must hold
// a successful payment that has not been refunded, whatever status it is
// submitted from.
func (s *OrderWorkflow) SubmitForApproval(ctx context.Context, orderID, submittedBy string) (res Result, err error) {
	defer s.boundary(ctx, "submit_for_approval", orderID, &err)
	defer s.locks.Lock(orderID)()

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	res = newResult(order)

	// повторная подача после отказа тоже требует неотозванной оплаты
	if order.Status != entities.StatusPendingProcessing {
		if _, paid := order.SuccessfulPayment(); !paid {
			return res, &entities.TransitionError{
				OrderID:    orderID,
				From:       order.Status,
				To:         entities.StatusPendingProcessing,
				Violations: []string{"order has no successful payment"},
			}
		}
	}

	if res.Record, err = s.machine.Transition(ctx, statemachine.Request{
		OrderID: orderID,
		From:    order.Status,
		To:      entities.StatusPendingProcessing,
		ActorID: submittedBy,
		Reason:  entities.ReasonSubmitted,
	}); err != nil {
		return res, err
	}

	res.To = entities.StatusPendingProcessing
	if res.From != res.To {
		s.notifyStatus(ctx, order, res.From, res.To, "")
	}
	return res, nil
}

// ApproveOrder holds stock for every line not yet deducted and moves the
// order to Approved. Holds are per line and are all released if any fails.
func (s *OrderWorkflow) ApproveOrder(ctx context.Context, orderID, managerID, notes string) (res Result, err error) {
	defer s.boundary(ctx, "approve_order", orderID, &err)
	defer s.locks.Lock(orderID)()

	if strings.TrimSpace(managerID) == "" {
		return res, entities.NewValidationError(nil, "manager id is required")
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	res = newResult(order)
	if err := requireStatus(order, entities.StatusApproved, entities.StatusPendingProcessing); err != nil {
		return res, err
	}

	lines := pendingLines(order)
	if len(lines) > 0 {
		bulk := s.validator.ValidateOrderLines(ctx, lines)
		if !bulk.AllValid {
			return res, entities.NewValidationError(stock.BuildShortfallReport(bulk), stockViolations(bulk)...)
		}
		res.Warnings = append(res.Warnings, bulk.Warnings...)
	}

	if err := s.ensureCurrent(ctx, order); err != nil {
		return res, err
	}
	held, err := s.reserveLines(ctx, orderID, "approve", lines, s.cfg.ApprovalHold)
	if err != nil {
		return res, err
	}

	res.Record, err = s.machine.Transition(ctx, statemachine.Request{
		OrderID:  orderID,
		From:     order.Status,
		To:       entities.StatusApproved,
		ActorID:  managerID,
		Reason:   entities.ReasonManagerApproved,
		Note:     notes,
		Metadata: map[string]string{"reservations": strconv.Itoa(len(held))},
	})
	if err != nil {
		s.releaseAll(ctx, held)
		return res, err
	}

	res.To = entities.StatusApproved
	res.ReservationIDs = held
	s.notify(ctx, "approval", orderID, func() error {
		return s.notifier.NotifyApproval(ctx, order, managerID, notes)
	})
	return res, nil
}

// RejectOrder moves the order to Rejected, refunds the payment and returns
// deducted stock. Compensation failures are logged and reported in the result.
func (s *OrderWorkflow) RejectOrder(ctx context.Context, orderID, managerID, reasonCode, notes string) (res Result, err error) {
	defer s.boundary(ctx, "reject_order", orderID, &err)
	defer s.locks.Lock(orderID)()

	if strings.TrimSpace(managerID) == "" {
		return res, entities.NewValidationError(nil, "manager id is required")
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	res = newResult(order)
	if err := requireStatus(order, entities.StatusRejected, entities.StatusPendingProcessing); err != nil {
		return res, err
	}

	reason := entities.ReasonManagerRejected
	if reasonCode != "" {
		reason = entities.ReasonCode(reasonCode)
	}
	if res.Record, err = s.machine.Transition(ctx, statemachine.Request{
		OrderID: orderID,
		From:    order.Status,
		To:      entities.StatusRejected,
		ActorID: managerID,
		Reason:  reason,
		Note:    notes,
	}); err != nil {
		return res, err
	}
	res.To = entities.StatusRejected

	s.compensate(ctx, order, "order rejected: "+string(reason), &res)

	s.notify(ctx, "rejection", orderID, func() error {
		return s.notifier.NotifyRejection(ctx, order, managerID, string(reason), notes)
	})
	return res, nil
}

// CancelOrder cancels an order that has not been approved yet. The
// cancellation succeeds even if the refund or the stock restore fails.
func (s *OrderWorkflow) CancelOrder(ctx context.Context, orderID, actorID, note string) (res Result, err error) {
	defer s.boundary(ctx, "cancel_order", orderID, &err)
	defer s.locks.Lock(orderID)()

	if actorID == "" {
		actorID = SystemActor
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	res = newResult(order)
	if err := requireStatus(order, entities.StatusCancelled,
		entities.StatusPendingProcessing,
		entities.StatusPendingDeliveryInfo,
		entities.StatusPendingPayment,
	); err != nil {
		return res, err
	}

	if res.Record, err = s.machine.Transition(ctx, statemachine.Request{
		OrderID: orderID,
		From:    order.Status,
		To:      entities.StatusCancelled,
		ActorID: actorID,
		Reason:  entities.ReasonCancelled,
		Note:    note,
	}); err != nil {
		return res, err
	}
	res.To = entities.StatusCancelled

	s.compensate(ctx, order, "order cancelled", &res)

	s.notify(ctx, "cancellation", orderID, func() error {
		return s.notifier.NotifyCancellation(ctx, order, actorID, note)
	})
	return res, nil
}

// ShipOrder deducts the stock held at approval and moves the order to Shipping.
// If a hold has expired the stock is deducted directly from the ledger.
func (s *OrderWorkflow) ShipOrder(ctx context.Context, orderID, actorID string) (res Result, err error) {
	defer s.boundary(ctx, "ship_order", orderID, &err)
	defer s.locks.Lock(orderID)()

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	res = newResult(order)
	if err := requireStatus(order, entities.StatusShipping, entities.StatusApproved); err != nil {
		return res, err
	}

	if err := s.ensureCurrent(ctx, order); err != nil {
		return res, err
	}

	var deducted []int64
	var deductErr error
	for _, l := range pendingLines(order) {
		err := s.reservations.Confirm(ctx, holdID("approve", orderID, l.ID))
		if errors.Is(err, entities.ErrReservationNotFound) || errors.Is(err, entities.ErrReservationExpired) {
			s.logger.WarnContext(ctx, "approval hold lost, deducting from ledger",
				slog.String("order_id", orderID), slog.Int64("line_id", l.ID))
			_, err = s.ledger.AdjustStock(ctx, l.Product.ID, -l.Quantity)
		}
		if err != nil {
			deductErr = fmt.Errorf("%w: line %d (%s): %w", entities.ErrInventory, l.ID, l.Product.ID, err)
			break
		}
		deducted = append(deducted, l.ID)
	}

	if len(deducted) > 0 {
		if err := s.repo.SetLinesDeducted(ctx, orderID, deducted, true); err != nil {
			s.logger.ErrorContext(ctx, "stock deducted but order lines not updated",
				slog.String("order_id", orderID), slog.Any("line_ids", deducted), slog.Any("error", err))
			return res, fmt.Errorf("%w: %w", entities.ErrStockUpdateFailed, err)
		}
	}
	if deductErr != nil {
		return res, deductErr
	}

	if res.Record, err = s.machine.Transition(ctx, statemachine.Request{
		OrderID: orderID,
		From:    order.Status,
		To:      entities.StatusShipping,
		ActorID: actorID,
		Reason:  entities.ReasonShipped,
	}); err != nil {
		return res, err
	}
	res.To = entities.StatusShipping
	s.notifyStatus(ctx, order, res.From, res.To, "")
	return res, nil
}

func (s *OrderWorkflow) DeliverOrder(ctx context.Context, orderID, actorID string) (res Result, err error) {
	defer s.boundary(ctx, "deliver_order", orderID, &err)
	defer s.locks.Lock(orderID)()

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	res = newResult(order)
	if err := requireStatus(order, entities.StatusDelivered, entities.StatusShipping); err != nil {
		return res, err
	}

	if res.Record, err = s.machine.Transition(ctx, statemachine.Request{
		OrderID: orderID,
		From:    order.Status,
		To:      entities.StatusDelivered,
		ActorID: actorID,
		Reason:  entities.ReasonDelivered,
	}); err != nil {
		return res, err
	}
	res.To = entities.StatusDelivered
	s.notifyStatus(ctx, order, res.From, res.To, "")
	return res, nil
}

// RefundOrder archives a delivered or cancelled order. An outstanding payment
// is refunded first; if that fails the status does not change.
func (s *OrderWorkflow) RefundOrder(ctx context.Context, orderID, actorID, reason string) (res Result, err error) {
	defer s.boundary(ctx, "refund_order", orderID, &err)
	defer s.locks.Lock(orderID)()

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	res = newResult(order)
	if err := requireStatus(order, entities.StatusRefunded, entities.StatusDelivered, entities.StatusCancelled); err != nil {
		return res, err
	}

	if err := s.ensureCurrent(ctx, order); err != nil {
		return res, err
	}

	meta := map[string]string{}
	if payment, ok := order.SuccessfulPayment(); ok {
		refund, err := s.refund(ctx, order, payment, reason)
		if err != nil {
			return res, err
		}
		res.Refund = &refund
		meta["refund_ref"] = refund.GatewayRef
	}

	if res.Record, err = s.machine.Transition(ctx, statemachine.Request{
		OrderID:  orderID,
		From:     order.Status,
		To:       entities.StatusRefunded,
		ActorID:  actorID,
		Reason:   entities.ReasonRefunded,
		Note:     reason,
		Metadata: meta,
	}); err != nil {
		return res, err
	}
	res.To = entities.StatusRefunded
	s.notifyStatus(ctx, order, res.From, res.To, reason)
	return res, nil
}

func (s *OrderWorkflow) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return entities.Order{}, entities.NewValidationError(nil, "order id is required")
	}
	var order entities.Order
	err := utils.Retry(ctx, storeRetry, func() error {
		var err error
		order, err = s.repo.GetOrder(ctx, orderID)
		return err
	}, entities.ErrOrderNotFound)
	return order, err
}

// reserveLines holds stock for each line under its own id. On any failure the
// holds made so far are released and entities.ErrInventory is returned.
func (s *OrderWorkflow) reserveLines(ctx context.Context, orderID, purpose string, lines []entities.OrderLine, timeout time.Duration) ([]string, error) {
	held := make([]string, 0, len(lines))
	for _, l := range lines {
		id := holdID(purpose, orderID, l.ID)
		ok, err := s.reservations.Reserve(ctx, l.Product.ID, l.Quantity, id, timeout)
		if err == nil && ok {
			held = append(held, id)
			continue
		}

		if len(held) > 0 {
			s.releaseAll(ctx, held)
			compensationsTotal.WithLabelValues("release_holds", "ok").Inc()
			s.logger.WarnContext(ctx, "partial reservation rolled back",
				slog.String("order_id", orderID),
				slog.Int("released", len(held)),
				slog.String("product_id", l.Product.ID),
			)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to reserve %s: %w", entities.ErrInventory, l.Product.ID, err)
		}
		return nil, fmt.Errorf("%w: not enough stock to reserve %d of %s", entities.ErrInventory, l.Quantity, l.Product.ID)
	}
	return held, nil
}

func (s *OrderWorkflow) releaseAll(ctx context.Context, ids []string) {
	for _, id := range ids {
		s.reservations.Release(ctx, id)
	}
}

// compensate refunds the outstanding payment, then returns deducted stock to
// the ledger and drops any holds of the order. It never fails; every problem
// is logged and reported in res.
func (s *OrderWorkflow) compensate(ctx context.Context, order entities.Order, reason string, res *Result) {
	if payment, ok := order.SuccessfulPayment(); ok {
		refund, err := s.refund(ctx, order, payment, reason)
		if err != nil {
			compensationsTotal.WithLabelValues("refund", "failed").Inc()
			s.logger.ErrorContext(ctx, "refund failed during compensation",
				slog.String("order_id", order.ID),
				slog.String("payment_ref", payment.GatewayRef),
				slog.Any("error", err),
			)
			res.Warnings = append(res.Warnings, "refund failed: "+err.Error())
		} else {
			compensationsTotal.WithLabelValues("refund", "ok").Inc()
			s.logger.InfoContext(ctx, "payment refunded",
				slog.String("order_id", order.ID), slog.String("refund_ref", refund.GatewayRef))
			res.Refund = &refund
		}
	}

	s.restoreStock(ctx, order, res)

	for _, l := range order.Lines {
		s.reservations.Release(ctx, holdID("pay", order.ID, l.ID))
		s.reservations.Release(ctx, holdID("approve", order.ID, l.ID))
	}
}

func (s *OrderWorkflow) restoreStock(ctx context.Context, order entities.Order, res *Result) {
	for _, l := range order.DeductedLines() {
		if _, err := s.ledger.AdjustStock(ctx, l.Product.ID, l.Quantity); err != nil {
			compensationsTotal.WithLabelValues("restore_stock", "failed").Inc()
			s.logger.ErrorContext(ctx, "failed to restore stock",
				slog.String("order_id", order.ID),
				slog.Int64("line_id", l.ID),
				slog.String("product_id", l.Product.ID),
				slog.Int("quantity", l.Quantity),
				slog.Any("error", err),
			)
			res.UnrestoredLines = append(res.UnrestoredLines, l.ID)
			continue
		}
		compensationsTotal.WithLabelValues("restore_stock", "ok").Inc()
		res.RestoredLines = append(res.RestoredLines, l.ID)
	}

	if len(res.UnrestoredLines) > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("stock not restored for %d line(s)", len(res.UnrestoredLines)))
	}
	if len(res.RestoredLines) == 0 {
		return
	}
	if err := s.repo.SetLinesDeducted(ctx, order.ID, res.RestoredLines, false); err != nil {
		s.logger.ErrorContext(ctx, "stock restored but order lines still marked deducted",
			slog.String("order_id", order.ID),
			slog.Any("line_ids", res.RestoredLines),
			slog.Any("error", err),
		)
		res.Warnings = append(res.Warnings, "order lines could not be updated after stock restore")
	}
}
