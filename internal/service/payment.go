package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/internal/statemachine"
	"github.com/SergeyBogomolovv/media-store-orders/internal/stock"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/utils"
	"github.com/google/uuid"
)

var errStillPending = errors.New("transaction is still pending")

// ProcessPayment charges the order and permanently deducts its stock.
//
// Stock is re-validated and held per line before the gateway is called. A
// declined payment moves the order to PaymentFailed. A successful payment
// whose stock cannot be fully deducted moves it to ErrorStockUpdateFailed,
// which needs an operator.
func (s *OrderWorkflow) ProcessPayment(ctx context.Context, orderID, paymentMethodID string) (res Result, err error) {
	defer s.boundary(ctx, "process_payment", orderID, &err)
	defer s.locks.Lock(orderID)()

	if strings.TrimSpace(paymentMethodID) == "" {
		return res, entities.NewValidationError(nil, "payment method is required")
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return res, err
	}
	res = newResult(order)
	if err := requireStatus(order, entities.StatusPendingProcessing, entities.StatusPendingPayment); err != nil {
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

	// устаревший снимок не должен дойти до списания денег
	if err := s.ensureCurrent(ctx, order); err != nil {
		return res, err
	}
	held, err := s.reserveLines(ctx, orderID, "pay", lines, s.cfg.PaymentHold)
	if err != nil {
		return res, err
	}

	start := time.Now()
	txn, payErr := s.pay(ctx, order, paymentMethodID)
	paymentDuration.Observe(time.Since(start).Seconds())
	if payErr != nil {
		s.releaseAll(ctx, held)
		return res, s.failPayment(ctx, order, txn, payErr, &res)
	}
	paymentsTotal.WithLabelValues("payment", "ok").Inc()
	res.Transaction = &txn

	if err := s.repo.SaveTransaction(ctx, txn); err != nil {
		s.releaseAll(ctx, held)
		return res, s.markInconsistent(ctx, order, &res,
			fmt.Sprintf("payment %s succeeded but was not recorded: %v", txn.GatewayRef, err))
	}
	order.Transactions = append(order.Transactions, txn)

	var confirmed []int64
	var confirmErr error
	for i, l := range lines {
		if err := s.reservations.Confirm(ctx, held[i]); err != nil {
			confirmErr = fmt.Errorf("line %d (%s): %w", l.ID, l.Product.ID, err)
			s.releaseAll(ctx, held[i:])
			break
		}
		confirmed = append(confirmed, l.ID)
	}
	if len(confirmed) > 0 {
		if err := s.repo.SetLinesDeducted(ctx, orderID, confirmed, true); err != nil {
			s.logger.ErrorContext(ctx, "stock deducted but order lines not updated",
				slog.String("order_id", orderID), slog.Any("line_ids", confirmed), slog.Any("error", err))
			confirmErr = errors.Join(confirmErr, fmt.Errorf("failed to mark lines deducted: %w", err))
		}
		markDeducted(&order, confirmed)
	}
	if confirmErr != nil {
		return res, s.markInconsistent(ctx, order, &res, confirmErr.Error())
	}

	invoice := "INV-" + strings.ToUpper(uuid.NewString())
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SetInvoice(ctx, orderID, invoice); err != nil {
			return fmt.Errorf("failed to save invoice: %w", err)
		}
		rec, err := s.machine.Transition(ctx, statemachine.Request{
			OrderID: orderID,
			From:    order.Status,
			To:      entities.StatusPendingProcessing,
			ActorID: payer(order),
			Reason:  entities.ReasonPaymentConfirmed,
			Metadata: map[string]string{
				"gateway_ref": txn.GatewayRef,
				"invoice_ref": invoice,
			},
		})
		res.Record = rec
		return err
	})
	if err != nil {
		// заказ успели изменить, пока шла оплата
		s.logger.ErrorContext(ctx, "payment taken but order could not move on, compensating",
			slog.String("order_id", orderID), slog.Any("error", err))
		s.compensate(ctx, order, "payment could not be applied", &res)
		return res, err
	}

	res.To = entities.StatusPendingProcessing
	res.InvoiceRef = invoice
	s.notifyStatus(ctx, order, res.From, res.To, "invoice "+invoice)
	return res, nil
}

func (s *OrderWorkflow) pay(ctx context.Context, order entities.Order, paymentMethodID string) (entities.Transaction, error) {
	txn, err := s.payments.Pay(ctx, order, paymentMethodID)
	if err != nil {
		return txn, err
	}
	txn = s.normalize(txn, order, entities.TransactionPayment)
	if txn.Amount.IsZero() {
		txn.Amount = order.TotalDue
	}

	if txn.Status == entities.TransactionPending {
		if txn, err = s.await(ctx, txn); err != nil {
			return txn, err
		}
	}
	if txn.Status != entities.TransactionSucceeded {
		return txn, fmt.Errorf("payment %s declined: %s", txn.GatewayRef, txn.Message)
	}
	return txn, nil
}

// refund reverses payment. The refund transaction is recorded whatever the outcome.
func (s *OrderWorkflow) refund(ctx context.Context, order entities.Order, payment entities.Transaction, reason string) (entities.Transaction, error) {
	txn, err := s.payments.Refund(ctx, order.ID, payment.GatewayRef, payment.Amount, reason)
	if err != nil {
		paymentsTotal.WithLabelValues("refund", "error").Inc()
		return txn, fmt.Errorf("%w: refund of %s: %w", entities.ErrPaymentFailed, payment.GatewayRef, err)
	}
	txn = s.normalize(txn, order, entities.TransactionRefund)
	txn.OriginalRef = payment.GatewayRef
	if txn.Amount.IsZero() {
		txn.Amount = payment.Amount
	}

	var awaitErr error
	if txn.Status == entities.TransactionPending {
		txn, awaitErr = s.await(ctx, txn)
	}
	if err := s.repo.SaveTransaction(ctx, txn); err != nil {
		s.logger.ErrorContext(ctx, "failed to record refund",
			slog.String("order_id", order.ID), slog.String("refund_ref", txn.GatewayRef), slog.Any("error", err))
	}
	if awaitErr != nil {
		paymentsTotal.WithLabelValues("refund", "error").Inc()
		return txn, fmt.Errorf("%w: %w", entities.ErrPaymentFailed, awaitErr)
	}
	if txn.Status != entities.TransactionSucceeded {
		paymentsTotal.WithLabelValues("refund", "declined").Inc()
		return txn, fmt.Errorf("%w: refund of %s declined: %s", entities.ErrPaymentFailed, payment.GatewayRef, txn.Message)
	}
	paymentsTotal.WithLabelValues("refund", "ok").Inc()
	return txn, nil
}

// await polls the gateway until the transaction reaches a terminal status.
func (s *OrderWorkflow) await(ctx context.Context, txn entities.Transaction) (entities.Transaction, error) {
	err := utils.Retry(ctx, s.cfg.StatusPoll, func() error {
		cur, err := s.payments.CheckStatus(ctx, txn.GatewayRef)
		if err != nil {
			return err
		}
		txn.Status = cur.Status
		txn.Message = cur.Message
		if !cur.Status.Terminal() {
			return errStillPending
		}
		return nil
	})
	if err != nil {
		return txn, fmt.Errorf("transaction %s unresolved: %w", txn.GatewayRef, err)
	}
	return txn, nil
}

func (s *OrderWorkflow) normalize(txn entities.Transaction, order entities.Order, kind entities.TransactionKind) entities.Transaction {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = s.now().UTC()
	}
	txn.OrderID = order.ID
	txn.Kind = kind
	return txn
}

func (s *OrderWorkflow) failPayment(ctx context.Context, order entities.Order, txn entities.Transaction, cause error, res *Result) error {
	paymentsTotal.WithLabelValues("payment", "declined").Inc()

	if txn.GatewayRef != "" {
		txn = s.normalize(txn, order, entities.TransactionPayment)
		if txn.Status == entities.TransactionPending {
			txn.Status = entities.TransactionFailed
		}
		if err := s.repo.SaveTransaction(ctx, txn); err != nil {
			s.logger.ErrorContext(ctx, "failed to record declined payment",
				slog.String("order_id", order.ID), slog.Any("error", err))
		}
		res.Transaction = &txn
	}

	rec, err := s.machine.Transition(ctx, statemachine.Request{
		OrderID: order.ID,
		From:    order.Status,
		To:      entities.StatusPaymentFailed,
		ActorID: payer(order),
		Reason:  entities.ReasonPaymentDeclined,
		Note:    cause.Error(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v (status not updated: %w)", entities.ErrPaymentFailed, cause, err)
	}
	res.Record = rec
	res.To = entities.StatusPaymentFailed

	s.logger.WarnContext(ctx, "payment declined",
		slog.String("order_id", order.ID), slog.Any("error", cause))
	s.notifyStatus(ctx, order, order.Status, entities.StatusPaymentFailed, cause.Error())
	return fmt.Errorf("%w: %v", entities.ErrPaymentFailed, cause)
}

// markInconsistent parks the order in ErrorStockUpdateFailed after money has
// been taken but the books could not be completed.
func (s *OrderWorkflow) markInconsistent(ctx context.Context, order entities.Order, res *Result, cause string) error {
	s.logger.ErrorContext(ctx, "order books inconsistent, manual intervention required",
		slog.String("order_id", order.ID),
		slog.String("cause", cause),
		slog.Any("deducted_lines", lineIDs(order.DeductedLines())),
	)

	rec, err := s.machine.Transition(ctx, statemachine.Request{
		OrderID:  order.ID,
		From:     order.Status,
		To:       entities.StatusErrorStockUpdateFailed,
		ActorID:  SystemActor,
		Reason:   entities.ReasonStockUpdateFailed,
		Note:     cause,
		Metadata: map[string]string{"requires_operator": "true"},
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to park inconsistent order",
			slog.String("order_id", order.ID), slog.Any("error", err))
		return fmt.Errorf("%w: %s (status not updated: %w)", entities.ErrStockUpdateFailed, cause, err)
	}
	res.Record = rec
	res.To = entities.StatusErrorStockUpdateFailed
	s.notifyStatus(ctx, order, order.Status, entities.StatusErrorStockUpdateFailed, cause)
	return fmt.Errorf("%w: %s", entities.ErrStockUpdateFailed, cause)
}

func payer(order entities.Order) string {
	if order.CustomerID != "" {
		return order.CustomerID
	}
	return SystemActor
}

func markDeducted(order *entities.Order, ids []int64) {
	for i := range order.Lines {
		for _, id := range ids {
			if order.Lines[i].ID == id {
				order.Lines[i].StockDeducted = true
			}
		}
	}
}
