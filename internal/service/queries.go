package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/internal/stock"
)

func (s *OrderWorkflow) GetOrder(ctx context.Context, orderID string) (_ entities.Order, err error) {
	defer s.boundary(ctx, "get_order", orderID, &err)
	return s.loadOrder(ctx, orderID)
}

// GetHistory returns the audit trail of an order in chronological order.
func (s *OrderWorkflow) GetHistory(ctx context.Context, orderID string) (_ []entities.TransitionRecord, err error) {
	defer s.boundary(ctx, "get_history", orderID, &err)

	if _, err := s.loadOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.machine.History(ctx, orderID)
}

type NextStates struct {
	OrderID string
	Current entities.OrderStatus
	Next    []entities.OrderStatus
}

func (s *OrderWorkflow) GetValidNextStates(ctx context.Context, orderID string) (_ NextStates, err error) {
	defer s.boundary(ctx, "get_next_states", orderID, &err)

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return NextStates{}, err
	}
	return NextStates{
		OrderID: orderID,
		Current: order.Status,
		Next:    s.machine.ValidNextStates(order.Status),
	}, nil
}

type StockCheck struct {
	OrderID string
	Result  stock.BulkResult
	Report  stock.ShortfallReport
}

// ValidateOrderStock checks lines whose stock has not been deducted yet.
func (s *OrderWorkflow) ValidateOrderStock(ctx context.Context, orderID string) (_ StockCheck, err error) {
	defer s.boundary(ctx, "validate_order_stock", orderID, &err)

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return StockCheck{}, err
	}

	check := StockCheck{OrderID: orderID, Result: stock.BulkResult{AllValid: true}}
	if lines := pendingLines(order); len(lines) > 0 {
		check.Result = s.validator.ValidateOrderLines(ctx, lines)
	}
	check.Report = stock.BuildShortfallReport(check.Result)
	return check, nil
}

// ValidateItems checks an arbitrary list of products, e.g. a cart before checkout.
func (s *OrderWorkflow) ValidateItems(ctx context.Context, items []stock.Item) StockCheck {
	res := s.validator.ValidateBulk(ctx, items)
	return StockCheck{Result: res, Report: stock.BuildShortfallReport(res)}
}

// Restock sets the ledger quantity of a product. Active reservations are not
// touched; a restock below the reserved amount makes later confirmations fail.
func (s *OrderWorkflow) Restock(ctx context.Context, productID string, quantity int) (err error) {
	defer s.boundary(ctx, "restock", "", &err)

	if quantity < 0 {
		return entities.NewValidationError(nil, "quantity must not be negative")
	}
	if err := s.ledger.SetStock(ctx, productID, quantity); err != nil {
		return fmt.Errorf("failed to set stock of %s: %w", productID, err)
	}
	s.logger.InfoContext(ctx, "product restocked",
		slog.String("product_id", productID), slog.Int("quantity", quantity))
	return nil
}
