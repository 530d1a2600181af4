package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/jmoiron/sqlx"
)

type ordersRepo struct {
	pg
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{pg: newPG(db)}
}

func (r *ordersRepo) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "status", "ordered_at", "customer_id", "invoice_ref",
		"total_excl_tax", "total_incl_tax", "delivery_fee", "total_due").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(
		"id", "order_id", "product_id", "product_title", "unit_price",
		"quantity", "rush_eligible", "stock_deducted").
		From("order_lines").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order lines: %w", err)
	}

	query, args = r.qb.Select(
		"id", "order_id", "kind", "status", "amount",
		"gateway_ref", "original_ref", "message", "created_at").
		From("payment_transactions").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at", "id").
		MustSql()

	var txns []Transaction
	if err := r.selectContext(ctx, &txns, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get transactions: %w", err)
	}

	return OrderToEntity(order, lines, txns), nil
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "status", "ordered_at", "customer_id", "invoice_ref",
			"total_excl_tax", "total_incl_tax", "delivery_fee", "total_due",
		).
		Values(
			o.ID, o.Status, o.OrderedAt, nullString(o.CustomerID), nullString(o.InvoiceRef),
			o.TotalExclTax, o.TotalInclTax, o.DeliveryFee, o.TotalDue,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	// по одной строке, чтобы получить id в порядке позиций
	for i, l := range o.Lines {
		query, args := r.qb.Insert("order_lines").
			Columns("order_id", "product_id", "product_title", "unit_price",
				"quantity", "rush_eligible", "stock_deducted").
			Values(o.ID, l.Product.ID, l.Product.Title, l.Product.UnitPrice,
				l.Quantity, l.RushEligible, l.StockDeducted).
			Suffix("RETURNING id").
			MustSql()

		if err := r.getContext(ctx, &o.Lines[i].ID, query, args...); err != nil {
			return entities.Order{}, fmt.Errorf("failed to save order line: %w", err)
		}
	}
	return o, nil
}

func (r *ordersRepo) UpdateTotals(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("total_excl_tax", o.TotalExclTax).
		Set("total_incl_tax", o.TotalInclTax).
		Set("delivery_fee", o.DeliveryFee).
		Set("total_due", o.TotalDue).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	return r.updateOne(ctx, "update totals", query, args...)
}

func (r *ordersRepo) SetInvoice(ctx context.Context, orderID, invoiceRef string) error {
	query, args := r.qb.Update("orders").
		Set("invoice_ref", invoiceRef).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	return r.updateOne(ctx, "set invoice", query, args...)
}

func (r *ordersRepo) SetLinesDeducted(ctx context.Context, orderID string, lineIDs []int64, deducted bool) error {
	if len(lineIDs) == 0 {
		return nil
	}
	query, args := r.qb.Update("order_lines").
		Set("stock_deducted", deducted).
		Where(sq.Eq{"order_id": orderID, "id": lineIDs}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order lines: %w", err)
	}
	return nil
}

// SaveTransaction inserts the transaction or updates the status of a known one.
func (r *ordersRepo) SaveTransaction(ctx context.Context, t entities.Transaction) error {
	query, args := r.qb.Insert("payment_transactions").
		Columns("id", "order_id", "kind", "status", "amount",
			"gateway_ref", "original_ref", "message", "created_at").
		Values(t.ID, t.OrderID, t.Kind, t.Status, t.Amount,
			nullString(t.GatewayRef), nullString(t.OriginalRef), nullString(t.Message), t.CreatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, message = EXCLUDED.message").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *ordersRepo) GetStatus(ctx context.Context, orderID string) (entities.OrderStatus, error) {
	query, args := r.qb.Select("status").From("orders").Where(sq.Eq{"id": orderID}).MustSql()

	var status string
	err := r.getContext(ctx, &status, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrOrderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get status: %w", err)
	}
	return entities.OrderStatus(status), nil
}

func (r *ordersRepo) CompareAndSetStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", to).
		Where(sq.Eq{"id": orderID, "status": from}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 1 {
		return err
	}

	ok, err := r.exists(ctx, "orders", orderID)
	if err != nil {
		return fmt.Errorf("failed to check order: %w", err)
	}
	if !ok {
		return entities.ErrOrderNotFound
	}
	return entities.ErrConcurrentUpdate
}

func (r *ordersRepo) updateOne(ctx context.Context, op, query string, args ...any) error {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
