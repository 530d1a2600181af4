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

type ledgerRepo struct {
	pg
}

func NewLedgerRepo(db *sqlx.DB) *ledgerRepo {
	return &ledgerRepo{pg: newPG(db)}
}

func (r *ledgerRepo) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select("id", "title", "price", "stock").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(p), nil
}

func (r *ledgerRepo) GetStock(ctx context.Context, productID string) (int, error) {
	p, err := r.GetProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return p.Stock, nil
}

// AdjustStock adds delta to the stock in one conditional update, so stock
// never goes below zero regardless of concurrent writers.
func (r *ledgerRepo) AdjustStock(ctx context.Context, productID string, delta int) (int, error) {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", delta)).
		Where(sq.Eq{"id": productID}).
		Where(sq.Expr("stock + ? >= 0", delta)).
		Suffix("RETURNING stock").
		MustSql()

	var stock int
	err := r.getContext(ctx, &stock, query, args...)
	if err == nil {
		return stock, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to adjust stock: %w", err)
	}

	ok, err := r.exists(ctx, "products", productID)
	if err != nil {
		return 0, fmt.Errorf("failed to check product: %w", err)
	}
	if !ok {
		return 0, entities.ErrProductNotFound
	}
	return 0, fmt.Errorf("%w: %s by %d", entities.ErrInsufficientStock, productID, delta)
}

func (r *ledgerRepo) SetStock(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", quantity).
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set stock: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

// SaveProduct creates or replaces a catalog entry.
func (r *ledgerRepo) SaveProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Insert("products").
		Columns("id", "title", "price", "stock").
		Values(p.ID, p.Title, p.Price, p.Stock).
		Suffix("ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, price = EXCLUDED.price, stock = EXCLUDED.stock").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}
