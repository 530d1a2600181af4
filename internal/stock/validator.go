package stock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
)

type Reason string

const (
	ReasonOK                Reason = "OK"
	ReasonInvalidQuantity   Reason = "INVALID_QUANTITY"
	ReasonProductNotFound   Reason = "PRODUCT_NOT_FOUND"
	ReasonOutOfStock        Reason = "OUT_OF_STOCK"
	ReasonInsufficientStock Reason = "INSUFFICIENT_STOCK"
	ReasonLookupFailed      Reason = "LOOKUP_FAILED"
)

type ProductReader interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
}

type ReservationReader interface {
	ReservedStock(ctx context.Context, productID string) int
}

type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type Result struct {
	Valid          bool
	ProductID      string
	ProductTitle   string
	Requested      int
	ActualStock    int
	ReservedStock  int
	AvailableStock int
	Reason         Reason
	Message        string
}

type BulkResult struct {
	AllValid bool
	Items    []Result
	Failed   []Result
	Warnings []string
}

type Validator struct {
	logger       *slog.Logger
	products     ProductReader
	reservations ReservationReader
	lowStock     int
}

// NewValidator returns a read-only validator. lowStock is the remaining
// available quantity below which a warning is produced.
func NewValidator(logger *slog.Logger, products ProductReader, reservations ReservationReader, lowStock int) *Validator {
	return &Validator{
		logger:       logger.With(slog.String("service", "stock_validator")),
		products:     products,
		reservations: reservations,
		lowStock:     lowStock,
	}
}

// ValidateOne compares the requested quantity with the available stock.
// The error is non-nil only when the product could not be read.
func (v *Validator) ValidateOne(ctx context.Context, productID string, requested int) (Result, error) {
	return v.validate(ctx, productID, requested, requested)
}

func (v *Validator) validate(ctx context.Context, productID string, requested, demand int) (Result, error) {
	res := Result{ProductID: productID, Requested: requested}

	if requested <= 0 {
		res.Reason = ReasonInvalidQuantity
		res.Message = fmt.Sprintf("quantity must be positive, got %d", requested)
		return res, nil
	}

	product, err := v.products.GetProduct(ctx, productID)
	if errors.Is(err, entities.ErrProductNotFound) {
		res.Reason = ReasonProductNotFound
		res.Message = fmt.Sprintf("product %s does not exist", productID)
		return res, nil
	}
	if err != nil {
		res.Reason = ReasonLookupFailed
		res.Message = "stock could not be checked"
		return res, fmt.Errorf("failed to get product %s: %w", productID, err)
	}

	res.ProductTitle = product.Title
	res.ActualStock = product.Stock
	res.ReservedStock = v.reservations.ReservedStock(ctx, productID)
	res.AvailableStock = max(res.ActualStock-res.ReservedStock, 0)

	switch {
	case res.AvailableStock == 0:
		res.Reason = ReasonOutOfStock
		res.Message = fmt.Sprintf("%s is out of stock", product.Title)
	case demand > res.AvailableStock:
		res.Reason = ReasonInsufficientStock
		res.Message = fmt.Sprintf("only %d of %s available, %d requested", res.AvailableStock, product.Title, demand)
	default:
		res.Valid = true
		res.Reason = ReasonOK
	}
	return res, nil
}

// ValidateBulk validates every item independently; one failure does not stop
// the others. Repeated products are checked against their cumulative demand.
func (v *Validator) ValidateBulk(ctx context.Context, items []Item) BulkResult {
	out := BulkResult{AllValid: true, Items: make([]Result, 0, len(items))}
	demand := make(map[string]int, len(items))

	for _, it := range items {
		if it.Quantity > 0 {
			demand[it.ProductID] += it.Quantity
		}
		res, err := v.validate(ctx, it.ProductID, it.Quantity, demand[it.ProductID])
		if err != nil {
			v.logger.ErrorContext(ctx, "stock lookup failed",
				slog.String("product_id", it.ProductID), slog.Any("error", err))
		}

		out.Items = append(out.Items, res)
		if !res.Valid {
			out.AllValid = false
			out.Failed = append(out.Failed, res)
			continue
		}
		if left := res.AvailableStock - demand[it.ProductID]; left < v.lowStock {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("%s will be low on stock after this order (%d left)", res.ProductTitle, left))
		}
	}

	if len(items) == 0 {
		out.AllValid = false
		out.Warnings = append(out.Warnings, "no items to validate")
	}
	return out
}

func (v *Validator) ValidateOrderLines(ctx context.Context, lines []entities.OrderLine) BulkResult {
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	return v.ValidateBulk(ctx, items)
}

// IsCriticallyLow reports whether available stock is at or below threshold.
func (v *Validator) IsCriticallyLow(ctx context.Context, productID string, threshold int) (bool, error) {
	product, err := v.products.GetProduct(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	available := product.Stock - v.reservations.ReservedStock(ctx, productID)
	return available <= threshold, nil
}
