package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TotalsTolerance is the rounding tolerance used when checking order totals.
var TotalsTolerance = decimal.RequireFromString("0.01")

type Product struct {
	ID    string
	Title string
	Price decimal.Decimal
	Stock int
}

// ProductSnapshot is frozen at order time and never re-read from the catalog.
type ProductSnapshot struct {
	ID        string
	Title     string
	UnitPrice decimal.Decimal
}

type OrderLine struct {
	ID            int64
	Product       ProductSnapshot
	Quantity      int
	RushEligible  bool
	StockDeducted bool
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Product.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Order struct {
	ID           string
	Status       OrderStatus
	OrderedAt    time.Time
	CustomerID   string
	InvoiceRef   string
	Lines        []OrderLine
	TotalExclTax decimal.Decimal
	TotalInclTax decimal.Decimal
	DeliveryFee  decimal.Decimal
	TotalDue     decimal.Decimal
	Transactions []Transaction
}

// Tax returns the tax for an amount at the given rate, rounded to cents.
func Tax(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}

// ComputeTotals fills all totals from the lines, the tax rate and the delivery fee.
func (o *Order) ComputeTotals(taxRate, deliveryFee decimal.Decimal) {
	excl := decimal.Zero
	for _, l := range o.Lines {
		excl = excl.Add(l.Subtotal())
	}
	o.TotalExclTax = excl.Round(2)
	o.TotalInclTax = o.TotalExclTax.Add(Tax(o.TotalExclTax, taxRate))
	o.DeliveryFee = deliveryFee.Round(2)
	o.TotalDue = o.TotalInclTax.Add(o.DeliveryFee)
}

// CheckTotals verifies totalInclTax == totalExclTax + tax and totalDue == totalInclTax + deliveryFee.
func (o Order) CheckTotals(taxRate decimal.Decimal) error {
	wantIncl := o.TotalExclTax.Add(Tax(o.TotalExclTax, taxRate))
	if o.TotalInclTax.Sub(wantIncl).Abs().GreaterThan(TotalsTolerance) {
		return fmt.Errorf("total incl. tax %s, expected %s", o.TotalInclTax, wantIncl)
	}
	wantDue := o.TotalInclTax.Add(o.DeliveryFee)
	if o.TotalDue.Sub(wantDue).Abs().GreaterThan(TotalsTolerance) {
		return fmt.Errorf("total due %s, expected %s", o.TotalDue, wantDue)
	}
	return nil
}

// SuccessfulPayment returns the latest successful payment that has not been refunded.
func (o Order) SuccessfulPayment() (Transaction, bool) {
	refunded := make(map[string]bool)
	for _, t := range o.Transactions {
		if t.Kind == TransactionRefund && t.Status == TransactionSucceeded {
			refunded[t.OriginalRef] = true
		}
	}
	for i := len(o.Transactions) - 1; i >= 0; i-- {
		t := o.Transactions[i]
		if t.Kind == TransactionPayment && t.Status == TransactionSucceeded && !refunded[t.GatewayRef] {
			return t, true
		}
	}
	return Transaction{}, false
}

// DeductedLines returns lines whose stock has been permanently deducted from the ledger.
func (o Order) DeductedLines() []OrderLine {
	var lines []OrderLine
	for _, l := range o.Lines {
		if l.StockDeducted {
			lines = append(lines, l)
		}
	}
	return lines
}
