package entities_test

import (
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryStatusHasDescriptionAndReason(t *testing.T) {
	for _, s := range entities.AllStatuses {
		assert.True(t, s.Valid(), s)
		assert.NotEqual(t, "unknown status", s.Description(), s)
		assert.NotEmpty(t, entities.DefaultReason(s), s)
	}
	assert.False(t, entities.OrderStatus("SOMETHING").Valid())
}

func TestOrder_Totals(t *testing.T) {
	rate := decimal.RequireFromString("0.10")
	order := entities.Order{
		Lines: []entities.OrderLine{
			{Product: entities.ProductSnapshot{ID: "cd-1", UnitPrice: decimal.RequireFromString("12.50")}, Quantity: 2},
			{Product: entities.ProductSnapshot{ID: "dvd-1", UnitPrice: decimal.RequireFromString("7.99")}, Quantity: 1},
		},
	}
	order.ComputeTotals(rate, decimal.RequireFromString("3.00"))

	assert.Equal(t, "32.99", order.TotalExclTax.StringFixed(2))
	assert.Equal(t, "36.29", order.TotalInclTax.StringFixed(2))
	assert.Equal(t, "39.29", order.TotalDue.StringFixed(2))
	require.NoError(t, order.CheckTotals(rate))

	order.TotalDue = order.TotalDue.Add(decimal.RequireFromString("0.05"))
	assert.Error(t, order.CheckTotals(rate))
}

func TestOrder_SuccessfulPayment(t *testing.T) {
	order := entities.Order{Transactions: []entities.Transaction{
		{Kind: entities.TransactionPayment, Status: entities.TransactionFailed, GatewayRef: "p-1"},
		{Kind: entities.TransactionPayment, Status: entities.TransactionSucceeded, GatewayRef: "p-2"},
	}}
	txn, ok := order.SuccessfulPayment()
	require.True(t, ok)
	assert.Equal(t, "p-2", txn.GatewayRef)

	order.Transactions = append(order.Transactions, entities.Transaction{
		Kind: entities.TransactionRefund, Status: entities.TransactionSucceeded, OriginalRef: "p-2",
	})
	_, ok = order.SuccessfulPayment()
	assert.False(t, ok)
}

func TestTypedErrorsUnwrap(t *testing.T) {
	var err error = &entities.TransitionError{OrderID: "1", From: entities.StatusPendingProcessing, To: entities.StatusRefunded}
	assert.True(t, errors.Is(err, entities.ErrInvalidTransition))

	err = entities.NewValidationError(nil, "quantity must be positive")
	assert.True(t, errors.Is(err, entities.ErrValidation))
	assert.Contains(t, err.Error(), "quantity must be positive")
}
