package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionPayment TransactionKind = "payment"
	TransactionRefund  TransactionKind = "refund"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionSucceeded TransactionStatus = "succeeded"
	TransactionFailed    TransactionStatus = "failed"
)

func (s TransactionStatus) Terminal() bool {
	return s == TransactionSucceeded || s == TransactionFailed
}

type Transaction struct {
	ID      string
	OrderID string
	Kind    TransactionKind
	Status  TransactionStatus
	Amount  decimal.Decimal
	// GatewayRef is the reference assigned by the payment provider.
	GatewayRef string
	// OriginalRef links a refund to the payment it reverses.
	OriginalRef string
	Message     string
	CreatedAt   time.Time
}
