package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConcurrentUpdate  = errors.New("order was modified concurrently")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationExpired  = errors.New("reservation expired")
	ErrReservationExists   = errors.New("reservation already exists")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidArgument     = errors.New("invalid argument")

	ErrValidation        = errors.New("validation failed")
	ErrInventory         = errors.New("inventory conflict")
	ErrPaymentFailed     = errors.New("payment failed")
	ErrStockUpdateFailed = errors.New("stock update failed")
	ErrInternal          = errors.New("internal error")
)

// TransitionError is returned when an edge is rejected by the transition table
// or by one of the transition-specific rules.
type TransitionError struct {
	OrderID    string
	From       OrderStatus
	To         OrderStatus
	Violations []string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s (order %s): %s",
		ErrInvalidTransition, e.From, e.To, e.OrderID, strings.Join(e.Violations, "; "))
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ValidationError describes a rejected request before any side effect happened.
type ValidationError struct {
	Violations []string
	// Details is an optional structured payload (e.g. a stock report) for the caller.
	Details any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Violations, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(details any, violations ...string) *ValidationError {
	return &ValidationError{Violations: violations, Details: details}
}
