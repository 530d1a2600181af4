package statemachine

import (
	"slices"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
)

// transitions is the only place where legal status edges are defined.
var transitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.StatusPendingDeliveryInfo: {entities.StatusPendingPayment, entities.StatusCancelled},
	entities.StatusPendingPayment: {
		entities.StatusPendingProcessing,
		entities.StatusPaymentFailed,
		entities.StatusCancelled,
		// stock confirmation failed after a successful payment
		entities.StatusErrorStockUpdateFailed,
	},
	entities.StatusPaymentFailed:          {entities.StatusPendingPayment, entities.StatusCancelled},
	entities.StatusPendingProcessing:      {entities.StatusApproved, entities.StatusRejected},
	entities.StatusApproved:               {entities.StatusShipping, entities.StatusCancelled},
	entities.StatusRejected:               {entities.StatusPendingProcessing, entities.StatusCancelled},
	entities.StatusShipping:               {entities.StatusDelivered, entities.StatusCancelled},
	entities.StatusDelivered:              {entities.StatusRefunded},
	entities.StatusCancelled:              {entities.StatusRefunded},
	entities.StatusRefunded:               {},
	entities.StatusErrorStockUpdateFailed: {entities.StatusPendingProcessing, entities.StatusCancelled},
}

func CanTransition(from, to entities.OrderStatus) bool {
	return slices.Contains(transitions[from], to)
}

// NextStates returns the statuses reachable from status in one step.
func NextStates(status entities.OrderStatus) []entities.OrderStatus {
	return slices.Clone(transitions[status])
}

func IsTerminal(status entities.OrderStatus) bool {
	next, ok := transitions[status]
	return ok && len(next) == 0
}
