package entities

import "time"

type ReasonCode string

const (
	ReasonOrderPlaced          ReasonCode = "ORDER_PLACED"
	ReasonDeliveryInfoProvided ReasonCode = "DELIVERY_INFO_PROVIDED"
	ReasonPaymentConfirmed     ReasonCode = "PAYMENT_CONFIRMED"
	ReasonPaymentDeclined      ReasonCode = "PAYMENT_DECLINED"
	ReasonPaymentRetry         ReasonCode = "PAYMENT_RETRY"
	ReasonSubmitted            ReasonCode = "SUBMITTED_FOR_APPROVAL"
	ReasonManagerApproved      ReasonCode = "MANAGER_APPROVED"
	ReasonManagerRejected      ReasonCode = "MANAGER_REJECTED"
	ReasonShipped              ReasonCode = "SHIPPED"
	ReasonDelivered            ReasonCode = "DELIVERED"
	ReasonCancelled            ReasonCode = "CANCELLED"
	ReasonRefunded             ReasonCode = "REFUNDED"
	ReasonStockUpdateFailed    ReasonCode = "STOCK_UPDATE_FAILED"
)

// defaultReasons maps every target status to the reason used when the caller
// does not provide one. Exhaustiveness is checked by tests.
var defaultReasons = map[OrderStatus]ReasonCode{
	StatusPendingDeliveryInfo:    ReasonOrderPlaced,
	StatusPendingPayment:         ReasonDeliveryInfoProvided,
	StatusPaymentFailed:          ReasonPaymentDeclined,
	StatusPendingProcessing:      ReasonSubmitted,
	StatusApproved:               ReasonManagerApproved,
	StatusRejected:               ReasonManagerRejected,
	StatusShipping:               ReasonShipped,
	StatusDelivered:              ReasonDelivered,
	StatusCancelled:              ReasonCancelled,
	StatusRefunded:               ReasonRefunded,
	StatusErrorStockUpdateFailed: ReasonStockUpdateFailed,
}

var reasonDescriptions = map[ReasonCode]string{
	ReasonOrderPlaced:          "Order placed from cart",
	ReasonDeliveryInfoProvided: "Delivery information provided",
	ReasonPaymentConfirmed:     "Payment confirmed by gateway",
	ReasonPaymentDeclined:      "Payment declined by gateway",
	ReasonPaymentRetry:         "Customer retries payment",
	ReasonSubmitted:            "Order submitted for approval",
	ReasonManagerApproved:      "Order approved by product manager",
	ReasonManagerRejected:      "Order rejected by product manager",
	ReasonShipped:              "Order handed to carrier",
	ReasonDelivered:            "Order delivered to customer",
	ReasonCancelled:            "Order cancelled",
	ReasonRefunded:             "Order refunded",
	ReasonStockUpdateFailed:    "Stock deduction failed after payment",
}

// DefaultReason returns the reason recorded for a transition into status.
func DefaultReason(status OrderStatus) ReasonCode {
	return defaultReasons[status]
}

func (r ReasonCode) Description() string {
	if d, ok := reasonDescriptions[r]; ok {
		return d
	}
	return string(r)
}

// TransitionRecord is a single entry of the order audit trail.
type TransitionRecord struct {
	ID         string
	OrderID    string
	From       OrderStatus
	To         OrderStatus
	ActorID    string
	At         time.Time
	ReasonCode ReasonCode
	Note       string
	Success    bool
	Metadata   map[string]string
}
