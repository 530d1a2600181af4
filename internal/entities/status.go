package entities

type OrderStatus string

const (
	StatusPendingDeliveryInfo    OrderStatus = "PENDING_DELIVERY_INFO"
	StatusPendingPayment         OrderStatus = "PENDING_PAYMENT"
	StatusPaymentFailed          OrderStatus = "PAYMENT_FAILED"
	StatusPendingProcessing      OrderStatus = "PENDING_PROCESSING"
	StatusApproved               OrderStatus = "APPROVED"
	StatusRejected               OrderStatus = "REJECTED"
	StatusShipping               OrderStatus = "SHIPPING"
	StatusDelivered              OrderStatus = "DELIVERED"
	StatusCancelled              OrderStatus = "CANCELLED"
	StatusRefunded               OrderStatus = "REFUNDED"
	StatusErrorStockUpdateFailed OrderStatus = "ERROR_STOCK_UPDATE_FAILED"
)

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []OrderStatus{
	StatusPendingDeliveryInfo,
	StatusPendingPayment,
	StatusPaymentFailed,
	StatusPendingProcessing,
	StatusApproved,
	StatusRejected,
	StatusShipping,
	StatusDelivered,
	StatusCancelled,
	StatusRefunded,
	StatusErrorStockUpdateFailed,
}

var statusDescriptions = map[OrderStatus]string{
	StatusPendingDeliveryInfo:    "waiting for delivery information",
	StatusPendingPayment:         "waiting for payment",
	StatusPaymentFailed:          "payment failed",
	StatusPendingProcessing:      "waiting for manager approval",
	StatusApproved:               "approved, ready to ship",
	StatusRejected:               "rejected by manager",
	StatusShipping:               "in delivery",
	StatusDelivered:              "delivered",
	StatusCancelled:              "cancelled",
	StatusRefunded:               "refunded",
	StatusErrorStockUpdateFailed: "stock update failed, operator action required",
}

func (s OrderStatus) Valid() bool {
	_, ok := statusDescriptions[s]
	return ok
}

func (s OrderStatus) String() string {
	return string(s)
}

// Description returns a human readable label for the status.
func (s OrderStatus) Description() string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return "unknown status"
}

func ParseStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(s)
	return st, st.Valid()
}
