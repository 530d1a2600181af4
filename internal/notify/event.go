package notify

import (
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
)

const (
	EventStatusChanged = "order.status_changed"
	EventApproved      = "order.approved"
	EventRejected      = "order.rejected"
	EventCancelled     = "order.cancelled"
)

// Event is the message published for every customer facing change of an order.
type Event struct {
	Type       string               `json:"type"`
	OrderID    string               `json:"order_id"`
	CustomerID string               `json:"customer_id,omitempty"`
	From       entities.OrderStatus `json:"from,omitempty"`
	To         entities.OrderStatus `json:"to"`
	ActorID    string               `json:"actor_id,omitempty"`
	Reason     string               `json:"reason,omitempty"`
	Note       string               `json:"note,omitempty"`
	TotalDue   string               `json:"total_due"`
	InvoiceRef string               `json:"invoice_ref,omitempty"`
	At         time.Time            `json:"at"`
}

func newEvent(kind string, order entities.Order, to entities.OrderStatus, now time.Time) Event {
	return Event{
		Type:       kind,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		From:       order.Status,
		To:         to,
		TotalDue:   order.TotalDue.StringFixed(2),
		InvoiceRef: order.InvoiceRef,
		At:         now.UTC(),
	}
}

func StatusChanged(order entities.Order, from, to entities.OrderStatus, note string, now time.Time) Event {
	e := newEvent(EventStatusChanged, order, to, now)
	e.From = from
	e.Note = note
	return e
}

func Approved(order entities.Order, managerID, note string, now time.Time) Event {
	e := newEvent(EventApproved, order, entities.StatusApproved, now)
	e.ActorID = managerID
	e.Note = note
	return e
}

func Rejected(order entities.Order, managerID, reason, note string, now time.Time) Event {
	e := newEvent(EventRejected, order, entities.StatusRejected, now)
	e.ActorID = managerID
	e.Reason = reason
	e.Note = note
	return e
}

func Cancelled(order entities.Order, actorID, note string, now time.Time) Event {
	e := newEvent(EventCancelled, order, entities.StatusCancelled, now)
	e.ActorID = actorID
	e.Note = note
	return e
}
