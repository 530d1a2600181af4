package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
)

// LogNotifier writes events to the log. Used when kafka is not configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With(slog.String("notifier", "log"))}
}

func (n *LogNotifier) NotifyStatusChange(ctx context.Context, order entities.Order, from, to entities.OrderStatus, note string) error {
	n.log(ctx, StatusChanged(order, from, to, note, time.Now()))
	return nil
}

func (n *LogNotifier) NotifyApproval(ctx context.Context, order entities.Order, managerID, note string) error {
	n.log(ctx, Approved(order, managerID, note, time.Now()))
	return nil
}

func (n *LogNotifier) NotifyRejection(ctx context.Context, order entities.Order, managerID, reason, note string) error {
	n.log(ctx, Rejected(order, managerID, reason, note, time.Now()))
	return nil
}

func (n *LogNotifier) NotifyCancellation(ctx context.Context, order entities.Order, actorID, note string) error {
	n.log(ctx, Cancelled(order, actorID, note, time.Now()))
	return nil
}

func (n *LogNotifier) log(ctx context.Context, e Event) {
	n.logger.InfoContext(ctx, "order event",
		slog.String("type", e.Type),
		slog.String("order_id", e.OrderID),
		slog.String("from", string(e.From)),
		slog.String("to", string(e.To)),
		slog.String("actor_id", e.ActorID),
		slog.String("reason", e.Reason),
	)
}
