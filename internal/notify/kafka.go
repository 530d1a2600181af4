package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/config"
	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes order events keyed by order id, so events of one
// order stay in one partition.
type KafkaNotifier struct {
	logger *slog.Logger
	writer MessageWriter
	now    func() time.Time
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *KafkaNotifier {
	return NewKafkaNotifierWithWriter(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.NotificationTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: cfg.BatchTimeout,
	})
}

func NewKafkaNotifierWithWriter(logger *slog.Logger, w MessageWriter) *KafkaNotifier {
	return &KafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: w,
		now:    time.Now,
	}
}

func (n *KafkaNotifier) NotifyStatusChange(ctx context.Context, order entities.Order, from, to entities.OrderStatus, note string) error {
	return n.publish(ctx, StatusChanged(order, from, to, note, n.now()))
}

func (n *KafkaNotifier) NotifyApproval(ctx context.Context, order entities.Order, managerID, note string) error {
	return n.publish(ctx, Approved(order, managerID, note, n.now()))
}

func (n *KafkaNotifier) NotifyRejection(ctx context.Context, order entities.Order, managerID, reason, note string) error {
	return n.publish(ctx, Rejected(order, managerID, reason, note, n.now()))
}

func (n *KafkaNotifier) NotifyCancellation(ctx context.Context, order entities.Order, actorID, note string) error {
	return n.publish(ctx, Cancelled(order, actorID, note, n.now()))
}

func (n *KafkaNotifier) publish(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(e.OrderID),
		Value: value,
		Time:  e.At,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s for order %s: %w", e.Type, e.OrderID, err)
	}
	n.logger.DebugContext(ctx, "event published", slog.String("type", e.Type), slog.String("order_id", e.OrderID))
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
