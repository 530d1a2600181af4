package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/config"
	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

const (
	ShipmentShipped   = "shipped"
	ShipmentDelivered = "delivered"
)

// ShipmentEvent приходит от службы доставки
type ShipmentEvent struct {
	OrderID string    `json:"order_id" validate:"required"`
	Type    string    `json:"type" validate:"required,oneof=shipped delivered"`
	Carrier string    `json:"carrier" validate:"required"`
	At      time.Time `json:"at"`
}

type ShipmentProcessor interface {
	ShipOrder(ctx context.Context, orderID, actorID string) (service.Result, error)
	DeliverOrder(ctx context.Context, orderID, actorID string) (service.Result, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      MessageWriter
	dlqTopic string
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	svc      ShipmentProcessor
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, svc ShipmentProcessor) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.ShipmentTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, cfg.DLQTopic, svc)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, dlqTopic string, svc ShipmentProcessor) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		dlqTopic: dlqTopic,
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		eventsInProgress.Inc()
		start := time.Now()
		// ретраи уже внутри сервиса
		err = h.handleShipmentEvent(ctx, m)
		eventProcessingDuration.Observe(time.Since(start).Seconds())
		eventsInProgress.Dec()

		if err != nil {
			eventsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

			if err := h.WriteToDLQ(ctx, m, err); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		} else {
			eventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleShipmentEvent(ctx context.Context, m kafka.Message) error {
	var event ShipmentEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid event data: %w", err)
	}

	var target entities.OrderStatus
	var err error
	switch event.Type {
	case ShipmentShipped:
		target = entities.StatusShipping
		_, err = h.svc.ShipOrder(ctx, event.OrderID, event.Carrier)
	case ShipmentDelivered:
		target = entities.StatusDelivered
		_, err = h.svc.DeliverOrder(ctx, event.OrderID, event.Carrier)
	}

	// повторная доставка события: заказ уже в нужном статусе
	var te *entities.TransitionError
	if errors.As(err, &te) && te.From == target {
		h.logger.Info("duplicate shipment event skipped", slog.String("order_id", event.OrderID), slog.String("type", event.Type))
		return nil
	}
	return err
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message, cause error) error {
	topic := h.dlqTopic
	if topic == "" {
		topic = fmt.Sprintf("%s-dlq", m.Topic)
	}
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   m.Key,
		Value: m.Value,
		Headers: append(m.Headers,
			kafka.Header{Key: "error", Value: []byte(cause.Error())},
			kafka.Header{Key: "source_topic", Value: []byte(m.Topic)},
		),
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
