package statemachine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/keymutex"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/trm"
	"github.com/google/uuid"
)

type StatusStore interface {
	GetStatus(ctx context.Context, orderID string) (entities.OrderStatus, error)
	// CompareAndSetStatus must fail with entities.ErrConcurrentUpdate if the
	// current status is not from.
	CompareAndSetStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) error
}

type HistoryStore interface {
	Append(ctx context.Context, rec entities.TransitionRecord) error
	List(ctx context.Context, orderID string) ([]entities.TransitionRecord, error)
	Between(ctx context.Context, from, to time.Time) ([]entities.TransitionRecord, error)
}

type Request struct {
	OrderID string
	// From is the status the caller read the order in. When set, the
	// transition fails with entities.ErrConcurrentUpdate if the order has
	// moved on since.
	From     entities.OrderStatus
	To       entities.OrderStatus
	ActorID  string
	Reason   entities.ReasonCode
	Note     string
	Metadata map[string]string
}

type Validation struct {
	Valid      bool
	Violations []string
}

type Machine struct {
	logger   *slog.Logger
	tx       trm.Manager
	statuses StatusStore
	history  HistoryStore
	locks    *keymutex.KeyMutex
	now      func() time.Time
}

func New(logger *slog.Logger, tx trm.Manager, statuses StatusStore, history HistoryStore) *Machine {
	return &Machine{
		logger:   logger.With(slog.String("service", "state_machine")),
		tx:       tx,
		statuses: statuses,
		history:  history,
		locks:    keymutex.New(),
		now:      time.Now,
	}
}

// ValidateTransition checks an edge against the table and the transition rules.
// It has no side effects.
func (m *Machine) ValidateTransition(orderID string, from, to entities.OrderStatus, actorID string) Validation {
	var violations []string

	if strings.TrimSpace(orderID) == "" {
		violations = append(violations, "order id is required")
	}
	if !from.Valid() {
		violations = append(violations, fmt.Sprintf("unknown source status %q", from))
	}
	if !to.Valid() {
		violations = append(violations, fmt.Sprintf("unknown target status %q", to))
	}
	if from.Valid() && to.Valid() && !CanTransition(from, to) {
		violations = append(violations, fmt.Sprintf("transition %s -> %s is not allowed", from, to))
	}
	if requiresActor(from, to) && strings.TrimSpace(actorID) == "" {
		violations = append(violations, fmt.Sprintf("transition to %s requires an actor id", to))
	}

	return Validation{Valid: len(violations) == 0, Violations: violations}
}

func requiresActor(from, to entities.OrderStatus) bool {
	switch {
	case to == entities.StatusApproved, to == entities.StatusRejected:
		return true
	case from == entities.StatusErrorStockUpdateFailed:
		// выход из ошибочного статуса только вручную оператором
		return true
	}
	return false
}

// Transition moves the order to req.To. Moving to the current status is a
// successful no-op only if the caller expected that status. Every attempt
// that reaches validation is recorded.
func (m *Machine) Transition(ctx context.Context, req Request) (entities.TransitionRecord, error) {
	unlock := m.locks.Lock(req.OrderID)
	defer unlock()

	from, err := m.statuses.GetStatus(ctx, req.OrderID)
	if err != nil {
		return entities.TransitionRecord{}, fmt.Errorf("failed to get order status: %w", err)
	}

	if req.Reason == "" {
		req.Reason = entities.DefaultReason(req.To)
	}

	rec := entities.TransitionRecord{
		ID:         uuid.NewString(),
		OrderID:    req.OrderID,
		From:       from,
		To:         req.To,
		ActorID:    req.ActorID,
		At:         m.now().UTC(),
		ReasonCode: req.Reason,
		Note:       req.Note,
		Metadata:   maps.Clone(req.Metadata),
	}

	if req.From != "" && from != req.From {
		cause := fmt.Sprintf("order is %s, expected %s", from, req.From)
		m.recordFailure(ctx, rec, cause)
		transitionsTotal.WithLabelValues(string(from), string(req.To), "stale").Inc()
		return rec, fmt.Errorf("order %s is %s, expected %s: %w", req.OrderID, from, req.From, entities.ErrConcurrentUpdate)
	}

	if from == req.To {
		rec.Success = true
		rec.Metadata = withMeta(rec.Metadata, "noop", "true")
		transitionsTotal.WithLabelValues(string(from), string(req.To), "noop").Inc()
		return rec, nil
	}

	if v := m.ValidateTransition(req.OrderID, from, req.To, req.ActorID); !v.Valid {
		m.recordFailure(ctx, rec, strings.Join(v.Violations, "; "))
		transitionsTotal.WithLabelValues(string(from), string(req.To), "rejected").Inc()
		return rec, &entities.TransitionError{
			OrderID:    req.OrderID,
			From:       from,
			To:         req.To,
			Violations: v.Violations,
		}
	}

	rec.Success = true
	err = m.tx.Do(ctx, func(ctx context.Context) error {
		if err := m.statuses.CompareAndSetStatus(ctx, req.OrderID, from, req.To); err != nil {
			return err
		}
		return m.history.Append(ctx, rec)
	})
	if err != nil {
		rec.Success = false
		m.recordFailure(ctx, rec, err.Error())
		transitionsTotal.WithLabelValues(string(from), string(req.To), "failed").Inc()
		if errors.Is(err, entities.ErrConcurrentUpdate) {
			return rec, fmt.Errorf("order %s changed while moving %s -> %s: %w", req.OrderID, from, req.To, err)
		}
		return rec, fmt.Errorf("failed to write transition: %w", err)
	}

	transitionsTotal.WithLabelValues(string(from), string(req.To), "ok").Inc()
	m.logger.InfoContext(ctx, "order transitioned",
		slog.String("order_id", req.OrderID),
		slog.String("from", string(from)),
		slog.String("to", string(req.To)),
		slog.String("actor_id", req.ActorID),
		slog.String("reason", string(req.Reason)),
	)
	return rec, nil
}

// recordFailure appends a failed attempt to the audit trail. The write is
// best-effort and made outside the caller's transaction, so the record
// outlives its rollback.
func (m *Machine) recordFailure(ctx context.Context, rec entities.TransitionRecord, cause string) {
	rec.ID = uuid.NewString()
	rec.Success = false
	rec.Metadata = withMeta(rec.Metadata, "error", cause)

	if err := m.history.Append(trm.WithoutTx(ctx), rec); err != nil {
		m.logger.ErrorContext(ctx, "failed to record rejected transition",
			slog.String("order_id", rec.OrderID), slog.Any("error", err))
	}
}

// RecordCreation appends the initial record of a freshly placed order.
func (m *Machine) RecordCreation(ctx context.Context, orderID, actorID string) error {
	return m.history.Append(ctx, entities.TransitionRecord{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		To:         entities.StatusPendingDeliveryInfo,
		ActorID:    actorID,
		At:         m.now().UTC(),
		ReasonCode: entities.ReasonOrderPlaced,
		Success:    true,
	})
}

func (m *Machine) History(ctx context.Context, orderID string) ([]entities.TransitionRecord, error) {
	return m.history.List(ctx, orderID)
}

func (m *Machine) HistoryBetween(ctx context.Context, from, to time.Time) ([]entities.TransitionRecord, error) {
	return m.history.Between(ctx, from, to)
}

func (m *Machine) ValidNextStates(status entities.OrderStatus) []entities.OrderStatus {
	return NextStates(status)
}

func (m *Machine) CurrentStatus(ctx context.Context, orderID string) (entities.OrderStatus, error) {
	return m.statuses.GetStatus(ctx, orderID)
}

func withMeta(meta map[string]string, key, value string) map[string]string {
	if meta == nil {
		meta = make(map[string]string, 1)
	}
	meta[key] = value
	return meta
}
