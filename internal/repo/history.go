package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/jmoiron/sqlx"
)

var historyColumns = []string{
	"id", "order_id", "from_status", "to_status", "actor_id",
	"at", "reason_code", "note", "success", "metadata",
}

// historyRepo keeps the full audit trail; unlike the in-memory store it is not capped.
type historyRepo struct {
	pg
}

// NewHistoryRepo keeps the full audit trail; unlike the in-memory store it
// has no per-order cap, retention is up to the database.
func NewHistoryRepo(db *sqlx.DB) *historyRepo {
	return &historyRepo{pg: newPG(db)}
}

func (r *historyRepo) Append(ctx context.Context, rec entities.TransitionRecord) error {
	var meta []byte
	if len(rec.Metadata) > 0 {
		var err error
		if meta, err = json.Marshal(rec.Metadata); err != nil {
			return fmt.Errorf("failed to encode metadata: %w", err)
		}
	}

	query, args := r.qb.Insert("order_transitions").
		Columns(historyColumns...).
		Values(rec.ID, rec.OrderID, nullString(string(rec.From)), rec.To, nullString(rec.ActorID),
			rec.At, nullString(string(rec.ReasonCode)), nullString(rec.Note), rec.Success, nullString(string(meta))).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append transition: %w", err)
	}
	return nil
}

func (r *historyRepo) List(ctx context.Context, orderID string) ([]entities.TransitionRecord, error) {
	query, args := r.qb.Select(historyColumns...).
		From("order_transitions").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("at", "id").
		MustSql()

	return r.list(ctx, query, args...)
}

func (r *historyRepo) Between(ctx context.Context, from, to time.Time) ([]entities.TransitionRecord, error) {
	query, args := r.qb.Select(historyColumns...).
		From("order_transitions").
		Where(sq.GtOrEq{"at": from}).
		Where(sq.Lt{"at": to}).
		OrderBy("at", "id").
		MustSql()

	return r.list(ctx, query, args...)
}

func (r *historyRepo) list(ctx context.Context, query string, args ...any) ([]entities.TransitionRecord, error) {
	var rows []TransitionRecord
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select transitions: %w", err)
	}

	records := make([]entities.TransitionRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := RecordToEntity(row)
		if err != nil {
			return nil, fmt.Errorf("failed to decode transition %s: %w", row.ID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
