package statemachine

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
)

const DefaultHistoryLimit = 200

// MemoryHistory keeps the audit trail in memory, capped per order.
type MemoryHistory struct {
	mu      sync.RWMutex
	limit   int
	records map[string][]entities.TransitionRecord
}

func NewMemoryHistory(limit int) *MemoryHistory {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &MemoryHistory{
		limit:   limit,
		records: make(map[string][]entities.TransitionRecord),
	}
}

func (h *MemoryHistory) Append(_ context.Context, rec entities.TransitionRecord) error {
	rec.Metadata = maps.Clone(rec.Metadata)

	h.mu.Lock()
	defer h.mu.Unlock()

	list := append(h.records[rec.OrderID], rec)
	if len(list) > h.limit {
		list = slices.Clone(list[len(list)-h.limit:])
	}
	h.records[rec.OrderID] = list
	return nil
}

func (h *MemoryHistory) List(_ context.Context, orderID string) ([]entities.TransitionRecord, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.records[orderID]), nil
}

// Between returns records with from <= At < to in chronological order.
func (h *MemoryHistory) Between(_ context.Context, from, to time.Time) ([]entities.TransitionRecord, error) {
	h.mu.RLock()
	var out []entities.TransitionRecord
	for _, list := range h.records {
		for _, rec := range list {
			if !rec.At.Before(from) && rec.At.Before(to) {
				out = append(out, rec)
			}
		}
	}
	h.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b entities.TransitionRecord) int {
		return a.At.Compare(b.At)
	})
	return out, nil
}
