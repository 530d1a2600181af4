package service

import (
	"bytes"
	"cmp"
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
)

const topRejectionReasons = 5

type ReasonCount struct {
	Reason entities.ReasonCode
	Count  int
}

type Statistics struct {
	From                  time.Time
	To                    time.Time
	TotalTransitions      int
	SuccessfulTransitions int
	FailedTransitions     int
	ByTargetStatus        map[entities.OrderStatus]int
	Approvals             int
	Rejections            int

	// ApprovalRate is approvals / (approvals + rejections), 0 without decisions.
	ApprovalRate        float64
	ActorActivity       map[string]int
	TopRejectionReasons []ReasonCount
}

// GetOrderStateStatistics aggregates the audit trail in [from, to).
// Results are cached for the configured TTL.
func (s *OrderWorkflow) GetOrderStateStatistics(ctx context.Context, from, to time.Time) (_ Statistics, err error) {
	defer s.boundary(ctx, "get_statistics", "", &err)

	if !from.Before(to) {
		return Statistics{}, entities.NewValidationError(nil, "from must be before to")
	}

	key := fmt.Sprintf("stats:%d:%d", from.UnixNano(), to.UnixNano())
	if data, ok := s.cache.Get(key); ok {
		var stats Statistics
		if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&stats); err == nil {
			return stats, nil
		}
		s.logger.WarnContext(ctx, "failed to decode cached statistics", slog.String("key", key))
	}

	records, err := s.machine.HistoryBetween(ctx, from, to)
	if err != nil {
		return Statistics{}, fmt.Errorf("failed to read history: %w", err)
	}
	stats := aggregate(records, from, to)

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(stats); err != nil {
		s.logger.ErrorContext(ctx, "failed to encode statistics", slog.Any("error", err))
		return stats, nil
	}
	s.cache.Set(key, buf.Bytes())
	return stats, nil
}

func aggregate(records []entities.TransitionRecord, from, to time.Time) Statistics {
	stats := Statistics{
		From:           from,
		To:             to,
		ByTargetStatus: make(map[entities.OrderStatus]int),
		ActorActivity:  make(map[string]int),
	}
	reasons := make(map[entities.ReasonCode]int)

	for _, rec := range records {
		stats.TotalTransitions++
		if rec.ActorID != "" {
			stats.ActorActivity[rec.ActorID]++
		}
		if !rec.Success {
			stats.FailedTransitions++
			continue
		}
		stats.SuccessfulTransitions++
		stats.ByTargetStatus[rec.To]++

		switch rec.To {
		case entities.StatusApproved:
			stats.Approvals++
		case entities.StatusRejected:
			stats.Rejections++
			reasons[rec.ReasonCode]++
		}
	}

	if decisions := stats.Approvals + stats.Rejections; decisions > 0 {
		stats.ApprovalRate = float64(stats.Approvals) / float64(decisions)
	}

	for reason, n := range reasons {
		stats.TopRejectionReasons = append(stats.TopRejectionReasons, ReasonCount{Reason: reason, Count: n})
	}
	slices.SortFunc(stats.TopRejectionReasons, func(a, b ReasonCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Reason, b.Reason)
	})
	if len(stats.TopRejectionReasons) > topRejectionReasons {
		stats.TopRejectionReasons = stats.TopRejectionReasons[:topRejectionReasons]
	}
	return stats
}
