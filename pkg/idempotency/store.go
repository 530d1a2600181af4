package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrInProgress = errors.New("request with this key is in progress")

const pending = "pending"

// Client is the subset of redis commands the store needs.
type Client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Response is what gets replayed for a repeated key.
type Response struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type Store struct {
	rdb Client
	ttl time.Duration
}

func NewStore(rdb Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Key(scope, key string) string {
	return fmt.Sprintf("idem:%s:%s", scope, key)
}

// Begin claims key. If the key was already completed its response is
// returned with started == false.
func (s *Store) Begin(ctx context.Context, key string) (_ Response, started bool, _ error) {
	ok, err := s.rdb.SetNX(ctx, key, pending, s.ttl).Result()
	if err != nil {
		return Response{}, false, fmt.Errorf("failed to claim key: %w", err)
	}
	if ok {
		return Response{}, true, nil
	}

	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// ключ истек между SETNX и GET
		return s.Begin(ctx, key)
	}
	if err != nil {
		return Response{}, false, fmt.Errorf("failed to read key: %w", err)
	}
	if val == pending {
		return Response{}, false, ErrInProgress
	}

	var res Response
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return Response{}, false, fmt.Errorf("failed to decode stored response: %w", err)
	}
	return res, false, nil
}

func (s *Store) Complete(ctx context.Context, key string, res Response) error {
	val, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return s.rdb.Set(ctx, key, val, s.ttl).Err()
}

// Abort forgets key so the request can be retried.
func (s *Store) Abort(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
