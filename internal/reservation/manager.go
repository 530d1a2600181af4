package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/keymutex"
)

const DefaultSweepInterval = time.Minute

// Ledger is the authoritative stock store.
type Ledger interface {
	GetStock(ctx context.Context, productID string) (int, error)
	// AdjustStock applies delta atomically and fails with
	// entities.ErrInsufficientStock if the result would be negative.
	AdjustStock(ctx context.Context, productID string, delta int) (int, error)
}

type Manager struct {
	logger        *slog.Logger
	ledger        Ledger
	store         Store
	locks         *keymutex.KeyMutex
	sweepInterval time.Duration
	now           func() time.Time
	done          chan struct{}
}

type Option func(*Manager)

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func WithSweepInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.sweepInterval = d
		}
	}
}

func NewManager(logger *slog.Logger, ledger Ledger, store Store, opts ...Option) *Manager {
	m := &Manager{
		logger:        logger.With(slog.String("service", "reservation")),
		ledger:        ledger,
		store:         store,
		locks:         keymutex.New(),
		sweepInterval: DefaultSweepInterval,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reserve holds quantity units of the product for timeout. It returns false
// without side effects if not enough stock is available.
func (m *Manager) Reserve(ctx context.Context, productID string, quantity int, reservationID string, timeout time.Duration) (bool, error) {
	switch {
	case quantity <= 0:
		return false, fmt.Errorf("%w: quantity must be positive", entities.ErrInvalidArgument)
	case strings.TrimSpace(reservationID) == "":
		return false, fmt.Errorf("%w: reservation id is required", entities.ErrInvalidArgument)
	case timeout <= 0:
		return false, fmt.Errorf("%w: timeout must be positive", entities.ErrInvalidArgument)
	}

	unlock := m.locks.Lock(productID)
	defer unlock()

	stock, err := m.ledger.GetStock(ctx, productID)
	if err != nil {
		reserveTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("failed to read stock for %s: %w", productID, err)
	}

	now := m.now()
	available := stock - m.store.Reserved(productID, now)
	if available < quantity {
		reserveTotal.WithLabelValues("rejected").Inc()
		m.logger.DebugContext(ctx, "not enough stock to reserve",
			slog.String("product_id", productID),
			slog.Int("requested", quantity),
			slog.Int("available", available),
		)
		return false, nil
	}

	err = m.store.Put(Reservation{
		ID:        reservationID,
		ProductID: productID,
		Quantity:  quantity,
		ExpiresAt: now.Add(timeout),
	})
	if err != nil {
		reserveTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("failed to store reservation %s: %w", reservationID, err)
	}

	reserveTotal.WithLabelValues("ok").Inc()
	activeReservations.Inc()
	return true, nil
}

// Confirm turns the reservation into a permanent ledger deduction.
func (m *Manager) Confirm(ctx context.Context, reservationID string) error {
	r, ok := m.store.Get(reservationID)
	if !ok {
		confirmTotal.WithLabelValues("not_found").Inc()
		return fmt.Errorf("%w: %s", entities.ErrReservationNotFound, reservationID)
	}

	unlock := m.locks.Lock(r.ProductID)
	defer unlock()

	// могла быть освобождена, пока ждали лок
	r, ok = m.store.Get(reservationID)
	if !ok {
		confirmTotal.WithLabelValues("not_found").Inc()
		return fmt.Errorf("%w: %s", entities.ErrReservationNotFound, reservationID)
	}
	if r.Expired(m.now()) {
		confirmTotal.WithLabelValues("expired").Inc()
		return fmt.Errorf("%w: %s expired at %s", entities.ErrReservationExpired, reservationID, r.ExpiresAt.Format(time.RFC3339))
	}

	if _, err := m.ledger.AdjustStock(ctx, r.ProductID, -r.Quantity); err != nil {
		if errors.Is(err, entities.ErrInsufficientStock) {
			// ledger changed outside the reservation path, the hold cannot be honored
			m.remove(reservationID)
			confirmTotal.WithLabelValues("insufficient").Inc()
		} else {
			confirmTotal.WithLabelValues("error").Inc()
		}
		return fmt.Errorf("failed to deduct %d of %s: %w", r.Quantity, r.ProductID, err)
	}

	m.remove(reservationID)
	confirmTotal.WithLabelValues("ok").Inc()
	return nil
}

// Release drops the reservation without touching the ledger. Unknown ids are ignored.
func (m *Manager) Release(_ context.Context, reservationID string) {
	r, ok := m.store.Get(reservationID)
	if !ok {
		return
	}
	unlock := m.locks.Lock(r.ProductID)
	defer unlock()
	m.remove(reservationID)
}

func (m *Manager) remove(reservationID string) {
	if _, ok := m.store.Delete(reservationID); ok {
		activeReservations.Dec()
	}
}

// AvailableStock returns ledger stock minus active reservations.
func (m *Manager) AvailableStock(ctx context.Context, productID string) (int, error) {
	unlock := m.locks.Lock(productID)
	defer unlock()

	stock, err := m.ledger.GetStock(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to read stock for %s: %w", productID, err)
	}
	return stock - m.store.Reserved(productID, m.now()), nil
}

func (m *Manager) IsAvailable(ctx context.Context, productID string, quantity int) (bool, error) {
	available, err := m.AvailableStock(ctx, productID)
	if err != nil {
		return false, err
	}
	return available >= quantity, nil
}

// ReservedStock returns the quantity held by active reservations.
func (m *Manager) ReservedStock(_ context.Context, productID string) int {
	return m.store.Reserved(productID, m.now())
}

// Get returns an active or not yet swept reservation.
func (m *Manager) Get(reservationID string) (Reservation, bool) {
	return m.store.Get(reservationID)
}

// SweepExpired removes reservations past their expiry and returns how many were removed.
func (m *Manager) SweepExpired() int {
	removed := 0
	for _, r := range m.store.Expired(m.now()) {
		unlock := m.locks.Lock(r.ProductID)
		if cur, ok := m.store.Get(r.ID); ok && cur.Expired(m.now()) {
			m.remove(r.ID)
			removed++
		}
		unlock()
	}
	if removed > 0 {
		sweptTotal.Add(float64(removed))
		m.logger.Debug("expired reservations swept", slog.Int("count", removed))
	}
	return removed
}

// Start runs the periodic sweeper until ctx is cancelled.
func (m *Manager) Start(ctx context.Context) error {
	m.done = make(chan struct{})
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.SweepExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
	m.logger.Info("reservation sweeper started", slog.Duration("interval", m.sweepInterval))
	return nil
}

// Done is closed once the sweeper started by Start has stopped.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
