package reservation

import (
	"sync"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
)

type Reservation struct {
	ID        string
	ProductID string
	Quantity  int
	ExpiresAt time.Time
}

func (r Reservation) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Store holds the reservation table. Implementations must be safe for
// concurrent use; the read-decide-write sequences are serialized per product
// by the Manager.
type Store interface {
	// Put fails with entities.ErrReservationExists if the id is taken.
	Put(r Reservation) error
	Get(id string) (Reservation, bool)
	Delete(id string) (Reservation, bool)
	// Reserved returns the sum of active reservations for the product at now.
	Reserved(productID string, now time.Time) int
	Expired(now time.Time) []Reservation
	Len() int
}

type memoryStore struct {
	mu        sync.RWMutex
	byID      map[string]Reservation
	byProduct map[string]map[string]struct{}
}

func NewMemoryStore() Store {
	return &memoryStore{
		byID:      make(map[string]Reservation),
		byProduct: make(map[string]map[string]struct{}),
	}
}

func (s *memoryStore) Put(r Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[r.ID]; ok {
		return entities.ErrReservationExists
	}
	s.byID[r.ID] = r
	ids, ok := s.byProduct[r.ProductID]
	if !ok {
		ids = make(map[string]struct{})
		s.byProduct[r.ProductID] = ids
	}
	ids[r.ID] = struct{}{}
	return nil
}

func (s *memoryStore) Get(id string) (Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	return r, ok
}

func (s *memoryStore) Delete(id string) (Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return Reservation{}, false
	}
	delete(s.byID, id)
	if ids, ok := s.byProduct[r.ProductID]; ok {
		delete(ids, id)
		if len(ids) == 0 {
			delete(s.byProduct, r.ProductID)
		}
	}
	return r, true
}

func (s *memoryStore) Reserved(productID string, now time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for id := range s.byProduct[productID] {
		if r := s.byID[id]; !r.Expired(now) {
			total += r.Quantity
		}
	}
	return total
}

func (s *memoryStore) Expired(now time.Time) []Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Reservation
	for _, r := range s.byID {
		if r.Expired(now) {
			out = append(out, r)
		}
	}
	return out
}

func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
