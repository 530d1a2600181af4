package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
)

// MemoryOrders is an in-process order store. Returned orders are copies.
type MemoryOrders struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
	lineID int64
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{orders: make(map[string]entities.Order)}
}

func cloneOrder(o entities.Order) entities.Order {
	o.Lines = slices.Clone(o.Lines)
	o.Transactions = slices.Clone(o.Transactions)
	return o
}

func (m *MemoryOrders) GetOrder(_ context.Context, orderID string) (entities.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (m *MemoryOrders) CreateOrder(_ context.Context, o entities.Order) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[o.ID]; ok {
		return entities.Order{}, fmt.Errorf("order %s already exists", o.ID)
	}
	o = cloneOrder(o)
	for i := range o.Lines {
		m.lineID++
		o.Lines[i].ID = m.lineID
	}
	m.orders[o.ID] = o
	return cloneOrder(o), nil
}

func (m *MemoryOrders) UpdateTotals(_ context.Context, o entities.Order) error {
	return m.update(o.ID, func(cur *entities.Order) {
		cur.TotalExclTax = o.TotalExclTax
		cur.TotalInclTax = o.TotalInclTax
		cur.DeliveryFee = o.DeliveryFee
		cur.TotalDue = o.TotalDue
	})
}

func (m *MemoryOrders) SetInvoice(_ context.Context, orderID, invoiceRef string) error {
	return m.update(orderID, func(cur *entities.Order) {
		cur.InvoiceRef = invoiceRef
	})
}

func (m *MemoryOrders) SetLinesDeducted(_ context.Context, orderID string, lineIDs []int64, deducted bool) error {
	return m.update(orderID, func(cur *entities.Order) {
		for i := range cur.Lines {
			if slices.Contains(lineIDs, cur.Lines[i].ID) {
				cur.Lines[i].StockDeducted = deducted
			}
		}
	})
}

func (m *MemoryOrders) SaveTransaction(_ context.Context, t entities.Transaction) error {
	return m.update(t.OrderID, func(cur *entities.Order) {
		for i := range cur.Transactions {
			if cur.Transactions[i].ID == t.ID {
				cur.Transactions[i].Status = t.Status
				cur.Transactions[i].Message = t.Message
				return
			}
		}
		cur.Transactions = append(cur.Transactions, t)
	})
}

func (m *MemoryOrders) GetStatus(_ context.Context, orderID string) (entities.OrderStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[orderID]
	if !ok {
		return "", entities.ErrOrderNotFound
	}
	return o.Status, nil
}

func (m *MemoryOrders) CompareAndSetStatus(_ context.Context, orderID string, from, to entities.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	if o.Status != from {
		return entities.ErrConcurrentUpdate
	}
	o.Status = to
	m.orders[orderID] = o
	return nil
}

func (m *MemoryOrders) update(orderID string, fn func(*entities.Order)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	o = cloneOrder(o)
	fn(&o)
	m.orders[orderID] = o
	return nil
}

// MemoryLedger is an in-process product catalog and stock ledger.
type MemoryLedger struct {
	mu       sync.RWMutex
	products map[string]entities.Product
}

func NewMemoryLedger(products ...entities.Product) *MemoryLedger {
	l := &MemoryLedger{products: make(map[string]entities.Product, len(products))}
	for _, p := range products {
		l.products[p.ID] = p
	}
	return l
}

func (l *MemoryLedger) GetProduct(_ context.Context, productID string) (entities.Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.products[productID]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return p, nil
}

func (l *MemoryLedger) GetStock(ctx context.Context, productID string) (int, error) {
	p, err := l.GetProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return p.Stock, nil
}

func (l *MemoryLedger) AdjustStock(_ context.Context, productID string, delta int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.products[productID]
	if !ok {
		return 0, entities.ErrProductNotFound
	}
	if p.Stock+delta < 0 {
		return p.Stock, fmt.Errorf("%w: %s has %d, change %d", entities.ErrInsufficientStock, productID, p.Stock, delta)
	}
	p.Stock += delta
	l.products[productID] = p
	return p.Stock, nil
}

func (l *MemoryLedger) SetStock(_ context.Context, productID string, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.products[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	p.Stock = quantity
	l.products[productID] = p
	return nil
}

func (l *MemoryLedger) SaveProduct(_ context.Context, p entities.Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.products[p.ID] = p
	return nil
}
