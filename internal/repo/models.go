package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID           string          `db:"id"`
	Status       string          `db:"status"`
	OrderedAt    time.Time       `db:"ordered_at"`
	CustomerID   sql.NullString  `db:"customer_id"`
	InvoiceRef   sql.NullString  `db:"invoice_ref"`
	TotalExclTax decimal.Decimal `db:"total_excl_tax"`
	TotalInclTax decimal.Decimal `db:"total_incl_tax"`
	DeliveryFee  decimal.Decimal `db:"delivery_fee"`
	TotalDue     decimal.Decimal `db:"total_due"`
}

type OrderLine struct {
	ID            int64           `db:"id"`
	OrderID       string          `db:"order_id"`
	ProductID     string          `db:"product_id"`
	ProductTitle  string          `db:"product_title"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	Quantity      int             `db:"quantity"`
	RushEligible  bool            `db:"rush_eligible"`
	StockDeducted bool            `db:"stock_deducted"`
}

type Transaction struct {
	ID          string          `db:"id"`
	OrderID     string          `db:"order_id"`
	Kind        string          `db:"kind"`
	Status      string          `db:"status"`
	Amount      decimal.Decimal `db:"amount"`
	GatewayRef  sql.NullString  `db:"gateway_ref"`
	OriginalRef sql.NullString  `db:"original_ref"`
	Message     sql.NullString  `db:"message"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Product struct {
	ID    string          `db:"id"`
	Title string          `db:"title"`
	Price decimal.Decimal `db:"price"`
	Stock int             `db:"stock"`
}

type TransitionRecord struct {
	ID         string         `db:"id"`
	OrderID    string         `db:"order_id"`
	FromStatus sql.NullString `db:"from_status"`
	ToStatus   string         `db:"to_status"`
	ActorID    sql.NullString `db:"actor_id"`
	At         time.Time      `db:"at"`
	ReasonCode sql.NullString `db:"reason_code"`
	Note       sql.NullString `db:"note"`
	Success    bool           `db:"success"`
	Metadata   []byte         `db:"metadata"`
}

func OrderToEntity(o Order, lines []OrderLine, txns []Transaction) entities.Order {
	order := entities.Order{
		ID:           o.ID,
		Status:       entities.OrderStatus(o.Status),
		OrderedAt:    o.OrderedAt,
		CustomerID:   nullStringToString(o.CustomerID),
		InvoiceRef:   nullStringToString(o.InvoiceRef),
		TotalExclTax: o.TotalExclTax,
		TotalInclTax: o.TotalInclTax,
		DeliveryFee:  o.DeliveryFee,
		TotalDue:     o.TotalDue,
	}

	if len(lines) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(lines))
		for _, l := range lines {
			order.Lines = append(order.Lines, LineToEntity(l))
		}
	}
	if len(txns) > 0 {
		order.Transactions = make([]entities.Transaction, 0, len(txns))
		for _, t := range txns {
			order.Transactions = append(order.Transactions, TransactionToEntity(t))
		}
	}
	return order
}

func LineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		ID: l.ID,
		Product: entities.ProductSnapshot{
			ID:        l.ProductID,
			Title:     l.ProductTitle,
			UnitPrice: l.UnitPrice,
		},
		Quantity:      l.Quantity,
		RushEligible:  l.RushEligible,
		StockDeducted: l.StockDeducted,
	}
}

func TransactionToEntity(t Transaction) entities.Transaction {
	return entities.Transaction{
		ID:          t.ID,
		OrderID:     t.OrderID,
		Kind:        entities.TransactionKind(t.Kind),
		Status:      entities.TransactionStatus(t.Status),
		Amount:      t.Amount,
		GatewayRef:  nullStringToString(t.GatewayRef),
		OriginalRef: nullStringToString(t.OriginalRef),
		Message:     nullStringToString(t.Message),
		CreatedAt:   t.CreatedAt,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{ID: p.ID, Title: p.Title, Price: p.Price, Stock: p.Stock}
}

func RecordToEntity(r TransitionRecord) (entities.TransitionRecord, error) {
	rec := entities.TransitionRecord{
		ID:         r.ID,
		OrderID:    r.OrderID,
		From:       entities.OrderStatus(nullStringToString(r.FromStatus)),
		To:         entities.OrderStatus(r.ToStatus),
		ActorID:    nullStringToString(r.ActorID),
		At:         r.At,
		ReasonCode: entities.ReasonCode(nullStringToString(r.ReasonCode)),
		Note:       nullStringToString(r.Note),
		Success:    r.Success,
	}
	if len(r.Metadata) > 0 {
		if err := json.Unmarshal(r.Metadata, &rec.Metadata); err != nil {
			return entities.TransitionRecord{}, err
		}
	}
	return rec, nil
}
