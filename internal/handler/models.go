package handler

import (
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/internal/service"
	"github.com/SergeyBogomolovv/media-store-orders/internal/stock"
)

// Order представляет заказ
type Order struct {
	ID           string        `json:"id"`
	Status       string        `json:"status"`
	StatusLabel  string        `json:"status_label"`
	OrderedAt    time.Time     `json:"ordered_at"`
	CustomerID   string        `json:"customer_id,omitempty"`
	InvoiceRef   string        `json:"invoice_ref,omitempty"`
	Lines        []OrderLine   `json:"lines"`
	TotalExclTax string        `json:"total_excl_tax"`
	TotalInclTax string        `json:"total_incl_tax"`
	DeliveryFee  string        `json:"delivery_fee"`
	TotalDue     string        `json:"total_due"`
	Transactions []Transaction `json:"transactions,omitempty"`
}

// OrderLine позиция заказа
type OrderLine struct {
	ID            int64  `json:"id"`
	ProductID     string `json:"product_id"`
	Title         string `json:"title"`
	UnitPrice     string `json:"unit_price"`
	Quantity      int    `json:"quantity"`
	RushEligible  bool   `json:"rush_eligible"`
	StockDeducted bool   `json:"stock_deducted"`
}

// Transaction платеж или возврат
type Transaction struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
	GatewayRef  string    `json:"gateway_ref"`
	OriginalRef string    `json:"original_ref,omitempty"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransitionRecord запись журнала переходов
type TransitionRecord struct {
	ID         string            `json:"id"`
	From       string            `json:"from,omitempty"`
	To         string            `json:"to"`
	ActorID    string            `json:"actor_id"`
	At         time.Time         `json:"at"`
	ReasonCode string            `json:"reason_code"`
	Reason     string            `json:"reason"`
	Note       string            `json:"note,omitempty"`
	Success    bool              `json:"success"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// TransitionResult результат операции над заказом
type TransitionResult struct {
	OrderID         string       `json:"order_id"`
	From            string       `json:"from"`
	To              string       `json:"to"`
	InvoiceRef      string       `json:"invoice_ref,omitempty"`
	ReservationIDs  []string     `json:"reservation_ids,omitempty"`
	Transaction     *Transaction `json:"transaction,omitempty"`
	Refund          *Transaction `json:"refund,omitempty"`
	RestoredLines   []int64      `json:"restored_lines,omitempty"`
	UnrestoredLines []int64      `json:"unrestored_lines,omitempty"`
	Warnings        []string     `json:"warnings,omitempty"`
}

// NextStates допустимые переходы
type NextStates struct {
	OrderID string   `json:"order_id"`
	Current string   `json:"current"`
	Next    []string `json:"next"`
}

// StockItemResult проверка одной позиции
type StockItemResult struct {
	ProductID      string `json:"product_id"`
	ProductTitle   string `json:"product_title,omitempty"`
	Valid          bool   `json:"valid"`
	Requested      int    `json:"requested"`
	ActualStock    int    `json:"actual_stock"`
	ReservedStock  int    `json:"reserved_stock"`
	AvailableStock int    `json:"available_stock"`
	Reason         string `json:"reason"`
	Message        string `json:"message,omitempty"`
}

// ShortfallLine рекомендация по позиции, которую нельзя выполнить
type ShortfallLine struct {
	ProductID         string `json:"product_id"`
	ProductTitle      string `json:"product_title"`
	Requested         int    `json:"requested"`
	Available         int    `json:"available"`
	Suggestion        string `json:"suggestion"`
	SuggestedQuantity int    `json:"suggested_quantity,omitempty"`
	Remediation       string `json:"remediation"`
}

// StockCheck результат проверки наличия
type StockCheck struct {
	OrderID             string            `json:"order_id,omitempty"`
	AllValid            bool              `json:"all_valid"`
	Items               []StockItemResult `json:"items"`
	Warnings            []string          `json:"warnings,omitempty"`
	Shortfall           []ShortfallLine   `json:"shortfall,omitempty"`
	CanProceedPartially bool              `json:"can_proceed_partially"`
	Summary             string            `json:"summary"`
}

// ReasonCount причина отказа и число отказов
type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// Statistics статистика переходов за период
type Statistics struct {
	From                  time.Time      `json:"from"`
	To                    time.Time      `json:"to"`
	TotalTransitions      int            `json:"total_transitions"`
	SuccessfulTransitions int            `json:"successful_transitions"`
	FailedTransitions     int            `json:"failed_transitions"`
	ByTargetStatus        map[string]int `json:"by_target_status"`
	Approvals             int            `json:"approvals"`
	Rejections            int            `json:"rejections"`
	ApprovalRate          float64        `json:"approval_rate"`
	ActorActivity         map[string]int `json:"actor_activity"`
	TopRejectionReasons   []ReasonCount  `json:"top_rejection_reasons"`
}

// ErrorResponse ошибка с подробностями
type ErrorResponse struct {
	Message    string            `json:"message"`
	Violations []string          `json:"violations,omitempty"`
	Shortfall  *StockCheck       `json:"shortfall,omitempty"`
	Result     *TransitionResult `json:"result,omitempty"`
}

// Запросы

type CartItemRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"gte=1"`
	RushEligible bool   `json:"rush_eligible"`
}

type PlaceOrderRequest struct {
	CustomerID string            `json:"customer_id" validate:"required"`
	Items      []CartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type DeliveryInfoRequest struct {
	ActorID     string `json:"actor_id"`
	DeliveryFee string `json:"delivery_fee" validate:"required,numeric"`
}

type PaymentRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

type ActorRequest struct {
	ActorID string `json:"actor_id"`
	Note    string `json:"note,omitempty"`
}

type ApproveRequest struct {
	ManagerID string `json:"manager_id" validate:"required"`
	Notes     string `json:"notes,omitempty"`
}

type RejectRequest struct {
	ManagerID  string `json:"manager_id" validate:"required"`
	ReasonCode string `json:"reason_code,omitempty" validate:"omitempty,max=64"`
	Notes      string `json:"notes,omitempty"`
}

type RefundRequest struct {
	ActorID string `json:"actor_id" validate:"required"`
	Reason  string `json:"reason,omitempty"`
}

type StockItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type ValidateStockRequest struct {
	Items []StockItemRequest `json:"items" validate:"required,min=1,dive"`
}

type RestockRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func OrderEntityToJSON(o entities.Order) Order {
	res := Order{
		ID:           o.ID,
		Status:       string(o.Status),
		StatusLabel:  o.Status.Description(),
		OrderedAt:    o.OrderedAt,
		CustomerID:   o.CustomerID,
		InvoiceRef:   o.InvoiceRef,
		Lines:        make([]OrderLine, 0, len(o.Lines)),
		TotalExclTax: o.TotalExclTax.StringFixed(2),
		TotalInclTax: o.TotalInclTax.StringFixed(2),
		DeliveryFee:  o.DeliveryFee.StringFixed(2),
		TotalDue:     o.TotalDue.StringFixed(2),
	}
	for _, l := range o.Lines {
		res.Lines = append(res.Lines, OrderLine{
			ID:            l.ID,
			ProductID:     l.Product.ID,
			Title:         l.Product.Title,
			UnitPrice:     l.Product.UnitPrice.StringFixed(2),
			Quantity:      l.Quantity,
			RushEligible:  l.RushEligible,
			StockDeducted: l.StockDeducted,
		})
	}
	for _, t := range o.Transactions {
		res.Transactions = append(res.Transactions, TransactionEntityToJSON(t))
	}
	return res
}

func TransactionEntityToJSON(t entities.Transaction) Transaction {
	return Transaction{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Status:      string(t.Status),
		Amount:      t.Amount.StringFixed(2),
		GatewayRef:  t.GatewayRef,
		OriginalRef: t.OriginalRef,
		Message:     t.Message,
		CreatedAt:   t.CreatedAt,
	}
}

func RecordEntityToJSON(r entities.TransitionRecord) TransitionRecord {
	return TransitionRecord{
		ID:         r.ID,
		From:       string(r.From),
		To:         string(r.To),
		ActorID:    r.ActorID,
		At:         r.At,
		ReasonCode: string(r.ReasonCode),
		Reason:     r.ReasonCode.Description(),
		Note:       r.Note,
		Success:    r.Success,
		Metadata:   r.Metadata,
	}
}

func ResultToJSON(r service.Result) TransitionResult {
	res := TransitionResult{
		OrderID:         r.OrderID,
		From:            string(r.From),
		To:              string(r.To),
		InvoiceRef:      r.InvoiceRef,
		ReservationIDs:  r.ReservationIDs,
		RestoredLines:   r.RestoredLines,
		UnrestoredLines: r.UnrestoredLines,
		Warnings:        r.Warnings,
	}
	if r.Transaction != nil {
		t := TransactionEntityToJSON(*r.Transaction)
		res.Transaction = &t
	}
	if r.Refund != nil {
		t := TransactionEntityToJSON(*r.Refund)
		res.Refund = &t
	}
	return res
}

func NextStatesToJSON(n service.NextStates) NextStates {
	res := NextStates{OrderID: n.OrderID, Current: string(n.Current), Next: make([]string, 0, len(n.Next))}
	for _, s := range n.Next {
		res.Next = append(res.Next, string(s))
	}
	return res
}

func StockCheckToJSON(orderID string, res stock.BulkResult, report stock.ShortfallReport) StockCheck {
	out := StockCheck{
		OrderID:             orderID,
		AllValid:            res.AllValid,
		Items:               make([]StockItemResult, 0, len(res.Items)),
		Warnings:            res.Warnings,
		CanProceedPartially: report.CanProceedPartially,
		Summary:             report.Summary,
	}
	for _, it := range res.Items {
		out.Items = append(out.Items, StockItemResult{
			ProductID:      it.ProductID,
			ProductTitle:   it.ProductTitle,
			Valid:          it.Valid,
			Requested:      it.Requested,
			ActualStock:    it.ActualStock,
			ReservedStock:  it.ReservedStock,
			AvailableStock: it.AvailableStock,
			Reason:         string(it.Reason),
			Message:        it.Message,
		})
	}
	for _, l := range report.Lines {
		out.Shortfall = append(out.Shortfall, ShortfallLine{
			ProductID:         l.ProductID,
			ProductTitle:      l.ProductTitle,
			Requested:         l.Requested,
			Available:         l.Available,
			Suggestion:        string(l.Suggestion),
			SuggestedQuantity: l.SuggestedQuantity,
			Remediation:       l.Remediation,
		})
	}
	return out
}

func StatisticsToJSON(s service.Statistics) Statistics {
	res := Statistics{
		From:                  s.From,
		To:                    s.To,
		TotalTransitions:      s.TotalTransitions,
		SuccessfulTransitions: s.SuccessfulTransitions,
		FailedTransitions:     s.FailedTransitions,
		ByTargetStatus:        make(map[string]int, len(s.ByTargetStatus)),
		Approvals:             s.Approvals,
		Rejections:            s.Rejections,
		ApprovalRate:          s.ApprovalRate,
		ActorActivity:         s.ActorActivity,
		TopRejectionReasons:   make([]ReasonCount, 0, len(s.TopRejectionReasons)),
	}
	for st, n := range s.ByTargetStatus {
		res.ByTargetStatus[string(st)] = n
	}
	for _, r := range s.TopRejectionReasons {
		res.TopRejectionReasons = append(res.TopRejectionReasons, ReasonCount{Reason: string(r.Reason), Count: r.Count})
	}
	return res
}

func CartItemsToService(items []CartItemRequest) []service.CartItem {
	res := make([]service.CartItem, 0, len(items))
	for _, it := range items {
		res = append(res, service.CartItem{ProductID: it.ProductID, Quantity: it.Quantity, RushEligible: it.RushEligible})
	}
	return res
}

func StockItemsToService(items []StockItemRequest) []stock.Item {
	res := make([]stock.Item, 0, len(items))
	for _, it := range items {
		res = append(res, stock.Item{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return res
}
