package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/internal/service"
	"github.com/SergeyBogomolovv/media-store-orders/internal/stock"
	"github.com/SergeyBogomolovv/media-store-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, customerID string, items []service.CartItem) (entities.Order, error)
	ConfirmDeliveryInfo(ctx context.Context, orderID, actorID string, deliveryFee decimal.Decimal) (service.Result, error)
	ProcessPayment(ctx context.Context, orderID, paymentMethodID string) (service.Result, error)
	RetryPayment(ctx context.Context, orderID, actorID string) (service.Result, error)
	SubmitForApproval(ctx context.Context, orderID, submittedBy string) (service.Result, error)
	ApproveOrder(ctx context.Context, orderID, managerID, notes string) (service.Result, error)
	RejectOrder(ctx context.Context, orderID, managerID, reasonCode, notes string) (service.Result, error)
	CancelOrder(ctx context.Context, orderID, actorID, note string) (service.Result, error)
	ShipOrder(ctx context.Context, orderID, actorID string) (service.Result, error)
	DeliverOrder(ctx context.Context, orderID, actorID string) (service.Result, error)
	RefundOrder(ctx context.Context, orderID, actorID, reason string) (service.Result, error)

	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	GetHistory(ctx context.Context, orderID string) ([]entities.TransitionRecord, error)
	GetValidNextStates(ctx context.Context, orderID string) (service.NextStates, error)
	ValidateOrderStock(ctx context.Context, orderID string) (service.StockCheck, error)
	ValidateItems(ctx context.Context, items []stock.Item) service.StockCheck
	Restock(ctx context.Context, productID string, quantity int) error
	GetOrderStateStatistics(ctx context.Context, from, to time.Time) (service.Statistics, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	// paymentGuard оборачивает оплату, например проверкой Idempotency-Key
	paymentGuard []func(http.Handler) http.Handler
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, paymentGuard ...func(http.Handler) http.Handler) *HTTPHandler {
	return &HTTPHandler{
		logger:       logger.With(slog.String("handler", "http")),
		validate:     utils.NewValidator(),
		svc:          svc,
		paymentGuard: paymentGuard,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.PlaceOrder)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetOrder)
			r.Get("/history", h.GetHistory)
			r.Get("/next-states", h.GetNextStates)
			r.Get("/stock-check", h.CheckOrderStock)

			r.Post("/delivery-info", h.ConfirmDeliveryInfo)
			r.With(h.paymentGuard...).Post("/payment", h.ProcessPayment)
			r.Post("/retry-payment", h.RetryPayment)
			r.Post("/submit", h.SubmitForApproval)
			r.Post("/approve", h.ApproveOrder)
			r.Post("/reject", h.RejectOrder)
			r.Post("/cancel", h.CancelOrder)
			r.Post("/ship", h.ShipOrder)
			r.Post("/deliver", h.DeliverOrder)
			r.Post("/refund", h.RefundOrder)
		})
	})
	r.Post("/stock/validate", h.ValidateStock)
	r.Put("/products/{id}/stock", h.Restock)
	r.Get("/stats/transitions", h.GetStatistics)
}

// PlaceOrder создает заказ из корзины.
// @Summary      Оформить заказ
// @Description  Проверяет наличие товаров, фиксирует цены и создает заказ в статусе PENDING_DELIVERY_INFO
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      PlaceOrderRequest  true  "Корзина"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      422  {object}  ErrorResponse "Товара недостаточно"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if !h.decode(w, r, &req) {
		return
	}
	order, err := h.svc.PlaceOrder(r.Context(), req.CustomerID, CartItemsToService(req.Items))
	if err != nil {
		h.writeError(r.Context(), w, "place order", err, nil)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(r.Context(), w, "get order", err, nil)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetHistory возвращает журнал переходов заказа.
// @Summary      История статусов
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {array}   TransitionRecord
// @Failure      404  {object}  ErrorResponse "Заказ не найден"
// @Router       /orders/{id}/history [get]
func (h *HTTPHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.GetHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(r.Context(), w, "get history", err, nil)
		return
	}
	res := make([]TransitionRecord, 0, len(records))
	for _, rec := range records {
		res = append(res, RecordEntityToJSON(rec))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetNextStates возвращает статусы, в которые можно перевести заказ.
// @Summary      Допустимые переходы
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  NextStates
// @Failure      404  {object}  ErrorResponse "Заказ не найден"
// @Router       /orders/{id}/next-states [get]
func (h *HTTPHandler) GetNextStates(w http.ResponseWriter, r *http.Request) {
	next, err := h.svc.GetValidNextStates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(r.Context(), w, "get next states", err, nil)
		return
	}
	utils.WriteJSON(w, NextStatesToJSON(next), http.StatusOK)
}

// CheckOrderStock проверяет наличие товаров заказа.
// @Summary      Проверка наличия по заказу
// @Tags         stock
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  StockCheck
// @Failure      404  {object}  ErrorResponse "Заказ не найден"
// @Router       /orders/{id}/stock-check [get]
func (h *HTTPHandler) CheckOrderStock(w http.ResponseWriter, r *http.Request) {
	check, err := h.svc.ValidateOrderStock(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(r.Context(), w, "check order stock", err, nil)
		return
	}
	utils.WriteJSON(w, StockCheckToJSON(check.OrderID, check.Result, check.Report), http.StatusOK)
}

// ConfirmDeliveryInfo задает стоимость доставки.
// @Summary      Подтвердить доставку
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Param        id       path  string               true  "Идентификатор заказа"
// @Param        request  body  DeliveryInfoRequest  true  "Стоимость доставки"
// @Success      200  {object}  TransitionResult
// @Failure      409  {object}  ErrorResponse "Недопустимый переход"
// @Router       /orders/{id}/delivery-info [post]
func (h *HTTPHandler) ConfirmDeliveryInfo(w http.ResponseWriter, r *http.Request) {
	var req DeliveryInfoRequest
	if !h.decode(w, r, &req) {
		return
	}
	fee, err := decimal.NewFromString(req.DeliveryFee)
	if err != nil {
		utils.WriteError(w, "invalid delivery fee", http.StatusBadRequest)
		return
	}
	h.respond(w, r, "confirm delivery info", func(ctx context.Context, id string) (service.Result, error) {
		return h.svc.ConfirmDeliveryInfo(ctx, id, req.ActorID, fee)
	})
}

// ProcessPayment оплачивает заказ и списывает товар со склада.
// @Summary      Оплатить заказ
// @Description  Повторный запрос с тем же Idempotency-Key возвращает сохраненный ответ
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Param        id               path    string          true   "Идентификатор заказа"
// @Param        Idempotency-Key  header  string          false  "Ключ идемпотентности"
// @Param        request          body    PaymentRequest  true   "Способ оплаты"
// @Success      200  {object}  TransitionResult
// @Failure      402  {object}  ErrorResponse "Платеж отклонен"
// @Failure      409  {object}  ErrorResponse "Недопустимый переход или нехватка товара"
// @Failure      500  {object}  ErrorResponse "Склад не обновлен, нужен оператор"
// @Router       /orders/{id}/payment [post]
func (h *HTTPHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, "process payment", func(ctx context.Context, id string) (service.Result, error) {
		return h.svc.ProcessPayment(ctx, id, req.PaymentMethodID)
	})
}

// RetryPayment возвращает заказ к оплате после отказа.
// @Summary      Повторить оплату
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Param        id       path  string        true  "Идентификатор заказа"
// @Param        request  body  ActorRequest  true  "Инициатор"
// @Success      200  {object}  TransitionResult
// @Router       /orders/{id}/retry-payment [post]
func (h *HTTPHandler) RetryPayment(w http.ResponseWriter, r *http.Request) {
	var req ActorRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, "retry payment", func(ctx context.Context, id string) (service.Result, error) {
		return h.svc.RetryPayment(ctx, id, req.ActorID)
	})
}

// SubmitForApproval отправляет заказ менеджеру.
// @Summary      Отправить на согласование
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Param        id       path  string        true  "Идентификатор заказа"
// @Param        request  body  ActorRequest  true  "Инициатор"
// @Success      200  {object}  TransitionResult
// @Router       /orders/{id}/submit [post]
func (h *HTTPHandler) SubmitForApproval(w http.ResponseWriter, r *http.Request) {
	var req ActorRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, "submit for approval", func(ctx context.Context, id string) (service.Result, error) {
		return h.svc.SubmitForApproval(ctx, id, req.ActorID)
	})
}

// ApproveOrder согласует заказ и резервирует товар.
// @Summary      Согласовать заказ
// @Tags         approval
// @Accept       json
// @Produce      json
// @Param        id       path  string          true  "Идентификатор заказа"
// @Param        request  body  ApproveRequest  true  "Менеджер"
// @Success      200  {object}  TransitionResult
// @Failure      409  {object}  ErrorResponse "Недопустимый переход или нехватка товара"
// @Failure      422  {object}  ErrorResponse "Товара недостаточно"
// @Router       /orders/{id}/approve [post]
func (h *HTTPHandler) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	var req ApproveRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, "approve order", func(ctx context.Context, id string) (service.Result, error) {
		return h.svc.ApproveOrder(ctx, id, req.ManagerID, req.Notes)
	})
}

// RejectOrder отклоняет заказ, возвращает деньги и товар.
// @Summary      Отклонить заказ
// @Tags         approval
// @Accept       json
// @Produce      json
// @Param        id       path  string         true  "Идентификатор заказа"
// @Param        request  body  RejectRequest  true  "Менеджер и причина"
// @Success      200  {object}  TransitionResult
// @Router       /orders/{id}/reject [post]
func (h *HTTPHandler) RejectOrder(w http.ResponseWriter, r *http.Request) {
	var req RejectRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, "reject order", func(ctx context.Context, id string) (service.Result, error) {
		return h.svc.RejectOrder(ctx, id, req.ManagerID, req.ReasonCode, req.Notes)
	})
}

// CancelOrder отменяет заказ до согласования.
// @Summary      Отменить заказ
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Param        id       path  string        true  "Идентификатор заказа"
// @Param        request  body  ActorRequest  true  "Инициатор"
// @Success      200  {object}  TransitionResult
// @Router       /orders/{id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req ActorRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, "cancel order", func(ctx context.Context, id string) (service.Result, error) {
		return h.svc.CancelOrder(ctx, id, req.ActorID, req.Note)
	})
}

// ShipOrder передает заказ в доставку.
// @Summary      Отгрузить заказ
// @Tags         fulfilment
// @Accept       json
// @Produce      json
// @Param        id       path  string        true  "Идентификатор заказа"
// @Param        request  body  ActorRequest  true  "Инициатор"
// @Success      200  {object}  TransitionResult
// @Router       /orders/{id}/ship [post]
func (h *HTTPHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	var req ActorRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, "ship order", func(ctx context.Context, id string) (service.Result, error) {
		return h.svc.ShipOrder(ctx, id, req.ActorID)
	})
}

// DeliverOrder отмечает заказ доставленным.
// @Summary      Заказ доставлен
// @Tags         fulfilment
// @Accept       json
// @Produce      json
// @Param        id       path  string        true  "Идентификатор заказа"
// @Param        request  body  ActorRequest  true  "Инициатор"
// @Success      200  {object}  TransitionResult
// @Router       /orders/{id}/deliver [post]
func (h *HTTPHandler) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	var req ActorRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, "deliver order", func(ctx context.Context, id string) (service.Result, error) {
		return h.svc.DeliverOrder(ctx, id, req.ActorID)
	})
}

// RefundOrder возвращает деньги и закрывает заказ.
// @Summary      Возврат
// @Tags         fulfilment
// @Accept       json
// @Produce      json
// @Param        id       path  string         true  "Идентификатор заказа"
// @Param        request  body  RefundRequest  true  "Инициатор и причина"
// @Success      200  {object}  TransitionResult
// @Failure      402  {object}  ErrorResponse "Возврат не прошел"
// @Router       /orders/{id}/refund [post]
func (h *HTTPHandler) RefundOrder(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, "refund order", func(ctx context.Context, id string) (service.Result, error) {
		return h.svc.RefundOrder(ctx, id, req.ActorID, req.Reason)
	})
}

// ValidateStock проверяет наличие произвольного набора товаров.
// @Summary      Проверка наличия
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        request  body  ValidateStockRequest  true  "Товары"
// @Success      200  {object}  StockCheck
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /stock/validate [post]
func (h *HTTPHandler) ValidateStock(w http.ResponseWriter, r *http.Request) {
	var req ValidateStockRequest
	if !h.decode(w, r, &req) {
		return
	}
	check := h.svc.ValidateItems(r.Context(), StockItemsToService(req.Items))
	utils.WriteJSON(w, StockCheckToJSON("", check.Result, check.Report), http.StatusOK)
}

// Restock задает остаток товара на складе.
// @Summary      Задать остаток
// @Tags         stock
// @Accept       json
// @Param        id       path  string          true  "Идентификатор товара"
// @Param        request  body  RestockRequest  true  "Остаток"
// @Success      204
// @Failure      404  {object}  ErrorResponse "Товар не найден"
// @Router       /products/{id}/stock [put]
func (h *HTTPHandler) Restock(w http.ResponseWriter, r *http.Request) {
	var req RestockRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.svc.Restock(r.Context(), chi.URLParam(r, "id"), req.Quantity); err != nil {
		h.writeError(r.Context(), w, "restock", err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetStatistics возвращает статистику переходов за период.
// @Summary      Статистика переходов
// @Tags         stats
// @Produce      json
// @Param        from  query  string  false  "Начало периода (RFC3339), по умолчанию сутки назад"
// @Param        to    query  string  false  "Конец периода (RFC3339), по умолчанию сейчас"
// @Success      200  {object}  Statistics
// @Failure      400  {object}  utils.ErrorResponse "Неверный период"
// @Router       /stats/transitions [get]
func (h *HTTPHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	to := time.Now().UTC()
	from := to.Add(-24 * time.Hour)

	var err error
	if v := r.URL.Query().Get("from"); v != "" {
		if from, err = time.Parse(time.RFC3339, v); err != nil {
			utils.WriteError(w, "invalid from", http.StatusBadRequest)
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if to, err = time.Parse(time.RFC3339, v); err != nil {
			utils.WriteError(w, "invalid to", http.StatusBadRequest)
			return
		}
	}

	stats, err := h.svc.GetOrderStateStatistics(r.Context(), from, to)
	if err != nil {
		h.writeError(r.Context(), w, "get statistics", err, nil)
		return
	}
	utils.WriteJSON(w, StatisticsToJSON(stats), http.StatusOK)
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) respond(w http.ResponseWriter, r *http.Request, op string, call func(ctx context.Context, orderID string) (service.Result, error)) {
	id := chi.URLParam(r, "id")
	res, err := call(r.Context(), id)
	if err != nil {
		var partial *TransitionResult
		// статус мог измениться, несмотря на ошибку
		if res.To != "" && res.To != res.From {
			out := ResultToJSON(res)
			partial = &out
		}
		h.writeError(r.Context(), w, op, err, partial)
		return
	}
	utils.WriteJSON(w, ResultToJSON(res), http.StatusOK)
}

func (h *HTTPHandler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error, partial *TransitionResult) {
	res := ErrorResponse{Message: err.Error(), Result: partial}

	var ve *entities.ValidationError
	var te *entities.TransitionError
	code := http.StatusInternalServerError
	switch {
	case errors.As(err, &ve):
		code = http.StatusUnprocessableEntity
		res.Violations = ve.Violations
		if report, ok := ve.Details.(stock.ShortfallReport); ok {
			check := StockCheckToJSON("", stock.BulkResult{}, report)
			res.Shortfall = &check
		}
	case errors.As(err, &te):
		code = http.StatusConflict
		res.Violations = te.Violations
	case errors.Is(err, entities.ErrOrderNotFound):
		code = http.StatusNotFound
		res.Message = "order not found"
	case errors.Is(err, entities.ErrProductNotFound):
		code = http.StatusNotFound
		res.Message = "product not found"
	case errors.Is(err, entities.ErrValidation):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrConcurrentUpdate),
		errors.Is(err, entities.ErrInventory):
		code = http.StatusConflict
	case errors.Is(err, entities.ErrPaymentFailed):
		code = http.StatusPaymentRequired
	case errors.Is(err, entities.ErrStockUpdateFailed):
		h.logger.ErrorContext(ctx, op+" left order inconsistent", slog.Any("error", err))
		res.Message = "payment taken but stock not updated, order requires operator attention"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		code = http.StatusServiceUnavailable
		res.Message = "request cancelled"
	default:
		h.logger.ErrorContext(ctx, "failed to "+op, slog.Any("error", err))
		res.Message = "internal server error"
	}
	utils.WriteJSON(w, res, code)
}
