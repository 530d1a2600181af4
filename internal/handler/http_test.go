package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/SergeyBogomolovv/media-store-orders/internal/handler"
	mocks "github.com/SergeyBogomolovv/media-store-orders/internal/handler/mocks"
	"github.com/SergeyBogomolovv/media-store-orders/internal/service"
	"github.com/SergeyBogomolovv/media-store-orders/internal/stock"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, svc *mocks.MockOrderService, method, path, body string) (*http.Response, string) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	t.Cleanup(func() { res.Body.Close() })
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(data)
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	order := entities.Order{
		ID:       "123",
		Status:   entities.StatusApproved,
		TotalDue: decimal.RequireFromString("12.5"),
		Lines: []entities.OrderLine{{
			ID:       1,
			Product:  entities.ProductSnapshot{ID: "dvd-1", Title: "Alien", UnitPrice: decimal.RequireFromString("12.5")},
			Quantity: 1,
		}},
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, "123").Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_due":"12.50"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, "not-exist").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, "123").Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			res, body := serve(t, svc, http.MethodGet, "/orders/"+tc.orderID, "")
			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp handler.Order
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "123", resp.ID)
				assert.Equal(t, "APPROVED", resp.Status)
				require.Len(t, resp.Lines, 1)
				assert.Equal(t, "Alien", resp.Lines[0].Title)
			}
		})
	}
}

func TestHTTPHandler_PlaceOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: `{"customer_id":"c-1","items":[{"product_id":"dvd-1","quantity":2,"rush_eligible":true}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, "c-1", []service.CartItem{{ProductID: "dvd-1", Quantity: 2, RushEligible: true}}).
					Return(entities.Order{ID: "o-1", Status: entities.StatusPendingDeliveryInfo}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"PENDING_DELIVERY_INFO"`,
		},
		{
			name:         "empty cart",
			body:         `{"customer_id":"c-1","items":[]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"items":"min=1"`,
		},
		{
			name:         "zero quantity",
			body:         `{"customer_id":"c-1","items":[{"product_id":"dvd-1","quantity":0}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"items[0].quantity":"gte=1"`,
		},
		{
			name:         "malformed json",
			body:         `{"customer_id":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "out of stock",
			body: `{"customer_id":"c-1","items":[{"product_id":"dvd-1","quantity":5}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				report := stock.ShortfallReport{
					HasShortfall: true,
					Lines: []stock.ShortfallLine{{
						ProductID:         "dvd-1",
						ProductTitle:      "Alien",
						Requested:         5,
						Available:         2,
						Suggestion:        stock.SuggestReduce,
						SuggestedQuantity: 2,
						Remediation:       "reduce to 2",
					}},
				}
				svc.EXPECT().PlaceOrder(mock.Anything, "c-1", mock.Anything).
					Return(entities.Order{}, entities.NewValidationError(report, "dvd-1: only 2 available")).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"remediation":"reduce to 2"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			res, body := serve(t, svc, http.MethodPost, "/orders", tc.body)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Actions(t *testing.T) {
	ok := service.Result{OrderID: "o-1", From: entities.StatusPendingProcessing, To: entities.StatusApproved}

	testCases := []struct {
		name         string
		path         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "approve",
			path: "/orders/o-1/approve",
			body: `{"manager_id":"m-1","notes":"ok"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				res := ok
				res.ReservationIDs = []string{"approve:o-1:1"}
				svc.EXPECT().ApproveOrder(mock.Anything, "o-1", "m-1", "ok").Return(res, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"reservation_ids":["approve:o-1:1"]`,
		},
		{
			name:         "approve without manager",
			path:         "/orders/o-1/approve",
			body:         `{"notes":"ok"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"manager_id":"required"`,
		},
		{
			name: "invalid transition",
			path: "/orders/o-1/reject",
			body: `{"manager_id":"m-1","reason_code":"PRICE_ERROR"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().RejectOrder(mock.Anything, "o-1", "m-1", "PRICE_ERROR", "").
					Return(service.Result{}, &entities.TransitionError{
						OrderID:    "o-1",
						From:       entities.StatusShipping,
						To:         entities.StatusRejected,
						Violations: []string{"order must be in one of [PENDING_PROCESSING]"},
					}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"violations":["order must be in one of [PENDING_PROCESSING]"]`,
		},
		{
			name: "inventory conflict",
			path: "/orders/o-1/approve",
			body: `{"manager_id":"m-1"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ApproveOrder(mock.Anything, "o-1", "m-1", "").
					Return(service.Result{}, entities.ErrInventory).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "payment declined carries result",
			path: "/orders/o-1/payment",
			body: `{"payment_method_id":"card-1"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ProcessPayment(mock.Anything, "o-1", "card-1").
					Return(service.Result{OrderID: "o-1", From: entities.StatusPendingPayment, To: entities.StatusPaymentFailed}, entities.ErrPaymentFailed).Once()
			},
			wantStatus: http.StatusPaymentRequired,
			wantBody:   `"to":"PAYMENT_FAILED"`,
		},
		{
			name: "stock update failed",
			path: "/orders/o-1/payment",
			body: `{"payment_method_id":"card-1"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ProcessPayment(mock.Anything, "o-1", "card-1").
					Return(service.Result{OrderID: "o-1", From: entities.StatusPendingPayment, To: entities.StatusErrorStockUpdateFailed}, entities.ErrStockUpdateFailed).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `requires operator attention`,
		},
		{
			name: "delivery fee",
			path: "/orders/o-1/delivery-info",
			body: `{"actor_id":"c-1","delivery_fee":"4.99"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ConfirmDeliveryInfo(mock.Anything, "o-1", "c-1", mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(decimal.RequireFromString("4.99"))
				})).Return(service.Result{OrderID: "o-1", From: entities.StatusPendingDeliveryInfo, To: entities.StatusPendingPayment}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"to":"PENDING_PAYMENT"`,
		},
		{
			name:         "delivery fee not a number",
			path:         "/orders/o-1/delivery-info",
			body:         `{"delivery_fee":"free"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "cancel with warnings",
			path: "/orders/o-1/cancel",
			body: `{"actor_id":"c-1","note":"changed my mind"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, "o-1", "c-1", "changed my mind").
					Return(service.Result{OrderID: "o-1", From: entities.StatusPendingProcessing, To: entities.StatusCancelled, Warnings: []string{"refund failed"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"warnings":["refund failed"]`,
		},
		{
			name: "ship",
			path: "/orders/o-1/ship",
			body: `{"actor_id":"warehouse"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ShipOrder(mock.Anything, "o-1", "warehouse").
					Return(service.Result{OrderID: "o-1", From: entities.StatusApproved, To: entities.StatusShipping}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"to":"SHIPPING"`,
		},
		{
			name: "refund",
			path: "/orders/o-1/refund",
			body: `{"actor_id":"support","reason":"damaged"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().RefundOrder(mock.Anything, "o-1", "support", "damaged").
					Return(service.Result{}, entities.ErrPaymentFailed).Once()
			},
			wantStatus: http.StatusPaymentRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			res, body := serve(t, svc, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Queries(t *testing.T) {
	t.Run("next states", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().GetValidNextStates(mock.Anything, "o-1").Return(service.NextStates{
			OrderID: "o-1",
			Current: entities.StatusDelivered,
			Next:    []entities.OrderStatus{entities.StatusRefunded},
		}, nil).Once()

		res, body := serve(t, svc, http.MethodGet, "/orders/o-1/next-states", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"order_id":"o-1","current":"DELIVERED","next":["REFUNDED"]}`, body)
	})

	t.Run("history", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().GetHistory(mock.Anything, "o-1").Return([]entities.TransitionRecord{
			{ID: "r-1", To: entities.StatusPendingDeliveryInfo, ActorID: "c-1", ReasonCode: entities.ReasonOrderPlaced, Success: true},
		}, nil).Once()

		res, body := serve(t, svc, http.MethodGet, "/orders/o-1/history", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"reason":"Order placed from cart"`)
	})

	t.Run("validate stock", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().ValidateItems(mock.Anything, []stock.Item{{ProductID: "dvd-1", Quantity: 1}}).Return(service.StockCheck{
			Result: stock.BulkResult{AllValid: true, Items: []stock.Result{{Valid: true, ProductID: "dvd-1", Requested: 1, AvailableStock: 4, Reason: stock.ReasonOK}}},
			Report: stock.ShortfallReport{Summary: "all items are available"},
		}).Once()

		res, body := serve(t, svc, http.MethodPost, "/stock/validate", `{"items":[{"product_id":"dvd-1","quantity":1}]}`)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"all_valid":true`)
		assert.Contains(t, body, `"available_stock":4`)
	})

	t.Run("restock", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().Restock(mock.Anything, "dvd-1", 10).Return(nil).Once()
		svc.EXPECT().Restock(mock.Anything, "missing", 1).Return(entities.ErrProductNotFound).Once()

		res, _ := serve(t, svc, http.MethodPut, "/products/dvd-1/stock", `{"quantity":10}`)
		assert.Equal(t, http.StatusNoContent, res.StatusCode)

		res, body := serve(t, svc, http.MethodPut, "/products/missing/stock", `{"quantity":1}`)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "product not found")
	})

	t.Run("statistics", func(t *testing.T) {
		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().GetOrderStateStatistics(mock.Anything, from, to).Return(service.Statistics{
			From:                from,
			To:                  to,
			Approvals:           3,
			Rejections:          1,
			ApprovalRate:        0.75,
			TopRejectionReasons: []service.ReasonCount{{Reason: "PRICE_ERROR", Count: 1}},
		}, nil).Once()

		res, body := serve(t, svc, http.MethodGet, "/stats/transitions?from=2025-01-01T00:00:00Z&to=2025-02-01T00:00:00Z", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"approval_rate":0.75`)
		assert.Contains(t, body, `{"reason":"PRICE_ERROR","count":1}`)

		res, _ = serve(t, svc, http.MethodGet, "/stats/transitions?from=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}
