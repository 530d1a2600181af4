package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/media-store-orders/internal/config"
	"github.com/SergeyBogomolovv/media-store-orders/internal/entities"
	"github.com/shopspring/decimal"
)

var ErrUnexpectedResponse = errors.New("unexpected gateway response")

type chargeRequest struct {
	OrderID         string          `json:"order_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethodID string          `json:"payment_method_id"`
}

type refundRequest struct {
	OrderID    string          `json:"order_id"`
	PaymentRef string          `json:"payment_ref"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
}

type transactionResponse struct {
	Reference string          `json:"reference"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	Message   string          `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// HTTPGateway talks to a payment provider over a JSON API.
type HTTPGateway struct {
	logger  *slog.Logger
	baseURL string
	client  *http.Client
}

func NewHTTPGateway(logger *slog.Logger, cfg config.Payment) *HTTPGateway {
	return &HTTPGateway{
		logger:  logger.With(slog.String("gateway", "http")),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (g *HTTPGateway) Pay(ctx context.Context, order entities.Order, paymentMethodID string) (entities.Transaction, error) {
	req := chargeRequest{
		OrderID:         order.ID,
		Amount:          order.TotalDue,
		PaymentMethodID: paymentMethodID,
	}
	var res transactionResponse
	// повторный запрос с тем же ключом не спишет деньги дважды
	if err := g.do(ctx, http.MethodPost, "/v1/payments", "pay:"+order.ID, req, &res); err != nil {
		return entities.Transaction{}, err
	}
	txn, err := toTransaction(res)
	if err != nil {
		return entities.Transaction{}, err
	}
	txn.OrderID = order.ID
	txn.Kind = entities.TransactionPayment
	return txn, nil
}

func (g *HTTPGateway) Refund(ctx context.Context, orderID, originalRef string, amount decimal.Decimal, reason string) (entities.Transaction, error) {
	req := refundRequest{
		OrderID:    orderID,
		PaymentRef: originalRef,
		Amount:     amount,
		Reason:     reason,
	}
	var res transactionResponse
	if err := g.do(ctx, http.MethodPost, "/v1/refunds", "refund:"+originalRef, req, &res); err != nil {
		return entities.Transaction{}, err
	}
	txn, err := toTransaction(res)
	if err != nil {
		return entities.Transaction{}, err
	}
	txn.OrderID = orderID
	txn.Kind = entities.TransactionRefund
	txn.OriginalRef = originalRef
	return txn, nil
}

func (g *HTTPGateway) CheckStatus(ctx context.Context, txnID string) (entities.Transaction, error) {
	var res transactionResponse
	if err := g.do(ctx, http.MethodGet, "/v1/transactions/"+url.PathEscape(txnID), "", nil, &res); err != nil {
		return entities.Transaction{}, err
	}
	return toTransaction(res)
}

func (g *HTTPGateway) do(ctx context.Context, method, path, idempotencyKey string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	g.logger.DebugContext(ctx, "gateway call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("duration", time.Since(start).String()),
	)

	// 402 несет обычный ответ с отказом
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusPaymentRequired {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("%w: %s %s: status %d: %s", ErrUnexpectedResponse, method, path, resp.StatusCode, e.Message)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode body: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

func toTransaction(res transactionResponse) (entities.Transaction, error) {
	status, ok := parseStatus(res.Status)
	if !ok {
		return entities.Transaction{}, fmt.Errorf("%w: unknown status %q", ErrUnexpectedResponse, res.Status)
	}
	if res.Reference == "" {
		return entities.Transaction{}, fmt.Errorf("%w: missing reference", ErrUnexpectedResponse)
	}
	return entities.Transaction{
		GatewayRef: res.Reference,
		Status:     status,
		Amount:     res.Amount,
		Message:    res.Message,
	}, nil
}

func parseStatus(s string) (entities.TransactionStatus, bool) {
	switch strings.ToLower(s) {
	case "succeeded", "success", "captured":
		return entities.TransactionSucceeded, true
	case "failed", "declined":
		return entities.TransactionFailed, true
	case "pending", "processing":
		return entities.TransactionPending, true
	}
	return "", false
}
