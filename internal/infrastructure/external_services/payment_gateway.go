package external_services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
)

// PaymentGateway talks to the external payment provider's order API and
// verifies its completion callbacks. The provider signs a completed payment
// with HMAC-SHA256 over "orderID|paymentID" using the shared key secret.
type PaymentGateway struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
}

func NewPaymentGateway(baseURL, keyID, keySecret string) *PaymentGateway {
	return &PaymentGateway{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

var _ contract.IPaymentGateway = (*PaymentGateway)(nil)

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrder creates an order at the gateway for the given amount in minor
// currency units.
func (g *PaymentGateway) CreateOrder(ctx context.Context, req *contract.OrderRequest) (*contract.GatewayOrder, error) {
	payload, err := json.Marshal(createOrderRequest{
		Amount:   req.AmountMinorUnits,
		Currency: req.Currency,
		Receipt:  req.ReceiptID,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	httpReq.SetBasicAuth(g.keyID, g.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payment gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var out createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	return &contract.GatewayOrder{
		OrderID:  out.ID,
		Amount:   out.Amount,
		Currency: out.Currency,
	}, nil
}

// VerifySignature recomputes the expected HMAC and compares it byte for
// byte against the presented signature.
func (g *PaymentGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
