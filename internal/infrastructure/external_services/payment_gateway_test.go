package external_services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	g := NewPaymentGateway("http://unused", "key-id", "key-secret")

	good := sign("key-secret", "order_1", "pay_1")
	assert.True(t, g.VerifySignature("order_1", "pay_1", good))

	// Any tampering with the signed parts must fail.
	assert.False(t, g.VerifySignature("order_2", "pay_1", good))
	assert.False(t, g.VerifySignature("order_1", "pay_2", good))
	assert.False(t, g.VerifySignature("order_1", "pay_1", good[:len(good)-1]+"0"))
	assert.False(t, g.VerifySignature("order_1", "pay_1", ""))

	wrongKey := sign("other-secret", "order_1", "pay_1")
	assert.False(t, g.VerifySignature("order_1", "pay_1", wrongKey))
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key-id", user)
		assert.Equal(t, "key-secret", pass)

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(10000), req.Amount)
		assert.Equal(t, "INR", req.Currency)

		json.NewEncoder(w).Encode(createOrderResponse{
			ID:       "order_srv1",
			Amount:   req.Amount,
			Currency: req.Currency,
		})
	}))
	defer srv.Close()

	g := NewPaymentGateway(srv.URL, "key-id", "key-secret")
	order, err := g.CreateOrder(context.Background(), &contract.OrderRequest{
		AmountMinorUnits: 10000,
		Currency:         "INR",
		ReceiptID:        "course_c1",
		Notes:            map[string]string{"course_id": "c1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "order_srv1", order.OrderID)
	assert.Equal(t, int64(10000), order.Amount)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := NewPaymentGateway(srv.URL, "bad", "creds")
	_, err := g.CreateOrder(context.Background(), &contract.OrderRequest{AmountMinorUnits: 100, Currency: "INR"})
	assert.Error(t, err)
}
