package contract

import "context"

// GatewayOrder is the external payment gateway's view of a created order.
type GatewayOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
}

// OrderRequest describes the order to create at the gateway.
type OrderRequest struct {
	AmountMinorUnits int64
	Currency         string
	ReceiptID        string
	Notes            map[string]string
}

type IPaymentGateway interface {
	CreateOrder(ctx context.Context, req *OrderRequest) (*GatewayOrder, error)
	// VerifySignature checks the HMAC-SHA256 proof the gateway computed over
	// "orderID|paymentID" against the presented signature.
	VerifySignature(orderID, paymentID, signature string) bool
}
