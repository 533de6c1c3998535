// Package payment implements the two-phase PayPal checkout flow that funds
// credit ledgers: an order is created for a credit amount, then captured,
// and only a COMPLETED capture credits the account.
package payment

// CreateOrderRequest asks for a PayPal order covering Amount credits.
type CreateOrderRequest struct {
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	AccountID string `json:"accountId" validate:"required,eth_addr"`
}

// CreateOrderResponse carries the provider order id the frontend needs to
// drive the PayPal approval flow.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// CaptureOrderRequest confirms an approved PayPal order.
type CaptureOrderRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	AccountID string `json:"accountId" validate:"required,eth_addr"`
}

// CaptureOrderResponse reports the capture outcome. Success is true only for
// a COMPLETED capture, which is also the only case that credits the ledger.
type CaptureOrderResponse struct {
	Success   bool   `json:"success"`
	CaptureID string `json:"captureId"`
	Status    string `json:"status"`
	Credits   int64  `json:"credits,omitzero"`
}
