package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mainalysis/domain-analyzer/internal/metrics"
	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
	"github.com/mainalysis/domain-analyzer/pkg/auth"
	creditstore "github.com/mainalysis/domain-analyzer/pkg/credit/store"
	"github.com/mainalysis/domain-analyzer/pkg/payment"
	"github.com/mainalysis/domain-analyzer/pkg/payment/paypal"
)

var ErrPaymentNotCompleted = errors.New("payment not completed")

// Checkout is the narrow PayPal surface the payment service depends on.
type Checkout interface {
	CreateOrder(ctx context.Context, totalUSD decimal.Decimal, credits int64, accountID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

// Service defines the interface for the payment business logic
type Service interface {
	CreateOrder(ctx context.Context, req *payment.CreateOrderRequest) (*payment.CreateOrderResponse, error)
	CaptureOrder(ctx context.Context, req *payment.CaptureOrderRequest) (*payment.CaptureOrderResponse, error)
}

type paymentService struct {
	checkout     Checkout
	credits      creditstore.Store
	logger       *zap.Logger
	usdPerCredit decimal.Decimal
}

// NewService creates a new payment service. usdPerCredit is the checkout
// price per credit (e.g. "0.50").
func NewService(checkout Checkout, credits creditstore.Store, logger *zap.Logger, usdPerCredit decimal.Decimal) Service {
	return &paymentService{
		checkout:     checkout,
		credits:      credits,
		logger:       logger,
		usdPerCredit: usdPerCredit,
	}
}

// CreateOrder reserves a PayPal order for the requested credit amount.
// Nothing is credited until the order is captured.
func (s *paymentService) CreateOrder(ctx context.Context, req *payment.CreateOrderRequest) (*payment.CreateOrderResponse, error) {
	if req.Amount <= 0 {
		return nil, apperrors.BadRequestError(nil, "amount must be positive")
	}
	if !auth.ValidateAddress(req.AccountID) {
		return nil, apperrors.BadRequestError(nil, "invalid accountId")
	}
	accountID := auth.NormalizeAddress(req.AccountID)

	totalUSD := s.usdPerCredit.Mul(decimal.NewFromInt(req.Amount))

	order, err := s.checkout.CreateOrder(ctx, totalUSD, req.Amount, accountID)
	if err != nil {
		metrics.PayPalOrdersTotal.WithLabelValues("create", "error").Inc()
		return nil, apperrors.DependencyError(err, "failed to create payment order")
	}
	metrics.PayPalOrdersTotal.WithLabelValues("create", order.Status).Inc()

	s.logger.Info("payment order created",
		zap.String("order_id", order.ID),
		zap.String("account_id", accountID),
		zap.Int64("credits", req.Amount),
		zap.String("total_usd", totalUSD.StringFixed(2)))

	return &payment.CreateOrderResponse{OrderID: order.ID}, nil
}

// CaptureOrder captures an approved order and, only when PayPal reports the
// capture COMPLETED, credits the account's ledger with the purchased amount.
func (s *paymentService) CaptureOrder(ctx context.Context, req *payment.CaptureOrderRequest) (*payment.CaptureOrderResponse, error) {
	if req.OrderID == "" {
		return nil, apperrors.BadRequestError(nil, "orderId is required")
	}
	if !auth.ValidateAddress(req.AccountID) {
		return nil, apperrors.BadRequestError(nil, "invalid accountId")
	}
	accountID := auth.NormalizeAddress(req.AccountID)

	order, err := s.checkout.CaptureOrder(ctx, req.OrderID)
	if err != nil {
		metrics.PayPalOrdersTotal.WithLabelValues("capture", "error").Inc()
		return nil, apperrors.DependencyError(err, "failed to capture payment order")
	}
	metrics.PayPalOrdersTotal.WithLabelValues("capture", order.Status).Inc()

	if order.Status != paypal.StatusCompleted {
		return nil, apperrors.ConflictError(ErrPaymentNotCompleted,
			fmt.Sprintf("payment not completed, status %s", order.Status))
	}

	capturedUSD, err := order.CapturedValue()
	if err != nil {
		return nil, apperrors.DependencyError(err, "capture response missing amount")
	}

	// Credits are derived from the captured value, not the request, so a
	// partially captured or repriced order can never over-credit.
	credits := capturedUSD.Div(s.usdPerCredit).IntPart()
	if credits <= 0 {
		return nil, apperrors.DependencyError(nil,
			fmt.Sprintf("captured value %s below price of one credit", capturedUSD.StringFixed(2)))
	}

	err = s.credits.AddCredits(ctx, accountID, credits,
		fmt.Sprintf("Purchased %d credits", credits),
		map[string]any{
			"order_id":     req.OrderID,
			"capture_id":   order.CaptureID(),
			"usd_value":    capturedUSD.StringFixed(2),
			"payment_type": "paypal",
		})
	if err != nil {
		// The capture succeeded but the ledger write failed. Surface as
		// internal so the client retries capture, which PayPal treats as
		// idempotent for completed orders.
		return nil, fmt.Errorf("failed to credit account after capture: %w", err)
	}

	metrics.CreditsPurchasedTotal.Add(float64(credits))

	s.logger.Info("payment captured",
		zap.String("order_id", req.OrderID),
		zap.String("capture_id", order.CaptureID()),
		zap.String("account_id", accountID),
		zap.Int64("credits", credits))

	return &payment.CaptureOrderResponse{
		Success:   true,
		CaptureID: order.CaptureID(),
		Status:    order.Status,
		Credits:   credits,
	}, nil
}
