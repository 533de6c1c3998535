package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
	"github.com/mainalysis/domain-analyzer/pkg/payment"
	"github.com/mainalysis/domain-analyzer/pkg/payment/paypal"
)

const testAccount = "0xDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDD"

func capturedOrder(t *testing.T, id, status, value string) *paypal.Order {
	t.Helper()

	raw := fmt.Sprintf(`{
		"id": %q,
		"status": %q,
		"purchase_units": [{
			"payments": {
				"captures": [{
					"id": "CAP-1",
					"status": %q,
					"amount": {"currency_code": "USD", "value": %q}
				}]
			}
		}]
	}`, id, status, status, value)

	var order paypal.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		t.Fatalf("failed to build test order: %v", err)
	}
	return &order
}

func TestCreateOrder_PricesCreditsInUSD(t *testing.T) {
	var gotTotal decimal.Decimal
	var gotCredits int64
	var gotAccount string
	checkout := &MockCheckout{
		CreateOrderFunc: func(_ context.Context, totalUSD decimal.Decimal, credits int64, accountID string) (*paypal.Order, error) {
			gotTotal = totalUSD
			gotCredits = credits
			gotAccount = accountID
			return &paypal.Order{ID: "ORDER-1", Status: "CREATED"}, nil
		},
	}

	svc := NewService(checkout, &MockCreditStore{}, zap.NewNop(), decimal.RequireFromString("0.50"))
	res, err := svc.CreateOrder(context.Background(), &payment.CreateOrderRequest{
		Amount:    100,
		AccountID: testAccount,
	})
	if err != nil {
		t.Fatalf("CreateOrder() failed: %v", err)
	}
	if res.OrderID != "ORDER-1" {
		t.Fatalf("unexpected order id: %s", res.OrderID)
	}
	if gotTotal.StringFixed(2) != "50.00" {
		t.Fatalf("expected 100 credits to cost 50.00 USD, got %s", gotTotal.StringFixed(2))
	}
	if gotCredits != 100 {
		t.Fatalf("expected 100 credits, got %d", gotCredits)
	}
	if gotAccount != "0xdddddddddddddddddddddddddddddddddddddddd" {
		t.Fatalf("expected normalized account id, got %s", gotAccount)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	svc := NewService(&MockCheckout{}, &MockCreditStore{}, zap.NewNop(), decimal.RequireFromString("0.50"))

	_, err := svc.CreateOrder(context.Background(), &payment.CreateOrderRequest{Amount: 0, AccountID: testAccount})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError for zero amount, got %v", err)
	}

	_, err = svc.CreateOrder(context.Background(), &payment.CreateOrderRequest{Amount: 10, AccountID: "nope"})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError for bad account, got %v", err)
	}
}

func TestCreateOrder_ProviderFailure(t *testing.T) {
	checkout := &MockCheckout{
		CreateOrderFunc: func(context.Context, decimal.Decimal, int64, string) (*paypal.Order, error) {
			return nil, errors.New("paypal down")
		},
	}
	svc := NewService(checkout, &MockCreditStore{}, zap.NewNop(), decimal.RequireFromString("0.50"))

	_, err := svc.CreateOrder(context.Background(), &payment.CreateOrderRequest{Amount: 10, AccountID: testAccount})
	if !apperrors.Is(err, apperrors.CategoryDependencyFailure) {
		t.Fatalf("expected CategoryDependencyFailure, got %v", err)
	}
}

func TestCaptureOrder_Completed_CreditsLedgerOnce(t *testing.T) {
	checkout := &MockCheckout{
		CaptureOrderFunc: func(_ context.Context, orderID string) (*paypal.Order, error) {
			return capturedOrder(t, orderID, paypal.StatusCompleted, "50.00"), nil
		},
	}
	var addCalls int
	var gotAmount int64
	var gotMetadata map[string]any
	credits := &MockCreditStore{
		AddCreditsFunc: func(_ context.Context, _ string, amount int64, _ string, metadata map[string]any) error {
			addCalls++
			gotAmount = amount
			gotMetadata = metadata
			return nil
		},
	}

	svc := NewService(checkout, credits, zap.NewNop(), decimal.RequireFromString("0.50"))
	res, err := svc.CaptureOrder(context.Background(), &payment.CaptureOrderRequest{
		OrderID:   "ORDER-1",
		AccountID: testAccount,
	})
	if err != nil {
		t.Fatalf("CaptureOrder() failed: %v", err)
	}
	if !res.Success {
		t.Fatal("expected success")
	}
	if res.Credits != 100 {
		t.Fatalf("expected 100 credits for 50.00 USD at 0.50, got %d", res.Credits)
	}
	if res.CaptureID != "CAP-1" {
		t.Fatalf("unexpected capture id: %s", res.CaptureID)
	}
	if addCalls != 1 {
		t.Fatalf("expected exactly one ledger credit, got %d", addCalls)
	}
	if gotAmount != 100 {
		t.Fatalf("expected 100 credits added, got %d", gotAmount)
	}
	if gotMetadata["order_id"] != "ORDER-1" || gotMetadata["payment_type"] != "paypal" {
		t.Fatalf("unexpected metadata: %v", gotMetadata)
	}
}

func TestCaptureOrder_NotCompleted_DoesNotCredit(t *testing.T) {
	checkout := &MockCheckout{
		CaptureOrderFunc: func(_ context.Context, orderID string) (*paypal.Order, error) {
			return &paypal.Order{ID: orderID, Status: "PENDING"}, nil
		},
	}
	credits := &MockCreditStore{
		AddCreditsFunc: func(context.Context, string, int64, string, map[string]any) error {
			t.Fatal("ledger must not be credited for a non-completed capture")
			return nil
		},
	}

	svc := NewService(checkout, credits, zap.NewNop(), decimal.RequireFromString("0.50"))
	_, err := svc.CaptureOrder(context.Background(), &payment.CaptureOrderRequest{
		OrderID:   "ORDER-1",
		AccountID: testAccount,
	})
	if !errors.Is(err, ErrPaymentNotCompleted) {
		t.Fatalf("expected ErrPaymentNotCompleted, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected CategoryDataConflict, got %v", err)
	}
}

func TestCaptureOrder_CreditsDerivedFromCapturedValue(t *testing.T) {
	// Captured less than the nominal order value: credit only what was paid.
	checkout := &MockCheckout{
		CaptureOrderFunc: func(_ context.Context, orderID string) (*paypal.Order, error) {
			return capturedOrder(t, orderID, paypal.StatusCompleted, "10.00"), nil
		},
	}
	credits := &MockCreditStore{}

	svc := NewService(checkout, credits, zap.NewNop(), decimal.RequireFromString("0.50"))
	res, err := svc.CaptureOrder(context.Background(), &payment.CaptureOrderRequest{
		OrderID:   "ORDER-1",
		AccountID: testAccount,
	})
	if err != nil {
		t.Fatalf("CaptureOrder() failed: %v", err)
	}
	if res.Credits != 20 {
		t.Fatalf("expected 20 credits for 10.00 USD, got %d", res.Credits)
	}
}

func TestCaptureOrder_LedgerFailureSurfaces(t *testing.T) {
	checkout := &MockCheckout{
		CaptureOrderFunc: func(_ context.Context, orderID string) (*paypal.Order, error) {
			return capturedOrder(t, orderID, paypal.StatusCompleted, "50.00"), nil
		},
	}
	credits := &MockCreditStore{
		AddCreditsFunc: func(context.Context, string, int64, string, map[string]any) error {
			return errors.New("db down")
		},
	}

	svc := NewService(checkout, credits, zap.NewNop(), decimal.RequireFromString("0.50"))
	_, err := svc.CaptureOrder(context.Background(), &payment.CaptureOrderRequest{
		OrderID:   "ORDER-1",
		AccountID: testAccount,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
