package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/mainalysis/domain-analyzer/pkg/credit"
	"github.com/mainalysis/domain-analyzer/pkg/payment/paypal"
)

// MockCheckout is a mock implementation of Checkout
type MockCheckout struct {
	CreateOrderFunc  func(ctx context.Context, totalUSD decimal.Decimal, credits int64, accountID string) (*paypal.Order, error)
	CaptureOrderFunc func(ctx context.Context, orderID string) (*paypal.Order, error)
}

func (m *MockCheckout) CreateOrder(ctx context.Context, totalUSD decimal.Decimal, credits int64, accountID string) (*paypal.Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, totalUSD, credits, accountID)
	}
	return &paypal.Order{}, nil
}

func (m *MockCheckout) CaptureOrder(ctx context.Context, orderID string) (*paypal.Order, error) {
	if m.CaptureOrderFunc != nil {
		return m.CaptureOrderFunc(ctx, orderID)
	}
	return &paypal.Order{}, nil
}

// MockCreditStore is a mock implementation of the credit store
type MockCreditStore struct {
	GetBalanceFunc       func(ctx context.Context, accountID string) (*credit.Balance, error)
	UseCreditsFunc       func(ctx context.Context, accountID string, amount int64, description string, metadata map[string]any) error
	AddCreditsFunc       func(ctx context.Context, accountID string, amount int64, description string, metadata map[string]any) error
	ListTransactionsFunc func(ctx context.Context, accountID string, limit int) ([]*credit.Transaction, error)
	ListPackagesFunc     func(ctx context.Context) ([]*credit.Package, error)
}

func (m *MockCreditStore) GetBalance(ctx context.Context, accountID string) (*credit.Balance, error) {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, accountID)
	}
	return &credit.Balance{AccountID: accountID}, nil
}

func (m *MockCreditStore) UseCredits(ctx context.Context, accountID string, amount int64, description string, metadata map[string]any) error {
	if m.UseCreditsFunc != nil {
		return m.UseCreditsFunc(ctx, accountID, amount, description, metadata)
	}
	return nil
}

func (m *MockCreditStore) AddCredits(ctx context.Context, accountID string, amount int64, description string, metadata map[string]any) error {
	if m.AddCreditsFunc != nil {
		return m.AddCreditsFunc(ctx, accountID, amount, description, metadata)
	}
	return nil
}

func (m *MockCreditStore) UseCreditsTx(ctx context.Context, _ bun.IDB, accountID string, amount int64, description string, metadata map[string]any) error {
	if m.UseCreditsFunc != nil {
		return m.UseCreditsFunc(ctx, accountID, amount, description, metadata)
	}
	return nil
}

func (m *MockCreditStore) ListTransactions(ctx context.Context, accountID string, limit int) ([]*credit.Transaction, error) {
	if m.ListTransactionsFunc != nil {
		return m.ListTransactionsFunc(ctx, accountID, limit)
	}
	return nil, nil
}

func (m *MockCreditStore) ListPackages(ctx context.Context) ([]*credit.Package, error) {
	if m.ListPackagesFunc != nil {
		return m.ListPackagesFunc(ctx)
	}
	return nil, nil
}
