package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mainalysis/domain-analyzer/pkg/auth"
	"github.com/mainalysis/domain-analyzer/pkg/credit"
	"github.com/mainalysis/domain-analyzer/pkg/credit/store"
)

const defaultTransactionLimit = 50

// Service defines the interface for the credit ledger read surface.
// Debits and credits happen inside the analysis and payment flows; this
// service only exposes balances, history and the package catalogue.
type Service interface {
	GetBalance(ctx context.Context, accountID string) (*credit.Balance, error)
	ListTransactions(ctx context.Context, accountID string, limit int) ([]*credit.Transaction, error)
	ListPackages(ctx context.Context) ([]*credit.Package, error)
}

type creditService struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a new credit service
func NewService(store store.Store, logger *zap.Logger) Service {
	return &creditService{
		store:  store,
		logger: logger,
	}
}

func (s *creditService) GetBalance(ctx context.Context, accountID string) (*credit.Balance, error) {
	balance, err := s.store.GetBalance(ctx, auth.NormalizeAddress(accountID))
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

func (s *creditService) ListTransactions(ctx context.Context, accountID string, limit int) ([]*credit.Transaction, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	transactions, err := s.store.ListTransactions(ctx, auth.NormalizeAddress(accountID), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *creditService) ListPackages(ctx context.Context) ([]*credit.Package, error) {
	packages, err := s.store.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}
