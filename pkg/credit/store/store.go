package store

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/mainalysis/domain-analyzer/pkg/credit"
)

// Store defines the interface for credit ledger persistence
type Store interface {
	// GetBalance returns the balance row for an account, or a zero-value
	// balance when the account has no row yet.
	GetBalance(ctx context.Context, accountID string) (*credit.Balance, error)

	// UseCredits atomically debits the balance and appends a usage
	// transaction. Returns credit.ErrInsufficientCredits when the balance
	// cannot cover the amount; nothing is written in that case.
	UseCredits(ctx context.Context, accountID string, amount int64, description string, metadata map[string]any) error

	// AddCredits atomically upserts the balance row and appends a purchase
	// transaction.
	AddCredits(ctx context.Context, accountID string, amount int64, description string, metadata map[string]any) error

	// UseCreditsTx is UseCredits executing against the caller's transaction,
	// so a debit can be made atomic with writes owned by other stores.
	UseCreditsTx(ctx context.Context, idb bun.IDB, accountID string, amount int64, description string, metadata map[string]any) error

	// ListTransactions returns ledger entries for an account, newest first.
	ListTransactions(ctx context.Context, accountID string, limit int) ([]*credit.Transaction, error)

	// ListPackages returns purchasable credit bundles in display order.
	ListPackages(ctx context.Context) ([]*credit.Package, error)
}
