package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/mainalysis/domain-analyzer/pkg/credit"
	"github.com/mainalysis/domain-analyzer/pkg/credit/store"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the credit store
func NewStore(db *bun.DB) store.Store {
	return &pgStore{db: db}
}

func (s *pgStore) GetBalance(ctx context.Context, accountID string) (*credit.Balance, error) {
	dao := new(BalanceDao)

	err := s.db.NewSelect().
		Model(dao).
		Where("account_id = ?", accountID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No purchases yet. An absent row reads as a zero balance.
			return &credit.Balance{AccountID: accountID}, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &credit.Balance{
		AccountID:      dao.AccountID,
		Balance:        dao.Balance,
		TotalPurchased: dao.TotalPurchased,
		TotalUsed:      dao.TotalUsed,
		UpdatedAt:      dao.UpdatedAt,
	}, nil
}

func (s *pgStore) UseCredits(ctx context.Context, accountID string, amount int64, description string, metadata map[string]any) error {
	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return s.UseCreditsTx(ctx, tx, accountID, amount, description, metadata)
	})
}

// UseCreditsTx debits the balance within the caller's transaction. The
// balance >= amount guard in the UPDATE makes overdraw impossible: zero rows
// affected means the account either has no row or cannot cover the amount.
func (s *pgStore) UseCreditsTx(ctx context.Context, idb bun.IDB, accountID string, amount int64, description string, metadata map[string]any) error {
	if amount <= 0 {
		return fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	var balanceAfter int64
	err := idb.NewUpdate().
		Model((*BalanceDao)(nil)).
		Set("balance = balance - ?", amount).
		Set("total_used = total_used + ?", amount).
		Set("updated_at = current_timestamp").
		Where("account_id = ?", accountID).
		Where("balance >= ?", amount).
		Returning("balance").
		Scan(ctx, &balanceAfter)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return credit.ErrInsufficientCredits
		}
		return fmt.Errorf("failed to debit balance: %w", err)
	}

	return appendTransaction(ctx, idb, &TransactionDao{
		ID:           uuid.NewString(),
		AccountID:    accountID,
		Type:         credit.TypeUsage,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Description:  optional(description),
		Metadata:     metadata,
	})
}

func (s *pgStore) AddCredits(ctx context.Context, accountID string, amount int64, description string, metadata map[string]any) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var balanceAfter int64
		err := tx.NewInsert().
			Model(&BalanceDao{
				AccountID:      accountID,
				Balance:        amount,
				TotalPurchased: amount,
			}).
			On("CONFLICT (account_id) DO UPDATE").
			Set("balance = cb.balance + EXCLUDED.balance").
			Set("total_purchased = cb.total_purchased + EXCLUDED.total_purchased").
			Set("updated_at = current_timestamp").
			Returning("balance").
			Scan(ctx, &balanceAfter)
		if err != nil {
			return fmt.Errorf("failed to credit balance: %w", err)
		}

		return appendTransaction(ctx, tx, &TransactionDao{
			ID:           uuid.NewString(),
			AccountID:    accountID,
			Type:         credit.TypePurchase,
			Amount:       amount,
			BalanceAfter: balanceAfter,
			Description:  optional(description),
			Metadata:     metadata,
		})
	})
}

func (s *pgStore) ListTransactions(ctx context.Context, accountID string, limit int) ([]*credit.Transaction, error) {
	var daos []TransactionDao

	query := s.db.NewSelect().
		Model(&daos).
		Where("account_id = ?", accountID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*credit.Transaction, 0, len(daos))
	for i := range daos {
		transactions = append(transactions, toTransaction(&daos[i]))
	}
	return transactions, nil
}

func (s *pgStore) ListPackages(ctx context.Context) ([]*credit.Package, error) {
	var daos []PackageDao

	err := s.db.NewSelect().
		Model(&daos).
		Order("sort_order ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	packages := make([]*credit.Package, 0, len(daos))
	for i := range daos {
		packages = append(packages, toPackage(&daos[i]))
	}
	return packages, nil
}

func appendTransaction(ctx context.Context, idb bun.IDB, dao *TransactionDao) error {
	if _, err := idb.NewInsert().Model(dao).Exec(ctx); err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
