package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/mainalysis/domain-analyzer/pkg/account"
	"github.com/mainalysis/domain-analyzer/pkg/account/store"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the account store
func NewStore(db *bun.DB) store.Store {
	return &pgStore{db: db}
}

func (s *pgStore) CreateAccount(ctx context.Context, acc *account.Account) error {
	dao := toAccountDao(acc)

	_, err := s.db.NewInsert().
		Model(dao).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (s *pgStore) GetAccount(ctx context.Context, walletAddress string) (*account.Account, error) {
	dao := new(AccountDao)

	err := s.db.NewSelect().
		Model(dao).
		Where("wallet_address = ?", walletAddress).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return toAccount(dao), nil
}

func (s *pgStore) TouchLastLogin(ctx context.Context, walletAddress string) error {
	now := time.Now()

	_, err := s.db.NewUpdate().
		Model((*AccountDao)(nil)).
		Set("last_login = ?", now).
		Where("wallet_address = ?", walletAddress).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}
