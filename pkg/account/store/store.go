package store

import (
	"context"
	"errors"

	"github.com/mainalysis/domain-analyzer/pkg/account"
)

var ErrAccountNotFound = errors.New("account not found")

// Store defines the interface for account data persistence
type Store interface {
	CreateAccount(ctx context.Context, acc *account.Account) error
	GetAccount(ctx context.Context, walletAddress string) (*account.Account, error)
	TouchLastLogin(ctx context.Context, walletAddress string) error
}
