// Package credit holds the domain model for the prepaid credit ledger.
//
// Every paid operation debits a per-account balance and appends an immutable
// transaction record. Balances can never go negative; a debit that would
// overdraw the account is rejected atomically.
package credit

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInsufficientCredits is returned when a debit would overdraw the balance.
var ErrInsufficientCredits = errors.New("insufficient credits")

// Transaction types recorded in the ledger.
const (
	TypePurchase = "purchase"
	TypeUsage    = "usage"
)

// Balance represents the current credit position of an account.
type Balance struct {
	AccountID      string
	Balance        int64
	TotalPurchased int64
	TotalUsed      int64
	UpdatedAt      time.Time
}

// Transaction is an append-only ledger entry. BalanceAfter records the
// balance immediately after this entry was applied.
type Transaction struct {
	ID           string
	AccountID    string
	Type         string
	Amount       int64
	BalanceAfter int64
	Description  string
	Metadata     map[string]any
	CreatedAt    time.Time
}

// Package is a purchasable credit bundle.
type Package struct {
	ID         int64
	Name       string
	Credits    int64
	BasePrice  decimal.Decimal
	FinalPrice decimal.Decimal
	Features   []string
	IsPopular  bool
	SortOrder  int
}
