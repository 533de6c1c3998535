package pg

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/mainalysis/domain-analyzer/pkg/credit"
)

// BalanceDao is a data access object that maps directly to the 'credit_balances' table in PostgreSQL.
type BalanceDao struct {
	bun.BaseModel  `bun:"table:credit_balances,alias:cb"`
	AccountID      string    `bun:"account_id,pk,type:varchar(42)"`
	Balance        int64     `bun:"balance,notnull,default:0"`
	TotalPurchased int64     `bun:"total_purchased,notnull,default:0"`
	TotalUsed      int64     `bun:"total_used,notnull,default:0"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,default:current_timestamp"`
}

// TransactionDao is a data access object that maps directly to the 'credit_transactions' table in PostgreSQL.
type TransactionDao struct {
	bun.BaseModel `bun:"table:credit_transactions,alias:ct"`
	ID            string         `bun:"id,pk,type:uuid"`
	AccountID     string         `bun:"account_id,notnull,type:varchar(42)"`
	Type          string         `bun:"type,notnull,type:varchar(16)"`
	Amount        int64          `bun:"amount,notnull"`
	BalanceAfter  int64          `bun:"balance_after,notnull"`
	Description   *string        `bun:"description,type:varchar(255)"`
	Metadata      map[string]any `bun:"metadata,type:jsonb"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,default:current_timestamp"`
}

// PackageDao is a data access object that maps directly to the 'credit_packages' table in PostgreSQL.
type PackageDao struct {
	bun.BaseModel `bun:"table:credit_packages,alias:cp"`
	ID            int64           `bun:"id,pk,autoincrement"`
	Name          string          `bun:"name,unique,notnull,type:varchar(64)"`
	Credits       int64           `bun:"credits,notnull"`
	BasePrice     decimal.Decimal `bun:"base_price,notnull,type:numeric(10,2)"`
	FinalPrice    decimal.Decimal `bun:"final_price,notnull,type:numeric(10,2)"`
	Features      []string        `bun:"features,array,type:text[]"`
	IsPopular     bool            `bun:"is_popular,notnull,default:false"`
	SortOrder     int             `bun:"sort_order,notnull,default:0"`
}

// toTransaction converts a TransactionDao to credit.Transaction.
func toTransaction(dao *TransactionDao) *credit.Transaction {
	tx := &credit.Transaction{
		ID:           dao.ID,
		AccountID:    dao.AccountID,
		Type:         dao.Type,
		Amount:       dao.Amount,
		BalanceAfter: dao.BalanceAfter,
		Metadata:     dao.Metadata,
		CreatedAt:    dao.CreatedAt,
	}
	if dao.Description != nil {
		tx.Description = *dao.Description
	}
	return tx
}

// toPackage converts a PackageDao to credit.Package.
func toPackage(dao *PackageDao) *credit.Package {
	return &credit.Package{
		ID:         dao.ID,
		Name:       dao.Name,
		Credits:    dao.Credits,
		BasePrice:  dao.BasePrice,
		FinalPrice: dao.FinalPrice,
		Features:   dao.Features,
		IsPopular:  dao.IsPopular,
		SortOrder:  dao.SortOrder,
	}
}
