package appdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	creditpg "github.com/mainalysis/domain-analyzer/pkg/credit/store/pg"
	mghelper "github.com/mainalysis/domain-analyzer/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating credit_balances and credit_transactions tables...")
		if err := mghelper.CreateSchema(ctx, db, &creditpg.BalanceDao{}, &creditpg.TransactionDao{}); err != nil {
			return err
		}
		// Create indexes
		return mghelper.CreateModelIndexes(ctx, db, &creditpg.TransactionDao{}, "account_id", "created_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping credit_balances and credit_transactions tables...")
		return mghelper.DropTables(ctx, db, &creditpg.TransactionDao{}, &creditpg.BalanceDao{})
	})
}
