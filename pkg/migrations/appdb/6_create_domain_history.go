package appdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	analysispg "github.com/mainalysis/domain-analyzer/pkg/analysis/store/pg"
	mghelper "github.com/mainalysis/domain-analyzer/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating domain_history table...")
		if err := mghelper.CreateSchema(ctx, db, &analysispg.HistoryDao{}); err != nil {
			return err
		}
		// Create indexes
		return mghelper.CreateModelIndexes(ctx, db, &analysispg.HistoryDao{}, "account_id", "analyzed_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping domain_history table...")
		return mghelper.DropTables(ctx, db, &analysispg.HistoryDao{})
	})
}
