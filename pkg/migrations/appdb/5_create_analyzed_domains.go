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
		log.Println("creating analyzed_domains table...")
		if err := mghelper.CreateSchema(ctx, db, &analysispg.AnalyzedDomainDao{}); err != nil {
			return err
		}
		// One cache row per (account, domain); the upsert conflict target
		// depends on this index.
		return mghelper.CreateCompositeUniqueIndex(ctx, db, &analysispg.AnalyzedDomainDao{},
			"idx_analyzed_domains_account_domain", "account_id", "domain_name")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping analyzed_domains table...")
		return mghelper.DropTables(ctx, db, &analysispg.AnalyzedDomainDao{})
	})
}
