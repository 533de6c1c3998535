package appdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	featuredpg "github.com/mainalysis/domain-analyzer/pkg/featured/store/pg"
	mghelper "github.com/mainalysis/domain-analyzer/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating domain_of_the_day table...")
		if err := mghelper.CreateSchema(ctx, db, &featuredpg.FeaturedDomainDao{}); err != nil {
			return err
		}
		// Create indexes
		return mghelper.CreateModelIndexes(ctx, db, &featuredpg.FeaturedDomainDao{}, "featured_date", "created_by")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping domain_of_the_day table...")
		return mghelper.DropTables(ctx, db, &featuredpg.FeaturedDomainDao{})
	})
}
