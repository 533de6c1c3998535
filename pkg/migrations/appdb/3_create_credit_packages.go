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
		log.Println("creating credit_packages table...")
		return mghelper.CreateSchema(ctx, db, &creditpg.PackageDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping credit_packages table...")
		return mghelper.DropTables(ctx, db, &creditpg.PackageDao{})
	})
}
