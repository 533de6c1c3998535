package appdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	accountpg "github.com/mainalysis/domain-analyzer/pkg/account/store/pg"
	mghelper "github.com/mainalysis/domain-analyzer/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating accounts table...")
		return mghelper.CreateSchema(ctx, db, &accountpg.AccountDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping accounts table...")
		return mghelper.DropTables(ctx, db, &accountpg.AccountDao{})
	})
}
