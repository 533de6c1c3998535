package appdb

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	creditpg "github.com/mainalysis/domain-analyzer/pkg/credit/store/pg"
)

// Seed packages price credits at $0.20 each with a $10 discount per 1000
// credits in the bundle.
func seedPackages() []*creditpg.PackageDao {
	return []*creditpg.PackageDao{
		{
			Name:       "Starter",
			Credits:    100,
			BasePrice:  decimal.RequireFromString("20.00"),
			FinalPrice: decimal.RequireFromString("20.00"),
			Features:   []string{"Full AI valuation reports", "Search listed domains", "Analysis history"},
			SortOrder:  1,
		},
		{
			Name:       "Growth",
			Credits:    500,
			BasePrice:  decimal.RequireFromString("100.00"),
			FinalPrice: decimal.RequireFromString("100.00"),
			Features:   []string{"Everything in Starter", "Fractionalization analyses", "Priority support"},
			IsPopular:  true,
			SortOrder:  2,
		},
		{
			Name:       "Pro",
			Credits:    1000,
			BasePrice:  decimal.RequireFromString("200.00"),
			FinalPrice: decimal.RequireFromString("190.00"),
			Features:   []string{"Everything in Growth", "Bulk domain analysis"},
			SortOrder:  3,
		},
		{
			Name:       "Scale",
			Credits:    5000,
			BasePrice:  decimal.RequireFromString("1000.00"),
			FinalPrice: decimal.RequireFromString("950.00"),
			Features:   []string{"Everything in Pro", "Dedicated support"},
			SortOrder:  4,
		},
	}
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("seeding credit_packages table...")
		for _, pkg := range seedPackages() {
			_, err := db.NewInsert().
				Model(pkg).
				On("CONFLICT (name) DO NOTHING").
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("removing seed data from credit_packages table...")
		_, err := db.NewDelete().
			Model((*creditpg.PackageDao)(nil)).
			Where("name IN ('Starter', 'Growth', 'Pro', 'Scale')").
			Exec(ctx)
		return err
	})
}
