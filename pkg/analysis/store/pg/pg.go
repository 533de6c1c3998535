package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/mainalysis/domain-analyzer/pkg/analysis"
	"github.com/mainalysis/domain-analyzer/pkg/analysis/store"
	creditstore "github.com/mainalysis/domain-analyzer/pkg/credit/store"
)

type pgStore struct {
	db      *bun.DB
	credits creditstore.Store
}

// NewStore creates a new postgres implementation of the analysis store.
// The credit store is used to debit ledgers inside ChargeAndSave's
// transaction.
func NewStore(db *bun.DB, credits creditstore.Store) store.Store {
	return &pgStore{db: db, credits: credits}
}

func (s *pgStore) GetAnalysis(ctx context.Context, accountID, domainName string) (*analysis.Record, error) {
	dao := new(AnalyzedDomainDao)

	err := s.db.NewSelect().
		Model(dao).
		Where("account_id = ?", accountID).
		Where("domain_name = ?", domainName).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	return toRecord(dao)
}

// ChargeAndSave runs the debit and the cache upsert in one transaction, so
// an insufficient balance rolls back the cache write and a failed write
// refunds the debit.
func (s *pgStore) ChargeAndSave(ctx context.Context, rec *analysis.Record, cost int64, description string, metadata map[string]any) error {
	dao, err := toAnalyzedDomainDao(rec)
	if err != nil {
		return err
	}

	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := s.credits.UseCreditsTx(ctx, tx, rec.AccountID, cost, description, metadata); err != nil {
			return err
		}

		_, err := tx.NewInsert().
			Model(dao).
			On("CONFLICT (account_id, domain_name) DO UPDATE").
			Set("price = EXCLUDED.price").
			Set("analysis_data = EXCLUDED.analysis_data").
			Set("updated_at = current_timestamp").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		return nil
	})
}

func (s *pgStore) RecordHistory(ctx context.Context, entry *analysis.HistoryEntry) error {
	dao := &HistoryDao{
		ID:         uuid.NewString(),
		AccountID:  entry.AccountID,
		DomainName: entry.DomainName,
	}
	if entry.Price != "" {
		dao.Price = &entry.Price
	}

	if _, err := s.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

func (s *pgStore) ListHistory(ctx context.Context, accountID string, limit int) ([]*analysis.HistoryEntry, error) {
	var daos []HistoryDao

	query := s.db.NewSelect().
		Model(&daos).
		Where("account_id = ?", accountID).
		Order("analyzed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*analysis.HistoryEntry, 0, len(daos))
	for i := range daos {
		entries = append(entries, toHistoryEntry(&daos[i]))
	}
	return entries, nil
}
