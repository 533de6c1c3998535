package pg

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/mainalysis/domain-analyzer/pkg/analysis"
	"github.com/mainalysis/domain-analyzer/pkg/valuation"
)

// AnalyzedDomainDao is a data access object that maps directly to the 'analyzed_domains' table in PostgreSQL.
// The (account_id, domain_name) pair is covered by a composite unique index,
// so the table holds exactly one row per pair.
type AnalyzedDomainDao struct {
	bun.BaseModel `bun:"table:analyzed_domains,alias:ad"`
	ID            int64           `bun:"id,pk,autoincrement"`
	AccountID     string          `bun:"account_id,notnull,type:varchar(42)"`
	DomainName    string          `bun:"domain_name,notnull,type:varchar(255)"`
	Price         *string         `bun:"price,type:numeric(78,0)"`
	AnalysisData  json.RawMessage `bun:"analysis_data,notnull,type:jsonb"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,default:current_timestamp"`
	UpdatedAt     time.Time       `bun:"updated_at,nullzero,default:current_timestamp"`
}

// HistoryDao is a data access object that maps directly to the 'domain_history' table in PostgreSQL.
type HistoryDao struct {
	bun.BaseModel `bun:"table:domain_history,alias:dh"`
	ID            string    `bun:"id,pk,type:uuid"`
	AccountID     string    `bun:"account_id,notnull,type:varchar(42)"`
	DomainName    string    `bun:"domain_name,notnull,type:varchar(255)"`
	Price         *string   `bun:"price,type:numeric(78,0)"`
	AnalyzedAt    time.Time `bun:"analyzed_at,nullzero,default:current_timestamp"`
}

// toAnalyzedDomainDao converts an analysis.Record to AnalyzedDomainDao.
func toAnalyzedDomainDao(rec *analysis.Record) (*AnalyzedDomainDao, error) {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis data: %w", err)
	}

	dao := &AnalyzedDomainDao{
		AccountID:    rec.AccountID,
		DomainName:   rec.DomainName,
		AnalysisData: data,
	}
	if rec.Price != "" {
		dao.Price = &rec.Price
	}
	return dao, nil
}

// toRecord converts an AnalyzedDomainDao to analysis.Record.
func toRecord(dao *AnalyzedDomainDao) (*analysis.Record, error) {
	data := new(valuation.AnalysisData)
	if err := json.Unmarshal(dao.AnalysisData, data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis data: %w", err)
	}

	rec := &analysis.Record{
		AccountID:  dao.AccountID,
		DomainName: dao.DomainName,
		Data:       data,
		CreatedAt:  dao.CreatedAt,
		UpdatedAt:  dao.UpdatedAt,
	}
	if dao.Price != nil {
		rec.Price = *dao.Price
	}
	return rec, nil
}

// toHistoryEntry converts a HistoryDao to analysis.HistoryEntry.
func toHistoryEntry(dao *HistoryDao) *analysis.HistoryEntry {
	entry := &analysis.HistoryEntry{
		ID:         dao.ID,
		AccountID:  dao.AccountID,
		DomainName: dao.DomainName,
		AnalyzedAt: dao.AnalyzedAt,
	}
	if dao.Price != nil {
		entry.Price = *dao.Price
	}
	return entry
}
