package store

import (
	"context"
	"errors"

	"github.com/mainalysis/domain-analyzer/pkg/analysis"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// Store defines the interface for analysis cache and history persistence
type Store interface {
	// GetAnalysis returns the cached analysis for (accountID, domainName),
	// or ErrAnalysisNotFound.
	GetAnalysis(ctx context.Context, accountID, domainName string) (*analysis.Record, error)

	// ChargeAndSave debits cost credits from the account's ledger and
	// upserts the analysis record, both inside one database transaction.
	// A failed debit (credit.ErrInsufficientCredits) leaves no trace of the
	// record.
	ChargeAndSave(ctx context.Context, rec *analysis.Record, cost int64, description string, metadata map[string]any) error

	// RecordHistory appends a lookup-log entry.
	RecordHistory(ctx context.Context, entry *analysis.HistoryEntry) error

	// ListHistory returns lookup-log entries for an account, newest first.
	ListHistory(ctx context.Context, accountID string, limit int) ([]*analysis.HistoryEntry, error)
}
