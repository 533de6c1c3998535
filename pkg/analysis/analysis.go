// Package analysis holds the domain model for paid domain analyses.
//
// An analysis is produced at most once per (account, domain) pair: repeat
// requests are served from the analyzed_domains cache free of charge, and an
// uncached request debits the account's credit ledger in the same database
// transaction that persists the result.
package analysis

import (
	"time"

	"github.com/mainalysis/domain-analyzer/pkg/valuation"
)

// Sources a paid analysis can originate from. The source determines the
// credit cost.
const (
	SourceNewAnalysis   = "new_analysis"
	SourceSearchListed  = "search_listed"
	SourceFractionalize = "fractionalize"
)

// Request asks for an analysis of DomainName on behalf of AccountID.
// Price is an optional known listing price in wei; when empty the valuation
// provider is asked to estimate one.
type Request struct {
	DomainName string `json:"domainName" validate:"required,hostname_rfc1123"`
	Price      string `json:"price,omitzero"`
	AccountID  string `json:"accountId" validate:"required,eth_addr"`
	Source     string `json:"source,omitzero"`
}

// Result is the outcome of an analysis request.
type Result struct {
	Data   *valuation.AnalysisData
	Price  string
	Cached bool
}

// Record is a cached analysis for one (account, domain) pair.
type Record struct {
	AccountID  string
	DomainName string
	Price      string
	Data       *valuation.AnalysisData
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HistoryEntry is one row of the append-only per-account lookup log.
type HistoryEntry struct {
	ID         string
	AccountID  string
	DomainName string
	Price      string
	AnalyzedAt time.Time
}
