package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/mainalysis/domain-analyzer/internal/metrics"
	"github.com/mainalysis/domain-analyzer/pkg/analysis"
	"github.com/mainalysis/domain-analyzer/pkg/analysis/store"
	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
	"github.com/mainalysis/domain-analyzer/pkg/auth"
	"github.com/mainalysis/domain-analyzer/pkg/credit"
	"github.com/mainalysis/domain-analyzer/pkg/valuation"
)

const (
	defaultHistoryLimit = 50

	// historyDedupWindow suppresses duplicate lookup-log rows for the same
	// (account, domain) pair fired in quick succession.
	historyDedupWindow = 5 * time.Second
)

var (
	ErrDomainNameRequired = errors.New("domainName is required")
	ErrAccountIDRequired  = errors.New("accountId is required")
)

// sourceCost maps an analysis source to its credit cost and ledger
// description.
type sourceCost struct {
	credits     int64
	description string
}

var sourceCosts = map[string]sourceCost{
	analysis.SourceSearchListed:  {credits: 1, description: "Search Listed Domain"},
	analysis.SourceFractionalize: {credits: 3, description: "Fractionalize Domain"},
	analysis.SourceNewAnalysis:   {credits: 3, description: "New Analysis"},
}

// Service defines the interface for the analysis business logic
type Service interface {
	Analyze(ctx context.Context, req *analysis.Request) (*analysis.Result, error)
	ListHistory(ctx context.Context, accountID string, limit int) ([]*analysis.HistoryEntry, error)
}

type analysisService struct {
	store    store.Store
	provider valuation.Provider
	logger   *zap.Logger

	// group collapses concurrent requests for the same (account, domain)
	// pair into one execution, so a double-submitted analysis is charged
	// once.
	group singleflight.Group

	mu          sync.Mutex
	lastHistory map[string]time.Time
}

// NewService creates a new analysis service
func NewService(store store.Store, provider valuation.Provider, logger *zap.Logger) Service {
	return &analysisService{
		store:       store,
		provider:    provider,
		logger:      logger,
		lastHistory: make(map[string]time.Time),
	}
}

// Analyze returns the analysis for (account, domain), serving repeats from
// the cache for free and charging the credit ledger for fresh runs.
func (s *analysisService) Analyze(ctx context.Context, req *analysis.Request) (*analysis.Result, error) {
	if req.DomainName == "" {
		return nil, apperrors.BadRequestError(ErrDomainNameRequired, "domainName is required")
	}
	if req.AccountID == "" {
		return nil, apperrors.BadRequestError(ErrAccountIDRequired, "accountId is required")
	}
	if !auth.ValidateAddress(req.AccountID) {
		return nil, apperrors.BadRequestError(nil, "invalid accountId")
	}

	accountID := auth.NormalizeAddress(req.AccountID)
	key := accountID + "|" + req.DomainName

	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.analyze(ctx, accountID, req)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("analysis request coalesced",
			zap.String("account_id", accountID),
			zap.String("domain_name", req.DomainName))
	}

	return v.(*analysis.Result), nil
}

func (s *analysisService) analyze(ctx context.Context, accountID string, req *analysis.Request) (*analysis.Result, error) {
	source := req.Source
	if source == "" {
		source = analysis.SourceNewAnalysis
	}
	cost, ok := sourceCosts[source]
	if !ok {
		cost = sourceCosts[analysis.SourceNewAnalysis]
	}

	cached, err := s.store.GetAnalysis(ctx, accountID, req.DomainName)
	if err != nil && !errors.Is(err, store.ErrAnalysisNotFound) {
		return nil, fmt.Errorf("failed to check analysis cache: %w", err)
	}
	if cached != nil {
		metrics.AnalysesTotal.WithLabelValues(source, "true").Inc()
		s.recordHistory(ctx, accountID, req.DomainName, cached.Price)
		return &analysis.Result{Data: cached.Data, Price: cached.Price, Cached: true}, nil
	}

	data, err := s.provider.Analyze(ctx, req.DomainName, req.Price == "")
	if err != nil {
		return nil, apperrors.DependencyError(err, "domain valuation failed")
	}

	finalPrice := req.Price
	if data.EstimatedPrice > 0 {
		finalPrice = ethToWei(data.EstimatedPrice)
	}

	rec := &analysis.Record{
		AccountID:  accountID,
		DomainName: req.DomainName,
		Price:      finalPrice,
		Data:       data,
	}
	err = s.store.ChargeAndSave(ctx, rec, cost.credits,
		fmt.Sprintf("%s - %s", cost.description, req.DomainName),
		map[string]any{
			"domain_name":  req.DomainName,
			"source":       source,
			"credits_used": cost.credits,
			"cached":       false,
		})
	if err != nil {
		if errors.Is(err, credit.ErrInsufficientCredits) {
			metrics.InsufficientCreditsTotal.Inc()
			return nil, apperrors.BadRequestError(err, "insufficient credits")
		}
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	metrics.AnalysesTotal.WithLabelValues(source, "false").Inc()
	metrics.CreditsUsedTotal.Add(float64(cost.credits))

	s.recordHistory(ctx, accountID, req.DomainName, finalPrice)

	return &analysis.Result{Data: data, Price: finalPrice, Cached: false}, nil
}

// recordHistory appends a lookup-log row unless the same pair was logged
// within the dedup window. Failures are logged and swallowed: history is a
// convenience log, not part of the paid flow.
func (s *analysisService) recordHistory(ctx context.Context, accountID, domainName, price string) {
	key := accountID + "|" + domainName

	s.mu.Lock()
	if last, ok := s.lastHistory[key]; ok && time.Since(last) < historyDedupWindow {
		s.mu.Unlock()
		return
	}
	s.lastHistory[key] = time.Now()
	s.mu.Unlock()

	err := s.store.RecordHistory(ctx, &analysis.HistoryEntry{
		AccountID:  accountID,
		DomainName: domainName,
		Price:      price,
	})
	if err != nil {
		s.logger.Warn("failed to record domain history",
			zap.String("account_id", accountID),
			zap.String("domain_name", domainName),
			zap.Error(err))
	}
}

// ListHistory returns the lookup log for an account, newest first.
func (s *analysisService) ListHistory(ctx context.Context, accountID string, limit int) ([]*analysis.HistoryEntry, error) {
	if !auth.ValidateAddress(accountID) {
		return nil, apperrors.BadRequestError(nil, "invalid accountId")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.store.ListHistory(ctx, auth.NormalizeAddress(accountID), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

// ethToWei converts an ETH amount to an integral wei string, truncating
// toward zero.
func ethToWei(eth float64) string {
	wei := new(big.Float).Mul(big.NewFloat(eth), big.NewFloat(1e18))
	i, _ := wei.Int(nil)
	return i.String()
}

// formatLimit is used by the HTTP layer to parse limit query params.
func formatLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return limit, nil
}
