package service

import (
	"context"

	"github.com/mainalysis/domain-analyzer/pkg/analysis"
	"github.com/mainalysis/domain-analyzer/pkg/analysis/store"
	"github.com/mainalysis/domain-analyzer/pkg/valuation"
)

// MockStore is a mock implementation of store.Store
type MockStore struct {
	GetAnalysisFunc   func(ctx context.Context, accountID, domainName string) (*analysis.Record, error)
	ChargeAndSaveFunc func(ctx context.Context, rec *analysis.Record, cost int64, description string, metadata map[string]any) error
	RecordHistoryFunc func(ctx context.Context, entry *analysis.HistoryEntry) error
	ListHistoryFunc   func(ctx context.Context, accountID string, limit int) ([]*analysis.HistoryEntry, error)
}

func (m *MockStore) GetAnalysis(ctx context.Context, accountID, domainName string) (*analysis.Record, error) {
	if m.GetAnalysisFunc != nil {
		return m.GetAnalysisFunc(ctx, accountID, domainName)
	}
	return nil, store.ErrAnalysisNotFound
}

func (m *MockStore) ChargeAndSave(
	ctx context.Context,
	rec *analysis.Record,
	cost int64,
	description string,
	metadata map[string]any,
) error {
	if m.ChargeAndSaveFunc != nil {
		return m.ChargeAndSaveFunc(ctx, rec, cost, description, metadata)
	}
	return nil
}

func (m *MockStore) RecordHistory(ctx context.Context, entry *analysis.HistoryEntry) error {
	if m.RecordHistoryFunc != nil {
		return m.RecordHistoryFunc(ctx, entry)
	}
	return nil
}

func (m *MockStore) ListHistory(ctx context.Context, accountID string, limit int) ([]*analysis.HistoryEntry, error) {
	if m.ListHistoryFunc != nil {
		return m.ListHistoryFunc(ctx, accountID, limit)
	}
	return nil, nil
}

// MockProvider is a mock implementation of valuation.Provider
type MockProvider struct {
	AnalyzeFunc func(ctx context.Context, domainName string, estimatePrice bool) (*valuation.AnalysisData, error)
}

func (m *MockProvider) Analyze(ctx context.Context, domainName string, estimatePrice bool) (*valuation.AnalysisData, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, domainName, estimatePrice)
	}
	return &valuation.AnalysisData{}, nil
}
