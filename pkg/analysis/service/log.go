package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mainalysis/domain-analyzer/pkg/analysis"
)

const serviceName = "AnalysisService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the analysis Service.
// It logs method entry/exit, duration, cache outcomes and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Analyze wraps the service method with logging
func (ls *logService) Analyze(ctx context.Context, req *analysis.Request) (result *analysis.Result, err error) {
	start := time.Now()

	ls.logger.Info("Analyze started",
		zap.String("service", serviceName),
		zap.String("method", "Analyze"),
		zap.String("domain_name", req.DomainName),
		zap.String("account_id", req.AccountID),
		zap.String("source", req.Source),
		zap.Bool("has_price", req.Price != ""),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Analyze failed",
				zap.String("service", serviceName),
				zap.String("method", "Analyze"),
				zap.String("domain_name", req.DomainName),
				zap.String("account_id", req.AccountID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Analyze completed",
				zap.String("service", serviceName),
				zap.String("method", "Analyze"),
				zap.String("domain_name", req.DomainName),
				zap.String("account_id", req.AccountID),
				zap.Bool("cached", result.Cached),
				zap.String("price", result.Price),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Analyze(ctx, req)
}

// ListHistory wraps the service method with logging
func (ls *logService) ListHistory(ctx context.Context, accountID string, limit int) (entries []*analysis.HistoryEntry, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("ListHistory failed",
				zap.String("service", serviceName),
				zap.String("method", "ListHistory"),
				zap.String("account_id", accountID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("ListHistory completed",
				zap.String("service", serviceName),
				zap.String("method", "ListHistory"),
				zap.String("account_id", accountID),
				zap.Int("entries", len(entries)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.ListHistory(ctx, accountID, limit)
}
