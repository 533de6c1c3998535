package service

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mainalysis/domain-analyzer/pkg/analysis"
	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
	apphttp "github.com/mainalysis/domain-analyzer/pkg/app/http"
	"github.com/mainalysis/domain-analyzer/pkg/auth"
	"github.com/mainalysis/domain-analyzer/pkg/valuation"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the analysis service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/analyze-domain", apphttp.HandleError(h.analyzeDomain))
	r.Get("/history", apphttp.HandleError(h.listHistory))
}

type analyzeResponse struct {
	Success bool                    `json:"success"`
	Cached  bool                    `json:"cached"`
	Data    *valuation.AnalysisData `json:"data"`
	Price   string                  `json:"price,omitzero"`
}

type historyResponse struct {
	ID         string    `json:"id"`
	DomainName string    `json:"domainName"`
	Price      string    `json:"price,omitzero"`
	AnalyzedAt time.Time `json:"analyzedAt"`
}

func (h *HTTP) analyzeDomain(w http.ResponseWriter, r *http.Request) error {
	var req analysis.Request
	if err := apphttp.DecodeValid(r, &req); err != nil {
		return err
	}

	result, err := h.service.Analyze(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, analyzeResponse{
		Success: true,
		Cached:  result.Cached,
		Data:    result.Data,
		Price:   result.Price,
	})
	return nil
}

func (h *HTTP) listHistory(w http.ResponseWriter, r *http.Request) error {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		return apperrors.BadRequestError(nil, "accountId is required")
	}
	if !auth.ValidateAddress(accountID) {
		return apperrors.BadRequestError(nil, "invalid accountId")
	}

	limit, err := formatLimit(r.URL.Query().Get("limit"))
	if err != nil {
		return apperrors.BadRequestError(err, "invalid limit")
	}

	entries, err := h.service.ListHistory(r.Context(), accountID, limit)
	if err != nil {
		return err
	}

	resp := make([]historyResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, historyResponse{
			ID:         entry.ID,
			DomainName: entry.DomainName,
			Price:      entry.Price,
			AnalyzedAt: entry.AnalyzedAt,
		})
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
