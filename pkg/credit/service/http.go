package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
	apphttp "github.com/mainalysis/domain-analyzer/pkg/app/http"
	"github.com/mainalysis/domain-analyzer/pkg/auth"
	"github.com/mainalysis/domain-analyzer/pkg/credit"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the credit service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/credits/balance", apphttp.HandleError(h.getBalance))
	r.Get("/credits/transactions", apphttp.HandleError(h.listTransactions))
	r.Get("/credits/packages", apphttp.HandleError(h.listPackages))
}

type balanceResponse struct {
	AccountID      string `json:"accountId"`
	Balance        int64  `json:"balance"`
	TotalPurchased int64  `json:"totalPurchased"`
	TotalUsed      int64  `json:"totalUsed"`
}

type transactionResponse struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Amount       int64          `json:"amount"`
	BalanceAfter int64          `json:"balanceAfter"`
	Description  string         `json:"description,omitzero"`
	Metadata     map[string]any `json:"metadata,omitzero"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type packageResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Credits    int64    `json:"credits"`
	BasePrice  string   `json:"basePrice"`
	FinalPrice string   `json:"finalPrice"`
	Features   []string `json:"features"`
	IsPopular  bool     `json:"isPopular"`
}

func accountIDParam(r *http.Request) (string, error) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		return "", apperrors.BadRequestError(nil, "accountId is required")
	}
	if !auth.ValidateAddress(accountID) {
		return "", apperrors.BadRequestError(nil, "invalid accountId")
	}
	return accountID, nil
}

func (h *HTTP) getBalance(w http.ResponseWriter, r *http.Request) error {
	accountID, err := accountIDParam(r)
	if err != nil {
		return err
	}

	balance, err := h.service.GetBalance(r.Context(), accountID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, balanceResponse{
		AccountID:      balance.AccountID,
		Balance:        balance.Balance,
		TotalPurchased: balance.TotalPurchased,
		TotalUsed:      balance.TotalUsed,
	})
	return nil
}

func (h *HTTP) listTransactions(w http.ResponseWriter, r *http.Request) error {
	accountID, err := accountIDParam(r)
	if err != nil {
		return err
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return apperrors.BadRequestError(err, "invalid limit")
		}
	}

	transactions, err := h.service.ListTransactions(r.Context(), accountID, limit)
	if err != nil {
		return err
	}

	resp := make([]transactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, transactionResponse{
			ID:           tx.ID,
			Type:         tx.Type,
			Amount:       tx.Amount,
			BalanceAfter: tx.BalanceAfter,
			Description:  tx.Description,
			Metadata:     tx.Metadata,
			CreatedAt:    tx.CreatedAt,
		})
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) listPackages(w http.ResponseWriter, r *http.Request) error {
	packages, err := h.service.ListPackages(r.Context())
	if err != nil {
		return err
	}

	resp := make([]packageResponse, 0, len(packages))
	for _, pkg := range packages {
		resp = append(resp, toPackageResponse(pkg))
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func toPackageResponse(pkg *credit.Package) packageResponse {
	return packageResponse{
		ID:         pkg.ID,
		Name:       pkg.Name,
		Credits:    pkg.Credits,
		BasePrice:  pkg.BasePrice.StringFixed(2),
		FinalPrice: pkg.FinalPrice.StringFixed(2),
		Features:   pkg.Features,
		IsPopular:  pkg.IsPopular,
	}
}
