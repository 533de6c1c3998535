package service

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mainalysis/domain-analyzer/pkg/account"
	apphttp "github.com/mainalysis/domain-analyzer/pkg/app/http"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the account service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/accounts/connect", apphttp.HandleError(h.connect))
	r.Get("/accounts/{address}", apphttp.HandleError(h.getAccount))
}

type accountResponse struct {
	ID            string     `json:"id"`
	WalletAddress string     `json:"walletAddress"`
	DisplayName   string     `json:"displayName,omitzero"`
	Email         string     `json:"email,omitzero"`
	AvatarURL     string     `json:"avatarUrl,omitzero"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLogin     *time.Time `json:"lastLogin,omitzero"`
}

func (h *HTTP) connect(w http.ResponseWriter, r *http.Request) error {
	var req account.ConnectRequest
	if err := apphttp.DecodeValid(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Connect(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getAccount(w http.ResponseWriter, r *http.Request) error {
	address := chi.URLParam(r, "address")

	acc, err := h.service.GetAccount(r.Context(), address)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, accountResponse{
		ID:            acc.ID,
		WalletAddress: acc.WalletAddress,
		DisplayName:   acc.DisplayName,
		Email:         acc.Email,
		AvatarURL:     acc.AvatarURL,
		CreatedAt:     acc.CreatedAt,
		LastLogin:     acc.LastLogin,
	})
	return nil
}
