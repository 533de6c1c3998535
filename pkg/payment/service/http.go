package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/mainalysis/domain-analyzer/pkg/app/http"
	"github.com/mainalysis/domain-analyzer/pkg/payment"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the payment service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/paypal/orders", apphttp.HandleError(h.createOrder))
	r.Post("/paypal/orders/capture", apphttp.HandleError(h.captureOrder))
}

func (h *HTTP) createOrder(w http.ResponseWriter, r *http.Request) error {
	var req payment.CreateOrderRequest
	if err := apphttp.DecodeValid(r, &req); err != nil {
		return err
	}

	resp, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) captureOrder(w http.ResponseWriter, r *http.Request) error {
	var req payment.CaptureOrderRequest
	if err := apphttp.DecodeValid(r, &req); err != nil {
		return err
	}

	resp, err := h.service.CaptureOrder(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
