package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
	apphttp "github.com/mainalysis/domain-analyzer/pkg/app/http"
	"github.com/mainalysis/domain-analyzer/pkg/auth"
	"github.com/mainalysis/domain-analyzer/pkg/featured"
)

// HTTP wraps the Service to provide HTTP endpoints. All methods require a
// valid bearer token; writes are additionally scoped to the token subject.
type HTTP struct {
	service  Service
	verifier *auth.TokenVerifier
	logger   *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the featured domain service on the given chi router
func RegisterRoutes(r chi.Router, service Service, verifier *auth.TokenVerifier, logger *zap.Logger) {
	h := &HTTP{
		service:  service,
		verifier: verifier,
		logger:   logger,
	}

	r.Get("/domain-of-the-day", apphttp.HandleError(h.get))
	r.Post("/domain-of-the-day", apphttp.HandleError(h.create))
	r.Put("/domain-of-the-day", apphttp.HandleError(h.update))
	r.Delete("/domain-of-the-day", apphttp.HandleError(h.delete))
}

type dataResponse struct {
	Data *featured.Domain `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *HTTP) subject(r *http.Request) (string, error) {
	subject, err := h.verifier.SubjectFromRequest(r)
	if err != nil {
		return "", apperrors.UnAuthorizedError(err, "invalid or expired token")
	}
	return subject, nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	if _, err := h.subject(r); err != nil {
		return err
	}

	dom, err := h.service.Get(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, dataResponse{Data: dom})
	return nil
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	subject, err := h.subject(r)
	if err != nil {
		return err
	}

	payload, err := decodePayload(r)
	if err != nil {
		return err
	}

	dom, err := h.service.Create(r.Context(), subject, payload)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, dataResponse{Data: dom})
	return nil
}

func (h *HTTP) update(w http.ResponseWriter, r *http.Request) error {
	subject, err := h.subject(r)
	if err != nil {
		return err
	}

	payload, err := decodePayload(r)
	if err != nil {
		return err
	}

	dom, err := h.service.Update(r.Context(), r.URL.Query().Get("id"), subject, payload)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, dataResponse{Data: dom})
	return nil
}

func (h *HTTP) delete(w http.ResponseWriter, r *http.Request) error {
	subject, err := h.subject(r)
	if err != nil {
		return err
	}

	if err := h.service.Delete(r.Context(), r.URL.Query().Get("id"), subject); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, messageResponse{Message: "Domain of the day deleted successfully"})
	return nil
}

func decodePayload(r *http.Request) (*featured.Payload, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return nil, apperrors.BadRequestError(err, "failed to read request")
	}

	var payload featured.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid JSON")
	}
	return &payload, nil
}
