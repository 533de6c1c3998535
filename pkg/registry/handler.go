package registry

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
	apphttp "github.com/mainalysis/domain-analyzer/pkg/app/http"
	"github.com/mainalysis/domain-analyzer/pkg/auth"
)

const (
	defaultListingsTake = 20
	maxTake             = 100
)

// Handler proxies registry queries over HTTP.
type Handler struct {
	registry Registry
	logger   *zap.Logger
}

// NewHandler creates a registry proxy handler.
func NewHandler(registry Registry, logger *zap.Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// RegisterRoutes registers the registry proxy endpoints on the given chi router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/registry/listings", apphttp.HandleError(h.listings))
	r.Get("/registry/fractional-tokens", apphttp.HandleError(h.fractionalTokens))
	r.Get("/registry/wallet-domains", apphttp.HandleError(h.walletDomains))
	r.Get("/registry/listed", apphttp.HandleError(h.listed))
}

func (h *Handler) listings(w http.ResponseWriter, r *http.Request) error {
	params := ListingsParams{Take: defaultListingsTake}

	q := r.URL.Query()
	var err error
	if params.Take, err = intParam(q.Get("take"), defaultListingsTake); err != nil {
		return apperrors.BadRequestError(err, "invalid take")
	}
	if params.Skip, err = intParam(q.Get("skip"), 0); err != nil {
		return apperrors.BadRequestError(err, "invalid skip")
	}
	if tlds := q.Get("tlds"); tlds != "" {
		params.TLDs = strings.Split(tlds, ",")
	}
	params.SLD = q.Get("sld")

	page, err := h.registry.Listings(r.Context(), params)
	if err != nil {
		return apperrors.DependencyError(err, "failed to fetch listings")
	}

	apphttp.WriteJSON(w, http.StatusOK, page)
	return nil
}

func (h *Handler) fractionalTokens(w http.ResponseWriter, r *http.Request) error {
	take, err := intParam(r.URL.Query().Get("take"), defaultListingsTake)
	if err != nil {
		return apperrors.BadRequestError(err, "invalid take")
	}

	tokens, err := h.registry.FractionalTokens(r.Context(), take)
	if err != nil {
		return apperrors.DependencyError(err, "failed to fetch fractional tokens")
	}

	apphttp.WriteJSON(w, http.StatusOK, tokens)
	return nil
}

func (h *Handler) walletDomains(w http.ResponseWriter, r *http.Request) error {
	address := r.URL.Query().Get("address")
	if address == "" {
		return apperrors.BadRequestError(nil, "address is required")
	}
	if !auth.ValidateAddress(address) {
		return apperrors.BadRequestError(nil, "invalid address")
	}

	domains, err := h.registry.NamesOwnedBy(r.Context(), auth.NormalizeAddress(address))
	if err != nil {
		return apperrors.DependencyError(err, "failed to fetch wallet domains")
	}

	apphttp.WriteJSON(w, http.StatusOK, domains)
	return nil
}

func (h *Handler) listed(w http.ResponseWriter, r *http.Request) error {
	sld := r.URL.Query().Get("sld")
	if sld == "" {
		return apperrors.BadRequestError(nil, "sld is required")
	}
	tld := r.URL.Query().Get("tld")
	if tld == "" {
		tld = "com"
	}

	listed, err := h.registry.CheckListed(r.Context(), sld, tld)
	if err != nil {
		return apperrors.DependencyError(err, "failed to check listing")
	}

	apphttp.WriteJSON(w, http.StatusOK, map[string]bool{"listed": listed})
	return nil
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || v > maxTake {
		return 0, strconv.ErrRange
	}
	return v, nil
}
