package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
	"github.com/mainalysis/domain-analyzer/pkg/featured"
	"github.com/mainalysis/domain-analyzer/pkg/featured/store"
)

const dateLayout = "2006-01-02"

var (
	ErrDomainNameRequired   = errors.New("domain_name is required")
	ErrFeaturedDateRequired = errors.New("featured_date is required")
)

// Service defines the interface for the featured domain business logic
type Service interface {
	// Get returns the entry for a YYYY-MM-DD date, or the latest entry when
	// date is empty.
	Get(ctx context.Context, date string) (*featured.Domain, error)
	Create(ctx context.Context, createdBy string, payload *featured.Payload) (*featured.Domain, error)
	Update(ctx context.Context, id, createdBy string, payload *featured.Payload) (*featured.Domain, error)
	Delete(ctx context.Context, id, createdBy string) error
}

type featuredService struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a new featured domain service
func NewService(store store.Store, logger *zap.Logger) Service {
	return &featuredService{
		store:  store,
		logger: logger,
	}
}

func (s *featuredService) Get(ctx context.Context, date string) (*featured.Domain, error) {
	var (
		dom *featured.Domain
		err error
	)

	if date == "" {
		dom, err = s.store.GetLatest(ctx)
	} else {
		if _, perr := time.Parse(dateLayout, date); perr != nil {
			return nil, apperrors.BadRequestError(perr, "date must be YYYY-MM-DD")
		}
		dom, err = s.store.GetByDate(ctx, date)
	}

	if err != nil {
		if errors.Is(err, store.ErrDomainNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "no featured domain found")
		}
		return nil, fmt.Errorf("failed to get featured domain: %w", err)
	}
	return dom, nil
}

func (s *featuredService) Create(ctx context.Context, createdBy string, payload *featured.Payload) (*featured.Domain, error) {
	if payload.DomainName == "" {
		return nil, apperrors.BadRequestError(ErrDomainNameRequired, "domain_name is required")
	}
	if payload.FeaturedDate == "" {
		return nil, apperrors.BadRequestError(ErrFeaturedDateRequired, "featured_date is required")
	}
	if _, err := time.Parse(dateLayout, payload.FeaturedDate); err != nil {
		return nil, apperrors.BadRequestError(err, "featured_date must be YYYY-MM-DD")
	}

	dom := &featured.Domain{
		ID:           uuid.NewString(),
		DomainName:   payload.DomainName,
		FeaturedDate: payload.FeaturedDate,
		CreatedBy:    createdBy,
		Tags:         payload.Tags,
	}
	if payload.Description != nil {
		dom.Description = *payload.Description
	}
	if payload.Valuation != nil {
		dom.Valuation = *payload.Valuation
	}
	if payload.MarketScore != nil {
		dom.MarketScore = *payload.MarketScore
	}
	if payload.SEOValue != nil {
		dom.SEOValue = *payload.SEOValue
	}
	if payload.GrowthPotential != nil {
		dom.GrowthPotential = *payload.GrowthPotential
	}
	if dom.Tags == nil {
		dom.Tags = []string{}
	}

	if err := s.store.Create(ctx, dom); err != nil {
		return nil, fmt.Errorf("failed to create featured domain: %w", err)
	}

	s.logger.Info("featured domain created",
		zap.String("id", dom.ID),
		zap.String("domain_name", dom.DomainName),
		zap.String("featured_date", dom.FeaturedDate),
		zap.String("created_by", createdBy))

	return dom, nil
}

func (s *featuredService) Update(ctx context.Context, id, createdBy string, payload *featured.Payload) (*featured.Domain, error) {
	if id == "" {
		return nil, apperrors.BadRequestError(nil, "id parameter required for updates")
	}
	if payload.FeaturedDate != "" {
		if _, err := time.Parse(dateLayout, payload.FeaturedDate); err != nil {
			return nil, apperrors.BadRequestError(err, "featured_date must be YYYY-MM-DD")
		}
	}

	dom, err := s.store.Update(ctx, id, createdBy, payload)
	if err != nil {
		if errors.Is(err, store.ErrDomainNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "featured domain not found")
		}
		return nil, fmt.Errorf("failed to update featured domain: %w", err)
	}
	return dom, nil
}

func (s *featuredService) Delete(ctx context.Context, id, createdBy string) error {
	if id == "" {
		return apperrors.BadRequestError(nil, "id parameter required for deletion")
	}

	if err := s.store.Delete(ctx, id, createdBy); err != nil {
		if errors.Is(err, store.ErrDomainNotFound) {
			return apperrors.ResourceNotFoundError(err, "featured domain not found")
		}
		return fmt.Errorf("failed to delete featured domain: %w", err)
	}

	s.logger.Info("featured domain deleted",
		zap.String("id", id),
		zap.String("created_by", createdBy))
	return nil
}
