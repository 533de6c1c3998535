package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/mainalysis/domain-analyzer/pkg/featured"
	"github.com/mainalysis/domain-analyzer/pkg/featured/store"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the featured domain store
func NewStore(db *bun.DB) store.Store {
	return &pgStore{db: db}
}

func (s *pgStore) GetLatest(ctx context.Context) (*featured.Domain, error) {
	dao := new(FeaturedDomainDao)

	err := s.db.NewSelect().
		Model(dao).
		Order("featured_date DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrDomainNotFound
		}
		return nil, fmt.Errorf("failed to get latest featured domain: %w", err)
	}

	return toDomain(dao), nil
}

func (s *pgStore) GetByDate(ctx context.Context, date string) (*featured.Domain, error) {
	dao := new(FeaturedDomainDao)

	err := s.db.NewSelect().
		Model(dao).
		Where("featured_date = ?", date).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrDomainNotFound
		}
		return nil, fmt.Errorf("failed to get featured domain by date: %w", err)
	}

	return toDomain(dao), nil
}

func (s *pgStore) Create(ctx context.Context, dom *featured.Domain) error {
	dao, err := toFeaturedDomainDao(dom)
	if err != nil {
		return fmt.Errorf("invalid featured date: %w", err)
	}

	if _, err := s.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create featured domain: %w", err)
	}

	dom.CreatedAt = dao.CreatedAt
	dom.UpdatedAt = dao.UpdatedAt
	return nil
}

func (s *pgStore) Update(ctx context.Context, id, createdBy string, payload *featured.Payload) (*featured.Domain, error) {
	query := s.db.NewUpdate().
		Model((*FeaturedDomainDao)(nil)).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Where("created_by = ?", createdBy)

	if payload.DomainName != "" {
		query = query.Set("domain_name = ?", payload.DomainName)
	}
	if payload.Description != nil {
		query = query.Set("description = ?", *payload.Description)
	}
	if payload.Valuation != nil {
		query = query.Set("valuation = ?", *payload.Valuation)
	}
	if payload.MarketScore != nil {
		query = query.Set("market_score = ?", *payload.MarketScore)
	}
	if payload.SEOValue != nil {
		query = query.Set("seo_value = ?", *payload.SEOValue)
	}
	if payload.GrowthPotential != nil {
		query = query.Set("growth_potential = ?", *payload.GrowthPotential)
	}
	if payload.Tags != nil {
		query = query.Set("tags = ?", pgdialect.Array(payload.Tags))
	}
	if payload.FeaturedDate != "" {
		query = query.Set("featured_date = ?", payload.FeaturedDate)
	}

	dao := new(FeaturedDomainDao)
	err := query.Returning("*").Scan(ctx, dao)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrDomainNotFound
		}
		return nil, fmt.Errorf("failed to update featured domain: %w", err)
	}

	return toDomain(dao), nil
}

func (s *pgStore) Delete(ctx context.Context, id, createdBy string) error {
	res, err := s.db.NewDelete().
		Model((*FeaturedDomainDao)(nil)).
		Where("id = ?", id).
		Where("created_by = ?", createdBy).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete featured domain: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return store.ErrDomainNotFound
	}
	return nil
}
