// Package featured manages the curated domain-of-the-day entries shown on
// the landing page. All writes require an authenticated editor and are
// scoped to the entry's creator.
package featured

import "time"

// Domain is a curated domain highlighted for a particular date. JSON names
// follow the payload shape the frontend consumes.
type Domain struct {
	ID              string    `json:"id"`
	DomainName      string    `json:"domain_name"`
	Description     string    `json:"description"`
	Valuation       float64   `json:"valuation"`
	MarketScore     float64   `json:"market_score"`
	SEOValue        string    `json:"seo_value"`
	GrowthPotential string    `json:"growth_potential"`
	Tags            []string  `json:"tags"`
	FeaturedDate    string    `json:"featured_date"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Payload is the editor-supplied body for create and update calls. Pointer
// fields distinguish "leave unchanged" from "set to zero value" on updates.
type Payload struct {
	DomainName      string   `json:"domain_name,omitzero"`
	Description     *string  `json:"description,omitzero"`
	Valuation       *float64 `json:"valuation,omitzero"`
	MarketScore     *float64 `json:"market_score,omitzero"`
	SEOValue        *string  `json:"seo_value,omitzero"`
	GrowthPotential *string  `json:"growth_potential,omitzero"`
	Tags            []string `json:"tags,omitzero"`
	FeaturedDate    string   `json:"featured_date,omitzero"`
}
