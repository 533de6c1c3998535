package pg

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/mainalysis/domain-analyzer/pkg/featured"
)

const dateLayout = "2006-01-02"

// FeaturedDomainDao is a data access object that maps directly to the 'domain_of_the_day' table in PostgreSQL.
type FeaturedDomainDao struct {
	bun.BaseModel   `bun:"table:domain_of_the_day,alias:fd"`
	ID              string    `bun:"id,pk,type:uuid"`
	DomainName      string    `bun:"domain_name,notnull,type:varchar(255)"`
	Description     string    `bun:"description,notnull,default:''"`
	Valuation       float64   `bun:"valuation,notnull,default:0"`
	MarketScore     float64   `bun:"market_score,notnull,default:0"`
	SEOValue        string    `bun:"seo_value,notnull,default:''"`
	GrowthPotential string    `bun:"growth_potential,notnull,default:''"`
	Tags            []string  `bun:"tags,array,type:text[]"`
	FeaturedDate    time.Time `bun:"featured_date,notnull,type:date"`
	CreatedBy       string    `bun:"created_by,notnull,type:varchar(255)"`
	CreatedAt       time.Time `bun:"created_at,nullzero,default:current_timestamp"`
	UpdatedAt       time.Time `bun:"updated_at,nullzero,default:current_timestamp"`
}

// toFeaturedDomainDao converts a featured.Domain to FeaturedDomainDao.
// FeaturedDate is expected in YYYY-MM-DD form, validated by the service.
func toFeaturedDomainDao(dom *featured.Domain) (*FeaturedDomainDao, error) {
	featuredDate, err := time.Parse(dateLayout, dom.FeaturedDate)
	if err != nil {
		return nil, err
	}

	return &FeaturedDomainDao{
		ID:              dom.ID,
		DomainName:      dom.DomainName,
		Description:     dom.Description,
		Valuation:       dom.Valuation,
		MarketScore:     dom.MarketScore,
		SEOValue:        dom.SEOValue,
		GrowthPotential: dom.GrowthPotential,
		Tags:            dom.Tags,
		FeaturedDate:    featuredDate,
		CreatedBy:       dom.CreatedBy,
	}, nil
}

// toDomain converts a FeaturedDomainDao to featured.Domain.
func toDomain(dao *FeaturedDomainDao) *featured.Domain {
	return &featured.Domain{
		ID:              dao.ID,
		DomainName:      dao.DomainName,
		Description:     dao.Description,
		Valuation:       dao.Valuation,
		MarketScore:     dao.MarketScore,
		SEOValue:        dao.SEOValue,
		GrowthPotential: dao.GrowthPotential,
		Tags:            dao.Tags,
		FeaturedDate:    dao.FeaturedDate.Format(dateLayout),
		CreatedBy:       dao.CreatedBy,
		CreatedAt:       dao.CreatedAt,
		UpdatedAt:       dao.UpdatedAt,
	}
}
