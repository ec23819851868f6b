package tax

import (
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type sizeLimit struct {
	revenue   decimal.Decimal
	assets    decimal.Decimal
	employees int
}

var (
	smallLimit = sizeLimit{
		revenue:   decimal.NewFromInt(25_000_000),
		assets:    decimal.NewFromInt(50_000_000),
		employees: 50,
	}
	mediumLimit = sizeLimit{
		revenue:   decimal.NewFromInt(500_000_000),
		assets:    decimal.NewFromInt(1_000_000_000),
		employees: 300,
	}
)

func (l sizeLimit) within(revenue, assets decimal.Decimal, employees int) bool {
	return revenue.LessThanOrEqual(l.revenue) &&
		assets.LessThanOrEqual(l.assets) &&
		employees <= l.employees
}

// ClassifyCompanySize applies the Nigerian size thresholds. A company must be
// within every limit of a class to belong to it.
func ClassifyCompanySize(revenue, assets decimal.Decimal, employees int) domain.CompanySize {
	switch {
	case smallLimit.within(revenue, assets, employees):
		return domain.CompanySizeSmall
	case mediumLimit.within(revenue, assets, employees):
		return domain.CompanySizeMedium
	default:
		return domain.CompanySizeLarge
	}
}
