package risk

import "github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"

// Metrics read from a ratio set in addition to the core ratios.
const (
	MetricCashRatio             = domain.RatioCash
	MetricInterestCoverage      = domain.RatioInterestCoverage
	MetricRevenuePerEmployee    = "revenue_per_employee"
	MetricRevenueGrowth         = "revenue_growth"
	MetricCustomerConcentration = "customer_concentration"
)

// DefaultCustomerConcentration is assumed when concentration is unknown.
const DefaultCustomerConcentration = 0.3

// InputsFromRatios seeds risk inputs from a ratio set. Absent metrics read as
// 0, except customer concentration which stays unknown.
func InputsFromRatios(ratios domain.RatioSet, industry string, isPublic bool) domain.RiskInputs {
	in := domain.RiskInputs{
		CurrentRatio:       ratios.Get(domain.RatioCurrent),
		QuickRatio:         ratios.Get(domain.RatioQuick),
		CashRatio:          ratios.Get(MetricCashRatio),
		DebtToEquity:       ratios.Get(domain.RatioDebtToEquity),
		DebtToAssets:       ratios.Get(domain.RatioDebtToAssets),
		InterestCoverage:   ratios.Get(MetricInterestCoverage),
		NetProfitMargin:    ratios.Get(domain.RatioNetProfitMargin),
		AssetTurnover:      ratios.Get(domain.RatioAssetTurnover),
		RevenuePerEmployee: ratios.Get(MetricRevenuePerEmployee),
		RevenueGrowth:      ratios.Get(MetricRevenueGrowth),
		Industry:           industry,
		IsPublic:           isPublic,
	}
	if c, ok := ratios[MetricCustomerConcentration]; ok {
		in.CustomerConcentration = &c
	}
	return in
}

func concentration(in domain.RiskInputs) float64 {
	if in.CustomerConcentration == nil {
		return DefaultCustomerConcentration
	}
	return *in.CustomerConcentration
}
