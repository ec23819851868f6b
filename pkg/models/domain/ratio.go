package domain

const (
	RatioCurrent           = "current_ratio"
	RatioQuick             = "quick_ratio"
	RatioDebtToEquity      = "debt_to_equity"
	RatioDebtToAssets      = "debt_to_assets"
	RatioGrossProfitMargin = "gross_profit_margin"
	RatioNetProfitMargin   = "net_profit_margin"
	RatioReturnOnAssets    = "return_on_assets"
	RatioReturnOnEquity    = "return_on_equity"
	RatioAssetTurnover     = "asset_turnover"
)

// Supplementary ratios derived from the ledger for risk assessment. They are
// not benchmarked.
const (
	RatioCash             = "cash_ratio"
	RatioInterestCoverage = "interest_coverage"
)

// RatioNames lists the fixed ratio set in a stable order.
func RatioNames() []string {
	return []string{
		RatioCurrent,
		RatioQuick,
		RatioDebtToEquity,
		RatioDebtToAssets,
		RatioGrossProfitMargin,
		RatioNetProfitMargin,
		RatioReturnOnAssets,
		RatioReturnOnEquity,
		RatioAssetTurnover,
	}
}

// RatioSet maps ratio name to value. Values are always finite.
type RatioSet map[string]float64

// Get returns the ratio or 0 when absent.
func (r RatioSet) Get(name string) float64 {
	return r[name]
}
