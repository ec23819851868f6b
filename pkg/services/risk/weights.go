package risk

import (
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var categoryWeights = map[domain.RiskCategory]decimal.Decimal{
	domain.RiskLiquidity:   decimal.RequireFromString("0.25"),
	domain.RiskCredit:      decimal.RequireFromString("0.20"),
	domain.RiskOperational: decimal.RequireFromString("0.25"),
	domain.RiskMarket:      decimal.RequireFromString("0.20"),
	domain.RiskRegulatory:  decimal.RequireFromString("0.10"),
}

// Weights returns a copy of the fixed category weights. They sum to exactly 1.
func Weights() map[domain.RiskCategory]decimal.Decimal {
	out := make(map[domain.RiskCategory]decimal.Decimal, len(categoryWeights))
	for k, v := range categoryWeights {
		out[k] = v
	}
	return out
}
