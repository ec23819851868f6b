package ledger

import (
	"fmt"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var (
	balanceTolerance = decimal.RequireFromString("0.01")
	maxAssetTurnover = decimal.NewFromInt(10)
	minAssetTurnover = decimal.RequireFromString("0.01")
)

// CheckIntegrity tests the accounting equation within 1% of total assets,
// flags negative assets, revenue and cash, and warns on an asset turnover
// outside [0.01, 10].
func CheckIntegrity(t domain.Totals) domain.IntegrityReport {
	r := domain.IntegrityReport{
		Anomalies: []string{},
		Warnings:  []string{},
	}

	r.Difference = t.TotalAssets.Sub(t.TotalLiabilities.Add(t.Equity)).Abs()
	r.Tolerance = t.TotalAssets.Abs().Mul(balanceTolerance)
	r.Balanced = r.Difference.LessThanOrEqual(r.Tolerance)
	if !r.Balanced {
		r.Anomalies = append(r.Anomalies, fmt.Sprintf("Accounting equation imbalance: %s", r.Difference.StringFixed(2)))
	}

	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"total_assets", t.TotalAssets},
		{"revenue", t.Revenue},
		{"cash", t.Cash},
	} {
		if f.value.IsNegative() {
			r.Anomalies = append(r.Anomalies, fmt.Sprintf("Negative value for %s: %s", f.name, f.value.StringFixed(2)))
		}
	}

	if t.TotalAssets.IsPositive() {
		turnover := t.Revenue.DivRound(t.TotalAssets, 2).StringFixed(2)
		switch {
		case t.Revenue.GreaterThan(t.TotalAssets.Mul(maxAssetTurnover)):
			r.Warnings = append(r.Warnings, fmt.Sprintf("Unusually high asset turnover: %s", turnover))
		case t.Revenue.LessThan(t.TotalAssets.Mul(minAssetTurnover)):
			r.Warnings = append(r.Warnings, fmt.Sprintf("Unusually low asset turnover: %s", turnover))
		}
	}

	r.Valid = len(r.Anomalies) == 0
	return r
}
