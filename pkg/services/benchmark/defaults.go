package benchmark

import "github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"

func optimal(ratio string, low, high float64) domain.Benchmark {
	return domain.Benchmark{Ratio: ratio, Kind: domain.BenchmarkOptimalRange, Low: low, High: high}
}

// defaultTables holds Nigerian industry benchmarks.
func defaultTables() map[string]domain.BenchmarkTable {
	return map[string]domain.BenchmarkTable{
		GeneralIndustry: {
			domain.RatioCurrent:           optimal(domain.RatioCurrent, 1.5, 2.5),
			domain.RatioQuick:             optimal(domain.RatioQuick, 1.0, 1.5),
			domain.RatioDebtToEquity:      optimal(domain.RatioDebtToEquity, 0.3, 0.6),
			domain.RatioDebtToAssets:      optimal(domain.RatioDebtToAssets, 0.2, 0.4),
			domain.RatioGrossProfitMargin: optimal(domain.RatioGrossProfitMargin, 0.2, 0.4),
			domain.RatioNetProfitMargin:   optimal(domain.RatioNetProfitMargin, 0.05, 0.15),
			domain.RatioReturnOnAssets:    optimal(domain.RatioReturnOnAssets, 0.05, 0.15),
			domain.RatioReturnOnEquity:    optimal(domain.RatioReturnOnEquity, 0.12, 0.25),
			domain.RatioAssetTurnover:     optimal(domain.RatioAssetTurnover, 0.5, 1.5),
		},
		"banking": {
			domain.RatioCurrent:        optimal(domain.RatioCurrent, 1.2, 1.8),
			domain.RatioDebtToEquity:   optimal(domain.RatioDebtToEquity, 6.0, 12.0),
			domain.RatioReturnOnAssets: optimal(domain.RatioReturnOnAssets, 0.015, 0.025),
			domain.RatioReturnOnEquity: optimal(domain.RatioReturnOnEquity, 0.15, 0.25),
			"capital_adequacy_ratio":   optimal("capital_adequacy_ratio", 0.15, 0.20),
		},
		"manufacturing": {
			domain.RatioCurrent:           optimal(domain.RatioCurrent, 1.5, 2.0),
			"inventory_turnover":          optimal("inventory_turnover", 4.0, 8.0),
			domain.RatioDebtToEquity:      optimal(domain.RatioDebtToEquity, 0.4, 0.8),
			domain.RatioGrossProfitMargin: optimal(domain.RatioGrossProfitMargin, 0.25, 0.35),
			domain.RatioAssetTurnover:     optimal(domain.RatioAssetTurnover, 0.8, 1.2),
		},
		"oil_gas": {
			domain.RatioCurrent:        optimal(domain.RatioCurrent, 1.0, 1.5),
			domain.RatioDebtToEquity:   optimal(domain.RatioDebtToEquity, 0.3, 0.7),
			domain.RatioReturnOnAssets: optimal(domain.RatioReturnOnAssets, 0.08, 0.15),
			"cash_ratio":               optimal("cash_ratio", 0.2, 0.4),
		},
	}
}
