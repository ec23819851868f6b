package risk

import "github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"

var mitigations = map[domain.RiskCategory][]string{
	domain.RiskLiquidity: {
		"Improve cash flow management and forecasting",
		"Establish credit facilities for working capital",
		"Optimize accounts receivable collection",
	},
	domain.RiskCredit: {
		"Reduce debt levels through equity financing",
		"Negotiate better debt terms with lenders",
		"Improve debt service coverage ratios",
	},
	domain.RiskOperational: {
		"Implement cost reduction initiatives",
		"Improve operational efficiency and productivity",
		"Diversify revenue streams",
	},
	domain.RiskMarket: {
		"Diversify customer base and markets",
		"Hedge foreign exchange exposures",
		"Develop market-responsive products",
	},
	domain.RiskRegulatory: {
		"Establish compliance monitoring systems",
		"Engage regulatory consultants",
		"Stay updated on regulatory changes",
	},
}

// mitigationStrategies collects strategies for the critical categories,
// keeping the first occurrence of each.
func mitigationStrategies(critical []domain.CriticalRisk) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, cr := range critical {
		for _, s := range mitigations[cr.Category] {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func recommendations(level domain.RiskLevel, critical []domain.CriticalRisk) []string {
	var recs []string
	switch level {
	case domain.RiskLevelCritical:
		recs = []string{"Immediate risk mitigation actions required", "Consider engaging crisis management consultants"}
	case domain.RiskLevelHigh:
		recs = []string{"Develop comprehensive risk management plan", "Implement regular risk monitoring procedures"}
	case domain.RiskLevelMedium:
		recs = []string{"Maintain current risk controls and monitoring", "Prepare contingency plans for identified risks"}
	default:
		recs = []string{"Continue current risk management practices", "Monitor for emerging risks"}
	}
	if len(critical) > 0 {
		recs = append(recs, "Focus on critical risk areas identified")
	}
	return append(recs, "Regular risk assessment updates recommended")
}
