package risk

import (
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/benchmark"
)

const regulatoryBaseScore = 70.0

func factor(name string, value, score float64) domain.FactorScore {
	return domain.FactorScore{Name: name, Value: value, Score: score}
}

func mean(factors []domain.FactorScore) float64 {
	if len(factors) == 0 {
		return 0
	}
	total := 0.0
	for _, f := range factors {
		total += f.Score
	}
	return total / float64(len(factors))
}

// impactFromScore grades impact for ratio-driven categories.
func impactFromScore(score float64) domain.Likelihood {
	switch {
	case score < 50:
		return domain.LikelihoodHigh
	case score < 70:
		return domain.LikelihoodMedium
	default:
		return domain.LikelihoodLow
	}
}

// probabilityFromRisks grades probability by the number of risks found.
func probabilityFromRisks(n int) domain.Likelihood {
	switch {
	case n >= 2:
		return domain.LikelihoodHigh
	case n == 1:
		return domain.LikelihoodMedium
	default:
		return domain.LikelihoodLow
	}
}

func component(cat domain.RiskCategory, score float64, factors []domain.FactorScore, risks []string) domain.RiskComponent {
	return domain.RiskComponent{
		Category:    cat,
		Score:       score,
		Level:       domain.LevelForScore(score),
		Factors:     factors,
		RiskFactors: risks,
	}
}

func liquidity(in domain.RiskInputs) domain.RiskComponent {
	factors := []domain.FactorScore{
		factor(domain.RatioCurrent, in.CurrentRatio, benchmark.Ramp(in.CurrentRatio, 1.5, 2.5, false)),
		factor(domain.RatioQuick, in.QuickRatio, benchmark.Ramp(in.QuickRatio, 1.0, 1.5, false)),
		factor(MetricCashRatio, in.CashRatio, benchmark.Ramp(in.CashRatio, 0.2, 0.5, false)),
	}

	risks := []string{}
	if in.CurrentRatio < 1.0 {
		risks = append(risks, "Current ratio below 1.0 indicates potential liquidity crisis")
	}
	if in.QuickRatio < 0.8 {
		risks = append(risks, "Quick ratio suggests difficulty meeting short-term obligations")
	}
	if in.CashRatio < 0.1 {
		risks = append(risks, "Low cash ratio indicates poor cash management")
	}

	c := component(domain.RiskLiquidity, mean(factors), factors, risks)
	c.Impact = impactFromScore(c.Score)
	c.Probability = probabilityFromRisks(len(risks))
	return c
}

func credit(in domain.RiskInputs) domain.RiskComponent {
	factors := []domain.FactorScore{
		factor(domain.RatioDebtToEquity, in.DebtToEquity, benchmark.Ramp(in.DebtToEquity, 0.3, 0.6, true)),
		factor(domain.RatioDebtToAssets, in.DebtToAssets, benchmark.Ramp(in.DebtToAssets, 0.2, 0.4, true)),
		factor(MetricInterestCoverage, in.InterestCoverage, benchmark.Ramp(in.InterestCoverage, 2.5, 5.0, false)),
	}

	risks := []string{}
	if in.DebtToEquity > 1.0 {
		risks = append(risks, "High leverage increases financial risk")
	}
	if in.DebtToAssets > 0.6 {
		risks = append(risks, "High debt-to-assets ratio indicates over-leveraging")
	}
	if in.InterestCoverage < 2.0 {
		risks = append(risks, "Low interest coverage suggests difficulty servicing debt")
	}

	c := component(domain.RiskCredit, mean(factors), factors, risks)
	c.Impact = impactFromScore(c.Score)
	c.Probability = probabilityFromRisks(len(risks))
	return c
}

func operational(in domain.RiskInputs) domain.RiskComponent {
	factors := []domain.FactorScore{
		factor(domain.RatioNetProfitMargin, in.NetProfitMargin, benchmark.Ramp(in.NetProfitMargin, 0.05, 0.15, false)),
		factor(domain.RatioAssetTurnover, in.AssetTurnover, benchmark.Ramp(in.AssetTurnover, 0.5, 1.5, false)),
		factor(MetricRevenuePerEmployee, in.RevenuePerEmployee, benchmark.Ramp(in.RevenuePerEmployee, 1_000_000, 5_000_000, false)),
	}

	risks := []string{}
	if in.NetProfitMargin < 0 {
		risks = append(risks, "Negative profit margins indicate operational inefficiency")
	}
	if in.AssetTurnover < 0.3 {
		risks = append(risks, "Low asset turnover suggests poor asset utilization")
	}
	industry := strings.ToLower(in.Industry)
	if strings.Contains(industry, "oil") || strings.Contains(industry, "gas") {
		risks = append(risks, "Exposure to volatile oil prices")
	}
	if strings.Contains(industry, "manufacturing") {
		risks = append(risks, "Supply chain and production risks")
	}

	c := component(domain.RiskOperational, mean(factors), factors, risks)
	c.Impact = domain.LikelihoodMedium
	c.Probability = domain.LikelihoodLow
	if len(risks) > 0 {
		c.Probability = domain.LikelihoodMedium
	}
	return c
}

func market(in domain.RiskInputs) domain.RiskComponent {
	conc := concentration(in)
	factors := []domain.FactorScore{
		factor(MetricRevenueGrowth, in.RevenueGrowth, benchmark.Ramp(in.RevenueGrowth, -0.1, 0.1, false)),
		factor(MetricCustomerConcentration, conc, benchmark.Ramp(conc, 0.2, 0.5, true)),
	}

	risks := []string{}
	if in.RevenueGrowth < -0.05 {
		risks = append(risks, "Declining revenue indicates market challenges")
	}
	if conc > 0.5 {
		risks = append(risks, "High customer concentration increases market risk")
	}
	risks = append(risks,
		"Exposure to Nigerian economic volatility",
		"Foreign exchange rate fluctuations (USD/NGN)",
	)

	c := component(domain.RiskMarket, mean(factors), factors, risks)
	c.Impact = domain.LikelihoodHigh
	c.Probability = domain.LikelihoodMedium
	return c
}

// regulatory starts from a base score and deducts for each regulated sector
// exposure. The industry factor carries the total deduction as its value.
func regulatory(in domain.RiskInputs) domain.RiskComponent {
	industry := strings.ToLower(in.Industry)
	score := regulatoryBaseScore
	risks := []string{}

	if strings.Contains(industry, "bank") || strings.Contains(industry, "financial") {
		score -= 20
		risks = append(risks, "Subject to CBN prudential regulations", "Banking sector regulatory changes")
	}
	if strings.Contains(industry, "oil") || strings.Contains(industry, "gas") {
		score -= 15
		risks = append(risks, "Petroleum Industry Act compliance", "NNPC and DPR regulatory oversight")
	}
	if strings.Contains(industry, "telecom") {
		score -= 10
		risks = append(risks, "NCC regulatory requirements")
	}
	industryScore := score

	public, publicScore := 0.0, 90.0
	if in.IsPublic {
		score -= 10
		public, publicScore = 1, 70
		risks = append(risks, "SEC disclosure requirements", "NGX listing requirements")
	}
	risks = append(risks,
		"Changes in Nigerian tax laws",
		"FRC regulatory updates",
		"CAMA compliance requirements",
	)

	if score < 0 {
		score = 0
	}
	factors := []domain.FactorScore{
		factor("industry_regulation", regulatoryBaseScore-industryScore, industryScore),
		factor("public_company", public, publicScore),
	}

	c := component(domain.RiskRegulatory, score, factors, risks)
	c.Impact = domain.LikelihoodMedium
	c.Probability = domain.LikelihoodHigh
	return c
}
