package domain

import "github.com/shopspring/decimal"

type RiskCategory string

const (
	RiskLiquidity   RiskCategory = "liquidity"
	RiskCredit      RiskCategory = "credit"
	RiskOperational RiskCategory = "operational"
	RiskMarket      RiskCategory = "market"
	RiskRegulatory  RiskCategory = "regulatory"
)

// RiskCategories returns the five categories in assessment order.
func RiskCategories() []RiskCategory {
	return []RiskCategory{RiskLiquidity, RiskCredit, RiskOperational, RiskMarket, RiskRegulatory}
}

// Likelihood grades impact and probability.
type Likelihood string

const (
	LikelihoodLow    Likelihood = "Low"
	LikelihoodMedium Likelihood = "Medium"
	LikelihoodHigh   Likelihood = "High"
)

// RiskInputs carries the raw metrics read by the risk categories. A nil
// CustomerConcentration means unknown.
type RiskInputs struct {
	CurrentRatio          float64
	QuickRatio            float64
	CashRatio             float64
	DebtToEquity          float64
	DebtToAssets          float64
	InterestCoverage      float64
	NetProfitMargin       float64
	AssetTurnover         float64
	RevenuePerEmployee    float64
	RevenueGrowth         float64
	CustomerConcentration *float64
	Industry              string
	IsPublic              bool
}

// FactorScore is one scored metric inside a risk component.
type FactorScore struct {
	Name  string
	Value float64
	Score float64
}

type RiskComponent struct {
	Category    RiskCategory
	Score       float64
	Level       RiskLevel
	Factors     []FactorScore
	RiskFactors []string
	Impact      Likelihood
	Probability Likelihood
}

type CriticalRisk struct {
	Category RiskCategory
	Level    RiskLevel
	Score    float64
	KeyRisks []string
}

type RiskMatrixEntry struct {
	Category    RiskCategory
	Impact      Likelihood
	Probability Likelihood
	Level       RiskLevel
	Score       float64
}

type RiskAssessment struct {
	OverallScore         float64
	OverallLevel         RiskLevel
	Components           []RiskComponent
	Matrix               []RiskMatrixEntry
	CriticalRisks        []CriticalRisk
	MitigationStrategies []string
	Recommendations      []string
}

// WeightedScore is the weighted sum of component scores. Components whose
// category has no weight contribute nothing.
func WeightedScore(components []RiskComponent, weights map[RiskCategory]decimal.Decimal) float64 {
	total := decimal.Zero
	for _, c := range components {
		w, ok := weights[c.Category]
		if !ok {
			continue
		}
		total = total.Add(decimal.NewFromFloat(c.Score).Mul(w))
	}
	return total.InexactFloat64()
}
