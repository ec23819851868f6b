package risk

import (
	"sort"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const keyRiskCount = 3

// Aggregator combines the five category assessments into an overall risk
// assessment using fixed weights.
type Aggregator struct {
	weights map[domain.RiskCategory]decimal.Decimal
}

func NewAggregator() *Aggregator {
	return &Aggregator{weights: Weights()}
}

// Assess scores every category and derives the overall level, matrix,
// critical risks, mitigations and recommendations.
func (a *Aggregator) Assess(in domain.RiskInputs) domain.RiskAssessment {
	components := []domain.RiskComponent{
		liquidity(in),
		credit(in),
		operational(in),
		market(in),
		regulatory(in),
	}

	overall := domain.WeightedScore(components, a.weights)
	level := domain.LevelForScore(overall)
	critical := criticalRisks(components)

	return domain.RiskAssessment{
		OverallScore:         overall,
		OverallLevel:         level,
		Components:           components,
		Matrix:               matrix(components),
		CriticalRisks:        critical,
		MitigationStrategies: mitigationStrategies(critical),
		Recommendations:      recommendations(level, critical),
	}
}

// Recompute reproduces the overall score from stored components.
func (a *Aggregator) Recompute(assessment domain.RiskAssessment) float64 {
	return domain.WeightedScore(assessment.Components, a.weights)
}

// matrix lists components from riskiest (lowest score) to safest. Ties keep
// category order.
func matrix(components []domain.RiskComponent) []domain.RiskMatrixEntry {
	out := make([]domain.RiskMatrixEntry, 0, len(components))
	for _, c := range components {
		out = append(out, domain.RiskMatrixEntry{
			Category:    c.Category,
			Impact:      c.Impact,
			Probability: c.Probability,
			Level:       c.Level,
			Score:       c.Score,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}

func criticalRisks(components []domain.RiskComponent) []domain.CriticalRisk {
	out := []domain.CriticalRisk{}
	for _, c := range components {
		if c.Level != domain.RiskLevelHigh && c.Level != domain.RiskLevelCritical {
			continue
		}
		n := len(c.RiskFactors)
		if n > keyRiskCount {
			n = keyRiskCount
		}
		out = append(out, domain.CriticalRisk{
			Category: c.Category,
			Level:    c.Level,
			Score:    c.Score,
			KeyRisks: append([]string{}, c.RiskFactors[:n]...),
		})
	}
	return out
}
