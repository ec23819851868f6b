package adapters

import (
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/api"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

func MapRiskComponentDomainToApi(c domain.RiskComponent) api.RiskComponent {
	res := api.RiskComponent{
		Category:    string(c.Category),
		Score:       c.Score,
		Level:       string(c.Level),
		Factors:     make([]api.FactorScore, 0, len(c.Factors)),
		Risks:       nonNil(c.RiskFactors),
		Impact:      string(c.Impact),
		Probability: string(c.Probability),
	}
	for _, f := range c.Factors {
		res.Factors = append(res.Factors, api.FactorScore{Name: f.Name, Value: f.Value, Score: f.Score})
	}
	return res
}

func MapRiskAssessmentDomainToApi(a domain.RiskAssessment) api.RiskAssessment {
	res := api.RiskAssessment{
		OverallScore:         a.OverallScore,
		RiskLevel:            string(a.OverallLevel),
		Components:           make([]api.RiskComponent, 0, len(a.Components)),
		Matrix:               make([]api.RiskMatrixEntry, 0, len(a.Matrix)),
		CriticalRisks:        make([]api.CriticalRisk, 0, len(a.CriticalRisks)),
		MitigationStrategies: nonNil(a.MitigationStrategies),
		Recommendations:      nonNil(a.Recommendations),
	}
	for _, c := range a.Components {
		res.Components = append(res.Components, MapRiskComponentDomainToApi(c))
	}
	for _, m := range a.Matrix {
		res.Matrix = append(res.Matrix, api.RiskMatrixEntry{
			Category:    string(m.Category),
			Impact:      string(m.Impact),
			Probability: string(m.Probability),
			RiskLevel:   string(m.Level),
			Score:       m.Score,
		})
	}
	for _, cr := range a.CriticalRisks {
		res.CriticalRisks = append(res.CriticalRisks, api.CriticalRisk{
			Category: string(cr.Category),
			Level:    string(cr.Level),
			Score:    cr.Score,
			KeyRisks: nonNil(cr.KeyRisks),
		})
	}
	return res
}
