package compliance

import (
	"fmt"
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

type handler func(domain.CompanyProfile, domain.FinancialFacts, Settings) domain.RegulationResult

// Engine dispatches regulation codes to their rule handlers. Codes without a
// handler get a generic review result; evaluation never fails.
type Engine struct {
	settings Settings
	handlers map[domain.Regulation]handler
}

func NewEngine(settings Settings) *Engine {
	return &Engine{
		settings: settings,
		handlers: map[domain.Regulation]handler{
			domain.RegulationFRC:  checkFRC,
			domain.RegulationFIRS: checkFIRS,
			domain.RegulationCAMA: checkCAMA,
			domain.RegulationCBN:  checkCBN,
		},
	}
}

// NormalizeRegulation trims and upper-cases a regulation code.
func NormalizeRegulation(code string) domain.Regulation {
	return domain.Regulation(strings.ToUpper(strings.TrimSpace(code)))
}

// Supported lists the regulations with a dedicated handler.
func (e *Engine) Supported() []domain.Regulation {
	return []domain.Regulation{
		domain.RegulationFRC,
		domain.RegulationFIRS,
		domain.RegulationCAMA,
		domain.RegulationCBN,
	}
}

// Evaluate runs the handler for a single regulation.
func (e *Engine) Evaluate(reg domain.Regulation, company domain.CompanyProfile, facts domain.FinancialFacts) domain.RegulationResult {
	reg = NormalizeRegulation(string(reg))
	if h, ok := e.handlers[reg]; ok {
		return h(company, facts, e.settings)
	}
	return domain.NewReviewResult(reg, e.settings.ReviewScore,
		[]string{"Basic business registration"},
		[]string{fmt.Sprintf("Specific %s compliance assessment needed", reg)},
	)
}

// Check evaluates each regulation in order and aggregates the results.
func (e *Engine) Check(regs []domain.Regulation, company domain.CompanyProfile, facts domain.FinancialFacts) domain.ComplianceOverview {
	results := make([]domain.RegulationResult, 0, len(regs))
	for _, reg := range regs {
		results = append(results, e.Evaluate(reg, company, facts))
	}
	return AggregateN(results, e.settings.MaxActionItems)
}
