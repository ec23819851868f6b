package compliance

import "github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"

// checklist accumulates the outcome of one handler's checks.
type checklist struct {
	regulation domain.Regulation
	met        []string
	missing    []string
	violations []domain.Violation
}

func newChecklist(reg domain.Regulation) *checklist {
	return &checklist{
		regulation: reg,
		met:        []string{},
		missing:    []string{},
		violations: []domain.Violation{},
	}
}

func (c *checklist) pass(requirement string) {
	c.met = append(c.met, requirement)
}

func (c *checklist) fail(requirement string, v domain.Violation) {
	v.Regulation = c.regulation
	c.missing = append(c.missing, requirement)
	c.violations = append(c.violations, v)
}

// result scores the checklist as met/(met+missing)*100, or 100 when nothing applied.
func (c *checklist) result() domain.RegulationResult {
	score := 100.0
	if total := len(c.met) + len(c.missing); total > 0 {
		score = float64(len(c.met)) / float64(total) * 100
	}
	return domain.RegulationResult{
		Regulation:          c.regulation,
		Score:               score,
		Violations:          c.violations,
		RequirementsMet:     c.met,
		MissingRequirements: c.missing,
	}
}
