package compliance

import (
	"fmt"
	"math"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

const defaultMaxActionItems = 10

// Aggregate rolls regulation results up into an overview with at most ten
// action items.
func Aggregate(results []domain.RegulationResult) domain.ComplianceOverview {
	return AggregateN(results, defaultMaxActionItems)
}

// AggregateN is Aggregate with a custom action item cap. A non-positive cap
// uses the default.
//
// Status and score follow the first matching rule: any critical violation is
// NON_COMPLIANT scored max(0, 40-10*critical); any violation is
// PARTIALLY_COMPLIANT scored max(50, 90-5*total); otherwise COMPLIANT at 100.
func AggregateN(results []domain.RegulationResult, maxActionItems int) domain.ComplianceOverview {
	if maxActionItems <= 0 {
		maxActionItems = defaultMaxActionItems
	}

	o := domain.ComplianceOverview{
		OverallStatus:      domain.StatusCompliant,
		OverallScore:       100,
		RegulationsChecked: make([]domain.Regulation, 0, len(results)),
		PerRegulation:      results,
		ActionItems:        []string{},
	}
	if o.PerRegulation == nil {
		o.PerRegulation = []domain.RegulationResult{}
	}

	high := 0
	for _, r := range results {
		o.RegulationsChecked = append(o.RegulationsChecked, r.Regulation)
		o.TotalViolations += len(r.Violations)
		o.CriticalViolations += domain.CountSeverity(r.Violations, domain.SeverityCritical)
		high += domain.CountSeverity(r.Violations, domain.SeverityHigh)

		for _, v := range r.Violations {
			if v.Severity < domain.SeverityHigh || len(o.ActionItems) >= maxActionItems {
				continue
			}
			o.ActionItems = append(o.ActionItems, fmt.Sprintf("%s: %s", v.Regulation, v.Recommendation))
		}
	}

	switch {
	case o.CriticalViolations > 0:
		o.OverallStatus = domain.StatusNonCompliant
		o.OverallScore = math.Max(0, 40-10*float64(o.CriticalViolations))
	case o.TotalViolations > 0:
		o.OverallStatus = domain.StatusPartiallyCompliant
		o.OverallScore = math.Max(50, 90-5*float64(o.TotalViolations))
	}

	o.Recommendations = overviewRecommendations(o.CriticalViolations, high, o.TotalViolations)
	return o
}

func overviewRecommendations(critical, high, total int) []string {
	recs := []string{}
	if critical > 0 {
		recs = append(recs, "Address critical compliance violations immediately to avoid penalties")
	}
	if high > 0 {
		recs = append(recs, "Develop a compliance action plan for high-priority violations")
	}
	if total > 0 {
		recs = append(recs, "Implement regular compliance monitoring and review processes")
	}
	if len(recs) == 0 {
		recs = append(recs, "Maintain current compliance levels and monitor for regulatory changes")
	}
	return recs
}
