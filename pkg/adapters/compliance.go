package adapters

import (
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/api"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

func MapViolationDomainToApi(v domain.Violation) api.Violation {
	return api.Violation{
		Regulation:     string(v.Regulation),
		ViolationType:  v.ViolationType,
		Description:    v.Description,
		Severity:       MapSeverityDomainToApi(v.Severity),
		Recommendation: v.Recommendation,
		PenaltyRange:   v.PenaltyRange,
		Deadline:       v.Deadline,
	}
}

func MapRegulationResultDomainToApi(r domain.RegulationResult) api.RegulationResult {
	res := api.RegulationResult{
		Regulation:          string(r.Regulation),
		Status:              string(r.Status()),
		Score:               r.Score,
		Violations:          make([]api.Violation, 0, len(r.Violations)),
		RequirementsMet:     nonNil(r.RequirementsMet),
		MissingRequirements: nonNil(r.MissingRequirements),
	}
	for _, v := range r.Violations {
		res.Violations = append(res.Violations, MapViolationDomainToApi(v))
	}
	return res
}

func MapComplianceOverviewDomainToApi(o domain.ComplianceOverview) api.ComplianceOverview {
	res := api.ComplianceOverview{
		OverallStatus:      string(o.OverallStatus),
		OverallScore:       o.OverallScore,
		TotalViolations:    o.TotalViolations,
		CriticalViolations: o.CriticalViolations,
		RegulationsChecked: make([]string, 0, len(o.RegulationsChecked)),
		DetailedResults:    make([]api.RegulationResult, 0, len(o.PerRegulation)),
		Recommendations:    nonNil(o.Recommendations),
		ActionItems:        nonNil(o.ActionItems),
	}
	for _, reg := range o.RegulationsChecked {
		res.RegulationsChecked = append(res.RegulationsChecked, string(reg))
	}
	for _, r := range o.PerRegulation {
		res.DetailedResults = append(res.DetailedResults, MapRegulationResultDomainToApi(r))
	}
	return res
}
