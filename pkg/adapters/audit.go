package adapters

import (
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/api"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

func MapSeverityDomainToApi(s domain.Severity) api.Severity {
	switch s {
	case domain.SeverityLow:
		return api.SeverityLow
	case domain.SeverityMedium:
		return api.SeverityMedium
	case domain.SeverityHigh:
		return api.SeverityHigh
	case domain.SeverityCritical:
		return api.SeverityCritical
	default:
		return api.SeverityLow
	}
}

func MapAuditReportDomainToApi(id string, r domain.AuditReport) api.AuditReport {
	res := api.AuditReport{
		AnalysisID: id,
		Company:    r.Company,
	}
	if r.Financial != nil {
		fa := MapFinancialAnalysisDomainToApi(*r.Financial)
		res.Financial = &fa
	}
	if r.Compliance != nil {
		co := MapComplianceOverviewDomainToApi(*r.Compliance)
		res.Compliance = &co
	}
	if r.Risk != nil {
		ra := MapRiskAssessmentDomainToApi(*r.Risk)
		res.Risk = &ra
	}
	return res
}
