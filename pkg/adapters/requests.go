package adapters

import (
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/api"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/analysis"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/compliance"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/ledger"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/risk"
	"github.com/shopspring/decimal"
)

func MapCompanyApiToDomain(c api.CompanyInfo) domain.CompanyProfile {
	return domain.CompanyProfile{
		Name:          c.Name,
		Type:          c.Type,
		Size:          c.Size,
		Industry:      c.Industry,
		IsPublic:      c.IsPublic,
		AnnualRevenue: c.AnnualRevenue,
		BusinessType:  c.BusinessType,
		CACNumber:     c.CACNumber,
		TINNumber:     c.TINNumber,
		TotalAssets:   c.TotalAssets,
		EmployeeCount: c.EmployeeCount,
	}
}

func MapFactsApiToDomain(f api.FinancialFacts) domain.FinancialFacts {
	return domain.FinancialFacts{
		FinancialStatementsFiled: f.FinancialStatementsFiled,
		IFRSCompliant:            f.IFRSCompliant,
		VATRegistered:            f.VATRegistered,
		TaxReturnsFiled:          f.TaxReturnsFiled,
		AnnualReturnsFiled:       f.AnnualReturnsFiled,
		CapitalAdequacyRatio:     f.CapitalAdequacyRatio,
		LiquidityRatio:           f.LiquidityRatio,
	}
}

func MapRegulationsApiToDomain(codes []string) []domain.Regulation {
	regs := make([]domain.Regulation, 0, len(codes))
	for _, code := range codes {
		regs = append(regs, compliance.NormalizeRegulation(code))
	}
	return regs
}

// MapFinancialRequestApiToDomain parses the trial balance. It fails with a
// *ledger.ValidationError on the first bad amount.
func MapFinancialRequestApiToDomain(req api.FinancialAnalysisRequest) (analysis.FinancialInput, error) {
	entries, err := ledger.ParseTrialBalance(req.TrialBalance)
	if err != nil {
		return analysis.FinancialInput{}, err
	}
	return analysis.FinancialInput{
		Entries:       entries,
		Industry:      req.Industry,
		EmployeeCount: req.EmployeeCount,
	}, nil
}

func MapComplianceRequestApiToDomain(req api.ComplianceCheckRequest) analysis.ComplianceInput {
	return analysis.ComplianceInput{
		Company:     MapCompanyApiToDomain(req.Company),
		Facts:       MapFactsApiToDomain(req.Financial),
		Regulations: MapRegulationsApiToDomain(req.Regulations),
	}
}

func MapRiskRequestApiToDomain(req api.RiskAssessmentRequest) domain.RiskInputs {
	return risk.InputsFromRatios(domain.RatioSet(req.Metrics), req.Company.Industry, req.Company.IsPublic)
}

func MapAuditRequestApiToDomain(req api.AuditRequest) (analysis.AuditInput, error) {
	in := analysis.AuditInput{
		Company:     MapCompanyApiToDomain(req.Company),
		Facts:       MapFactsApiToDomain(req.Financial),
		Regulations: MapRegulationsApiToDomain(req.Regulations),
		Metrics:     domain.RatioSet(req.Metrics),
	}
	if len(req.TrialBalance) > 0 {
		entries, err := ledger.ParseTrialBalance(req.TrialBalance)
		if err != nil {
			return analysis.AuditInput{}, err
		}
		in.Entries = entries
	}
	return in, nil
}

func MapSamplingRequestApiToDomain(req api.SamplingRequest) (analysis.SamplingInput, error) {
	entries, err := ledger.ParseTrialBalance(req.TrialBalance)
	if err != nil {
		return analysis.SamplingInput{}, err
	}
	return analysis.SamplingInput{
		Entries:     entries,
		Materiality: decimal.NewFromFloat(req.Materiality),
		RiskLevel:   domain.RiskLevel(strings.ToUpper(strings.TrimSpace(req.RiskLevel))),
	}, nil
}
