package export

import (
	"bytes"
	"testing"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAuditReport_SkipsMissingSections(t *testing.T) {
	report := BuildAuditReport(domain.AuditReport{
		Company: "Acme Ltd",
		Risk: &domain.RiskAssessment{
			OverallScore: 55,
			OverallLevel: domain.RiskLevelHigh,
			Matrix: []domain.RiskMatrixEntry{{
				Category:    domain.RiskLiquidity,
				Impact:      domain.LikelihoodHigh,
				Probability: domain.LikelihoodMedium,
				Level:       domain.RiskLevelHigh,
				Score:       45,
			}},
			MitigationStrategies: []string{"Improve cash flow forecasting"},
		},
	})

	require.Len(t, report.Sections, 1)
	section := report.Sections[0]
	assert.Equal(t, "Risk Assessment", section.Title)
	assert.Equal(t, "HIGH", section.Status)
	require.Len(t, section.Details, 2)
	assert.Equal(t, "liquidity", section.Details[0].Name)
	assert.Equal(t, "Mitigation", section.Details[1].Name)
	assert.Equal(t, "Improve cash flow forecasting", section.Details[1].Description)
}

func TestBuildAuditReport_Compliance(t *testing.T) {
	report := BuildAuditReport(domain.AuditReport{
		Compliance: &domain.ComplianceOverview{
			OverallStatus:      domain.StatusRequiresReview,
			OverallScore:       75,
			RegulationsChecked: []domain.Regulation{"NDIC"},
			PerRegulation: []domain.RegulationResult{
				domain.NewReviewResult("NDIC", 75, nil, []string{"Manual review required"}),
			},
		},
	})

	require.Len(t, report.Sections, 1)
	section := report.Sections[0]
	assert.Equal(t, "REQUIRES_REVIEW", section.Status)
	assert.Equal(t, "NDIC", section.Summary["Regulations"])
	require.Len(t, section.Details, 1)
	assert.Equal(t, "REQUIRES_REVIEW", section.Details[0].Value)
}

func TestBuildAuditReport_FinancialIntegrityNotes(t *testing.T) {
	report := BuildAuditReport(domain.AuditReport{
		Company: "Acme Ltd",
		Financial: &domain.FinancialAnalysis{
			Integrity: domain.IntegrityReport{
				Anomalies: []string{"Negative value for cash: -1.00"},
				Warnings:  []string{"Unusually low asset turnover: 0.00"},
			},
		},
	})

	require.Len(t, report.Sections, 1)
	section := report.Sections[0]
	assert.Equal(t, "false", section.Summary["Ledger Valid"])
	require.Len(t, section.Details, 2)
	assert.Equal(t, "Integrity Anomaly", section.Details[0].Name)
	assert.Equal(t, "Integrity Warning", section.Details[1].Name)
}

func TestBuildBenchmarkReport_SortsRatios(t *testing.T) {
	report := BuildBenchmarkReport("banking", domain.BenchmarkTable{
		domain.RatioQuick:   {Ratio: domain.RatioQuick, Kind: domain.BenchmarkTarget, Target: 1.2},
		domain.RatioCurrent: {Ratio: domain.RatioCurrent, Kind: domain.BenchmarkOptimalRange, Low: 1, High: 1.5},
	})

	require.Len(t, report.Sections, 1)
	details := report.Sections[0].Details
	require.Len(t, details, 2)
	assert.Equal(t, domain.RatioCurrent, details[0].Name)
	assert.Equal(t, "1.00 - 1.50", details[0].Value)
	assert.Equal(t, domain.RatioQuick, details[1].Name)
	assert.Equal(t, "1.20", details[1].Value)
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	wht := domain.WHTBreakdown{
		PaymentType: "rent",
		GrossAmount: decimal.NewFromInt(1000),
		Rate:        decimal.RequireFromString("0.10"),
		WHTAmount:   decimal.NewFromInt(100),
		NetAmount:   decimal.NewFromInt(900),
	}
	vat := domain.VATBreakdown{
		NetAmount:   decimal.NewFromInt(1000),
		VATAmount:   decimal.NewFromInt(75),
		GrossAmount: decimal.NewFromInt(1075),
		Rate:        decimal.RequireFromString("0.075"),
	}

	err := NewReporter(&buf).Handle(BuildTaxReport(vat, &wht))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Tax Calculation")
	assert.Contains(t, out, "=== Value Added Tax ===")
	assert.Contains(t, out, "=== Withholding Tax ===")
	assert.Contains(t, out, "Payment Type: rent")
	assert.Contains(t, out, "1075.00")
	assert.Contains(t, out, "900.00")
	assert.NotContains(t, out, "<nil>")
}
