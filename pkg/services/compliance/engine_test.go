package compliance

import (
	"testing"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allFiled() domain.FinancialFacts {
	return domain.FinancialFacts{
		FinancialStatementsFiled: true,
		IFRSCompliant:            true,
		VATRegistered:            true,
		TaxReturnsFiled:          true,
		AnnualReturnsFiled:       true,
		CapitalAdequacyRatio:     0.18,
		LiquidityRatio:           0.35,
	}
}

func TestFRC_NotApplicable(t *testing.T) {
	e := NewEngine(DefaultSettings())

	r := e.Evaluate(domain.RegulationFRC, domain.CompanyProfile{IsPublic: false, AnnualRevenue: 50_000_000}, domain.FinancialFacts{})

	assert.Equal(t, domain.StatusCompliant, r.Status())
	assert.Equal(t, 100.0, r.Score)
	assert.Empty(t, r.RequirementsMet)
	assert.Empty(t, r.MissingRequirements)
	assert.Empty(t, r.Violations)
}

func TestFRC_PublicCompanyNothingFiled(t *testing.T) {
	e := NewEngine(DefaultSettings())

	r := e.Evaluate(domain.RegulationFRC, domain.CompanyProfile{IsPublic: true}, domain.FinancialFacts{})

	require.Len(t, r.Violations, 2)
	assert.Equal(t, "Filing Requirement", r.Violations[0].ViolationType)
	assert.Equal(t, domain.SeverityHigh, r.Violations[0].Severity)
	assert.Equal(t, "Within 90 days of financial year-end", r.Violations[0].Deadline)
	assert.Equal(t, "IFRS Compliance", r.Violations[1].ViolationType)
	assert.Equal(t, domain.SeverityCritical, r.Violations[1].Severity)
	assert.Empty(t, r.Violations[1].Deadline)
	assert.Equal(t, domain.RegulationFRC, r.Violations[1].Regulation)
	assert.Equal(t, domain.StatusNonCompliant, r.Status())
	assert.Equal(t, 0.0, r.Score)
}

func TestFRC_RevenueAboveThresholdAllFiled(t *testing.T) {
	e := NewEngine(DefaultSettings())

	r := e.Evaluate(domain.RegulationFRC, domain.CompanyProfile{AnnualRevenue: 600_000_000}, allFiled())

	assert.Equal(t, domain.StatusCompliant, r.Status())
	assert.Equal(t, []string{"Annual financial statements filed", "IFRS compliance"}, r.RequirementsMet)
	assert.Equal(t, 100.0, r.Score)
}

func TestFIRS_ShortTIN(t *testing.T) {
	e := NewEngine(DefaultSettings())
	facts := domain.FinancialFacts{TaxReturnsFiled: true}

	r := e.Evaluate(domain.RegulationFIRS, domain.CompanyProfile{TINNumber: "123"}, facts)

	require.Len(t, r.Violations, 1)
	assert.Contains(t, r.Violations[0].ViolationType, "TIN")
	assert.Equal(t, domain.SeverityHigh, r.Violations[0].Severity)
	assert.NotEqual(t, domain.StatusCompliant, r.Status())
	assert.Equal(t, domain.StatusPartiallyCompliant, r.Status())
	assert.Equal(t, []string{"Valid TIN"}, r.MissingRequirements)
	assert.InDelta(t, 50.0, r.Score, 1e-9)
}

func TestFIRS_Checks(t *testing.T) {
	e := NewEngine(DefaultSettings())

	t.Run("missing TIN is critical", func(t *testing.T) {
		r := e.Evaluate(domain.RegulationFIRS, domain.CompanyProfile{TINNumber: "  "}, allFiled())
		require.Len(t, r.Violations, 1)
		assert.Equal(t, "TIN Missing", r.Violations[0].ViolationType)
		assert.Equal(t, domain.StatusNonCompliant, r.Status())
	})

	t.Run("formatted TIN is valid", func(t *testing.T) {
		r := e.Evaluate(domain.RegulationFIRS, domain.CompanyProfile{TINNumber: "1234-5678-9012"}, allFiled())
		assert.Empty(t, r.Violations)
		assert.Equal(t, []string{"Valid TIN format", "Tax returns filed"}, r.RequirementsMet)
	})

	t.Run("VAT required above threshold", func(t *testing.T) {
		facts := allFiled()
		facts.VATRegistered = false
		r := e.Evaluate(domain.RegulationFIRS, domain.CompanyProfile{TINNumber: "123456789012", AnnualRevenue: 30_000_000}, facts)
		require.Len(t, r.Violations, 1)
		assert.Equal(t, "VAT Registration", r.Violations[0].ViolationType)
		assert.Equal(t, domain.SeverityHigh, r.Violations[0].Severity)
		assert.InDelta(t, 200.0/3.0, r.Score, 1e-9)
	})

	t.Run("VAT not checked below threshold", func(t *testing.T) {
		r := e.Evaluate(domain.RegulationFIRS, domain.CompanyProfile{TINNumber: "123456789012", AnnualRevenue: 25_000_000}, domain.FinancialFacts{TaxReturnsFiled: true})
		assert.NotContains(t, r.RequirementsMet, "VAT registration")
		assert.NotContains(t, r.MissingRequirements, "VAT registration")
	})

	t.Run("unfiled returns", func(t *testing.T) {
		r := e.Evaluate(domain.RegulationFIRS, domain.CompanyProfile{TINNumber: "123456789012"}, domain.FinancialFacts{})
		require.Len(t, r.Violations, 1)
		assert.Equal(t, "Tax Filing", r.Violations[0].ViolationType)
		assert.Equal(t, "₦25,000 + 10% of tax due", r.Violations[0].PenaltyRange)
	})
}

func TestCAMA(t *testing.T) {
	e := NewEngine(DefaultSettings())

	tests := []struct {
		name       string
		cac        string
		returns    bool
		wantTypes  []string
		wantStatus domain.ComplianceStatus
	}{
		{"valid RC", "RC123456", true, nil, domain.StatusCompliant},
		{"valid lower-case RC", " rc1234567 ", true, nil, domain.StatusCompliant},
		{"valid BN", "BN1234567", true, nil, domain.StatusCompliant},
		{"short RC", "RC12345", true, []string{"CAC Registration"}, domain.StatusNonCompliant},
		{"missing", "", true, []string{"CAC Missing"}, domain.StatusNonCompliant},
		{"returns not filed", "RC123456", false, []string{"Annual Returns"}, domain.StatusPartiallyCompliant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := e.Evaluate(domain.RegulationCAMA, domain.CompanyProfile{CACNumber: tt.cac}, domain.FinancialFacts{AnnualReturnsFiled: tt.returns})
			var types []string
			for _, v := range r.Violations {
				types = append(types, v.ViolationType)
			}
			assert.Equal(t, tt.wantTypes, types)
			assert.Equal(t, tt.wantStatus, r.Status())
		})
	}
}

func TestCBN(t *testing.T) {
	e := NewEngine(DefaultSettings())

	t.Run("not applicable", func(t *testing.T) {
		r := e.Evaluate(domain.RegulationCBN, domain.CompanyProfile{BusinessType: "Manufacturing"}, domain.FinancialFacts{})
		assert.Equal(t, []string{"CBN regulations not applicable"}, r.RequirementsMet)
		assert.Equal(t, domain.StatusCompliant, r.Status())
		assert.Equal(t, 100.0, r.Score)
	})

	t.Run("undercapitalised bank", func(t *testing.T) {
		r := e.Evaluate(domain.RegulationCBN, domain.CompanyProfile{BusinessType: "Commercial Bank"},
			domain.FinancialFacts{CapitalAdequacyRatio: 0.10, LiquidityRatio: 0.20})
		require.Len(t, r.Violations, 2)
		assert.Equal(t, "Capital Adequacy", r.Violations[0].ViolationType)
		assert.Equal(t, "Capital adequacy ratio (10.0%) below CBN minimum of 15%", r.Violations[0].Description)
		assert.Equal(t, "Liquidity Ratio", r.Violations[1].ViolationType)
		assert.Equal(t, domain.SeverityHigh, r.Violations[1].Severity)
		assert.Equal(t, domain.StatusNonCompliant, r.Status())
	})

	t.Run("healthy financial institution", func(t *testing.T) {
		r := e.Evaluate(domain.RegulationCBN, domain.CompanyProfile{BusinessType: "financial services"}, allFiled())
		assert.Equal(t, []string{"Capital adequacy maintained", "Liquidity requirements met"}, r.RequirementsMet)
	})
}

func TestEvaluate_UnknownRegulation(t *testing.T) {
	e := NewEngine(DefaultSettings())

	r := e.Evaluate(" sec ", domain.CompanyProfile{}, domain.FinancialFacts{})

	assert.Equal(t, domain.Regulation("SEC"), r.Regulation)
	assert.Equal(t, domain.StatusRequiresReview, r.Status())
	assert.Equal(t, 75.0, r.Score)
	assert.Empty(t, r.Violations)
	assert.Equal(t, []string{"Basic business registration"}, r.RequirementsMet)
	assert.Equal(t, []string{"Specific SEC compliance assessment needed"}, r.MissingRequirements)
}

func TestEvaluate_NormalizesCode(t *testing.T) {
	e := NewEngine(DefaultSettings())

	r := e.Evaluate("frc", domain.CompanyProfile{IsPublic: true}, allFiled())

	assert.Equal(t, domain.RegulationFRC, r.Regulation)
	assert.Equal(t, domain.StatusCompliant, r.Status())
}

func TestEvaluate_StatusMatchesViolations(t *testing.T) {
	e := NewEngine(DefaultSettings())
	companies := []domain.CompanyProfile{
		{},
		{IsPublic: true, TINNumber: "123", CACNumber: "XX1", BusinessType: "bank"},
		{AnnualRevenue: 1e9, TINNumber: "123456789012", CACNumber: "RC123456", BusinessType: "microfinance bank"},
	}
	facts := []domain.FinancialFacts{{}, allFiled(), {IFRSCompliant: true, CapitalAdequacyRatio: 0.2}}

	for _, c := range companies {
		for _, f := range facts {
			for _, reg := range e.Supported() {
				r := e.Evaluate(reg, c, f)
				assert.Equal(t, domain.DeriveStatus(r.Violations, false), r.Status())
				assert.Len(t, r.MissingRequirements, len(r.Violations))
				assert.GreaterOrEqual(t, r.Score, 0.0)
				assert.LessOrEqual(t, r.Score, 100.0)
			}
		}
	}
}

func TestCheck_CustomThresholds(t *testing.T) {
	s := DefaultSettings()
	s.FRCRevenueThreshold = 10_000_000
	e := NewEngine(s)

	o := e.Check([]domain.Regulation{domain.RegulationFRC}, domain.CompanyProfile{AnnualRevenue: 20_000_000}, domain.FinancialFacts{IFRSCompliant: true})

	assert.Equal(t, 1, o.TotalViolations)
	assert.Equal(t, domain.StatusPartiallyCompliant, o.OverallStatus)
	assert.Equal(t, []string{"FRC: File audited financial statements within 90 days of year-end"}, o.ActionItems)
}

func TestIdentifiers(t *testing.T) {
	assert.True(t, ValidTIN("123456789012"))
	assert.True(t, ValidTIN("12345678-9012"))
	assert.False(t, ValidTIN("1234567890"))
	assert.False(t, ValidTIN("1234567890123"))

	assert.True(t, ValidCAC("RC1234567"))
	assert.False(t, ValidCAC("RC12345678"))
	assert.False(t, ValidCAC("BN123456"))
	assert.False(t, ValidCAC("AB123456"))
}

func TestCACMatchesType(t *testing.T) {
	tests := []struct {
		cac  string
		form string
		want bool
	}{
		{"RC123456", "Private Limited Company", true},
		{"rc123456", "public limited company", true},
		{"RC123456", "Business Name", false},
		{"BN1234567", "Business Name", true},
		{"BN1234567", "Private Limited Company", false},
		{"RC123456", "", true},
		{"", "Business Name", true},
	}
	for _, tt := range tests {
		t.Run(tt.cac+"/"+tt.form, func(t *testing.T) {
			assert.Equal(t, tt.want, CACMatchesType(tt.cac, tt.form))
		})
	}
}

func TestCAMA_CompanyTypeMismatch(t *testing.T) {
	e := NewEngine(DefaultSettings())

	r := e.Evaluate(domain.RegulationCAMA,
		domain.CompanyProfile{CACNumber: "BN1234567", Type: "Private Limited Company"},
		domain.FinancialFacts{AnnualReturnsFiled: true})
	require.Len(t, r.Violations, 1)
	assert.Equal(t, "Company Type", r.Violations[0].ViolationType)
	assert.Equal(t, domain.SeverityLow, r.Violations[0].Severity)
	assert.Equal(t, domain.StatusPartiallyCompliant, r.Status())

	r = e.Evaluate(domain.RegulationCAMA,
		domain.CompanyProfile{CACNumber: "RC123456", Type: "Private Limited Company"},
		domain.FinancialFacts{AnnualReturnsFiled: true})
	assert.Empty(t, r.Violations)
	assert.Contains(t, r.RequirementsMet, "Company type matches CAC registration")
}
