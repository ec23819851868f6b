package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

// BuildAuditReport flattens an audit run into report sections. Sections that
// were not part of the run are omitted.
func BuildAuditReport(r domain.AuditReport) *domain.Report {
	report := &domain.Report{
		Title:   "Audit Report",
		Company: r.Company,
	}
	if r.Financial != nil {
		report.Sections = append(report.Sections, financialSection(*r.Financial))
	}
	if r.Compliance != nil {
		report.Sections = append(report.Sections, complianceSection(*r.Compliance))
	}
	if r.Risk != nil {
		report.Sections = append(report.Sections, riskSection(*r.Risk))
	}
	return report
}

func financialSection(fa domain.FinancialAnalysis) domain.ReportSection {
	section := domain.ReportSection{
		Title:  "Financial Health",
		Status: string(fa.Health.RiskLevel),
		Summary: map[string]interface{}{
			"Industry":      fa.Health.Industry,
			"Overall Score": fmt.Sprintf("%.1f", fa.Health.OverallScore),
			"Company Size":  string(fa.Tax.CompanySize),
			"Estimated CIT": fa.Tax.EstimatedCIT.StringFixed(2),
			"Ledger Valid":  fmt.Sprintf("%t", fa.Integrity.Valid),
		},
	}
	for _, s := range fa.Health.Scores {
		desc := "no benchmark"
		if s.Benchmarked {
			desc = fmt.Sprintf("score %.1f", s.Score)
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        s.Ratio,
			Value:       fmt.Sprintf("%.4f", s.Value),
			Description: desc,
		})
	}
	for _, line := range fa.LeadSchedule {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        line.AuditCategory,
			Value:       line.Balance.StringFixed(2),
			Unit:        line.IFRSCode,
			Description: strings.Join(line.Accounts, ", "),
		})
	}
	section.Details = append(section.Details, notes("Recommendation", fa.Health.Recommendations)...)
	section.Details = append(section.Details, notes("Compliance Flag", fa.Health.ComplianceFlags)...)
	section.Details = append(section.Details, notes("Integrity Anomaly", fa.Integrity.Anomalies)...)
	section.Details = append(section.Details, notes("Integrity Warning", fa.Integrity.Warnings)...)
	return section
}

func complianceSection(o domain.ComplianceOverview) domain.ReportSection {
	regs := make([]string, 0, len(o.RegulationsChecked))
	for _, reg := range o.RegulationsChecked {
		regs = append(regs, string(reg))
	}
	section := domain.ReportSection{
		Title:  "Regulatory Compliance",
		Status: string(o.OverallStatus),
		Summary: map[string]interface{}{
			"Overall Score":       fmt.Sprintf("%.1f", o.OverallScore),
			"Total Violations":    o.TotalViolations,
			"Critical Violations": o.CriticalViolations,
			"Regulations":         strings.Join(regs, ", "),
		},
	}
	for _, r := range o.PerRegulation {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        string(r.Regulation),
			Value:       string(r.Status()),
			Description: fmt.Sprintf("score %.1f, %d violation(s)", r.Score, len(r.Violations)),
		})
	}
	section.Details = append(section.Details, notes("Action Item", o.ActionItems)...)
	section.Details = append(section.Details, notes("Recommendation", o.Recommendations)...)
	return section
}

func riskSection(a domain.RiskAssessment) domain.ReportSection {
	section := domain.ReportSection{
		Title:  "Risk Assessment",
		Status: string(a.OverallLevel),
		Summary: map[string]interface{}{
			"Overall Score":  fmt.Sprintf("%.1f", a.OverallScore),
			"Critical Risks": len(a.CriticalRisks),
		},
	}
	for _, m := range a.Matrix {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        string(m.Category),
			Value:       string(m.Level),
			Description: fmt.Sprintf("score %.1f, impact %s, probability %s", m.Score, m.Impact, m.Probability),
		})
	}
	section.Details = append(section.Details, notes("Mitigation", a.MitigationStrategies)...)
	section.Details = append(section.Details, notes("Recommendation", a.Recommendations)...)
	return section
}

// BuildBenchmarkReport lists an industry's benchmarks by ratio name.
func BuildBenchmarkReport(industry string, table domain.BenchmarkTable) *domain.Report {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	section := domain.ReportSection{
		Title:   "Industry Benchmarks",
		Status:  industry,
		Summary: map[string]interface{}{"Ratios": len(names)},
	}
	for _, name := range names {
		b := table[name]
		detail := domain.ReportDetail{Name: name, Unit: string(b.Kind)}
		switch b.Kind {
		case domain.BenchmarkOptimalRange:
			detail.Value = fmt.Sprintf("%.2f - %.2f", b.Low, b.High)
		case domain.BenchmarkTarget:
			detail.Value = fmt.Sprintf("%.2f", b.Target)
		}
		section.Details = append(section.Details, detail)
	}
	return &domain.Report{Title: "Benchmarks", Sections: []domain.ReportSection{section}}
}

// BuildTaxReport renders a VAT breakdown and, when given, a withholding tax
// breakdown.
func BuildTaxReport(vat domain.VATBreakdown, wht *domain.WHTBreakdown) *domain.Report {
	report := &domain.Report{Title: "Tax Calculation"}
	report.Sections = append(report.Sections, domain.ReportSection{
		Title: "Value Added Tax",
		Summary: map[string]interface{}{
			"Rate": vat.Rate.String(),
		},
		Details: []domain.ReportDetail{
			{Name: "Net Amount", Value: vat.NetAmount.StringFixed(2)},
			{Name: "VAT Amount", Value: vat.VATAmount.StringFixed(2)},
			{Name: "Gross Amount", Value: vat.GrossAmount.StringFixed(2)},
		},
	})
	if wht != nil {
		report.Sections = append(report.Sections, domain.ReportSection{
			Title: "Withholding Tax",
			Summary: map[string]interface{}{
				"Payment Type": wht.PaymentType,
				"Rate":         wht.Rate.String(),
			},
			Details: []domain.ReportDetail{
				{Name: "Gross Amount", Value: wht.GrossAmount.StringFixed(2)},
				{Name: "WHT Amount", Value: wht.WHTAmount.StringFixed(2)},
				{Name: "Net Amount", Value: wht.NetAmount.StringFixed(2)},
			},
		})
	}
	return report
}

func notes(name string, items []string) []domain.ReportDetail {
	out := make([]domain.ReportDetail, 0, len(items))
	for _, item := range items {
		out = append(out, domain.ReportDetail{Name: name, Value: "", Description: item})
	}
	return out
}
