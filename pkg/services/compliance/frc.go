package compliance

import "github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"

// checkFRC applies to public companies and those above the FRC revenue threshold.
func checkFRC(company domain.CompanyProfile, facts domain.FinancialFacts, s Settings) domain.RegulationResult {
	c := newChecklist(domain.RegulationFRC)
	if !company.IsPublic && company.AnnualRevenue <= s.FRCRevenueThreshold {
		return c.result()
	}

	if facts.FinancialStatementsFiled {
		c.pass("Annual financial statements filed")
	} else {
		c.fail("Annual financial statements filing", domain.Violation{
			ViolationType:  "Filing Requirement",
			Description:    "Annual financial statements not filed with FRC",
			Severity:       domain.SeverityHigh,
			Recommendation: "File audited financial statements within 90 days of year-end",
			PenaltyRange:   "₦500,000 - ₦2,000,000",
			Deadline:       "Within 90 days of financial year-end",
		})
	}

	if facts.IFRSCompliant {
		c.pass("IFRS compliance")
	} else {
		c.fail("IFRS compliance", domain.Violation{
			ViolationType:  "IFRS Compliance",
			Description:    "Financial statements not prepared in accordance with IFRS",
			Severity:       domain.SeverityCritical,
			Recommendation: "Ensure financial statements comply with Nigerian IFRS",
			PenaltyRange:   "₦1,000,000 - ₦5,000,000",
		})
	}
	return c.result()
}
