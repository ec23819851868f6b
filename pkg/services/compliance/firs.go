package compliance

import (
	"fmt"
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

func checkFIRS(company domain.CompanyProfile, facts domain.FinancialFacts, s Settings) domain.RegulationResult {
	c := newChecklist(domain.RegulationFIRS)

	switch tin := strings.TrimSpace(company.TINNumber); {
	case tin == "":
		c.fail("TIN registration", domain.Violation{
			ViolationType:  "TIN Missing",
			Description:    "Tax Identification Number not provided",
			Severity:       domain.SeverityCritical,
			Recommendation: "Register for TIN with FIRS immediately",
		})
	case !ValidTIN(tin):
		c.fail("Valid TIN", domain.Violation{
			ViolationType:  "TIN Format",
			Description:    "Invalid Tax Identification Number format",
			Severity:       domain.SeverityHigh,
			Recommendation: "Obtain valid 12-digit TIN from FIRS",
			PenaltyRange:   "₦50,000 - ₦200,000",
		})
	default:
		c.pass("Valid TIN format")
	}

	if company.AnnualRevenue > s.VATRevenueThreshold {
		if facts.VATRegistered {
			c.pass("VAT registration")
		} else {
			c.fail("VAT registration", domain.Violation{
				ViolationType:  "VAT Registration",
				Description:    fmt.Sprintf("Company exceeds VAT threshold (%.0f) but not registered for VAT", s.VATRevenueThreshold),
				Severity:       domain.SeverityHigh,
				Recommendation: "Register for VAT with FIRS within 30 days",
				PenaltyRange:   "₦100,000 - ₦500,000",
			})
		}
	}

	if facts.TaxReturnsFiled {
		c.pass("Tax returns filed")
	} else {
		c.fail("Tax returns filing", domain.Violation{
			ViolationType:  "Tax Filing",
			Description:    "Annual tax returns not filed",
			Severity:       domain.SeverityCritical,
			Recommendation: "File annual tax returns before due date",
			PenaltyRange:   "₦25,000 + 10% of tax due",
			Deadline:       "Within 6 months of financial year-end",
		})
	}
	return c.result()
}
