package compliance

import (
	"fmt"
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

func checkCAMA(company domain.CompanyProfile, facts domain.FinancialFacts, _ Settings) domain.RegulationResult {
	c := newChecklist(domain.RegulationCAMA)

	switch cac := strings.TrimSpace(company.CACNumber); {
	case cac == "":
		c.fail("CAC registration", domain.Violation{
			ViolationType:  "CAC Missing",
			Description:    "CAC registration number not provided",
			Severity:       domain.SeverityCritical,
			Recommendation: "Register company with Corporate Affairs Commission",
		})
	case !ValidCAC(cac):
		c.fail("Valid CAC registration", domain.Violation{
			ViolationType:  "CAC Registration",
			Description:    "Invalid CAC registration number format",
			Severity:       domain.SeverityCritical,
			Recommendation: "Ensure proper company registration with CAC",
		})
	default:
		c.pass("Valid CAC registration")
		if company.Type == "" {
			break
		}
		if CACMatchesType(cac, company.Type) {
			c.pass("Company type matches CAC registration")
		} else {
			c.fail("Company type matches CAC registration", domain.Violation{
				ViolationType:  "Company Type",
				Description:    fmt.Sprintf("Company type %q does not match CAC registration %s", company.Type, strings.ToUpper(cac)),
				Severity:       domain.SeverityLow,
				Recommendation: "Confirm the registered company type with CAC",
			})
		}
	}

	if facts.AnnualReturnsFiled {
		c.pass("Annual returns filed")
	} else {
		c.fail("Annual returns filing", domain.Violation{
			ViolationType:  "Annual Returns",
			Description:    "Annual returns not filed with CAC",
			Severity:       domain.SeverityMedium,
			Recommendation: "File annual returns with CAC",
			PenaltyRange:   "₦50,000 - ₦200,000",
			Deadline:       "Within 42 days of AGM",
		})
	}
	return c.result()
}
