package compliance

import (
	"fmt"
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

// checkCBN applies only to banks and other financial institutions.
func checkCBN(company domain.CompanyProfile, facts domain.FinancialFacts, s Settings) domain.RegulationResult {
	c := newChecklist(domain.RegulationCBN)

	businessType := strings.ToLower(company.BusinessType)
	if !strings.Contains(businessType, "bank") && !strings.Contains(businessType, "financial") {
		c.pass("CBN regulations not applicable")
		return c.result()
	}

	if facts.CapitalAdequacyRatio < s.MinCapitalAdequacy {
		c.fail("Adequate capital ratio", domain.Violation{
			ViolationType: "Capital Adequacy",
			Description: fmt.Sprintf("Capital adequacy ratio (%.1f%%) below CBN minimum of %.0f%%",
				facts.CapitalAdequacyRatio*100, s.MinCapitalAdequacy*100),
			Severity:       domain.SeverityCritical,
			Recommendation: "Increase capital to meet CBN requirements",
		})
	} else {
		c.pass("Capital adequacy maintained")
	}

	if facts.LiquidityRatio < s.MinLiquidityRatio {
		c.fail("Adequate liquidity ratio", domain.Violation{
			ViolationType: "Liquidity Ratio",
			Description: fmt.Sprintf("Liquidity ratio (%.1f%%) below CBN minimum of %.0f%%",
				facts.LiquidityRatio*100, s.MinLiquidityRatio*100),
			Severity:       domain.SeverityHigh,
			Recommendation: "Improve liquidity position",
		})
	} else {
		c.pass("Liquidity requirements met")
	}
	return c.result()
}
