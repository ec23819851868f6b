package domain

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// RiskLevel is the four-way banding shared by health, risk components and
// overall risk.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// LevelForScore bands a 0-100 score: >=80 LOW, >=60 MEDIUM, >=40 HIGH, else CRITICAL.
func LevelForScore(score float64) RiskLevel {
	switch {
	case score >= 80:
		return RiskLevelLow
	case score >= 60:
		return RiskLevelMedium
	case score >= 40:
		return RiskLevelHigh
	default:
		return RiskLevelCritical
	}
}

// AuditReport bundles the results of one full audit run. Sections that were
// not requested are nil.
type AuditReport struct {
	Company    string
	Financial  *FinancialAnalysis
	Compliance *ComplianceOverview
	Risk       *RiskAssessment
}
