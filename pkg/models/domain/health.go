package domain

// RatioScore is a ratio value with its benchmark score.
type RatioScore struct {
	Ratio       string
	Value       float64
	Score       float64
	Benchmarked bool
}

type HealthAssessment struct {
	Industry        string
	OverallScore    float64
	RiskLevel       RiskLevel
	Scores          []RatioScore
	Strengths       []RatioScore
	Weaknesses      []RatioScore
	Recommendations []string
	ComplianceFlags []string
}

type FinancialAnalysis struct {
	Classification ClassifiedLedger
	Totals         Totals
	Ratios         RatioSet
	Health         HealthAssessment
	LeadSchedule   []LeadScheduleLine
	Tax            TaxEstimate
	Integrity      IntegrityReport
}
