package api

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

type AuditReport struct {
	AnalysisID string                     `json:"analysis_id"`
	Company    string                     `json:"company"`
	Financial  *FinancialAnalysisResponse `json:"financial_analysis,omitempty"`
	Compliance *ComplianceOverview        `json:"compliance,omitempty"`
	Risk       *RiskAssessment            `json:"risk_assessment,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
