package api

type Violation struct {
	Regulation     string   `json:"regulation"`
	ViolationType  string   `json:"violation_type"`
	Description    string   `json:"description"`
	Severity       Severity `json:"severity"`
	Recommendation string   `json:"recommendation"`
	PenaltyRange   string   `json:"penalty_range,omitempty"`
	Deadline       string   `json:"deadline,omitempty"`
}

type RegulationResult struct {
	Regulation          string      `json:"regulation"`
	Status              string      `json:"status"`
	Score               float64     `json:"score"`
	Violations          []Violation `json:"violations"`
	RequirementsMet     []string    `json:"requirements_met"`
	MissingRequirements []string    `json:"missing_requirements"`
}

type ComplianceOverview struct {
	AnalysisID         string             `json:"analysis_id,omitempty"`
	OverallStatus      string             `json:"overall_status"`
	OverallScore       float64            `json:"overall_score"`
	TotalViolations    int                `json:"total_violations"`
	CriticalViolations int                `json:"critical_violations"`
	RegulationsChecked []string           `json:"regulations_checked"`
	DetailedResults    []RegulationResult `json:"detailed_results"`
	Recommendations    []string           `json:"recommendations"`
	ActionItems        []string           `json:"action_items"`
}
