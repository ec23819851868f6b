package api

type FactorScore struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Score float64 `json:"score"`
}

type RiskComponent struct {
	Category    string        `json:"category"`
	Score       float64       `json:"score"`
	Level       string        `json:"level"`
	Factors     []FactorScore `json:"factors"`
	Risks       []string      `json:"risks"`
	Impact      string        `json:"impact"`
	Probability string        `json:"probability"`
}

type RiskMatrixEntry struct {
	Category    string  `json:"category"`
	Impact      string  `json:"impact"`
	Probability string  `json:"probability"`
	RiskLevel   string  `json:"risk_level"`
	Score       float64 `json:"score"`
}

type CriticalRisk struct {
	Category string   `json:"category"`
	Level    string   `json:"level"`
	Score    float64  `json:"score"`
	KeyRisks []string `json:"key_risks"`
}

type RiskAssessment struct {
	AnalysisID           string            `json:"analysis_id,omitempty"`
	OverallScore         float64           `json:"overall_risk_score"`
	RiskLevel            string            `json:"risk_level"`
	Components           []RiskComponent   `json:"risk_components"`
	Matrix               []RiskMatrixEntry `json:"risk_matrix"`
	CriticalRisks        []CriticalRisk    `json:"critical_risks"`
	MitigationStrategies []string          `json:"mitigation_strategies"`
	Recommendations      []string          `json:"recommendations"`
}
