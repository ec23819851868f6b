package api

import "github.com/shopspring/decimal"

type Totals struct {
	CurrentAssets         decimal.Decimal `json:"current_assets"`
	NonCurrentAssets      decimal.Decimal `json:"non_current_assets"`
	TotalAssets           decimal.Decimal `json:"total_assets"`
	CurrentLiabilities    decimal.Decimal `json:"current_liabilities"`
	NonCurrentLiabilities decimal.Decimal `json:"non_current_liabilities"`
	TotalLiabilities      decimal.Decimal `json:"total_liabilities"`
	Equity                decimal.Decimal `json:"equity"`
	Revenue               decimal.Decimal `json:"revenue"`
	Expenses              decimal.Decimal `json:"expenses"`
	NetIncome             decimal.Decimal `json:"net_income"`
	Inventory             decimal.Decimal `json:"inventory"`
	CostOfSales           decimal.Decimal `json:"cost_of_sales"`
	Cash                  decimal.Decimal `json:"cash"`
	InterestExpense       decimal.Decimal `json:"interest_expense"`
}

type RatioScore struct {
	Ratio       string  `json:"ratio"`
	Value       float64 `json:"value"`
	Score       float64 `json:"score"`
	Benchmarked bool    `json:"benchmarked"`
}

type HealthAssessment struct {
	Industry        string       `json:"industry"`
	OverallScore    float64      `json:"overall_score"`
	RiskLevel       string       `json:"risk_level"`
	Scores          []RatioScore `json:"scores"`
	Strengths       []RatioScore `json:"strengths"`
	Weaknesses      []RatioScore `json:"weaknesses"`
	Recommendations []string     `json:"recommendations"`
	ComplianceFlags []string     `json:"compliance_flags"`
}

type LeadScheduleLine struct {
	AuditCategory string          `json:"audit_category"`
	IFRSCode      string          `json:"ifrs_code"`
	Balance       decimal.Decimal `json:"balance"`
	Accounts      []string        `json:"accounts"`
}

type TaxEstimate struct {
	CompanySize    string          `json:"company_size"`
	TaxableIncome  decimal.Decimal `json:"taxable_income"`
	CITRate        decimal.Decimal `json:"cit_rate"`
	EstimatedCIT   decimal.Decimal `json:"estimated_cit"`
	AfterTaxIncome decimal.Decimal `json:"after_tax_income"`
}

type IntegrityReport struct {
	Valid      bool            `json:"valid"`
	Balanced   bool            `json:"balanced"`
	Difference decimal.Decimal `json:"difference"`
	Tolerance  decimal.Decimal `json:"tolerance"`
	Anomalies  []string        `json:"anomalies"`
	Warnings   []string        `json:"warnings"`
}

type FinancialAnalysisResponse struct {
	AnalysisID     string                                `json:"analysis_id,omitempty"`
	Classification map[string]map[string]decimal.Decimal `json:"classification"`
	Totals         Totals                                `json:"totals"`
	Ratios         map[string]float64                    `json:"ratios"`
	Health         HealthAssessment                      `json:"health"`
	LeadSchedule   []LeadScheduleLine                    `json:"lead_schedule"`
	Tax            TaxEstimate                           `json:"tax"`
	Integrity      IntegrityReport                       `json:"integrity"`
}

type Benchmark struct {
	Ratio  string    `json:"ratio"`
	Kind   string    `json:"kind"`
	Range  []float64 `json:"optimal_range,omitempty"`
	Target *float64  `json:"target,omitempty"`
}

type BenchmarkTable struct {
	Industry   string      `json:"industry"`
	Benchmarks []Benchmark `json:"benchmarks"`
}

type SampledAccount struct {
	Account string          `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

type SamplingPlanResponse struct {
	AnalysisID      string           `json:"analysis_id,omitempty"`
	Materiality     decimal.Decimal  `json:"materiality"`
	RiskLevel       string           `json:"risk_level"`
	SampleSize      int              `json:"sample_size"`
	MaterialItems   []SampledAccount `json:"material_items"`
	HighRiskSamples []SampledAccount `json:"high_risk_samples"`
	Samples         []SampledAccount `json:"samples"`
}
