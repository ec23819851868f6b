package api

// CompanyInfo is the company metadata accepted by every endpoint.
type CompanyInfo struct {
	Name          string  `json:"name" yaml:"name"`
	Type          string  `json:"type" yaml:"type"`
	Size          string  `json:"size" yaml:"size"`
	Industry      string  `json:"industry" yaml:"industry"`
	IsPublic      bool    `json:"is_public" yaml:"is_public"`
	AnnualRevenue float64 `json:"annual_revenue" yaml:"annual_revenue" validate:"gte=0"`
	BusinessType  string  `json:"business_type" yaml:"business_type"`
	CACNumber     string  `json:"cac_number" yaml:"cac_number"`
	TINNumber     string  `json:"tin_number" yaml:"tin_number"`
	TotalAssets   float64 `json:"total_assets" yaml:"total_assets" validate:"gte=0"`
	EmployeeCount int     `json:"employee_count" yaml:"employee_count" validate:"gte=0"`
}

type FinancialFacts struct {
	FinancialStatementsFiled bool    `json:"financial_statements_filed" yaml:"financial_statements_filed"`
	IFRSCompliant            bool    `json:"ifrs_compliant" yaml:"ifrs_compliant"`
	VATRegistered            bool    `json:"vat_registered" yaml:"vat_registered"`
	TaxReturnsFiled          bool    `json:"tax_returns_filed" yaml:"tax_returns_filed"`
	AnnualReturnsFiled       bool    `json:"annual_returns_filed" yaml:"annual_returns_filed"`
	CapitalAdequacyRatio     float64 `json:"capital_adequacy_ratio" yaml:"capital_adequacy_ratio"`
	LiquidityRatio           float64 `json:"liquidity_ratio" yaml:"liquidity_ratio"`
}

type FinancialAnalysisRequest struct {
	TrialBalance  map[string]any `json:"trial_balance" yaml:"trial_balance" validate:"required,min=3"`
	Industry      string         `json:"industry" yaml:"industry"`
	EmployeeCount int            `json:"employee_count" yaml:"employee_count" validate:"gte=0"`
}

type ComplianceCheckRequest struct {
	Company     CompanyInfo    `json:"company" yaml:"company"`
	Financial   FinancialFacts `json:"financial_data" yaml:"financial_data"`
	Regulations []string       `json:"regulations" yaml:"regulations" validate:"required,min=1,dive,required"`
}

type RiskAssessmentRequest struct {
	Company CompanyInfo        `json:"company" yaml:"company"`
	Metrics map[string]float64 `json:"financial_data" yaml:"financial_data" validate:"required"`
}

// AuditRequest drives a full audit. Sections whose inputs are absent are skipped.
type AuditRequest struct {
	Company      CompanyInfo        `json:"company" yaml:"company"`
	Financial    FinancialFacts     `json:"financial_data" yaml:"financial_data"`
	TrialBalance map[string]any     `json:"trial_balance" yaml:"trial_balance" validate:"omitempty,min=3"`
	Regulations  []string           `json:"regulations" yaml:"regulations" validate:"omitempty,dive,required"`
	Metrics      map[string]float64 `json:"metrics" yaml:"metrics"`
}

type SamplingRequest struct {
	TrialBalance map[string]any `json:"trial_balance" yaml:"trial_balance" validate:"required,min=1"`
	Materiality  float64        `json:"materiality" yaml:"materiality" validate:"gt=0"`
	RiskLevel    string         `json:"risk_level" yaml:"risk_level" validate:"omitempty,oneof=low medium high critical LOW MEDIUM HIGH CRITICAL"`
}
