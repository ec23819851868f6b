package domain

// CompanyProfile is the company metadata read by compliance and risk rules.
// Every field is optional; zero values mean absent.
type CompanyProfile struct {
	Name          string
	Type          string
	Size          string
	Industry      string
	IsPublic      bool
	AnnualRevenue float64
	BusinessType  string
	CACNumber     string
	TINNumber     string
	TotalAssets   float64
	EmployeeCount int
}

// FinancialFacts are the filing and prudential facts checked by regulation
// handlers. Absent flags read as false.
type FinancialFacts struct {
	FinancialStatementsFiled bool
	IFRSCompliant            bool
	VATRegistered            bool
	TaxReturnsFiled          bool
	AnnualReturnsFiled       bool
	CapitalAdequacyRatio     float64
	LiquidityRatio           float64
}
