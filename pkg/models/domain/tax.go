package domain

import "github.com/shopspring/decimal"

type CompanySize string

const (
	CompanySizeSmall  CompanySize = "small"
	CompanySizeMedium CompanySize = "medium"
	CompanySizeLarge  CompanySize = "large"
)

type VATBreakdown struct {
	NetAmount   decimal.Decimal
	VATAmount   decimal.Decimal
	GrossAmount decimal.Decimal
	Rate        decimal.Decimal
}

type WHTBreakdown struct {
	PaymentType string
	GrossAmount decimal.Decimal
	Rate        decimal.Decimal
	WHTAmount   decimal.Decimal
	NetAmount   decimal.Decimal
}

// TaxEstimate is the companies income tax estimate attached to a financial analysis.
type TaxEstimate struct {
	CompanySize    CompanySize
	TaxableIncome  decimal.Decimal
	CITRate        decimal.Decimal
	EstimatedCIT   decimal.Decimal
	AfterTaxIncome decimal.Decimal
}
