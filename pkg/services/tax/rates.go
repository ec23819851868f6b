package tax

import (
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var (
	// VATRate is the standard Nigerian VAT rate.
	VATRate = decimal.RequireFromString("0.075")
	// DefaultWHTRate applies to payment types without a specific rate.
	DefaultWHTRate = decimal.RequireFromString("0.05")
)

var citRates = map[domain.CompanySize]decimal.Decimal{
	domain.CompanySizeSmall:  decimal.Zero,
	domain.CompanySizeMedium: decimal.RequireFromString("0.20"),
	domain.CompanySizeLarge:  decimal.RequireFromString("0.30"),
}

var whtRates = map[string]decimal.Decimal{
	"dividends":         decimal.RequireFromString("0.10"),
	"interest":          decimal.RequireFromString("0.10"),
	"rent":              decimal.RequireFromString("0.10"),
	"royalties":         decimal.RequireFromString("0.10"),
	"professional_fees": DefaultWHTRate,
	"construction":      DefaultWHTRate,
	"consultancy":       DefaultWHTRate,
	"commission":        DefaultWHTRate,
}

// CITRate returns the companies income tax rate for a size class. Unknown
// sizes pay the large company rate.
func CITRate(size domain.CompanySize) decimal.Decimal {
	if r, ok := citRates[domain.CompanySize(strings.ToLower(string(size)))]; ok {
		return r
	}
	return citRates[domain.CompanySizeLarge]
}

// WHTRate returns the withholding tax rate for a payment type.
func WHTRate(paymentType string) decimal.Decimal {
	if r, ok := whtRates[strings.ToLower(strings.TrimSpace(paymentType))]; ok {
		return r
	}
	return DefaultWHTRate
}

// PaymentTypes lists payment types with a specific withholding rate.
func PaymentTypes() []string {
	return []string{
		"commission",
		"construction",
		"consultancy",
		"dividends",
		"interest",
		"professional_fees",
		"rent",
		"royalties",
	}
}
