package tax

import (
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// VAT splits an amount into net and VAT. An inclusive amount already contains
// VAT; an exclusive amount has VAT added on top.
func VAT(amount decimal.Decimal, inclusive bool) domain.VATBreakdown {
	if inclusive {
		vat := amount.Mul(VATRate).Div(one.Add(VATRate))
		return domain.VATBreakdown{
			NetAmount:   amount.Sub(vat),
			VATAmount:   vat,
			GrossAmount: amount,
			Rate:        VATRate,
		}
	}
	vat := amount.Mul(VATRate)
	return domain.VATBreakdown{
		NetAmount:   amount,
		VATAmount:   vat,
		GrossAmount: amount.Add(vat),
		Rate:        VATRate,
	}
}

// WHT deducts withholding tax from a gross payment.
func WHT(amount decimal.Decimal, paymentType string) domain.WHTBreakdown {
	rate := WHTRate(paymentType)
	wht := amount.Mul(rate)
	return domain.WHTBreakdown{
		PaymentType: paymentType,
		GrossAmount: amount,
		Rate:        rate,
		WHTAmount:   wht,
		NetAmount:   amount.Sub(wht),
	}
}

// CIT estimates companies income tax. Losses are not taxed.
func CIT(income decimal.Decimal, size domain.CompanySize) domain.TaxEstimate {
	taxable := income
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	rate := CITRate(size)
	due := taxable.Mul(rate)
	return domain.TaxEstimate{
		CompanySize:    size,
		TaxableIncome:  taxable,
		CITRate:        rate,
		EstimatedCIT:   due,
		AfterTaxIncome: taxable.Sub(due),
	}
}
