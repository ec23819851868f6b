package adapters

import (
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/api"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

func MapVATDomainToApi(v domain.VATBreakdown) api.VATBreakdown {
	return api.VATBreakdown{
		NetAmount:   v.NetAmount,
		VATAmount:   v.VATAmount,
		GrossAmount: v.GrossAmount,
		Rate:        v.Rate,
	}
}

func MapWHTDomainToApi(w domain.WHTBreakdown) api.WHTBreakdown {
	return api.WHTBreakdown{
		PaymentType: w.PaymentType,
		GrossAmount: w.GrossAmount,
		Rate:        w.Rate,
		WHTAmount:   w.WHTAmount,
		NetAmount:   w.NetAmount,
	}
}

// MapTaxCalculationDomainToApi combines a VAT breakdown with an optional
// withholding breakdown.
func MapTaxCalculationDomainToApi(vat domain.VATBreakdown, wht *domain.WHTBreakdown) api.TaxCalculation {
	res := api.TaxCalculation{VAT: MapVATDomainToApi(vat)}
	if wht != nil {
		w := MapWHTDomainToApi(*wht)
		res.WHT = &w
	}
	return res
}
