package api

import "github.com/shopspring/decimal"

type VATBreakdown struct {
	NetAmount   decimal.Decimal `json:"net_amount"`
	VATAmount   decimal.Decimal `json:"vat_amount"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	Rate        decimal.Decimal `json:"rate"`
}

type WHTBreakdown struct {
	PaymentType string          `json:"payment_type"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	Rate        decimal.Decimal `json:"rate"`
	WHTAmount   decimal.Decimal `json:"wht_amount"`
	NetAmount   decimal.Decimal `json:"net_amount"`
}

type TaxCalculation struct {
	VAT VATBreakdown  `json:"vat"`
	WHT *WHTBreakdown `json:"wht,omitempty"`
}
