package ratios

import (
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var (
	inventoryTerms   = []string{"inventory", "stock"}
	costOfSalesTerms = []string{"cost of sales", "cost of goods sold"}
	cashTerms        = []string{"cash", "bank", "call deposit"}
	interestTerms    = []string{"interest"}
)

// Totals aggregates a classified ledger.
func Totals(cl domain.ClassifiedLedger) domain.Totals {
	t := domain.Totals{
		CurrentAssets:         cl.Total(domain.CategoryCurrentAssets),
		NonCurrentAssets:      cl.Total(domain.CategoryNonCurrentAssets),
		CurrentLiabilities:    cl.Total(domain.CategoryCurrentLiabilities),
		NonCurrentLiabilities: cl.Total(domain.CategoryNonCurrentLiabilities),
		Equity:                cl.Total(domain.CategoryEquity),
		Revenue:               cl.Total(domain.CategoryRevenue),
		Expenses:              cl.Total(domain.CategoryExpenses),
		Inventory:             sumMatching(cl[domain.CategoryCurrentAssets], inventoryTerms),
		CostOfSales:           sumMatching(cl[domain.CategoryExpenses], costOfSalesTerms),
		Cash:                  sumMatching(cl[domain.CategoryCurrentAssets], cashTerms),
		InterestExpense:       sumMatching(cl[domain.CategoryExpenses], interestTerms),
	}
	t.TotalAssets = t.CurrentAssets.Add(t.NonCurrentAssets)
	t.TotalLiabilities = t.CurrentLiabilities.Add(t.NonCurrentLiabilities)
	t.NetIncome = t.Revenue.Sub(t.Expenses)
	return t
}

// Compute derives the fixed ratio set from a classified ledger. A ratio whose
// denominator is zero (or negative) is 0.
func Compute(cl domain.ClassifiedLedger) (domain.RatioSet, domain.Totals) {
	t := Totals(cl)
	quickAssets := t.CurrentAssets.Sub(t.Inventory)
	grossProfit := t.Revenue.Sub(t.CostOfSales)

	return domain.RatioSet{
		domain.RatioCurrent:           safeDiv(t.CurrentAssets, t.CurrentLiabilities),
		domain.RatioQuick:             safeDiv(quickAssets, t.CurrentLiabilities),
		domain.RatioDebtToEquity:      safeDiv(t.TotalLiabilities, t.Equity),
		domain.RatioDebtToAssets:      safeDiv(t.TotalLiabilities, t.TotalAssets),
		domain.RatioGrossProfitMargin: safeDiv(grossProfit, t.Revenue),
		domain.RatioNetProfitMargin:   safeDiv(t.NetIncome, t.Revenue),
		domain.RatioReturnOnAssets:    safeDiv(t.NetIncome, t.TotalAssets),
		domain.RatioReturnOnEquity:    safeDiv(t.NetIncome, t.Equity),
		domain.RatioAssetTurnover:     safeDiv(t.Revenue, t.TotalAssets),
	}, t
}

// Supplementary derives the cash ratio and interest coverage from ledger
// totals. Interest coverage is (net income + interest) / interest and is
// omitted when the ledger carries no interest expense, as is the cash ratio
// without current liabilities.
func Supplementary(t domain.Totals) domain.RatioSet {
	out := domain.RatioSet{}
	if t.CurrentLiabilities.IsPositive() {
		out[domain.RatioCash] = safeDiv(t.Cash, t.CurrentLiabilities)
	}
	if t.InterestExpense.IsPositive() {
		ebit := t.NetIncome.Add(t.InterestExpense)
		out[domain.RatioInterestCoverage] = safeDiv(ebit, t.InterestExpense)
	}
	return out
}

func safeDiv(num, den decimal.Decimal) float64 {
	if !den.IsPositive() {
		return 0
	}
	return num.InexactFloat64() / den.InexactFloat64()
}

func sumMatching(accounts map[string]decimal.Decimal, terms []string) decimal.Decimal {
	total := decimal.Zero
	for name, amount := range accounts {
		lower := strings.ToLower(name)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				total = total.Add(amount)
				break
			}
		}
	}
	return total
}
