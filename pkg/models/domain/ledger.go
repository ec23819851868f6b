package domain

import "github.com/shopspring/decimal"

// MaxLedgerAmount bounds the magnitude of a single ledger amount (₦10^12).
var MaxLedgerAmount = decimal.New(1, 12)

type LedgerEntry struct {
	AccountName string
	Amount      decimal.Decimal
}

type AccountCategory string

const (
	CategoryCurrentAssets         AccountCategory = "current_assets"
	CategoryNonCurrentAssets      AccountCategory = "non_current_assets"
	CategoryCurrentLiabilities    AccountCategory = "current_liabilities"
	CategoryNonCurrentLiabilities AccountCategory = "non_current_liabilities"
	CategoryRevenue               AccountCategory = "revenue"
	CategoryExpenses              AccountCategory = "expenses"
	CategoryEquity                AccountCategory = "equity"
	CategoryUnclassified          AccountCategory = "unclassified"
)

// AccountCategories returns every category in classification priority order.
func AccountCategories() []AccountCategory {
	return []AccountCategory{
		CategoryCurrentAssets,
		CategoryNonCurrentAssets,
		CategoryCurrentLiabilities,
		CategoryNonCurrentLiabilities,
		CategoryRevenue,
		CategoryExpenses,
		CategoryEquity,
		CategoryUnclassified,
	}
}

// ClassifiedLedger maps category -> account name -> amount.
type ClassifiedLedger map[AccountCategory]map[string]decimal.Decimal

// NewClassifiedLedger returns a ledger with every category bucket present.
func NewClassifiedLedger() ClassifiedLedger {
	cl := make(ClassifiedLedger, len(AccountCategories()))
	for _, c := range AccountCategories() {
		cl[c] = map[string]decimal.Decimal{}
	}
	return cl
}

// Total sums the amounts of a category.
func (cl ClassifiedLedger) Total(category AccountCategory) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range cl[category] {
		total = total.Add(amount)
	}
	return total
}

// CategoryOf returns the bucket holding the account, if any.
func (cl ClassifiedLedger) CategoryOf(account string) (AccountCategory, bool) {
	for category, accounts := range cl {
		if _, ok := accounts[account]; ok {
			return category, true
		}
	}
	return "", false
}

// AccountCount is the number of distinct accounts across all buckets.
func (cl ClassifiedLedger) AccountCount() int {
	n := 0
	for _, accounts := range cl {
		n += len(accounts)
	}
	return n
}

// Totals holds the aggregates the ratio engine derives from a ClassifiedLedger.
type Totals struct {
	CurrentAssets         decimal.Decimal
	NonCurrentAssets      decimal.Decimal
	TotalAssets           decimal.Decimal
	CurrentLiabilities    decimal.Decimal
	NonCurrentLiabilities decimal.Decimal
	TotalLiabilities      decimal.Decimal
	Equity                decimal.Decimal
	Revenue               decimal.Decimal
	Expenses              decimal.Decimal
	NetIncome             decimal.Decimal
	Inventory             decimal.Decimal
	CostOfSales           decimal.Decimal
	Cash                  decimal.Decimal
	InterestExpense       decimal.Decimal
}

// LeadScheduleLine is one audit category grouping of mapped accounts.
type LeadScheduleLine struct {
	AuditCategory string
	IFRSCode      string
	Balance       decimal.Decimal
	Accounts      []string
}

// MappedAccount is a trial balance account mapped to its audit category.
type MappedAccount struct {
	Account       string
	AuditCategory string
	IFRSCode      string
	Balance       decimal.Decimal
}

// IntegrityReport is the outcome of the accounting sanity checks run over
// ledger totals. Anomalies make the ledger invalid; warnings do not.
type IntegrityReport struct {
	Valid      bool
	Balanced   bool
	Difference decimal.Decimal
	Tolerance  decimal.Decimal
	Anomalies  []string
	Warnings   []string
}

// SampledAccount is one trial balance account picked for substantive testing.
type SampledAccount struct {
	Account string
	Balance decimal.Decimal
}

// SamplingPlan lists the accounts suggested for substantive testing at a
// materiality and risk level.
type SamplingPlan struct {
	Materiality     decimal.Decimal
	RiskLevel       RiskLevel
	SampleSize      int
	MaterialItems   []SampledAccount
	HighRiskSamples []SampledAccount
	Samples         []SampledAccount
}
