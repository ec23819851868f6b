package ledger

import (
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

// rule maps account names containing any keyword (and none of the excluded
// terms) to a category.
type rule struct {
	category domain.AccountCategory
	keywords []string
	exclude  []string
}

func (r rule) matches(name string) bool {
	for _, term := range r.exclude {
		if strings.Contains(name, term) {
			return false
		}
	}
	for _, kw := range r.keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// Classifier maps ledger lines to account categories using keyword rules that
// are evaluated in a fixed priority order. The first matching rule wins:
// current assets, non-current assets, current liabilities, non-current
// liabilities, revenue, expenses, equity. Keyword sets overlap ("accrued
// expenses" is both a liability and an expense word), so the order is part of
// the classification contract.
type Classifier struct {
	rules []rule
}

func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules()}
}

func defaultRules() []rule {
	return []rule{
		{
			category: domain.CategoryCurrentAssets,
			keywords: []string{
				"cash", "bank", "petty cash", "call deposit", "treasury bills",
				"accounts receivable", "trade receivables", "debtors",
				"inventory", "stock", "raw materials", "work in progress",
				"prepaid expenses", "advances", "short term investments",
			},
			exclude: []string{"overdraft"},
		},
		{
			category: domain.CategoryNonCurrentAssets,
			keywords: []string{
				"property", "plant", "equipment", "ppe", "building", "land",
				"motor vehicle", "furniture", "computer", "machinery",
				"intangible assets", "goodwill", "patents", "software",
				"long term investments", "investments in subsidiaries",
			},
		},
		{
			category: domain.CategoryCurrentLiabilities,
			keywords: []string{
				"accounts payable", "trade payables", "creditors",
				"accrued expenses", "accruals", "short term loans",
				"bank overdraft", "vat payable", "paye payable",
				"withholding tax", "dividend payable", "current portion",
			},
		},
		{
			category: domain.CategoryNonCurrentLiabilities,
			keywords: []string{
				"long term loans", "bonds payable", "mortgage",
				"deferred tax liability", "pension obligations",
				"long term provisions",
			},
		},
		{
			category: domain.CategoryRevenue,
			keywords: []string{
				"sales", "revenue", "service revenue", "interest income",
				"dividend income", "rental income", "other income",
				"gain on disposal",
			},
			exclude: []string{"cost of"},
		},
		{
			category: domain.CategoryExpenses,
			keywords: []string{
				"cost of sales", "cost of goods sold", "salaries", "wages",
				"rent expense", "utilities", "depreciation", "amortization",
				"interest expense", "bad debt", "professional fees",
				"audit fees", "insurance", "repairs", "maintenance", "expense",
			},
		},
		{
			category: domain.CategoryEquity,
			keywords: []string{"equity", "capital", "retained earnings"},
		},
	}
}

// CategoryFor returns the category of a single account name.
func (c *Classifier) CategoryFor(accountName string) domain.AccountCategory {
	name := strings.ToLower(strings.TrimSpace(accountName))
	for _, r := range c.rules {
		if r.matches(name) {
			return r.category
		}
	}
	return domain.CategoryUnclassified
}

// Classify buckets every entry into exactly one category. Entries that share
// an account name are summed.
func (c *Classifier) Classify(entries []domain.LedgerEntry) domain.ClassifiedLedger {
	classified := domain.NewClassifiedLedger()
	for _, e := range entries {
		bucket := classified[c.CategoryFor(e.AccountName)]
		if prev, ok := bucket[e.AccountName]; ok {
			bucket[e.AccountName] = prev.Add(e.Amount)
			continue
		}
		bucket[e.AccountName] = e.Amount
	}
	return classified
}
