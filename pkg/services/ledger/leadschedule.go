package ledger

import (
	"sort"
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	unmappedCategory = "Unmapped"
	unmappedCode     = "N/A"
)

type auditMapping struct {
	category string
	ifrsCode string
}

// defaultAuditMappings keys lower-cased GL account names.
var defaultAuditMappings = map[string]auditMapping{
	"cash and bank":            {"Cash and Cash Equivalents", "IAS 7"},
	"accounts receivable":      {"Trade Receivables", "IFRS 9"},
	"inventory":                {"Inventories", "IAS 2"},
	"prepaid expenses":         {"Other Current Assets", "IAS 1"},
	"property plant equipment": {"Property, Plant and Equipment", "IAS 16"},
	"intangible assets":        {"Intangible Assets", "IAS 38"},
	"goodwill":                 {"Intangible Assets", "IFRS 3"},
	"accounts payable":         {"Trade Payables", "IFRS 9"},
	"accrued expenses":         {"Other Current Liabilities", "IAS 37"},
	"short term loans":         {"Borrowings", "IFRS 9"},
	"long term loans":          {"Borrowings", "IFRS 9"},
	"share capital":            {"Equity", "IAS 1"},
	"retained earnings":        {"Equity", "IAS 1"},
	"sales revenue":            {"Revenue", "IFRS 15"},
	"cost of sales":            {"Cost of Sales", "IAS 2"},
	"operating expenses":       {"Operating Expenses", "IAS 1"},
	"depreciation expense":     {"Operating Expenses", "IAS 16"},
	"amortization expense":     {"Operating Expenses", "IAS 38"},
	"interest expense":         {"Finance Costs", "IAS 23"},
	"income tax expense":       {"Taxation", "IAS 12"},
}

// MapAccounts maps each entry to its audit category and IFRS code by exact
// (case-insensitive) account name. Unknown accounts are reported as Unmapped.
func MapAccounts(entries []domain.LedgerEntry) []domain.MappedAccount {
	mapped := make([]domain.MappedAccount, 0, len(entries))
	for _, e := range entries {
		m, ok := defaultAuditMappings[strings.ToLower(strings.TrimSpace(e.AccountName))]
		if !ok {
			m = auditMapping{category: unmappedCategory, ifrsCode: unmappedCode}
		}
		mapped = append(mapped, domain.MappedAccount{
			Account:       e.AccountName,
			AuditCategory: m.category,
			IFRSCode:      m.ifrsCode,
			Balance:       e.Amount,
		})
	}
	return mapped
}

// BuildLeadSchedule groups mapped accounts by audit category. Each line keeps
// the IFRS code of the first account seen in that category. Lines are sorted
// by category name.
func BuildLeadSchedule(mapped []domain.MappedAccount) []domain.LeadScheduleLine {
	byCategory := map[string]*domain.LeadScheduleLine{}
	for _, m := range mapped {
		line, ok := byCategory[m.AuditCategory]
		if !ok {
			line = &domain.LeadScheduleLine{
				AuditCategory: m.AuditCategory,
				IFRSCode:      m.IFRSCode,
				Balance:       decimal.Zero,
			}
			byCategory[m.AuditCategory] = line
		}
		line.Balance = line.Balance.Add(m.Balance)
		line.Accounts = append(line.Accounts, m.Account)
	}

	schedule := make([]domain.LeadScheduleLine, 0, len(byCategory))
	for _, line := range byCategory {
		schedule = append(schedule, *line)
	}
	sort.Slice(schedule, func(i, j int) bool {
		return schedule[i].AuditCategory < schedule[j].AuditCategory
	})
	return schedule
}
