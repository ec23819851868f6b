package ledger

import (
	"sort"
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// sampleMultipliers is the share of accounts sampled per risk level.
var sampleMultipliers = map[domain.RiskLevel]decimal.Decimal{
	domain.RiskLevelLow:      decimal.RequireFromString("0.1"),
	domain.RiskLevelMedium:   decimal.RequireFromString("0.2"),
	domain.RiskLevelHigh:     decimal.RequireFromString("0.4"),
	domain.RiskLevelCritical: decimal.RequireFromString("0.4"),
}

var highRiskAccounts = []string{"revenue", "accounts receivable", "inventory"}

// SuggestSamples picks accounts for substantive testing. Every account whose
// absolute balance reaches materiality is a material item. The sample size is
// the account count times the risk multiplier, rounded down; unknown levels use
// MEDIUM. Samples are the largest balances by magnitude, ties broken by name.
func SuggestSamples(entries []domain.LedgerEntry, materiality decimal.Decimal, level domain.RiskLevel) domain.SamplingPlan {
	multiplier, ok := sampleMultipliers[level]
	if !ok {
		level = domain.RiskLevelMedium
		multiplier = sampleMultipliers[level]
	}
	size := int(decimal.NewFromInt(int64(len(entries))).Mul(multiplier).IntPart())

	plan := domain.SamplingPlan{
		Materiality:     materiality,
		RiskLevel:       level,
		SampleSize:      size,
		MaterialItems:   []domain.SampledAccount{},
		HighRiskSamples: []domain.SampledAccount{},
		Samples:         []domain.SampledAccount{},
	}

	ranked := make([]domain.SampledAccount, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, domain.SampledAccount{Account: e.AccountName, Balance: e.Amount})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if c := ranked[i].Balance.Abs().Cmp(ranked[j].Balance.Abs()); c != 0 {
			return c > 0
		}
		return ranked[i].Account < ranked[j].Account
	})

	for _, a := range ranked {
		if a.Balance.Abs().GreaterThanOrEqual(materiality) {
			plan.MaterialItems = append(plan.MaterialItems, a)
		}
	}
	if size == 0 {
		return plan
	}
	for _, name := range highRiskAccounts {
		for _, a := range ranked {
			if strings.EqualFold(strings.TrimSpace(a.Account), name) {
				plan.HighRiskSamples = append(plan.HighRiskSamples, a)
			}
		}
	}
	plan.Samples = append(plan.Samples, ranked[:size]...)
	return plan
}
