package benchmark

import (
	"sort"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

const (
	strengthScore = 80.0
	weaknessScore = 40.0
)

// Assess scores every ratio in the set against the table and rolls the scores
// up into a health assessment. Ratios without a benchmark count as
// NeutralScore in the mean. The result does not depend on map iteration order.
// Industry is left for the caller to fill.
func Assess(ratios domain.RatioSet, table domain.BenchmarkTable) domain.HealthAssessment {
	h := domain.HealthAssessment{
		Scores:          []domain.RatioScore{},
		Strengths:       []domain.RatioScore{},
		Weaknesses:      []domain.RatioScore{},
		Recommendations: []string{},
		ComplianceFlags: []string{},
	}

	total := 0.0
	for _, name := range orderedNames(ratios) {
		value := ratios[name]
		score, ok := ScoreRatio(name, value, table)
		rs := domain.RatioScore{Ratio: name, Value: value, Score: score, Benchmarked: ok}
		h.Scores = append(h.Scores, rs)
		total += score
		switch {
		case score >= strengthScore:
			h.Strengths = append(h.Strengths, rs)
		case score <= weaknessScore:
			h.Weaknesses = append(h.Weaknesses, rs)
		}
	}
	if len(h.Scores) > 0 {
		h.OverallScore = total / float64(len(h.Scores))
	}
	h.RiskLevel = domain.LevelForScore(h.OverallScore)
	h.Recommendations = recommendations(ratios)
	h.ComplianceFlags = complianceFlags(ratios)
	return h
}

// orderedNames lists the known ratios first in their fixed order, followed
// by any extra ratios sorted by name.
func orderedNames(ratios domain.RatioSet) []string {
	names := make([]string, 0, len(ratios))
	known := make(map[string]bool, len(ratios))
	for _, name := range domain.RatioNames() {
		known[name] = true
		if _, ok := ratios[name]; ok {
			names = append(names, name)
		}
	}
	var extra []string
	for name := range ratios {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

func recommendations(ratios domain.RatioSet) []string {
	recs := []string{}
	current, hasCurrent := ratios[domain.RatioCurrent]
	if hasCurrent {
		switch {
		case current < 1.0:
			recs = append(recs, "Improve liquidity by reducing current liabilities or increasing current assets")
		case current > 3.0:
			recs = append(recs, "Consider investing excess current assets for better returns")
		}
	}
	if de, ok := ratios[domain.RatioDebtToEquity]; ok && de > 1.0 {
		recs = append(recs, "High leverage detected. Consider debt reduction or equity financing")
	}
	if npm, ok := ratios[domain.RatioNetProfitMargin]; ok && npm < 0.05 {
		recs = append(recs, "Low profitability. Review cost structure and pricing strategy")
	}
	return recs
}

func complianceFlags(ratios domain.RatioSet) []string {
	flags := []string{}
	if current, ok := ratios[domain.RatioCurrent]; ok && current < 1.0 {
		flags = append(flags, "Current ratio below CBN minimum requirement of 1.0")
	}
	if de, ok := ratios[domain.RatioDebtToEquity]; ok && de > 2.0 {
		flags = append(flags, "High leverage may require enhanced disclosure under FRC guidelines")
	}
	return flags
}
