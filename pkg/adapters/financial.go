package adapters

import (
	"sort"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/api"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

func MapTotalsDomainToApi(t domain.Totals) api.Totals {
	return api.Totals{
		CurrentAssets:         t.CurrentAssets,
		NonCurrentAssets:      t.NonCurrentAssets,
		TotalAssets:           t.TotalAssets,
		CurrentLiabilities:    t.CurrentLiabilities,
		NonCurrentLiabilities: t.NonCurrentLiabilities,
		TotalLiabilities:      t.TotalLiabilities,
		Equity:                t.Equity,
		Revenue:               t.Revenue,
		Expenses:              t.Expenses,
		NetIncome:             t.NetIncome,
		Inventory:             t.Inventory,
		CostOfSales:           t.CostOfSales,
		Cash:                  t.Cash,
		InterestExpense:       t.InterestExpense,
	}
}

func mapRatioScores(scores []domain.RatioScore) []api.RatioScore {
	res := make([]api.RatioScore, 0, len(scores))
	for _, s := range scores {
		res = append(res, api.RatioScore{
			Ratio:       s.Ratio,
			Value:       s.Value,
			Score:       s.Score,
			Benchmarked: s.Benchmarked,
		})
	}
	return res
}

func MapHealthDomainToApi(h domain.HealthAssessment) api.HealthAssessment {
	return api.HealthAssessment{
		Industry:        h.Industry,
		OverallScore:    h.OverallScore,
		RiskLevel:       string(h.RiskLevel),
		Scores:          mapRatioScores(h.Scores),
		Strengths:       mapRatioScores(h.Strengths),
		Weaknesses:      mapRatioScores(h.Weaknesses),
		Recommendations: nonNil(h.Recommendations),
		ComplianceFlags: nonNil(h.ComplianceFlags),
	}
}

func MapTaxEstimateDomainToApi(t domain.TaxEstimate) api.TaxEstimate {
	return api.TaxEstimate{
		CompanySize:    string(t.CompanySize),
		TaxableIncome:  t.TaxableIncome,
		CITRate:        t.CITRate,
		EstimatedCIT:   t.EstimatedCIT,
		AfterTaxIncome: t.AfterTaxIncome,
	}
}

func MapFinancialAnalysisDomainToApi(fa domain.FinancialAnalysis) api.FinancialAnalysisResponse {
	res := api.FinancialAnalysisResponse{
		Classification: make(map[string]map[string]decimal.Decimal, len(fa.Classification)),
		Totals:         MapTotalsDomainToApi(fa.Totals),
		Ratios:         make(map[string]float64, len(fa.Ratios)),
		Health:         MapHealthDomainToApi(fa.Health),
		LeadSchedule:   make([]api.LeadScheduleLine, 0, len(fa.LeadSchedule)),
		Tax:            MapTaxEstimateDomainToApi(fa.Tax),
		Integrity: api.IntegrityReport{
			Valid:      fa.Integrity.Valid,
			Balanced:   fa.Integrity.Balanced,
			Difference: fa.Integrity.Difference,
			Tolerance:  fa.Integrity.Tolerance,
			Anomalies:  nonNil(fa.Integrity.Anomalies),
			Warnings:   nonNil(fa.Integrity.Warnings),
		},
	}
	for cat, accounts := range fa.Classification {
		bucket := make(map[string]decimal.Decimal, len(accounts))
		for name, amount := range accounts {
			bucket[name] = amount
		}
		res.Classification[string(cat)] = bucket
	}
	for name, v := range fa.Ratios {
		res.Ratios[name] = v
	}
	for _, line := range fa.LeadSchedule {
		res.LeadSchedule = append(res.LeadSchedule, api.LeadScheduleLine{
			AuditCategory: line.AuditCategory,
			IFRSCode:      line.IFRSCode,
			Balance:       line.Balance,
			Accounts:      nonNil(line.Accounts),
		})
	}
	return res
}

// MapBenchmarkTableDomainToApi lists benchmarks sorted by ratio name.
func MapBenchmarkTableDomainToApi(industry string, t domain.BenchmarkTable) api.BenchmarkTable {
	res := api.BenchmarkTable{
		Industry:   industry,
		Benchmarks: make([]api.Benchmark, 0, len(t)),
	}
	for name, b := range t {
		entry := api.Benchmark{Ratio: name, Kind: string(b.Kind)}
		switch b.Kind {
		case domain.BenchmarkOptimalRange:
			entry.Range = []float64{b.Low, b.High}
		case domain.BenchmarkTarget:
			target := b.Target
			entry.Target = &target
		}
		res.Benchmarks = append(res.Benchmarks, entry)
	}
	sort.Slice(res.Benchmarks, func(i, j int) bool {
		return res.Benchmarks[i].Ratio < res.Benchmarks[j].Ratio
	})
	return res
}

func MapSamplingPlanDomainToApi(plan domain.SamplingPlan) api.SamplingPlanResponse {
	return api.SamplingPlanResponse{
		Materiality:     plan.Materiality,
		RiskLevel:       string(plan.RiskLevel),
		SampleSize:      plan.SampleSize,
		MaterialItems:   mapSampledAccounts(plan.MaterialItems),
		HighRiskSamples: mapSampledAccounts(plan.HighRiskSamples),
		Samples:         mapSampledAccounts(plan.Samples),
	}
}

func mapSampledAccounts(accounts []domain.SampledAccount) []api.SampledAccount {
	out := make([]api.SampledAccount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, api.SampledAccount{Account: a.Account, Balance: a.Balance})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
