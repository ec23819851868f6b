package analysis

import (
	"context"
	"fmt"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/benchmark"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/compliance"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/ledger"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/ratios"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/risk"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/tax"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// FinancialInput is one ledger to analyse.
type FinancialInput struct {
	Entries       []domain.LedgerEntry
	Industry      string
	EmployeeCount int
}

type ComplianceInput struct {
	Company     domain.CompanyProfile
	Facts       domain.FinancialFacts
	Regulations []domain.Regulation
}

// AuditInput drives a full audit. Metrics carries extra risk metrics (cash
// ratio, interest coverage, growth, concentration) that the ledger cannot
// provide; they override ledger-derived values of the same name.
type AuditInput struct {
	Company     domain.CompanyProfile
	Facts       domain.FinancialFacts
	Entries     []domain.LedgerEntry
	Regulations []domain.Regulation
	Metrics     domain.RatioSet
}

// SamplingInput asks for substantive testing samples from a ledger.
type SamplingInput struct {
	Entries     []domain.LedgerEntry
	Materiality decimal.Decimal
	RiskLevel   domain.RiskLevel
}

type Service interface {
	Benchmarks(ctx context.Context, industry string) (domain.BenchmarkTable, error)
	AnalyzeFinancials(ctx context.Context, in FinancialInput) (domain.FinancialAnalysis, error)
	CheckCompliance(ctx context.Context, in ComplianceInput) (domain.ComplianceOverview, error)
	AssessRisk(ctx context.Context, in domain.RiskInputs) (domain.RiskAssessment, error)
	Audit(ctx context.Context, in AuditInput) (domain.AuditReport, error)
	SuggestSamples(ctx context.Context, in SamplingInput) (domain.SamplingPlan, error)
}

type Dependencies struct {
	Classifier *ledger.Classifier
	Benchmarks benchmark.Provider
	Compliance *compliance.Engine
	Risk       *risk.Aggregator
}

// DefaultDependencies wires the built-in benchmark tables and thresholds.
func DefaultDependencies() Dependencies {
	return Dependencies{
		Classifier: ledger.NewClassifier(),
		Benchmarks: benchmark.NewStaticProvider(),
		Compliance: compliance.NewEngine(compliance.DefaultSettings()),
		Risk:       risk.NewAggregator(),
	}
}

type service struct {
	classifier *ledger.Classifier
	benchmarks benchmark.Provider
	compliance *compliance.Engine
	risk       *risk.Aggregator
}

func NewService(deps Dependencies) Service {
	defaults := DefaultDependencies()
	if deps.Classifier == nil {
		deps.Classifier = defaults.Classifier
	}
	if deps.Benchmarks == nil {
		deps.Benchmarks = defaults.Benchmarks
	}
	if deps.Compliance == nil {
		deps.Compliance = defaults.Compliance
	}
	if deps.Risk == nil {
		deps.Risk = defaults.Risk
	}
	return &service{
		classifier: deps.Classifier,
		benchmarks: deps.Benchmarks,
		compliance: deps.Compliance,
		risk:       deps.Risk,
	}
}

func (s *service) Benchmarks(ctx context.Context, industry string) (domain.BenchmarkTable, error) {
	table, err := s.benchmarks.Benchmarks(industry)
	if err != nil {
		return nil, fmt.Errorf("failed to load benchmarks for %q: %w", industry, err)
	}
	zerolog.Ctx(ctx).Debug().
		Str("industry", industry).
		Int("ratios", len(table)).
		Msg("benchmarks loaded")
	return table, nil
}

// AnalyzeFinancials runs classification, ratios and benchmark scoring in that
// order, then attaches the lead schedule and a CIT estimate.
func (s *service) AnalyzeFinancials(ctx context.Context, in FinancialInput) (domain.FinancialAnalysis, error) {
	logger := zerolog.Ctx(ctx)

	if err := ledger.ValidateEntries(in.Entries); err != nil {
		return domain.FinancialAnalysis{}, err
	}
	table, err := s.Benchmarks(ctx, in.Industry)
	if err != nil {
		return domain.FinancialAnalysis{}, err
	}
	if err := benchmark.Validate(map[string]domain.BenchmarkTable{benchmark.GeneralIndustry: table}); err != nil {
		return domain.FinancialAnalysis{}, err
	}

	classified := s.classifier.Classify(in.Entries)
	ratioSet, totals := ratios.Compute(classified)
	health := benchmark.Assess(ratioSet, table)
	health.Industry = in.Industry

	size := tax.ClassifyCompanySize(totals.Revenue, totals.TotalAssets, in.EmployeeCount)
	integrity := ledger.CheckIntegrity(totals)
	if !integrity.Valid {
		logger.Warn().
			Strs("anomalies", integrity.Anomalies).
			Msg("ledger failed integrity checks")
	}

	logger.Info().
		Str("industry", in.Industry).
		Int("accounts", classified.AccountCount()).
		Float64("health_score", health.OverallScore).
		Msg("financial analysis completed")

	return domain.FinancialAnalysis{
		Classification: classified,
		Totals:         totals,
		Ratios:         ratioSet,
		Health:         health,
		LeadSchedule:   ledger.BuildLeadSchedule(ledger.MapAccounts(in.Entries)),
		Tax:            tax.CIT(totals.NetIncome, size),
		Integrity:      integrity,
	}, nil
}

func (s *service) CheckCompliance(ctx context.Context, in ComplianceInput) (domain.ComplianceOverview, error) {
	logger := zerolog.Ctx(ctx)

	overview := s.compliance.Check(in.Regulations, in.Company, in.Facts)
	for _, r := range overview.PerRegulation {
		logger.Debug().
			Str("regulation", string(r.Regulation)).
			Str("status", string(r.Status())).
			Int("violations", len(r.Violations)).
			Msg("regulation evaluated")
	}
	logger.Info().
		Str("status", string(overview.OverallStatus)).
		Int("violations", overview.TotalViolations).
		Msg("compliance check completed")
	return overview, nil
}

func (s *service) AssessRisk(ctx context.Context, in domain.RiskInputs) (domain.RiskAssessment, error) {
	assessment := s.risk.Assess(in)
	zerolog.Ctx(ctx).Info().
		Str("industry", in.Industry).
		Float64("score", assessment.OverallScore).
		Str("level", string(assessment.OverallLevel)).
		Msg("risk assessment completed")
	return assessment, nil
}

func (s *service) SuggestSamples(ctx context.Context, in SamplingInput) (domain.SamplingPlan, error) {
	if err := ledger.ValidateEntries(in.Entries); err != nil {
		return domain.SamplingPlan{}, err
	}
	if !in.Materiality.IsPositive() {
		return domain.SamplingPlan{}, &ledger.ValidationError{Account: "materiality", Reason: "must be positive"}
	}
	plan := ledger.SuggestSamples(in.Entries, in.Materiality, in.RiskLevel)
	zerolog.Ctx(ctx).Info().
		Str("level", string(plan.RiskLevel)).
		Int("material_items", len(plan.MaterialItems)).
		Int("sample_size", plan.SampleSize).
		Msg("sampling plan prepared")
	return plan, nil
}

// Audit runs the financial, compliance and risk pipelines concurrently. Each
// pipeline is skipped when its inputs are absent. The risk pipeline derives
// its own ratios from the ledger so that it does not wait on the financial one.
func (s *service) Audit(ctx context.Context, in AuditInput) (domain.AuditReport, error) {
	report := domain.AuditReport{Company: in.Company.Name}
	g, gctx := errgroup.WithContext(ctx)

	if len(in.Entries) > 0 {
		g.Go(func() error {
			fa, err := s.AnalyzeFinancials(gctx, FinancialInput{
				Entries:       in.Entries,
				Industry:      in.Company.Industry,
				EmployeeCount: in.Company.EmployeeCount,
			})
			if err != nil {
				return fmt.Errorf("financial analysis failed: %w", err)
			}
			report.Financial = &fa
			return nil
		})
	}

	if len(in.Regulations) > 0 {
		g.Go(func() error {
			overview, err := s.CheckCompliance(gctx, ComplianceInput{
				Company:     in.Company,
				Facts:       in.Facts,
				Regulations: in.Regulations,
			})
			if err != nil {
				return fmt.Errorf("compliance check failed: %w", err)
			}
			report.Compliance = &overview
			return nil
		})
	}

	if len(in.Entries) > 0 || len(in.Metrics) > 0 {
		g.Go(func() error {
			inputs, err := s.riskInputs(in)
			if err != nil {
				return fmt.Errorf("risk assessment failed: %w", err)
			}
			assessment, err := s.AssessRisk(gctx, inputs)
			if err != nil {
				return fmt.Errorf("risk assessment failed: %w", err)
			}
			report.Risk = &assessment
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.AuditReport{}, err
	}
	return report, nil
}

func (s *service) riskInputs(in AuditInput) (domain.RiskInputs, error) {
	metrics := domain.RatioSet{}
	if len(in.Entries) > 0 {
		if err := ledger.ValidateEntries(in.Entries); err != nil {
			return domain.RiskInputs{}, err
		}
		computed, totals := ratios.Compute(s.classifier.Classify(in.Entries))
		for k, v := range computed {
			metrics[k] = v
		}
		for k, v := range ratios.Supplementary(totals) {
			metrics[k] = v
		}
		if in.Company.EmployeeCount > 0 {
			metrics[risk.MetricRevenuePerEmployee] = totals.Revenue.InexactFloat64() / float64(in.Company.EmployeeCount)
		}
	}
	for k, v := range in.Metrics {
		metrics[k] = v
	}
	return risk.InputsFromRatios(metrics, in.Company.Industry, in.Company.IsPublic), nil
}
