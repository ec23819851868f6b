package benchmark

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"gopkg.in/yaml.v3"
)

// GeneralIndustry is the fallback table for industries without their own.
const GeneralIndustry = "general"

var ErrMalformedTable = errors.New("malformed benchmark table")

// Provider supplies benchmark tables keyed by industry.
type Provider interface {
	Benchmarks(industry string) (domain.BenchmarkTable, error)
	Industries() []string
}

type tableProvider struct {
	tables map[string]domain.BenchmarkTable
}

// NewProvider validates the tables and returns a read-only provider over a
// private copy of them.
func NewProvider(tables map[string]domain.BenchmarkTable) (Provider, error) {
	if err := Validate(tables); err != nil {
		return nil, err
	}
	own := make(map[string]domain.BenchmarkTable, len(tables))
	for industry, table := range tables {
		own[strings.ToLower(industry)] = table.Clone()
	}
	return &tableProvider{tables: own}, nil
}

// NewStaticProvider serves the built-in Nigerian industry benchmarks.
func NewStaticProvider() Provider {
	p, err := NewProvider(defaultTables())
	if err != nil {
		panic(fmt.Sprintf("built-in benchmarks are invalid: %v", err))
	}
	return p
}

// Benchmarks returns a copy of the industry's table, falling back to the
// general table for unknown industries.
func (p *tableProvider) Benchmarks(industry string) (domain.BenchmarkTable, error) {
	table, ok := p.tables[strings.ToLower(strings.TrimSpace(industry))]
	if !ok {
		table = p.tables[GeneralIndustry]
	}
	return table.Clone(), nil
}

func (p *tableProvider) Industries() []string {
	industries := make([]string, 0, len(p.tables))
	for industry := range p.tables {
		industries = append(industries, industry)
	}
	sort.Strings(industries)
	return industries
}

// Validate checks that a general table exists and every benchmark is well formed.
func Validate(tables map[string]domain.BenchmarkTable) error {
	if _, ok := tables[GeneralIndustry]; !ok {
		return fmt.Errorf("%w: missing %q industry", ErrMalformedTable, GeneralIndustry)
	}
	for industry, table := range tables {
		for name, b := range table {
			if b.Ratio != "" && b.Ratio != name {
				return fmt.Errorf("%w: %s/%s is keyed under a different ratio %q", ErrMalformedTable, industry, name, b.Ratio)
			}
			switch b.Kind {
			case domain.BenchmarkOptimalRange:
				if !finite(b.Low) || !finite(b.High) {
					return fmt.Errorf("%w: %s/%s has non-finite bounds", ErrMalformedTable, industry, name)
				}
				if b.Low > b.High {
					return fmt.Errorf("%w: %s/%s low %v exceeds high %v", ErrMalformedTable, industry, name, b.Low, b.High)
				}
			case domain.BenchmarkTarget:
				if !finite(b.Target) {
					return fmt.Errorf("%w: %s/%s has a non-finite target", ErrMalformedTable, industry, name)
				}
			default:
				return fmt.Errorf("%w: %s/%s has unknown kind %q", ErrMalformedTable, industry, name, b.Kind)
			}
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type fileBenchmark struct {
	OptimalRange []float64 `yaml:"optimal_range"`
	Target       *float64  `yaml:"target"`
}

type fileTables struct {
	Industries map[string]map[string]fileBenchmark `yaml:"industries"`
}

// Parse decodes a YAML benchmark document:
//
//	industries:
//	  general:
//	    current_ratio: {optimal_range: [1.5, 2.5]}
//	    quick_ratio: {target: 1.2}
//
// When both forms are given the optimal range is used.
func Parse(data []byte) (Provider, error) {
	var doc fileTables
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}

	tables := make(map[string]domain.BenchmarkTable, len(doc.Industries))
	for industry, ratios := range doc.Industries {
		table := make(domain.BenchmarkTable, len(ratios))
		for name, fb := range ratios {
			b, err := fb.toDomain(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %s/%s: %v", ErrMalformedTable, industry, name, err)
			}
			table[name] = b
		}
		tables[strings.ToLower(industry)] = table
	}
	return NewProvider(tables)
}

// LoadFile reads and parses a YAML benchmark file.
func LoadFile(path string) (Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark file: %w", err)
	}
	return Parse(data)
}

func (fb fileBenchmark) toDomain(name string) (domain.Benchmark, error) {
	switch {
	case fb.OptimalRange != nil:
		if len(fb.OptimalRange) != 2 {
			return domain.Benchmark{}, fmt.Errorf("optimal_range needs exactly two bounds, got %d", len(fb.OptimalRange))
		}
		return domain.Benchmark{
			Ratio: name,
			Kind:  domain.BenchmarkOptimalRange,
			Low:   fb.OptimalRange[0],
			High:  fb.OptimalRange[1],
		}, nil
	case fb.Target != nil:
		return domain.Benchmark{Ratio: name, Kind: domain.BenchmarkTarget, Target: *fb.Target}, nil
	default:
		return domain.Benchmark{}, errors.New("neither optimal_range nor target given")
	}
}
