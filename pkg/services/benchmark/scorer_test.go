package benchmark

import (
	"math"
	"testing"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	general := optimal(domain.RatioCurrent, 1.5, 2.5)
	target := domain.Benchmark{Ratio: "x", Kind: domain.BenchmarkTarget, Target: 1.0}
	zeroTarget := domain.Benchmark{Ratio: "x", Kind: domain.BenchmarkTarget}

	tests := []struct {
		name      string
		value     float64
		benchmark domain.Benchmark
		want      float64
	}{
		{"inside range", 2.0, general, 100},
		{"on lower bound", 1.5, general, 100},
		{"below range", 1.2, general, 80},
		{"above range", 3.0, general, 80},
		{"far below clamps to zero", -10, general, 0},
		{"target hit", 1.0, target, 100},
		{"target miss", 1.5, target, 50},
		{"zero target", 0.3, zeroTarget, 70},
		{"unknown kind is neutral", 5, domain.Benchmark{Kind: "bogus"}, NeutralScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.value, tt.benchmark), 1e-9)
		})
	}
}

func TestScore_CurrentRatioExample(t *testing.T) {
	score := Score(5_000_000.0/4_500_000.0, optimal(domain.RatioCurrent, 1.5, 2.5))
	assert.InDelta(t, 74.07, score, 0.01)
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	benchmarks := []domain.Benchmark{
		optimal("a", 1.5, 2.5),
		optimal("b", 0, 0.4),
		optimal("c", -0.1, 0.1),
		{Ratio: "d", Kind: domain.BenchmarkTarget, Target: 0},
		{Ratio: "e", Kind: domain.BenchmarkTarget, Target: -2},
	}
	values := []float64{-1e12, -3, -0.5, 0, 0.05, 0.4, 1, 2, 1e12, math.NaN(), math.Inf(1), math.Inf(-1)}

	for _, b := range benchmarks {
		for _, v := range values {
			s := Score(v, b)
			assert.False(t, math.IsNaN(s), "%s at %v", b.Ratio, v)
			assert.GreaterOrEqual(t, s, 0.0, "%s at %v", b.Ratio, v)
			assert.LessOrEqual(t, s, 100.0, "%s at %v", b.Ratio, v)
		}
	}
}

func TestScoreRatio_NeutralWithoutEntry(t *testing.T) {
	table := domain.BenchmarkTable{domain.RatioCurrent: optimal(domain.RatioCurrent, 1.5, 2.5)}

	score, ok := ScoreRatio("cash_ratio", 0.01, table)
	assert.False(t, ok)
	assert.Equal(t, NeutralScore, score)

	score, ok = ScoreRatio(domain.RatioCurrent, 2.0, table)
	assert.True(t, ok)
	assert.Equal(t, 100.0, score)
}

func TestRamp(t *testing.T) {
	tests := []struct {
		name           string
		value, low, hi float64
		inverse        bool
		want           float64
	}{
		{"at high", 2.5, 1.5, 2.5, false, 100},
		{"above high", 9, 1.5, 2.5, false, 100},
		{"at low", 1.5, 1.5, 2.5, false, 0},
		{"midpoint", 2.0, 1.5, 2.5, false, 50},
		{"inverse at low", 0.3, 0.3, 0.6, true, 100},
		{"inverse midpoint", 0.45, 0.3, 0.6, true, 50},
		{"inverse above high", 2, 0.3, 0.6, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ramp(tt.value, tt.low, tt.hi, tt.inverse), 1e-9)
		})
	}
}
