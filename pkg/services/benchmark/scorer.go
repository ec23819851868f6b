package benchmark

import (
	"math"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
)

// NeutralScore is assigned to ratios that have no benchmark.
const NeutralScore = 50.0

// Score rates a ratio value against its benchmark on a 0-100 scale.
//
// Optimal range: 100 inside [Low, High]; outside, the distance to the nearest
// bound relative to that bound's magnitude is subtracted (100 - |v-b|/|b|*100).
// Target: 100 - |v-t|/|t|*100, or 100 - |v|*100 when t is 0.
// The result is clamped to [0, 100].
func Score(value float64, b domain.Benchmark) float64 {
	switch b.Kind {
	case domain.BenchmarkOptimalRange:
		if value >= b.Low && value <= b.High {
			return 100
		}
		bound := b.Low
		if value > b.High {
			bound = b.High
		}
		return clamp(100 - math.Abs(value-bound)/math.Abs(bound)*100)
	case domain.BenchmarkTarget:
		if b.Target == 0 {
			return clamp(100 - math.Abs(value)*100)
		}
		return clamp(100 - math.Abs(value-b.Target)/math.Abs(b.Target)*100)
	default:
		return NeutralScore
	}
}

// ScoreRatio scores a named ratio against a table. Ratios without an entry
// score NeutralScore.
func ScoreRatio(name string, value float64, table domain.BenchmarkTable) (float64, bool) {
	b, ok := table[name]
	if !ok {
		return NeutralScore, false
	}
	return Score(value, b), true
}

// Ramp scores value linearly between low and high. With inverse set, lower
// values are better (debt ratios, concentration); otherwise higher values are.
func Ramp(value, low, high float64, inverse bool) float64 {
	if inverse {
		switch {
		case value <= low:
			return 100
		case value >= high:
			return 0
		default:
			return clamp(100 - (value-low)/(high-low)*100)
		}
	}
	switch {
	case value >= high:
		return 100
	case value <= low:
		return 0
	default:
		return clamp((value - low) / (high - low) * 100)
	}
}

func clamp(score float64) float64 {
	switch {
	case math.IsNaN(score):
		return 0
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
