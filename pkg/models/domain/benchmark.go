package domain

type BenchmarkKind string

const (
	BenchmarkOptimalRange BenchmarkKind = "optimal_range"
	BenchmarkTarget       BenchmarkKind = "target"
)

// Benchmark is an industry reference for one ratio. Low/High are used by
// optimal_range benchmarks, Target by target benchmarks.
type Benchmark struct {
	Ratio  string
	Kind   BenchmarkKind
	Low    float64
	High   float64
	Target float64
}

// BenchmarkTable maps ratio name to its benchmark for a single industry.
type BenchmarkTable map[string]Benchmark

// Clone returns an independent copy of the table.
func (t BenchmarkTable) Clone() BenchmarkTable {
	out := make(BenchmarkTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
