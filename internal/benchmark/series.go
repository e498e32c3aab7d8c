package benchmark

import "fmt"

// SeriesPair holds the user-time series for the two compared solvers.
// Index i in both slices refers to the same sweep position.
type SeriesPair struct {
	Baseline  []float64 // solver A, the reference
	Contender []float64 // solver B
}

// NewSeriesPair validates alignment against the sweep length. A mismatch
// means a sweep stage dropped or duplicated a measurement and the whole
// comparison is void.
func NewSeriesPair(baseline, contender []float64, sweepLen int) (SeriesPair, error) {
	if len(baseline) != sweepLen || len(contender) != sweepLen {
		return SeriesPair{}, fmt.Errorf(
			"series misaligned: baseline %d, contender %d, sweep %d",
			len(baseline), len(contender), sweepLen)
	}
	return SeriesPair{Baseline: baseline, Contender: contender}, nil
}

// Speedup returns the element-wise ratio contender/baseline. A zero
// baseline entry yields ±Inf or NaN; degenerate ratios are reported
// as-is rather than masked.
func (p SeriesPair) Speedup() []float64 {
	out := make([]float64, len(p.Baseline))
	for i := range out {
		out[i] = p.Contender[i] / p.Baseline[i]
	}
	return out
}
