package benchmark

import "time"

// Run represents one completed sweep: the requested element counts, the
// derived mesh sizes, the per-solver user-time series, and the speedup.
type Run struct {
	Timestamp time.Time            `json:"timestamp"`
	Elements  []float64            `json:"elements"`
	Sizes     []int                `json:"sizes"`
	Times     map[string][]float64 `json:"times"`
	Speedup   []float64            `json:"speedup,omitempty"`
}
