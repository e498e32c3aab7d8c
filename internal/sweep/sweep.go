package sweep

import "math"

// Elements returns count target element counts spaced logarithmically
// between 10^minExp and 10^maxExp, inclusive of both endpoints.
func Elements(minExp, maxExp float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{math.Pow(10, minExp)}
	}
	step := (maxExp - minExp) / float64(count-1)
	out := make([]float64, count)
	for i := range out {
		out[i] = math.Pow(10, minExp+step*float64(i))
	}
	return out
}

// Size derives the mesh size for a target element count as
// floor(sqrt(n/2)), truncating toward zero.
func Size(elements float64) int {
	return int(math.Sqrt(elements / 2))
}

// Sizes maps each element count to its mesh size. Duplicates produced by
// truncation are kept; the sweep is positional.
func Sizes(elements []float64) []int {
	sizes := make([]int, len(elements))
	for i, n := range elements {
		sizes[i] = Size(n)
	}
	return sizes
}
