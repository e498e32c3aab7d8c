package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElements(t *testing.T) {
	elements := Elements(2, 7, 6)
	assert.Len(t, elements, 6)

	// Endpoints are exact powers of ten.
	assert.InDelta(t, 1e2, elements[0], 1e-6)
	assert.InDelta(t, 1e7, elements[5], 1e-1)

	// Log-spaced: each step multiplies by the same factor.
	for i := 1; i < len(elements); i++ {
		assert.InDelta(t, 10.0, elements[i]/elements[i-1], 1e-9)
	}
}

func TestElements_Degenerate(t *testing.T) {
	assert.Nil(t, Elements(2, 7, 0))
	assert.Nil(t, Elements(2, 7, -1))

	single := Elements(3, 7, 1)
	assert.Len(t, single, 1)
	assert.InDelta(t, 1e3, single[0], 1e-9)
}

func TestSize(t *testing.T) {
	// sqrt(100/2) = 7.07 -> 7
	assert.Equal(t, 7, Size(100))
	// sqrt(10_000_000/2) = 2236.06 -> 2236
	assert.Equal(t, 2236, Size(1e7))
	// Truncation, not rounding: sqrt(50000) = 223.60 -> 223
	assert.Equal(t, 223, Size(1e5))
}

func TestSizes_FullSweep(t *testing.T) {
	sizes := Sizes(Elements(2, 7, 6))
	assert.Equal(t, []int{7, 22, 70, 223, 707, 2236}, sizes)
}

func TestSizes_KeepsDuplicates(t *testing.T) {
	// Distinct inputs that truncate to the same size are not collapsed.
	sizes := Sizes([]float64{100, 101})
	assert.Equal(t, []int{7, 7}, sizes)
}
