package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparison(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.png")
	elements := []float64{1e2, 1e3, 1e4}
	series := []Series{
		{Label: "Nimfem", Times: []float64{0.01, 0.1, 1.2}},
		{Label: "FEniCS", Times: []float64{0.5, 1.5, 9.7}},
	}

	err := Comparison(elements, series, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestComparison_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	elements := []float64{10, 100}
	series := []Series{{Label: "A", Times: []float64{1, 2}}}
	require.NoError(t, Comparison(elements, series, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, []byte("stale"), data)
}

func TestComparison_ZeroTimeMasked(t *testing.T) {
	// time(1) reports 0.00user for sub-resolution runs; such points cannot
	// sit on a log axis and must be dropped, not panic the renderer.
	path := filepath.Join(t.TempDir(), "comparison.png")
	elements := []float64{1e2, 1e3, 1e4}
	series := []Series{
		{Label: "Nimfem", Times: []float64{0.0, 0.0, 0.04}},
		{Label: "FEniCS", Times: []float64{0.5, 1.5, 9.7}},
	}

	err := Comparison(elements, series, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestComparison_AllNonPositive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.png")
	elements := []float64{1e2, 1e3}
	series := []Series{{Label: "A", Times: []float64{0, 0}}}

	err := Comparison(elements, series, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no positive measurements")
	assert.NoFileExists(t, path)
}

func TestComparison_MisalignedSeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison.png")
	elements := []float64{1e2, 1e3}
	series := []Series{{Label: "A", Times: []float64{0.1}}}

	err := Comparison(elements, series, path)
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestComparison_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "comparison.png")
	elements := []float64{10, 100}
	series := []Series{{Label: "A", Times: []float64{1, 2}}}

	require.NoError(t, Comparison(elements, series, path))
	assert.FileExists(t, path)
}
