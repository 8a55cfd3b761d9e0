package stats_test

import (
	"testing"

	"github.com/katalvlaran/bioseq/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMean covers int and float inputs plus the empty case.
func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, stats.Mean([]int{1, 2, 3, 4}), 1e-12)
	assert.InDelta(t, 0.5, stats.Mean([]float64{0.25, 0.75}), 1e-12)
	assert.Zero(t, stats.Mean([]int(nil)))
}

// TestVariance_StdDev checks the sample (n-1) definitions.
func TestVariance_StdDev(t *testing.T) {
	values := []int{1, 2, 3, 4}

	assert.InDelta(t, 5.0/3.0, stats.Variance(values), 1e-12)
	assert.InDelta(t, 1.290994, stats.StdDev(values), 1e-6)

	assert.Zero(t, stats.Variance([]int{7}), "single value has no spread")
	assert.Zero(t, stats.Variance([]int(nil)))
}

// TestMedian covers odd and even counts.
func TestMedian(t *testing.T) {
	assert.InDelta(t, 2.5, stats.Median([]int{4, 1, 3, 2}), 1e-12)
	assert.InDelta(t, 3.0, stats.Median([]int{5, 1, 3}), 1e-12)
	assert.Zero(t, stats.Median([]int(nil)))
}

// TestPercentile checks endpoints and linear interpolation between
// ranks.
func TestPercentile(t *testing.T) {
	values := []int{10, 20, 30, 40}

	assert.InDelta(t, 10.0, stats.Percentile(values, 0), 1e-12)
	assert.InDelta(t, 17.5, stats.Percentile(values, 25), 1e-12)
	assert.InDelta(t, 25.0, stats.Percentile(values, 50), 1e-12)
	assert.InDelta(t, 40.0, stats.Percentile(values, 100), 1e-12)
	assert.Zero(t, stats.Percentile([]int(nil), 50))
}

// TestHistogram buckets values into equal-width bins, with the maximum
// folded into the last bin.
func TestHistogram(t *testing.T) {
	bins := stats.Histogram([]int{1, 2, 3, 4}, 2)
	require.Len(t, bins, 2)
	assert.Equal(t, 2, bins[0].Count)
	assert.Equal(t, 2, bins[1].Count)
	assert.InDelta(t, 1.0, bins[0].Lower, 1e-12)
	assert.InDelta(t, 2.5, bins[0].Upper, 1e-12)
	assert.InDelta(t, 4.0, bins[1].Upper, 1e-12)

	flat := stats.Histogram([]int{5, 5, 5}, 4)
	require.Len(t, flat, 1, "all-equal values collapse to one bin")
	assert.Equal(t, 3, flat[0].Count)

	assert.Nil(t, stats.Histogram([]int(nil), 3))
	assert.Nil(t, stats.Histogram([]int{1, 2}, 0))
}
