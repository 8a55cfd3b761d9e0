package stats_test

import (
	"testing"

	"github.com/katalvlaran/bioseq/seq"
	"github.com/katalvlaran/bioseq/stats"
	"github.com/stretchr/testify/assert"
)

// TestDescribeCollection aggregates lengths and GC over a small batch.
func TestDescribeCollection(t *testing.T) {
	batch := []seq.Sequence{
		mustSeq(t, "ACGT"),     // GC 0.5
		mustSeq(t, "AAAAAAAA"), // GC 0.0
	}

	summary := stats.DescribeCollection(batch)

	assert.Equal(t, 2, summary.SequenceCount)
	assert.Equal(t, 12, summary.TotalBases)
	assert.InDelta(t, 6.0, summary.MeanLength, 1e-12)
	assert.InDelta(t, 6.0, summary.MedianLength, 1e-12)
	assert.Equal(t, 4, summary.MinLength)
	assert.Equal(t, 8, summary.MaxLength)
	assert.InDelta(t, 0.25, summary.MeanGC, 1e-12)
	assert.Equal(t, 8, summary.N50)
	assert.Equal(t, 1, summary.L50)
}

// TestDescribeCollection_Empty yields the zero value.
func TestDescribeCollection_Empty(t *testing.T) {
	assert.Zero(t, stats.DescribeCollection(nil))
}

// TestN50L50 walks descending lengths to the half-total point.
func TestN50L50(t *testing.T) {
	lengths := []int{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}

	n50, l50 := stats.N50L50(lengths)
	assert.Equal(t, 70, n50, "cumulative sum reaches 275 at the fourth length")
	assert.Equal(t, 4, l50)

	// Input order must not matter, and the slice is left untouched.
	shuffled := []int{10, 70, 100, 30, 50, 90, 20, 80, 60, 40}
	n50, l50 = stats.N50L50(shuffled)
	assert.Equal(t, 70, n50)
	assert.Equal(t, 4, l50)
	assert.Equal(t, []int{10, 70, 100, 30, 50, 90, 20, 80, 60, 40}, shuffled)

	n50, l50 = stats.N50L50(nil)
	assert.Zero(t, n50)
	assert.Zero(t, l50)

	n50, l50 = stats.N50L50([]int{42})
	assert.Equal(t, 42, n50)
	assert.Equal(t, 1, l50)
}
