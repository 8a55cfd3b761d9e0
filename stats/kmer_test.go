package stats_test

import (
	"testing"

	"github.com/katalvlaran/bioseq/kmer"
	"github.com/katalvlaran/bioseq/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countKMers builds a Counter over bases or fails the test.
func countKMers(t *testing.T, k int, bases string) *kmer.Counter {
	t.Helper()
	counter, err := kmer.NewCounter(k)
	require.NoError(t, err)
	counter.Count(mustSeq(t, bases))

	return counter
}

// TestDescribeKMers reads diversity measures off a repetitive table.
func TestDescribeKMers(t *testing.T) {
	// ATATATATAT at k=2: AT appears 5 times, TA 4 times.
	summary := stats.DescribeKMers(countKMers(t, 2, "ATATATATAT"))

	assert.Equal(t, 2, summary.K)
	assert.Equal(t, 2, summary.Unique)
	assert.Equal(t, 9, summary.Total)
	assert.Equal(t, 16, summary.TheoreticalMax)
	assert.InDelta(t, 0.125, summary.Coverage, 1e-12)
	assert.Zero(t, summary.Singletons)
	assert.Zero(t, summary.Doubletons)

	// 1 - (5*4 + 4*3)/(9*8) = 1 - 32/72.
	assert.InDelta(t, 1.0-32.0/72.0, summary.SimpsonIndex, 1e-12)
	assert.InDelta(t, 0.68696, summary.ShannonIndex, 1e-5)
}

// TestDescribeKMers_Tallies counts singletons and doubletons.
func TestDescribeKMers_Tallies(t *testing.T) {
	// ACGTACGT at k=4: ACGT twice, three other windows once each.
	summary := stats.DescribeKMers(countKMers(t, 4, "ACGTACGT"))

	assert.Equal(t, 4, summary.Unique)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 3, summary.Singletons)
	assert.Equal(t, 1, summary.Doubletons)
}

// TestSimpsonIndex_Degenerate scores 0 below two observations.
func TestSimpsonIndex_Degenerate(t *testing.T) {
	empty, err := kmer.NewCounter(3)
	require.NoError(t, err)

	assert.Zero(t, stats.SimpsonIndex(empty))
	assert.Zero(t, stats.SimpsonIndex(countKMers(t, 4, "ACGT")), "single observation")
	assert.Zero(t, stats.ShannonIndex(empty))
}

// TestTable_CanonicalCounter verifies canonical tables plug into the
// same statistics.
func TestTable_CanonicalCounter(t *testing.T) {
	counter, err := kmer.NewCanonicalCounter(2)
	require.NoError(t, err)
	counter.Count(mustSeq(t, "ACGT"))

	summary := stats.DescribeKMers(counter)
	assert.Equal(t, 2, summary.Unique, "AC and GT fold into one canonical bucket")
	assert.Equal(t, 3, summary.Total)
}
