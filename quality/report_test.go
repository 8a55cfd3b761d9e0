package quality_test

import (
	"testing"

	"github.com/katalvlaran/bioseq/quality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateReport_Empty returns a zero report for no input.
func TestGenerateReport_Empty(t *testing.T) {
	report := quality.GenerateReport(nil)
	assert.Zero(t, report.TotalSequences)
	assert.Zero(t, report.TotalBases)
	assert.Empty(t, report.PerPositionQuality)
}

// TestGenerateReport_Aggregates checks totals, Q20/Q30 tallies, the
// histogram and per-position means over a small batch.
func TestGenerateReport_Aggregates(t *testing.T) {
	batch := []quality.QualifiedSequence{
		record("a", "ACGT", []uint8{10, 20, 30, 40}),
		record("b", "AC", []uint8{20, 40}),
	}

	report := quality.GenerateReport(batch)

	assert.Equal(t, 2, report.TotalSequences)
	assert.Equal(t, 6, report.TotalBases)
	assert.InDelta(t, 3.0, report.MeanLength, 1e-12)

	// Mean qualities: 25 and 30.
	assert.InDelta(t, 27.5, report.MeanQuality, 1e-12)
	assert.InDelta(t, 27.5, report.MedianQuality, 1e-12)

	assert.Equal(t, 5, report.BasesAboveQ20)
	assert.Equal(t, 3, report.BasesAboveQ30)

	assert.Equal(t, 1, report.Histogram[10])
	assert.Equal(t, 2, report.Histogram[20])
	assert.Equal(t, 1, report.Histogram[30])
	assert.Equal(t, 2, report.Histogram[40])

	require.Len(t, report.PerPositionQuality, 4)
	assert.InDelta(t, 15.0, report.PerPositionQuality[0], 1e-12)
	assert.InDelta(t, 30.0, report.PerPositionQuality[1], 1e-12)
	assert.InDelta(t, 30.0, report.PerPositionQuality[2], 1e-12)
	assert.InDelta(t, 40.0, report.PerPositionQuality[3], 1e-12)
}
