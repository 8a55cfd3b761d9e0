package align_test

import (
	"testing"

	"github.com/katalvlaran/bioseq/align"
	"github.com/katalvlaran/bioseq/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultipleAlignment_Degenerate covers empty and single-sequence input.
func TestMultipleAlignment_Degenerate(t *testing.T) {
	assert.Nil(t, align.MultipleAlignment(nil, align.DefaultScoring()))

	only := mustSeq(t, "ACGT")
	rows := align.MultipleAlignment([]seq.Sequence{only}, align.DefaultScoring())
	assert.Equal(t, []string{"ACGT"}, rows)
}

// TestMultipleAlignment_IdenticalSequences verifies identical input aligns
// gap-free with equal rows.
func TestMultipleAlignment_IdenticalSequences(t *testing.T) {
	s := mustSeq(t, "ACGTAC")
	rows := align.MultipleAlignment([]seq.Sequence{s, s, s}, align.DefaultScoring())

	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, "ACGTAC", row)
	}
}

// TestMultipleAlignment_ProjectsGaps verifies a shorter sequence picks up
// a gap against the profile and all rows share one length.
func TestMultipleAlignment_ProjectsGaps(t *testing.T) {
	first := mustSeq(t, "ACGT")
	second := mustSeq(t, "AGT")
	rows := align.MultipleAlignment([]seq.Sequence{first, second}, align.DefaultScoring())

	require.Len(t, rows, 2)
	assert.Equal(t, "ACGT", rows[0])
	assert.Equal(t, "A-GT", rows[1])
	for _, row := range rows {
		assert.Len(t, row, len(rows[0]), "all rows share the profile length")
	}
}

// TestMultipleAlignment_ThreeSequences sanity-checks the progressive pass:
// one row per input, all rows equal length.
func TestMultipleAlignment_ThreeSequences(t *testing.T) {
	inputs := []seq.Sequence{
		mustSeq(t, "ACGTACGT"),
		mustSeq(t, "ACGACGT"),
		mustSeq(t, "ACGTAGT"),
	}
	rows := align.MultipleAlignment(inputs, align.DefaultScoring())

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Len(t, row, len(rows[0]), "row %d length", i)
	}
}
