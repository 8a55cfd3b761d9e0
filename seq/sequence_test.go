package seq_test

import (
	"testing"

	"github.com/katalvlaran/bioseq/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Normalizes verifies lowercase input is accepted and uppercased.
func TestNew_Normalizes(t *testing.T) {
	s, err := seq.New("acgtN")
	require.NoError(t, err)
	assert.Equal(t, "ACGTN", s.Bases())
	assert.Equal(t, 5, s.Len())
}

// TestNew_EmptyInput verifies that empty input yields ErrEmptySequence.
func TestNew_EmptyInput(t *testing.T) {
	_, err := seq.New("")
	assert.ErrorIs(t, err, seq.ErrEmptySequence)
}

// TestNew_InvalidBase verifies the error names the character and position.
func TestNew_InvalidBase(t *testing.T) {
	_, err := seq.New("ACGXT")
	require.ErrorIs(t, err, seq.ErrInvalidBase)
	assert.Contains(t, err.Error(), "'X'")
	assert.Contains(t, err.Error(), "position 3")
}

// TestContent_GCPlusATIsOne checks gc+at == 1 for sequences without N.
func TestContent_GCPlusATIsOne(t *testing.T) {
	for _, bases := range []string{"A", "ACGT", "GGGGCCCC", "ATATATA", "ACGTACGTTTTG"} {
		s, err := seq.New(bases)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, s.GCContent()+s.ATContent(), 1e-12, bases)
	}
}

// TestContent_AmbiguousExcluded checks that N counts toward neither ratio.
func TestContent_AmbiguousExcluded(t *testing.T) {
	s, err := seq.New("ACGTNNNN")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, s.GCContent(), 1e-12)
	assert.InDelta(t, 0.25, s.ATContent(), 1e-12)
	assert.True(t, s.HasAmbiguous())
}

// TestComposition verifies the 5-way breakdown and CountBase.
func TestComposition(t *testing.T) {
	s, err := seq.New("AACCCGGGGTN")
	require.NoError(t, err)

	comp := s.Composition()
	assert.Equal(t, seq.Composition{A: 2, C: 3, G: 4, T: 1, N: 1}, comp)
	assert.Equal(t, 3, s.CountBase('C'))
	assert.Equal(t, 3, s.CountBase('c'), "CountBase must be case-insensitive")
}

// TestComplement verifies the fixed complement pairs from the contract.
func TestComplement(t *testing.T) {
	s, err := seq.New("ATCG")
	require.NoError(t, err)
	assert.Equal(t, "TAGC", s.Complement().Bases())
	assert.Equal(t, "CGAT", s.ReverseComplement().Bases())

	n, err := seq.New("ANA")
	require.NoError(t, err)
	assert.Equal(t, "TNT", n.Complement().Bases(), "N complements to N")
}

// TestReverseComplement_Involution checks rc(rc(s)) == s.
func TestReverseComplement_Involution(t *testing.T) {
	for _, bases := range []string{"A", "ACGT", "GATTACA", "NNNACGTNNN"} {
		s, err := seq.New(bases)
		require.NoError(t, err)
		assert.Equal(t, s.Bases(), s.ReverseComplement().ReverseComplement().Bases(), bases)
	}
}

// TestReverseComplement_OrderIrrelevant checks that complement-then-reverse
// equals reverse-then-complement.
func TestReverseComplement_OrderIrrelevant(t *testing.T) {
	s, err := seq.New("ACGTTGCAN")
	require.NoError(t, err)
	assert.Equal(t, s.Complement().Reverse().Bases(), s.Reverse().Complement().Bases())
	assert.Equal(t, s.ReverseComplement().Bases(), s.Complement().Reverse().Bases())
}

// TestSubsequence covers clamping, id propagation and range errors.
func TestSubsequence(t *testing.T) {
	s, err := seq.NewWithID("ACGTACGT", "read1")
	require.NoError(t, err)

	sub, err := s.Subsequence(2, 4)
	require.NoError(t, err)
	assert.Equal(t, "GTAC", sub.Bases())
	assert.Equal(t, "read1_2_4", sub.ID())

	clamped, err := s.Subsequence(6, 100)
	require.NoError(t, err)
	assert.Equal(t, "GT", clamped.Bases(), "length clamps to remaining bases")

	_, err = s.Subsequence(8, 1)
	assert.ErrorIs(t, err, seq.ErrOutOfRange)
	_, err = s.Subsequence(0, 0)
	assert.ErrorIs(t, err, seq.ErrOutOfRange)
}

// TestConcat verifies joining skips re-validation and drops the id.
func TestConcat(t *testing.T) {
	a, err := seq.NewWithID("ACGT", "a")
	require.NoError(t, err)
	b, err := seq.New("TTTT")
	require.NoError(t, err)

	joined := a.Concat(b)
	assert.Equal(t, "ACGTTTTT", joined.Bases())
	assert.Empty(t, joined.ID())
}

// TestMotif covers containment, overlapping positions and the derived count.
func TestMotif(t *testing.T) {
	s, err := seq.New("ATATATA")
	require.NoError(t, err)

	assert.True(t, s.ContainsMotif("ATA"))
	assert.False(t, s.ContainsMotif("GGG"))
	assert.Equal(t, []int{0, 2, 4}, s.MotifPositions("ATA"), "overlapping hits must all be reported")
	assert.Equal(t, 3, s.CountMotif("ATA"))
	assert.Nil(t, s.MotifPositions(""))
	assert.Nil(t, s.MotifPositions("ATATATATATA"))
}

// TestString checks the FASTA-like display form.
func TestString(t *testing.T) {
	anon, err := seq.New("ACGT")
	require.NoError(t, err)
	assert.Equal(t, "ACGT", anon.String())

	named, err := seq.NewWithID("ACGT", "chr1")
	require.NoError(t, err)
	assert.Equal(t, ">chr1\nACGT", named.String())
}
