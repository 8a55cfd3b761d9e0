package align

// ScoringMatrix holds the integer scoring model shared by every DP variant:
// a match reward, a mismatch penalty, and affine gap components. It is a
// pure value; reuse one across as many calls as you like.
type ScoringMatrix struct {
	Match     int
	Mismatch  int
	GapOpen   int
	GapExtend int
}

// DefaultScoring is the similarity-oriented preset (match=2, mismatch=-1,
// gap open=-2, gap extend=-1) used when callers have no opinion.
func DefaultScoring() ScoringMatrix { return DNASimilarity() }

// DNAMismatch is a conservative preset weighting matches and mismatches equally.
func DNAMismatch() ScoringMatrix {
	return ScoringMatrix{Match: 1, Mismatch: -1, GapOpen: -2, GapExtend: -1}
}

// DNASimilarity rewards matches twice as much as DNAMismatch.
func DNASimilarity() ScoringMatrix {
	return ScoringMatrix{Match: 2, Mismatch: -1, GapOpen: -2, GapExtend: -1}
}

// StrictMatch punishes mismatches and gaps hard; use for near-identical input.
func StrictMatch() ScoringMatrix {
	return ScoringMatrix{Match: 1, Mismatch: -3, GapOpen: -5, GapExtend: -2}
}

// Score returns the reward for pairing bases a and b.
func (m ScoringMatrix) Score(a, b byte) int {
	if a == b {
		return m.Match
	}

	return m.Mismatch
}

// GapPenalty returns the linear per-column gap cost used by the DP recurrences.
func (m ScoringMatrix) GapPenalty() int { return m.GapOpen }

// AffineGapPenalty returns the cost of a gap run of the given length:
// open for the first column, extend for each further column; 0 for length < 1.
func (m ScoringMatrix) AffineGapPenalty(length int) int {
	if length < 1 {
		return 0
	}

	return m.GapOpen + (length-1)*m.GapExtend
}
