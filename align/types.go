package align

import (
	"fmt"
	"strings"
)

// Gap is the gap character emitted into aligned strings.
const Gap byte = '-'

// TraceDirection records which neighbor a DP cell was derived from.
type TraceDirection byte

const (
	// TraceNone marks a cell with no recorded predecessor (zero-valued local cells).
	TraceNone TraceDirection = iota
	// TraceDiagonal consumes one base from each sequence.
	TraceDiagonal
	// TraceUp consumes a base from the first sequence against a gap.
	TraceUp
	// TraceLeft consumes a base from the second sequence against a gap.
	TraceLeft
)

// Alignment is the result of a pairwise DP pass: two equal-length aligned
// strings (gap characters included), the score, the start/end offsets into
// each original sequence, and match/mismatch/gap column counts.
type Alignment struct {
	AlignedA string
	AlignedB string
	Score    int

	StartA, EndA int
	StartB, EndB int

	Matches    int
	Mismatches int
	Gaps       int
}

// Length returns the number of alignment columns.
func (a Alignment) Length() int { return len(a.AlignedA) }

// Identity returns matches / alignment-length (0 for an empty alignment).
func (a Alignment) Identity() float64 {
	if a.Length() == 0 {
		return 0
	}

	return float64(a.Matches) / float64(a.Length())
}

// Similarity returns matches / (matches + mismatches), ignoring gap columns
// (0 when no bases were paired).
func (a Alignment) Similarity() float64 {
	paired := a.Matches + a.Mismatches
	if paired == 0 {
		return 0
	}

	return float64(a.Matches) / float64(paired)
}

// GapRatio returns gaps / alignment-length (0 for an empty alignment).
func (a Alignment) GapRatio() float64 {
	if a.Length() == 0 {
		return 0
	}

	return float64(a.Gaps) / float64(a.Length())
}

// Format renders the alignment in blocks of width columns with a match line
// ('|' match, '.' mismatch, ' ' gap) between the two sequences.
// A width < 1 falls back to 60.
func (a Alignment) Format(width int) string {
	if width < 1 {
		width = 60
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %d\n", a.Score)
	fmt.Fprintf(&sb, "Identity: %.1f%%\n", a.Identity()*100)
	fmt.Fprintf(&sb, "Gaps: %d (%.1f%%)\n\n", a.Gaps, a.GapRatio()*100)

	for from := 0; from < len(a.AlignedA); from += width {
		to := min(from+width, len(a.AlignedA))

		fmt.Fprintf(&sb, "A: %s\n", a.AlignedA[from:to])
		sb.WriteString("   ")
		for i := from; i < to; i++ {
			switch {
			case a.AlignedA[i] == Gap || a.AlignedB[i] == Gap:
				sb.WriteByte(' ')
			case a.AlignedA[i] == a.AlignedB[i]:
				sb.WriteByte('|')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, "B: %s\n\n", a.AlignedB[from:to])
	}

	return sb.String()
}
