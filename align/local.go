package align

import "github.com/katalvlaran/bioseq/seq"

// Local computes the best local alignment of a and b (Smith–Waterman).
//
// Every cell takes max(0, diagonal+score, up+gap, left+gap); the direction
// is recorded only when one of the three options beats zero strictly, with
// diagonal checked first. The traceback starts at the global maximum cell
// and walks backward until it reaches a zero-scored cell or the matrix edge.
// When no cell scores above zero, the result is an empty Alignment.
//
// Complexity: O(m·n) time and memory.
func Local(a, b seq.Sequence, scoring ScoringMatrix) Alignment {
	return localAlign(a.Bases(), b.Bases(), scoring)
}

// localAlign is the string-level core shared with the banded fallback.
func localAlign(s1, s2 string, scoring ScoringMatrix) Alignment {
	m, n := len(s1), len(s2)
	dp := newDPMatrix(m+1, n+1)

	maxScore, maxI, maxJ := 0, 0, 0
	for i := 1; i <= m; i++ {
		row := i * dp.cols
		prev := row - dp.cols
		for j := 1; j <= n; j++ {
			diag := dp.score[prev+j-1] + scoring.Score(s1[i-1], s2[j-1])
			up := dp.score[prev+j] + scoring.GapPenalty()
			left := dp.score[row+j-1] + scoring.GapPenalty()

			best, dir := 0, TraceNone
			if diag > best {
				best, dir = diag, TraceDiagonal
			}
			if up > best {
				best, dir = up, TraceUp
			}
			if left > best {
				best, dir = left, TraceLeft
			}

			dp.score[row+j] = best
			dp.trace[row+j] = dir

			if best > maxScore {
				maxScore, maxI, maxJ = best, i, j
			}
		}
	}

	if maxScore == 0 {
		// Nothing scored above zero: no alignment to report.
		return Alignment{}
	}

	out := Alignment{Score: maxScore, EndA: maxI - 1, EndB: maxJ - 1}
	var revA, revB []byte

	i, j := maxI, maxJ
walk:
	for i > 0 && j > 0 && dp.score[dp.idx(i, j)] > 0 {
		switch dp.trace[dp.idx(i, j)] {
		case TraceDiagonal:
			revA = append(revA, s1[i-1])
			revB = append(revB, s2[j-1])
			if s1[i-1] == s2[j-1] {
				out.Matches++
			} else {
				out.Mismatches++
			}
			i--
			j--
		case TraceUp:
			revA = append(revA, s1[i-1])
			revB = append(revB, Gap)
			out.Gaps++
			i--
		case TraceLeft:
			revA = append(revA, Gap)
			revB = append(revB, s2[j-1])
			out.Gaps++
			j--
		default:
			break walk
		}
	}

	out.StartA, out.StartB = i, j
	reverseBytes(revA)
	reverseBytes(revB)
	out.AlignedA, out.AlignedB = string(revA), string(revB)

	return out
}
