package align

import "github.com/katalvlaran/bioseq/seq"

// SemiGlobal computes a fitting alignment of a inside b: leading and
// trailing gaps in b are free. The recurrence matches Global, but the top
// border row stays at zero (free leading gap) and the best score is taken
// from anywhere in the last row (free trailing gap). Unconsumed trailing
// positions of b are emitted as literal gap columns before the matrix walk.
//
// Complexity: O(m·n) time and memory.
func SemiGlobal(a, b seq.Sequence, scoring ScoringMatrix) Alignment {
	s1, s2 := a.Bases(), b.Bases()
	m, n := len(s1), len(s2)
	dp := newDPMatrix(m+1, n+1)

	for i := 1; i <= m; i++ {
		dp.score[dp.idx(i, 0)] = i * scoring.GapPenalty()
		dp.trace[dp.idx(i, 0)] = TraceUp
	}
	// Top border stays 0: a gap before the fit costs nothing.
	for j := 1; j <= n; j++ {
		dp.trace[j] = TraceLeft
	}

	for i := 1; i <= m; i++ {
		row := i * dp.cols
		prev := row - dp.cols
		for j := 1; j <= n; j++ {
			diag := dp.score[prev+j-1] + scoring.Score(s1[i-1], s2[j-1])
			up := dp.score[prev+j] + scoring.GapPenalty()
			left := dp.score[row+j-1] + scoring.GapPenalty()

			var best int
			var dir TraceDirection
			switch {
			case diag >= up && diag >= left:
				best, dir = diag, TraceDiagonal
			case up >= left:
				best, dir = up, TraceUp
			default:
				best, dir = left, TraceLeft
			}

			dp.score[row+j] = best
			dp.trace[row+j] = dir
		}
	}

	// Best score anywhere in the last row.
	lastRow := m * dp.cols
	maxScore, maxJ := dp.score[lastRow], 0
	for j := 1; j <= n; j++ {
		if dp.score[lastRow+j] > maxScore {
			maxScore, maxJ = dp.score[lastRow+j], j
		}
	}

	out := Alignment{
		Score: maxScore,
		EndA:  m - 1,
		EndB:  n - 1,
	}
	var revA, revB []byte

	// Free trailing gap: emit the unconsumed tail of b against gaps.
	for k := n; k > maxJ; k-- {
		revA = append(revA, Gap)
		revB = append(revB, s2[k-1])
		out.Gaps++
	}

	i, j := m, maxJ
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dp.trace[dp.idx(i, j)] == TraceDiagonal:
			revA = append(revA, s1[i-1])
			revB = append(revB, s2[j-1])
			if s1[i-1] == s2[j-1] {
				out.Matches++
			} else {
				out.Mismatches++
			}
			i--
			j--
		case i > 0 && (j == 0 || dp.trace[dp.idx(i, j)] == TraceUp):
			revA = append(revA, s1[i-1])
			revB = append(revB, Gap)
			out.Gaps++
			i--
		default:
			revA = append(revA, Gap)
			revB = append(revB, s2[j-1])
			out.Gaps++
			j--
		}
	}

	reverseBytes(revA)
	reverseBytes(revB)
	out.AlignedA, out.AlignedB = string(revA), string(revB)

	return out
}
