package align

import "github.com/katalvlaran/bioseq/seq"

// Global computes the optimal global alignment of a and b
// (Needleman–Wunsch), consuming the full length of both sequences.
//
// The border row and column are pre-filled with cumulative gap penalties.
// Ties are resolved with >= comparisons in the priority order
// diagonal > up > left, and the traceback walks from the bottom-right
// corner to (0,0).
//
// Complexity: O(m·n) time and memory.
func Global(a, b seq.Sequence, scoring ScoringMatrix) Alignment {
	return globalAlign(a.Bases(), b.Bases(), scoring)
}

// globalAlign is the string-level core; MultipleAlignment feeds it gapped
// profile strings, so it must not assume a validated alphabet.
func globalAlign(s1, s2 string, scoring ScoringMatrix) Alignment {
	m, n := len(s1), len(s2)
	dp := newDPMatrix(m+1, n+1)

	for i := 1; i <= m; i++ {
		dp.score[dp.idx(i, 0)] = i * scoring.GapPenalty()
		dp.trace[dp.idx(i, 0)] = TraceUp
	}
	for j := 1; j <= n; j++ {
		dp.score[j] = j * scoring.GapPenalty()
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

	out := Alignment{
		Score: dp.score[dp.idx(m, n)],
		EndA:  m - 1,
		EndB:  n - 1,
	}
	var revA, revB []byte

	i, j := m, n
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
