package align

import (
	"fmt"

	"github.com/katalvlaran/bioseq/seq"
)

// EditDistance returns the Levenshtein distance between a and b with unit
// substitution/insertion/deletion costs. The DP keeps only two rows, so no
// traceback is available.
//
// Complexity: O(m·n) time, O(n) memory.
func EditDistance(a, b seq.Sequence) int {
	s1, s2 := a.Bases(), b.Bases()
	m, n := len(s1), len(s2)

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			if s1[i-1] == s2[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min(prev[j-1], prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// HammingDistance counts positions where a and b differ. Unequal lengths
// are an operation error, not a degraded computation: ErrLengthMismatch is
// reported with both lengths.
//
// Complexity: O(n).
func HammingDistance(a, b seq.Sequence) (int, error) {
	s1, s2 := a.Bases(), b.Bases()
	if len(s1) != len(s2) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(s1), len(s2))
	}

	distance := 0
	for i := 0; i < len(s1); i++ {
		if s1[i] != s2[i] {
			distance++
		}
	}

	return distance, nil
}
