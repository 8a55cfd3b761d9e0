package align

import (
	"strings"

	"github.com/katalvlaran/bioseq/seq"
)

// MultipleAlignment aligns sequences progressively: each sequence is
// aligned globally against the evolving gapped profile of the first row,
// and every previously aligned row is re-projected through the newly
// introduced gap columns.
//
// This is a deliberate greedy approximation, not an optimal multiple
// alignment: row order matters and the projection never revisits earlier
// decisions. Returns one gapped string per input sequence; nil for empty
// input.
//
// Complexity: O(s·L²) for s sequences of profile length L.
func MultipleAlignment(sequences []seq.Sequence, scoring ScoringMatrix) []string {
	if len(sequences) == 0 {
		return nil
	}
	if len(sequences) == 1 {
		return []string{sequences[0].Bases()}
	}

	aligned := []string{sequences[0].Bases()}
	for i := 1; i < len(sequences); i++ {
		pair := globalAlign(aligned[0], sequences[i].Bases(), scoring)

		// Re-project every existing row through the gapped profile.
		next := make([]string, 0, len(aligned)+1)
		for _, row := range aligned {
			var sb strings.Builder
			sb.Grow(len(pair.AlignedA))
			pos := 0
			for k := 0; k < len(pair.AlignedA); k++ {
				if pair.AlignedA[k] == Gap {
					sb.WriteByte(Gap)
				} else if pos < len(row) {
					sb.WriteByte(row[pos])
					pos++
				} else {
					sb.WriteByte(Gap)
				}
			}
			next = append(next, sb.String())
		}

		next = append(next, pair.AlignedB)
		aligned = next
	}

	return aligned
}
