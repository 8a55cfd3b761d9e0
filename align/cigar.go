package align

import (
	"strconv"
	"strings"
)

// CIGAR returns the run-length-encoded edit operations of the alignment:
// M (match), X (mismatch), I (gap in the first sequence), D (gap in the
// second sequence). Consecutive identical operations merge into one
// <count><op> run. No clip or padding operations are ever produced.
func (a Alignment) CIGAR() string {
	if len(a.AlignedA) == 0 {
		return ""
	}

	var sb strings.Builder
	var current byte
	count := 0

	for i := 0; i < len(a.AlignedA); i++ {
		var op byte
		switch {
		case a.AlignedA[i] == Gap:
			op = 'I'
		case a.AlignedB[i] == Gap:
			op = 'D'
		case a.AlignedA[i] == a.AlignedB[i]:
			op = 'M'
		default:
			op = 'X'
		}

		if op == current {
			count++
			continue
		}
		if count > 0 {
			sb.WriteString(strconv.Itoa(count))
			sb.WriteByte(current)
		}
		current, count = op, 1
	}
	if count > 0 {
		sb.WriteString(strconv.Itoa(count))
		sb.WriteByte(current)
	}

	return sb.String()
}
