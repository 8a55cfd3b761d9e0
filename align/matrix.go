package align

// dpMatrix stores the (m+1)×(n+1) score plane and the parallel traceback
// plane as flat, row-major buffers. A single allocation per plane avoids
// the per-row overhead of nested slices on large inputs.
type dpMatrix struct {
	rows, cols int
	score      []int
	trace      []TraceDirection
}

// newDPMatrix allocates a zeroed rows×cols matrix pair.
func newDPMatrix(rows, cols int) *dpMatrix {
	return &dpMatrix{
		rows:  rows,
		cols:  cols,
		score: make([]int, rows*cols),
		trace: make([]TraceDirection, rows*cols),
	}
}

// idx maps (i, j) onto the flat buffers.
func (m *dpMatrix) idx(i, j int) int { return i*m.cols + j }

// reverseBytes flips buf in place; tracebacks build alignments back-to-front.
func reverseBytes(buf []byte) {
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
}
