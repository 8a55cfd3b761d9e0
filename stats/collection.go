package stats

import (
	"sort"

	"github.com/katalvlaran/bioseq/seq"
)

// CollectionStats summarizes a batch of sequences.
type CollectionStats struct {
	SequenceCount int
	TotalBases    int

	MeanLength   float64
	MedianLength float64
	StdLength    float64
	MinLength    int
	MaxLength    int

	MeanGC float64
	StdGC  float64

	// N50 is the length at which sequences of that length or longer
	// cover half the total bases; L50 is how many such sequences it
	// takes.
	N50 int
	L50 int
}

// DescribeCollection computes batch-level statistics. Empty input
// yields the zero value.
func DescribeCollection(sequences []seq.Sequence) CollectionStats {
	var stats CollectionStats
	if len(sequences) == 0 {
		return stats
	}

	stats.SequenceCount = len(sequences)
	lengths := make([]int, 0, len(sequences))
	gcValues := make([]float64, 0, len(sequences))
	for _, s := range sequences {
		lengths = append(lengths, s.Len())
		gcValues = append(gcValues, s.GCContent())
		stats.TotalBases += s.Len()
	}

	stats.MeanLength = Mean(lengths)
	stats.MedianLength = Median(lengths)
	stats.StdLength = StdDev(lengths)

	stats.MinLength, stats.MaxLength = lengths[0], lengths[0]
	for _, l := range lengths[1:] {
		if l < stats.MinLength {
			stats.MinLength = l
		}
		if l > stats.MaxLength {
			stats.MaxLength = l
		}
	}

	stats.MeanGC = Mean(gcValues)
	stats.StdGC = StdDev(gcValues)

	stats.N50, stats.L50 = N50L50(lengths)

	return stats
}

// N50L50 computes the N50 and L50 statistics over sequence lengths:
// walking the lengths in descending order, N50 is the length whose
// cumulative sum first reaches half the total, and L50 is the number of
// sequences consumed to get there. Empty input yields (0, 0). The input
// slice is not mutated.
func N50L50(lengths []int) (n50, l50 int) {
	if len(lengths) == 0 {
		return 0, 0
	}

	sorted := make([]int, len(lengths))
	copy(sorted, lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	total := 0
	for _, l := range sorted {
		total += l
	}
	half := total / 2

	cumsum := 0
	for i, l := range sorted {
		cumsum += l
		if cumsum >= half {
			return l, i + 1
		}
	}

	return sorted[len(sorted)-1], len(sorted)
}
