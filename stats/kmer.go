package stats

import (
	"iter"
	"math"
)

// Table is the read side of a k-mer frequency table. Both *kmer.Counter
// and *kmer.CanonicalCounter satisfy it.
type Table interface {
	K() int
	Unique() int
	Total() int
	Get(kmer string) int
	All() iter.Seq2[string, int]
}

// KMerStats summarizes the diversity of one k-mer table.
type KMerStats struct {
	K              int
	Unique         int
	Total          int
	TheoreticalMax int // 4^k
	Coverage       float64

	SimpsonIndex float64
	ShannonIndex float64

	Singletons int
	Doubletons int
}

// DescribeKMers computes diversity statistics over a table in one scan.
func DescribeKMers(t Table) KMerStats {
	stats := KMerStats{
		K:              t.K(),
		Unique:         t.Unique(),
		Total:          t.Total(),
		TheoreticalMax: pow4(t.K()),
	}
	if stats.TheoreticalMax > 0 {
		stats.Coverage = float64(stats.Unique) / float64(stats.TheoreticalMax)
	}

	for _, count := range t.All() {
		switch count {
		case 1:
			stats.Singletons++
		case 2:
			stats.Doubletons++
		}
	}

	stats.SimpsonIndex = SimpsonIndex(t)
	stats.ShannonIndex = ShannonIndex(t)

	return stats
}

// SimpsonIndex returns Simpson's diversity index
// 1 - sum(c*(c-1)) / (n*(n-1)): the probability that two k-mers drawn
// without replacement differ. Tables with fewer than two observations
// score 0.
func SimpsonIndex(t Table) float64 {
	n := t.Total()
	if n < 2 {
		return 0
	}

	sum := 0.0
	for _, count := range t.All() {
		sum += float64(count) * float64(count-1)
	}

	return 1 - sum/(float64(n)*float64(n-1))
}

// ShannonIndex returns the Shannon diversity index -sum(p*ln p) over
// k-mer frequencies, in nats. Empty tables score 0.
func ShannonIndex(t Table) float64 {
	if t.Unique() == 0 {
		return 0
	}

	n := float64(t.Total())
	entropy := 0.0
	for _, count := range t.All() {
		p := float64(count) / n
		entropy -= p * math.Log(p)
	}

	return entropy
}
