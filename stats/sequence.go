package stats

import (
	"math"

	"github.com/katalvlaran/bioseq/kmer"
	"github.com/katalvlaran/bioseq/seq"
)

// complexityK is the word length used for the linguistic complexity
// reported by Describe.
const complexityK = 3

// SequenceStats summarizes a single sequence.
type SequenceStats struct {
	Length      int
	GCContent   float64
	ATContent   float64
	Composition seq.Composition

	// Complexity is the linguistic complexity at word length 3.
	Complexity float64
}

// PurineRatio returns purines (A+G) over pyrimidines (C+T), or 0 when
// the sequence holds no pyrimidines.
func (s SequenceStats) PurineRatio() float64 {
	purines := s.Composition.A + s.Composition.G
	pyrimidines := s.Composition.C + s.Composition.T
	if pyrimidines == 0 {
		return 0
	}

	return float64(purines) / float64(pyrimidines)
}

// Describe computes the full per-sequence summary in one pass plus a
// k-mer scan for complexity.
func Describe(s seq.Sequence) SequenceStats {
	return SequenceStats{
		Length:      s.Len(),
		GCContent:   s.GCContent(),
		ATContent:   s.ATContent(),
		Composition: s.Composition(),
		Complexity:  LinguisticComplexity(s, complexityK),
	}
}

// LinguisticComplexity is the ratio of observed distinct k-mers to the
// maximum possible for the sequence length: min(4^k, L-k+1). Sequences
// shorter than k (or k < 1) score 0.
func LinguisticComplexity(s seq.Sequence, k int) float64 {
	if k < 1 || s.Len() < k {
		return 0
	}

	counter, err := kmer.NewCounter(k)
	if err != nil {
		return 0
	}
	counter.Count(s)

	maxPossible := s.Len() - k + 1
	if theoretical := pow4(k); theoretical < maxPossible {
		maxPossible = theoretical
	}
	if maxPossible < 1 {
		return 0
	}

	return float64(counter.Unique()) / float64(maxPossible)
}

// ShannonEntropy returns the base-2 entropy of the A/C/G/T composition
// in bits (0..2). Ambiguous bases dilute the probabilities but add no
// term of their own. Empty sequences score 0.
func ShannonEntropy(s seq.Sequence) float64 {
	if s.Len() == 0 {
		return 0
	}

	c := s.Composition()
	n := float64(s.Len())
	entropy := 0.0
	for _, count := range []int{c.A, c.C, c.G, c.T} {
		if count > 0 {
			p := float64(count) / n
			entropy -= p * math.Log2(p)
		}
	}

	return entropy
}

// DinucleotideFrequencies returns each observed 2-mer's share of all
// counted 2-mers. Sequences shorter than 2 yield an empty map.
func DinucleotideFrequencies(s seq.Sequence) map[string]float64 {
	freqs := make(map[string]float64)
	if s.Len() < 2 {
		return freqs
	}

	counter, err := kmer.NewCounter(2)
	if err != nil {
		return freqs
	}
	counter.Count(s)

	total := counter.Total()
	if total == 0 {
		return freqs
	}
	for k, count := range counter.All() {
		freqs[k] = float64(count) / float64(total)
	}

	return freqs
}

// CpGRatio returns the observed/expected CpG dinucleotide ratio, where
// expected = count(C)*count(G)/length. Sequences lacking C or G (or
// shorter than 2) score 0.
func CpGRatio(s seq.Sequence) float64 {
	if s.Len() < 2 {
		return 0
	}

	bases := s.Bases()
	cpg, cCount, gCount := 0, 0, 0
	for i := 0; i < len(bases); i++ {
		switch bases[i] {
		case 'C':
			cCount++
			if i+1 < len(bases) && bases[i+1] == 'G' {
				cpg++
			}
		case 'G':
			gCount++
		}
	}

	if cCount == 0 || gCount == 0 {
		return 0
	}
	expected := float64(cCount) * float64(gCount) / float64(len(bases))

	return float64(cpg) / expected
}

// pow4 returns 4^k for small k.
func pow4(k int) int {
	p := 1
	for i := 0; i < k; i++ {
		p *= 4
	}

	return p
}
