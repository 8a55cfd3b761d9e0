package kmer

import (
	"iter"
	"strings"

	"github.com/katalvlaran/bioseq/seq"
)

// Canonical returns the lexicographically smaller of kmer and its reverse
// complement. A k-mer and its reverse complement always canonicalize to the
// same string; palindromic k-mers map to themselves. Complexity: O(k).
func Canonical(kmer string) string {
	rc := make([]byte, len(kmer))
	for i := 0; i < len(kmer); i++ {
		rc[i] = seq.ComplementBase(kmer[len(kmer)-1-i])
	}
	if kmer <= string(rc) {
		return kmer
	}

	return string(rc)
}

// CanonicalCounter is a Counter that folds each window and its reverse
// complement into one bucket, merging strand orientations. Queries are
// canonicalized too, so Get("AT") and Get(reverseComplement("AT")) agree.
type CanonicalCounter struct {
	inner Counter
}

// NewCanonicalCounter returns an empty canonical counter for length-k
// windows. Returns ErrZeroK when k < 1.
func NewCanonicalCounter(k int) (*CanonicalCounter, error) {
	c, err := NewCounter(k)
	if err != nil {
		return nil, err
	}

	return &CanonicalCounter{inner: *c}, nil
}

// K returns the fixed k-mer length.
func (c *CanonicalCounter) K() int { return c.inner.k }

// Unique returns the number of distinct canonical k-mers observed.
func (c *CanonicalCounter) Unique() int { return c.inner.Unique() }

// Total returns the number of counted windows.
func (c *CanonicalCounter) Total() int { return c.inner.Total() }

// Count slides a window of length k across s, canonicalizes each N-free
// window, and increments its bucket. Complexity: O(L·k).
func (c *CanonicalCounter) Count(s seq.Sequence) {
	bases := s.Bases()
	if len(bases) < c.inner.k {
		return
	}
	for i := 0; i+c.inner.k <= len(bases); i++ {
		window := bases[i : i+c.inner.k]
		if strings.IndexByte(window, seq.Ambiguous) >= 0 {
			continue
		}
		c.inner.add(Canonical(window))
	}
}

// Get returns the count for the canonical form of kmer, 0 if absent.
func (c *CanonicalCounter) Get(kmer string) int {
	return c.inner.Get(Canonical(kmer))
}

// Contains reports whether the canonical form of kmer was observed.
func (c *CanonicalCounter) Contains(kmer string) bool {
	return c.inner.Contains(Canonical(kmer))
}

// All returns a restartable iterator over (canonical k-mer, count) pairs
// in first-seen order.
func (c *CanonicalCounter) All() iter.Seq2[string, int] { return c.inner.All() }

// Entries returns all (canonical k-mer, count) pairs in first-seen order.
func (c *CanonicalCounter) Entries() []Entry { return c.inner.Entries() }

// MostFrequent returns up to n canonical entries with the highest counts.
func (c *CanonicalCounter) MostFrequent(n int) []Entry { return c.inner.MostFrequent(n) }

// LeastFrequent returns up to n canonical entries with the lowest counts.
func (c *CanonicalCounter) LeastFrequent(n int) []Entry { return c.inner.LeastFrequent(n) }

// AboveThreshold returns all canonical entries with count >= threshold.
func (c *CanonicalCounter) AboveThreshold(threshold int) []Entry {
	return c.inner.AboveThreshold(threshold)
}

// Spectrum summarizes the canonical table.
func (c *CanonicalCounter) Spectrum() Spectrum { return c.inner.Spectrum() }

// Merge adds every bucket of other into c; both must share the same k.
func (c *CanonicalCounter) Merge(other *CanonicalCounter) error {
	return c.inner.Merge(&other.inner)
}

// Clear resets the table, keeping k.
func (c *CanonicalCounter) Clear() { c.inner.Clear() }
