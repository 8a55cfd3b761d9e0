package kmer

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/katalvlaran/bioseq/seq"
)

// Entry is one (k-mer, count) pair from a frequency table.
type Entry struct {
	KMer  string
	Count int
}

// Spectrum summarizes a frequency table: how many distinct k-mers were
// observed, how many windows were counted in total, how many k-mers occur
// exactly once, and the unique/total complexity ratio.
type Spectrum struct {
	K          int
	Unique     int
	Total      int
	Singletons int
	Complexity float64
}

// Counter is a mutable frequency table over k-mers of a fixed length.
// It is the single mutable accumulator in the engine: it grows through
// repeated Count calls and is owned by exactly one writer. Use Merge to
// combine independently accumulated tables.
type Counter struct {
	k      int
	counts map[string]int
	order  []string // first-seen order; keeps rankings deterministic
	total  int
}

// NewCounter returns an empty Counter for k-mers of length k.
// Returns ErrZeroK when k < 1.
func NewCounter(k int) (*Counter, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroK, k)
	}

	return &Counter{k: k, counts: make(map[string]int)}, nil
}

// K returns the fixed k-mer length.
func (c *Counter) K() int { return c.k }

// Unique returns the number of distinct k-mers observed.
func (c *Counter) Unique() int { return len(c.counts) }

// Total returns the number of counted windows.
func (c *Counter) Total() int { return c.total }

// Count slides a window of length k across s and increments one bucket per
// window. Windows containing the ambiguous base are skipped entirely.
// Sequences shorter than k contribute nothing. Complexity: O(L·k).
func (c *Counter) Count(s seq.Sequence) {
	bases := s.Bases()
	if len(bases) < c.k {
		return
	}
	for i := 0; i+c.k <= len(bases); i++ {
		window := bases[i : i+c.k]
		if strings.IndexByte(window, seq.Ambiguous) >= 0 {
			continue
		}
		c.add(window)
	}
}

// add increments the bucket for an N-free window.
func (c *Counter) add(window string) {
	if _, seen := c.counts[window]; !seen {
		c.order = append(c.order, window)
	}
	c.counts[window]++
	c.total++
}

// Get returns the count for kmer, 0 if absent.
func (c *Counter) Get(kmer string) int { return c.counts[kmer] }

// Contains reports whether kmer was observed at least once.
func (c *Counter) Contains(kmer string) bool {
	_, ok := c.counts[kmer]

	return ok
}

// All returns a restartable iterator over (k-mer, count) pairs in
// first-seen order. The table must not be mutated during iteration.
func (c *Counter) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, kmer := range c.order {
			if !yield(kmer, c.counts[kmer]) {
				return
			}
		}
	}
}

// Entries returns all (k-mer, count) pairs in first-seen order.
func (c *Counter) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, kmer := range c.order {
		entries = append(entries, Entry{KMer: kmer, Count: c.counts[kmer]})
	}

	return entries
}

// MostFrequent returns up to n entries with the highest counts,
// ties broken by first-seen order. Complexity: O(u log u).
func (c *Counter) MostFrequent(n int) []Entry {
	return c.ranked(n, func(a, b Entry) bool { return a.Count > b.Count })
}

// LeastFrequent returns up to n entries with the lowest counts,
// ties broken by first-seen order.
func (c *Counter) LeastFrequent(n int) []Entry {
	return c.ranked(n, func(a, b Entry) bool { return a.Count < b.Count })
}

// ranked sorts a snapshot of the table with a stable comparator and
// truncates it to n entries.
func (c *Counter) ranked(n int, less func(a, b Entry) bool) []Entry {
	if n < 1 {
		return nil
	}
	entries := c.Entries()
	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
	if n < len(entries) {
		entries = entries[:n]
	}

	return entries
}

// AboveThreshold returns all entries with count >= threshold, ordered by
// count descending (ties in first-seen order).
func (c *Counter) AboveThreshold(threshold int) []Entry {
	var entries []Entry
	for _, kmer := range c.order {
		if count := c.counts[kmer]; count >= threshold {
			entries = append(entries, Entry{KMer: kmer, Count: count})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })

	return entries
}

// Spectrum summarizes the table. Complexity for an empty table is 0.
func (c *Counter) Spectrum() Spectrum {
	spec := Spectrum{K: c.k, Unique: len(c.counts), Total: c.total}
	for _, count := range c.counts {
		if count == 1 {
			spec.Singletons++
		}
	}
	if c.total > 0 {
		spec.Complexity = float64(spec.Unique) / float64(c.total)
	}

	return spec
}

// Merge adds every bucket of other into c. Both tables must have been built
// with the same k; otherwise ErrKMismatch is reported and c is unchanged.
// Merge is additive, commutative and associative — but it cannot recover
// k-mers that would have spanned the boundary between the two inputs.
func (c *Counter) Merge(other *Counter) error {
	if other.k != c.k {
		return fmt.Errorf("%w: %d vs %d", ErrKMismatch, c.k, other.k)
	}
	for _, kmer := range other.order {
		count := other.counts[kmer]
		if _, seen := c.counts[kmer]; !seen {
			c.order = append(c.order, kmer)
		}
		c.counts[kmer] += count
		c.total += count
	}

	return nil
}

// Clear resets the table to its freshly constructed state, keeping k.
func (c *Counter) Clear() {
	c.counts = make(map[string]int)
	c.order = nil
	c.total = 0
}
