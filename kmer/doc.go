// Package kmer builds frequency tables over fixed-length substrings
// (k-mers) of nucleotide sequences.
//
// What:
//
//   - Counter accumulates occurrence counts for every window of length k.
//   - Windows containing the ambiguous base N are skipped entirely: they
//     neither gain a bucket nor contribute to the running total.
//   - CanonicalCounter folds a window and its reverse complement into one
//     bucket (the lexicographically smaller of the two), merging strand
//     orientations.
//   - Counters built with equal k combine additively via Merge, which is
//     commutative and associative — the documented path for parallel
//     accumulation. Merge cannot recover k-mers spanning the boundary
//     between two separately counted sequences.
//
// Why:
//
//   - Composition profiles: spectra, complexity, singleton fractions.
//   - Comparative genomics: canonical tables feed Jaccard/cosine measures.
//   - Sharded counting: one Counter per worker, Merge at the end.
//
// Complexity:
//
//   - Count:                      O(L·k) over a length-L sequence.
//   - Get/Contains:               O(k) hash lookup.
//   - MostFrequent/LeastFrequent: O(u log u) for u unique k-mers.
//   - Merge:                      O(u) over the smaller table.
//
// Errors:
//
//   - ErrZeroK: a counter was requested with k < 1.
//   - ErrKMismatch: Merge was given tables built with different k.
package kmer
