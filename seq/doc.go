// Package seq defines the Sequence value type: a validated, immutable
// nucleotide string over the alphabet {A, C, G, T, N}.
//
// What:
//
//   - Sequence wraps an uppercase base string with an optional identifier.
//   - Construction validates every character once; all later operations
//     trust the stored bases and never re-validate.
//   - Every transformation (Complement, Reverse, ReverseComplement,
//     Subsequence, Concat) returns a fresh Sequence value.
//   - Motif search reports all, possibly overlapping, occurrences.
//
// Why:
//
//   - Read analysis: GC content, base composition, ambiguity checks.
//   - Strand work: complement / reverse-complement round-trips.
//   - Building block: kmer, align, quality and stats all consume Sequence.
//
// Complexity:
//
//   - New:                O(n) validation + normalization.
//   - Complement/Reverse: O(n), one allocation.
//   - MotifPositions:     O(n·m) worst case (overlapping scan).
//   - Content ratios:     O(n).
//
// Errors:
//
//   - ErrEmptySequence: input has no bases.
//   - ErrInvalidBase: a character outside {A,C,G,T,N} (case-insensitive);
//     the wrapped message names the character and its position.
//   - ErrOutOfRange: Subsequence start or length outside valid bounds.
package seq
