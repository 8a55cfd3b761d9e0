// Package align implements pairwise alignment of nucleotide sequences by
// dynamic programming, plus edit/Hamming distances, CIGAR encoding and a
// progressive multiple-alignment heuristic.
//
// What:
//
//   - ScoringMatrix holds match/mismatch/gap parameters; presets provided.
//   - Local (Smith–Waterman): best local alignment, scores clamped at 0,
//     traceback from the global maximum cell.
//   - Global (Needleman–Wunsch): full-length alignment, tie-breaks favor
//     diagonal over up over left.
//   - SemiGlobal (fitting): free leading and trailing gaps in the second
//     sequence; best score is taken from the last matrix row.
//   - BandedLocal: score pass restricted to a diagonal band using a rotated
//     (i, j−i+bandwidth) index; the reported alignment is always produced
//     by a full Local recomputation (preserved fallback, see below).
//   - EditDistance (two-row Levenshtein) and HammingDistance (equal lengths
//     only).
//   - MultipleAlignment: progressive profile alignment, a documented
//     approximation rather than an optimal MSA.
//
// All four DP variants fill an (m+1)×(n+1) score plane and a parallel
// traceback plane stored as flat, row-major buffers.
//
// Why:
//
//   - Read mapping sketches: fit a short read inside a longer reference.
//   - Similarity screens: score and CIGAR for downstream reporting.
//   - Clustering: cheap distance functions over validated sequences.
//
// Complexity:
//
//   - Local/Global/SemiGlobal: O(m·n) time and memory.
//   - BandedLocal: O(m·bandwidth) for the band pass; the traceback reruns
//     the full local algorithm, so the overall cost stays O(m·n).
//   - EditDistance: O(m·n) time, O(n) memory.
//   - HammingDistance: O(n).
//
// The banded variant computes its band-restricted score matrix purely to
// prove a banded pass is possible and then reruns the full local algorithm
// for the alignment and traceback. True banded traceback would change the
// asymptotic cost and the results under test; keep the fallback.
//
// Errors:
//
//   - ErrLengthMismatch: HammingDistance over sequences of unequal length.
package align
