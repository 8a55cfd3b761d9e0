// Package quality decodes, analyzes and trims per-position sequencing
// quality scores (Phred scale), and pairs them with bases as
// QualifiedSequence records.
//
// What:
//
//   - Scores holds bounded integers (0–93), one per position, decoded from
//     an ASCII string under Phred+33, Phred+64 or Solexa encoding (the two
//     offset-64 variants differ only in downstream interpretation, not in
//     the decode arithmetic).
//   - Statistics: mean, median, min/max, sample standard deviation,
//     threshold counts/fractions, per-position error probabilities.
//   - Trimming: leading/trailing low-quality bases are cut; when the
//     surviving span is shorter than a minimum length, the entire original
//     range is returned unchanged — a deliberate degrade-to-no-op contract.
//   - Sliding-window means and longest low-quality-run detection.
//   - QualifiedSequence pairs bases with Scores and an optional free-text
//     description; a length mismatch is representable and flagged by
//     IsValid, never rejected at construction.
//   - Report aggregates a batch: totals, Q20/Q30 counts, a per-quality
//     histogram and per-position mean quality.
//
// Why:
//
//   - Read QC: decide trim points before alignment or counting.
//   - Batch triage: filter collections by mean quality and length.
//
// Complexity: every operation is O(n) or O(n log n) (median) over the
// score count; the sliding window uses a running sum.
//
// Errors:
//
//   - ErrInvalidQuality: an ASCII character below its encoding's offset;
//     the wrapped message names the character and position.
//   - ErrOutOfRange: an index outside the score range.
package quality
