// Package stats computes descriptive and comparative statistics over
// nucleotide sequences and k-mer frequency tables.
//
// What:
//
//   - Generic descriptive helpers (Mean, Median, Variance, StdDev,
//     Percentile, Histogram) over any integer or float slice.
//   - Describe summarizes one sequence: composition, GC/AT content,
//     Shannon entropy and linguistic complexity.
//   - DescribeCollection summarizes a batch: length distribution, GC
//     spread, and the assembly-style N50/L50 statistics.
//   - DescribeKMers reads diversity measures (Simpson, Shannon, coverage,
//     singleton/doubleton tallies) off any k-mer Table.
//   - Jaccard, Cosine and BrayCurtis compare two k-mer tables; the Table
//     interface admits plain and canonical counters alike.
//
// Why:
//
//   - QC dashboards: per-read and per-batch summaries before analysis.
//   - Assembly assessment: N50/L50 over contig lengths.
//   - Alignment-free comparison: k-mer profile similarity scales to
//     inputs where alignment would not.
//
// Complexity:
//
//   - Descriptive helpers: O(n) or O(n log n) where sorting is needed.
//   - Describe: O(L·k) dominated by the complexity k-mer scan.
//   - Table comparisons: O(u) over the unique k-mers of both tables.
//
// The package defines no errors of its own: degenerate inputs (empty
// slices, empty tables) yield the documented zero or unit values rather
// than failures.
package stats
