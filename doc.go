// Package bioseq is an in-memory toolkit for analyzing short nucleotide
// sequences — from validated sequence primitives to dynamic-programming
// alignment, k-mer spectra and descriptive statistics.
//
// 🚀 What is bioseq?
//
//	A pure-Go sequence-analysis engine that brings together:
//		• Core primitives: validated, immutable Sequence values over {A,C,G,T,N}
//		• K-mer analysis: frequency tables, canonical (strand-merged) counting
//		• Alignment: Smith–Waterman, Needleman–Wunsch, semi-global, banded
//		• Distances: Levenshtein edit distance, Hamming distance
//		• Quality: Phred score decoding, trimming, sliding windows, reports
//		• Statistics: entropy, diversity indices, N50/L50, Jaccard/cosine
//
// ✨ Why choose bioseq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every result is a value; no shared mutable state
//   - Pure Go – no cgo, no hidden deps
//   - Parallel-ready – independent counters combine via commutative Merge
//
// Under the hood, everything is organized into per-concern subpackages:
//
//	seq/     — the Sequence value type: validation, transforms, motif search
//	kmer/    — KMer counters (plain & canonical), spectra, merge semantics
//	align/   — pairwise alignment engine, CIGAR encoding, progressive MSA
//	quality/ — Phred quality scores, trimming, filtering, quality reports
//	stats/   — per-sequence, per-collection and per-table statistics
//	config/  — viper-backed defaults consumed by the demo CLI
//	cmd/     — bioseq, a small cobra CLI that prints formatted results
//
// Quick ASCII example:
//
//	    ACGTACGT
//	    ||||x|||
//	    ACGTCCGT
//
//	a global alignment with seven matches and one mismatch.
//
// The engine is synchronous and single-threaded internally; callers are free
// to parallelize across independent Sequence and Counter values. Each
// subpackage ships runnable examples in its example_test.go.
//
//	go get github.com/katalvlaran/bioseq
package bioseq
