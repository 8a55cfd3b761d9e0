package stats_test

import (
	"fmt"

	"github.com/katalvlaran/bioseq/kmer"
	"github.com/katalvlaran/bioseq/seq"
	"github.com/katalvlaran/bioseq/stats"
)

// ExampleDescribe summarizes one sequence.
func ExampleDescribe() {
	s, _ := seq.New("ACGTACGT")
	summary := stats.Describe(s)

	fmt.Printf("length:     %d\n", summary.Length)
	fmt.Printf("GC:         %.2f\n", summary.GCContent)
	fmt.Printf("entropy:    %.2f\n", stats.ShannonEntropy(s))
	fmt.Printf("complexity: %.2f\n", summary.Complexity)
	// Output:
	// length:     8
	// GC:         0.50
	// entropy:    2.00
	// complexity: 0.67
}

// ExampleN50L50 computes the assembly-style length statistics.
func ExampleN50L50() {
	lengths := []int{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}

	n50, l50 := stats.N50L50(lengths)
	fmt.Println("N50:", n50)
	fmt.Println("L50:", l50)
	// Output:
	// N50: 70
	// L50: 4
}

// ExampleJaccard compares two sequences by their shared 2-mers.
func ExampleJaccard() {
	count := func(bases string) *kmer.Counter {
		counter, _ := kmer.NewCounter(2)
		s, _ := seq.New(bases)
		counter.Count(s)
		return counter
	}

	a := count("AATT")
	b := count("AACC")

	fmt.Printf("Jaccard:     %.2f\n", stats.Jaccard(a, b))
	fmt.Printf("Bray-Curtis: %.2f\n", stats.BrayCurtis(a, b))
	// Output:
	// Jaccard:     0.20
	// Bray-Curtis: 0.67
}
