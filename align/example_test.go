package align_test

import (
	"fmt"

	"github.com/katalvlaran/bioseq/align"
	"github.com/katalvlaran/bioseq/seq"
)

// ExampleLocal demonstrates Smith–Waterman on two identical fragments.
func ExampleLocal() {
	a, err := seq.New("ACGT")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res := align.Local(a, a, align.DefaultScoring())
	fmt.Printf("score=%d matches=%d gaps=%d\n", res.Score, res.Matches, res.Gaps)
	// Output:
	// score=8 matches=4 gaps=0
}

// ExampleGlobal shows a global alignment and its CIGAR encoding.
func ExampleGlobal() {
	a, _ := seq.New("ACGT")
	b, _ := seq.New("AGT")

	res := align.Global(a, b, align.DefaultScoring())
	fmt.Println(res.AlignedA)
	fmt.Println(res.AlignedB)
	fmt.Println(res.CIGAR())
	// Output:
	// ACGT
	// A-GT
	// 1M1D2M
}

// ExampleSemiGlobal fits a short pattern inside a longer text with free
// end gaps.
func ExampleSemiGlobal() {
	pattern, _ := seq.New("ACGT")
	text, _ := seq.New("TTACGTTT")

	res := align.SemiGlobal(pattern, text, align.DefaultScoring())
	fmt.Println(res.AlignedA)
	fmt.Println(res.AlignedB)
	fmt.Println("score:", res.Score)
	// Output:
	// --ACGT--
	// TTACGTTT
	// score: 8
}

// ExampleEditDistance shows the two-row Levenshtein distance.
func ExampleEditDistance() {
	a, _ := seq.New("ACGT")
	b, _ := seq.New("AGT")
	fmt.Println(align.EditDistance(a, b))
	// Output:
	// 1
}
