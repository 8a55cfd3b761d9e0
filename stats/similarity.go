package stats

import "math"

// Jaccard returns the Jaccard similarity of the two tables' k-mer sets:
// |intersection| / |union|, ignoring counts. Two empty tables are
// identical (1); one empty table shares nothing (0).
func Jaccard(a, b Table) float64 {
	if a.Unique() == 0 && b.Unique() == 0 {
		return 1
	}
	if a.Unique() == 0 || b.Unique() == 0 {
		return 0
	}

	intersection := 0
	for kmer := range a.All() {
		if b.Get(kmer) > 0 {
			intersection++
		}
	}

	union := a.Unique() + b.Unique() - intersection

	return float64(intersection) / float64(union)
}

// Cosine returns the cosine similarity of the two tables viewed as
// count vectors over the union of their k-mers. Either table empty
// scores 0.
func Cosine(a, b Table) float64 {
	if a.Unique() == 0 || b.Unique() == 0 {
		return 0
	}

	dot, normA, normB := 0.0, 0.0, 0.0
	for kmer, countA := range a.All() {
		cA := float64(countA)
		cB := float64(b.Get(kmer))
		dot += cA * cB
		normA += cA * cA
		normB += cB * cB
	}
	// Pick up b-only k-mers, which contribute to b's norm alone.
	for kmer, countB := range b.All() {
		if a.Get(kmer) == 0 {
			cB := float64(countB)
			normB += cB * cB
		}
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return dot / denom
}

// BrayCurtis returns the Bray-Curtis dissimilarity
// 1 - 2*sum(min(cA, cB)) / (totalA + totalB) over the two count
// profiles. Identical profiles score 0, disjoint ones 1; two empty
// tables score 0.
func BrayCurtis(a, b Table) float64 {
	sumTotal := float64(a.Total() + b.Total())
	if sumTotal == 0 {
		return 0
	}

	sumMin := 0.0
	for kmer, countA := range a.All() {
		if countB := b.Get(kmer); countB > 0 {
			sumMin += math.Min(float64(countA), float64(countB))
		}
	}

	return 1 - 2*sumMin/sumTotal
}
