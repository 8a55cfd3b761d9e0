package quality

import "sort"

// Report aggregates quality metrics over a batch of QualifiedSequences.
type Report struct {
	TotalSequences int
	TotalBases     int

	MeanLength    float64
	MeanQuality   float64
	MedianQuality float64

	BasesAboveQ20 int
	BasesAboveQ30 int

	// Histogram counts bases per quality value Q0..Q93.
	Histogram [MaxScore + 1]int

	// PerPositionQuality is the mean score at each read position, up to the
	// longest sequence in the batch.
	PerPositionQuality []float64
}

// GenerateReport walks the batch once for totals and histogram, then once
// more for per-position means. Empty input yields a zero Report.
// Complexity: O(total bases).
func GenerateReport(sequences []QualifiedSequence) Report {
	var report Report
	if len(sequences) == 0 {
		return report
	}

	report.TotalSequences = len(sequences)
	maxLength := 0
	meanQualities := make([]float64, 0, len(sequences))

	for _, qs := range sequences {
		report.TotalBases += len(qs.Bases)
		if len(qs.Bases) > maxLength {
			maxLength = len(qs.Bases)
		}
		meanQualities = append(meanQualities, qs.Quality.Mean())

		for _, q := range qs.Quality.Values() {
			report.Histogram[q]++
			if q >= 20 {
				report.BasesAboveQ20++
			}
			if q >= 30 {
				report.BasesAboveQ30++
			}
		}
	}

	report.MeanLength = float64(report.TotalBases) / float64(len(sequences))

	sum := 0.0
	for _, m := range meanQualities {
		sum += m
	}
	report.MeanQuality = sum / float64(len(meanQualities))

	sort.Float64s(meanQualities)
	n := len(meanQualities)
	if n%2 == 0 {
		report.MedianQuality = (meanQualities[n/2-1] + meanQualities[n/2]) / 2
	} else {
		report.MedianQuality = meanQualities[n/2]
	}

	report.PerPositionQuality = make([]float64, maxLength)
	counts := make([]int, maxLength)
	for _, qs := range sequences {
		for i, q := range qs.Quality.Values() {
			if i >= maxLength {
				break
			}
			report.PerPositionQuality[i] += float64(q)
			counts[i]++
		}
	}
	for i := range report.PerPositionQuality {
		if counts[i] > 0 {
			report.PerPositionQuality[i] /= float64(counts[i])
		}
	}

	return report
}

// FilterByQuality keeps sequences whose mean quality reaches minMean and
// whose length is within [minLength, maxLength] (either bound may be 0 to
// disable it). The input slice is never mutated.
func FilterByQuality(sequences []QualifiedSequence, minMean float64, minLength, maxLength int) []QualifiedSequence {
	var kept []QualifiedSequence
	for _, qs := range sequences {
		if !qs.PassesQualityFilter(minMean) {
			continue
		}
		if !qs.PassesLengthFilter(minLength, maxLength) {
			continue
		}
		kept = append(kept, qs)
	}

	return kept
}
