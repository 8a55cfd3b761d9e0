package stats

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type the descriptive helpers
// accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += float64(v)
	}

	return sum / float64(len(values))
}

// Variance returns the sample variance (n-1 denominator), or 0 for
// fewer than two values.
func Variance[T Number](values []T) float64 {
	if len(values) < 2 {
		return 0
	}

	m := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := float64(v) - m
		sumSq += d * d
	}

	return sumSq / float64(len(values)-1)
}

// StdDev returns the sample standard deviation.
func StdDev[T Number](values []T) float64 {
	return math.Sqrt(Variance(values))
}

// Median returns the middle value (mean of the two middle values for
// even counts), or 0 for an empty slice.
func Median[T Number](values []T) float64 {
	sorted := toSortedFloats(values)
	n := len(sorted)
	if n == 0 {
		return 0
	}

	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return sorted[n/2]
}

// Percentile returns the p-th percentile (0..100) with linear
// interpolation between the two nearest ranks, or 0 for an empty slice.
func Percentile[T Number](values []T, p float64) float64 {
	sorted := toSortedFloats(values)
	if len(sorted) == 0 {
		return 0
	}

	index := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	fraction := index - float64(lower)

	return sorted[lower]*(1-fraction) + sorted[upper]*fraction
}

// HistogramBin is one half-open interval [Lower, Upper) and its count;
// the last bin also absorbs the maximum value.
type HistogramBin struct {
	Lower float64
	Upper float64
	Count int
}

// Histogram buckets values into numBins equal-width bins spanning
// [min, max]. Degenerate input (empty slice, numBins < 1) returns nil;
// all-equal values collapse into a single bin.
func Histogram[T Number](values []T, numBins int) []HistogramBin {
	if len(values) == 0 || numBins < 1 {
		return nil
	}

	minVal := float64(values[0])
	maxVal := minVal
	for _, v := range values[1:] {
		f := float64(v)
		if f < minVal {
			minVal = f
		}
		if f > maxVal {
			maxVal = f
		}
	}

	if minVal == maxVal {
		return []HistogramBin{{Lower: minVal, Upper: maxVal, Count: len(values)}}
	}

	width := (maxVal - minVal) / float64(numBins)
	bins := make([]HistogramBin, numBins)
	for i := range bins {
		bins[i].Lower = minVal + float64(i)*width
		bins[i].Upper = minVal + float64(i+1)*width
	}

	for _, v := range values {
		idx := int((float64(v) - minVal) / width)
		if idx >= numBins {
			idx = numBins - 1
		}
		bins[idx].Count++
	}

	return bins
}

// toSortedFloats copies values into an ascending float64 slice.
func toSortedFloats[T Number](values []T) []float64 {
	sorted := make([]float64, len(values))
	for i, v := range values {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)

	return sorted
}
