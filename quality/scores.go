package quality

import (
	"fmt"
	"math"
	"sort"
)

// Scores is an ordered, immutable run of per-position quality values
// (0–93, Phred scale). Construct via FromASCII or FromValues.
type Scores struct {
	values []uint8
}

// FromASCII decodes an ASCII quality string: each character maps to
// ascii − offset, clamped at MaxScore. A character below the offset yields
// ErrInvalidQuality wrapped with the character and its position.
// Complexity: O(n).
func FromASCII(ascii string, enc Encoding) (Scores, error) {
	values := make([]uint8, 0, len(ascii))
	offset := enc.offset()
	for i := 0; i < len(ascii); i++ {
		q := int(ascii[i]) - offset
		if q < 0 {
			return Scores{}, fmt.Errorf("%w: %q at position %d (%s)", ErrInvalidQuality, ascii[i], i, enc)
		}
		if q > MaxScore {
			q = MaxScore
		}
		values = append(values, uint8(q))
	}

	return Scores{values: values}, nil
}

// FromValues wraps a copy of numeric quality values, clamping at MaxScore.
func FromValues(values []uint8) Scores {
	copied := make([]uint8, len(values))
	for i, v := range values {
		if v > MaxScore {
			v = MaxScore
		}
		copied[i] = v
	}

	return Scores{values: copied}
}

// ToASCII re-encodes the scores under enc by reversing the offset.
func (s Scores) ToASCII(enc Encoding) string {
	out := make([]byte, len(s.values))
	offset := enc.offset()
	for i, q := range s.values {
		out[i] = byte(int(q) + offset)
	}

	return string(out)
}

// Len returns the number of positions.
func (s Scores) Len() int { return len(s.values) }

// At returns the score at index i, or ErrOutOfRange.
func (s Scores) At(i int) (uint8, error) {
	if i < 0 || i >= len(s.values) {
		return 0, fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, i, len(s.values))
	}

	return s.values[i], nil
}

// Values returns a copy of the underlying scores.
func (s Scores) Values() []uint8 {
	out := make([]uint8, len(s.values))
	copy(out, s.values)

	return out
}

// Mean returns the average score (0 for empty input).
func (s Scores) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sum := 0
	for _, q := range s.values {
		sum += int(q)
	}

	return float64(sum) / float64(len(s.values))
}

// Median returns the middle score, averaging the central pair for even
// counts (0 for empty input). Complexity: O(n log n).
func (s Scores) Median() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sorted := s.Values()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n%2 == 0 {
		return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
	}

	return float64(sorted[n/2])
}

// Min returns the lowest score (0 for empty input).
func (s Scores) Min() uint8 {
	if len(s.values) == 0 {
		return 0
	}
	lowest := s.values[0]
	for _, q := range s.values[1:] {
		if q < lowest {
			lowest = q
		}
	}

	return lowest
}

// Max returns the highest score (0 for empty input).
func (s Scores) Max() uint8 {
	if len(s.values) == 0 {
		return 0
	}
	highest := s.values[0]
	for _, q := range s.values[1:] {
		if q > highest {
			highest = q
		}
	}

	return highest
}

// StdDev returns the sample standard deviation (divisor n−1; 0 for fewer
// than 2 values).
func (s Scores) StdDev() float64 {
	if len(s.values) < 2 {
		return 0
	}
	m := s.Mean()
	sumSq := 0.0
	for _, q := range s.values {
		diff := float64(q) - m
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(s.values)-1))
}

// CountAtLeast returns how many positions score >= threshold.
func (s Scores) CountAtLeast(threshold uint8) int {
	count := 0
	for _, q := range s.values {
		if q >= threshold {
			count++
		}
	}

	return count
}

// CountBelow returns how many positions score < threshold.
func (s Scores) CountBelow(threshold uint8) int {
	return len(s.values) - s.CountAtLeast(threshold)
}

// FractionAtLeast returns CountAtLeast / length (0 for empty input).
func (s Scores) FractionAtLeast(threshold uint8) float64 {
	if len(s.values) == 0 {
		return 0
	}

	return float64(s.CountAtLeast(threshold)) / float64(len(s.values))
}

// ErrorProbability returns 10^(−Q/10) for the score at index i,
// or ErrOutOfRange.
func (s Scores) ErrorProbability(i int) (float64, error) {
	q, err := s.At(i)
	if err != nil {
		return 0, err
	}

	return phredToProb(q), nil
}

// ErrorProbabilities returns 10^(−Q/10) for every position.
func (s Scores) ErrorProbabilities() []float64 {
	probs := make([]float64, len(s.values))
	for i, q := range s.values {
		probs[i] = phredToProb(q)
	}

	return probs
}

// MeanErrorProbability averages the per-position error probabilities
// (0 for empty input).
func (s Scores) MeanErrorProbability() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sum := 0.0
	for _, q := range s.values {
		sum += phredToProb(q)
	}

	return sum / float64(len(s.values))
}

// phredToProb converts a Phred score into an error probability.
func phredToProb(q uint8) float64 {
	return math.Pow(10, -float64(q)/10)
}

// TrimPositions scans forward to the first position >= threshold and
// backward to the last, returning the half-open span [start, end).
// When the span is shorter than minLength the entire original range is
// returned unchanged — trimming degrades to a no-op rather than emitting a
// fragment below the caller's floor.
func (s Scores) TrimPositions(threshold uint8, minLength int) (start, end int) {
	if len(s.values) == 0 {
		return 0, 0
	}

	start = 0
	for start < len(s.values) && s.values[start] < threshold {
		start++
	}
	end = len(s.values)
	for end > start && s.values[end-1] < threshold {
		end--
	}

	if end-start < minLength {
		return 0, len(s.values)
	}

	return start, end
}

// Trim returns the scores inside TrimPositions' span.
func (s Scores) Trim(threshold uint8, minLength int) Scores {
	start, end := s.TrimPositions(threshold, minLength)

	return s.Subrange(start, end-start)
}

// Subrange extracts length scores starting at start, clamping length to
// the remaining positions. An out-of-range start yields empty Scores.
func (s Scores) Subrange(start, length int) Scores {
	if start < 0 || start >= len(s.values) || length < 1 {
		return Scores{}
	}
	if rest := len(s.values) - start; length > rest {
		length = rest
	}
	sub := make([]uint8, length)
	copy(sub, s.values[start:start+length])

	return Scores{values: sub}
}

// SlidingWindowMean returns the mean of every window of the given size,
// maintained with a running sum. Degenerate windows yield nil.
// Complexity: O(n).
func (s Scores) SlidingWindowMean(window int) []float64 {
	if len(s.values) == 0 || window < 1 || window > len(s.values) {
		return nil
	}

	means := make([]float64, 0, len(s.values)-window+1)
	sum := 0
	for i := 0; i < window; i++ {
		sum += int(s.values[i])
	}
	means = append(means, float64(sum)/float64(window))

	for i := window; i < len(s.values); i++ {
		sum += int(s.values[i]) - int(s.values[i-window])
		means = append(means, float64(sum)/float64(window))
	}

	return means
}

// LowQualityRegion returns the start and length of the longest contiguous
// run of scores below threshold that spans at least minLength positions;
// (0, 0) when no such run exists.
func (s Scores) LowQualityRegion(threshold uint8, minLength int) (start, length int) {
	bestStart, bestLen := 0, 0
	runStart, runLen := 0, 0
	inRun := false

	for i, q := range s.values {
		if q < threshold {
			if !inRun {
				runStart, runLen = i, 0
				inRun = true
			}
			runLen++
			continue
		}
		if inRun && runLen >= minLength && runLen > bestLen {
			bestStart, bestLen = runStart, runLen
		}
		inRun = false
	}
	if inRun && runLen >= minLength && runLen > bestLen {
		bestStart, bestLen = runStart, runLen
	}

	return bestStart, bestLen
}
