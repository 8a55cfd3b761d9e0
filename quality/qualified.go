package quality

// QualifiedSequence pairs a base string with its per-position quality
// scores and an optional free-text description, mirroring one FASTQ-style
// record. A length mismatch between bases and scores is representable —
// IsValid flags it — but never rejected at construction.
type QualifiedSequence struct {
	ID          string
	Bases       string
	Quality     Scores
	Description string
}

// Len returns the number of bases.
func (q QualifiedSequence) Len() int { return len(q.Bases) }

// IsValid reports whether bases and quality scores have equal length.
func (q QualifiedSequence) IsValid() bool {
	return len(q.Bases) == q.Quality.Len()
}

// PassesQualityFilter reports whether the mean quality reaches minMean.
func (q QualifiedSequence) PassesQualityFilter(minMean float64) bool {
	return q.Quality.Mean() >= minMean
}

// PassesLengthFilter reports whether the base count is within
// [minLength, maxLength]; maxLength < 1 means no upper bound.
func (q QualifiedSequence) PassesLengthFilter(minLength, maxLength int) bool {
	if len(q.Bases) < minLength {
		return false
	}
	if maxLength > 0 && len(q.Bases) > maxLength {
		return false
	}

	return true
}

// Trim cuts bases and scores to the quality span selected by
// TrimPositions, inheriting its degrade-to-no-op policy for spans shorter
// than minLength.
func (q QualifiedSequence) Trim(threshold uint8, minLength int) QualifiedSequence {
	start, end := q.Quality.TrimPositions(threshold, minLength)

	bases := q.Bases
	if start < len(bases) {
		stop := min(end, len(bases))
		bases = bases[start:stop]
	} else {
		bases = ""
	}

	return QualifiedSequence{
		ID:          q.ID,
		Bases:       bases,
		Quality:     q.Quality.Subrange(start, end-start),
		Description: q.Description,
	}
}
