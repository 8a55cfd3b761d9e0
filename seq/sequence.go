package seq

import (
	"fmt"
	"strconv"
	"strings"
)

// Alphabet lists the valid bases. N marks an ambiguous base.
const Alphabet = "ACGTN"

// Ambiguous is the ambiguous-base marker.
const Ambiguous byte = 'N'

// Sequence is a validated, immutable nucleotide string with an optional
// identifier. The zero value is not usable; construct via New or NewWithID.
type Sequence struct {
	bases string
	id    string
}

// New validates bases against {A,C,G,T,N} (case-insensitive), normalizes
// to uppercase and returns a Sequence.
// Returns ErrEmptySequence for empty input and ErrInvalidBase (wrapped with
// the offending character and position) for anything outside the alphabet.
// Complexity: O(n).
func New(bases string) (Sequence, error) {
	if len(bases) == 0 {
		return Sequence{}, ErrEmptySequence
	}
	var b strings.Builder
	b.Grow(len(bases))
	for i := 0; i < len(bases); i++ {
		c := toUpper(bases[i])
		if !isValidBase(c) {
			return Sequence{}, fmt.Errorf("%w: %q at position %d", ErrInvalidBase, bases[i], i)
		}
		b.WriteByte(c)
	}

	return Sequence{bases: b.String()}, nil
}

// NewWithID is New with an identifier attached to the result.
func NewWithID(bases, id string) (Sequence, error) {
	s, err := New(bases)
	if err != nil {
		return Sequence{}, err
	}
	s.id = id

	return s, nil
}

// fromValidated wraps bases that are known to be uppercase and valid.
// Internal factory used by transformations to skip re-validation.
func fromValidated(bases, id string) Sequence {
	return Sequence{bases: bases, id: id}
}

// toUpper maps a-z onto A-Z and leaves everything else untouched.
func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}

	return c
}

// isValidBase reports whether c belongs to the uppercase alphabet.
func isValidBase(c byte) bool {
	return c == 'A' || c == 'C' || c == 'G' || c == 'T' || c == 'N'
}

// Bases returns the stored uppercase base string.
func (s Sequence) Bases() string { return s.bases }

// ID returns the optional identifier ("" when unset).
func (s Sequence) ID() string { return s.id }

// Len returns the number of bases.
func (s Sequence) Len() int { return len(s.bases) }

// HasAmbiguous reports whether the sequence contains the ambiguous base N.
func (s Sequence) HasAmbiguous() bool {
	return strings.IndexByte(s.bases, Ambiguous) >= 0
}

// GCContent returns the fraction of G and C bases (0.0 for empty input).
// Complexity: O(n).
func (s Sequence) GCContent() float64 {
	if len(s.bases) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s.bases); i++ {
		if c := s.bases[i]; c == 'G' || c == 'C' {
			gc++
		}
	}

	return float64(gc) / float64(len(s.bases))
}

// ATContent returns the fraction of A and T bases (0.0 for empty input).
// Complexity: O(n).
func (s Sequence) ATContent() float64 {
	if len(s.bases) == 0 {
		return 0
	}
	at := 0
	for i := 0; i < len(s.bases); i++ {
		if c := s.bases[i]; c == 'A' || c == 'T' {
			at++
		}
	}

	return float64(at) / float64(len(s.bases))
}

// CountBase returns the number of occurrences of base (case-insensitive).
func (s Sequence) CountBase(base byte) int {
	return strings.Count(s.bases, string(toUpper(base)))
}

// Composition is the 5-way base breakdown of a Sequence.
type Composition struct {
	A, C, G, T, N int
}

// Composition tallies every base in a single pass.
// Complexity: O(n).
func (s Sequence) Composition() Composition {
	var comp Composition
	for i := 0; i < len(s.bases); i++ {
		switch s.bases[i] {
		case 'A':
			comp.A++
		case 'C':
			comp.C++
		case 'G':
			comp.G++
		case 'T':
			comp.T++
		case 'N':
			comp.N++
		}
	}

	return comp
}

// ComplementBase maps a base to its Watson-Crick complement.
// A↔T, C↔G, N→N; anything else degrades to N.
func ComplementBase(c byte) byte {
	switch c {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	default:
		return Ambiguous
	}
}

// Complement returns a new Sequence with every base complemented,
// propagating the identifier. Complexity: O(n).
func (s Sequence) Complement() Sequence {
	out := make([]byte, len(s.bases))
	for i := 0; i < len(s.bases); i++ {
		out[i] = ComplementBase(s.bases[i])
	}

	return fromValidated(string(out), s.id)
}

// Reverse returns a new Sequence with the bases in reverse order,
// propagating the identifier. Complexity: O(n).
func (s Sequence) Reverse() Sequence {
	out := make([]byte, len(s.bases))
	for i := 0; i < len(s.bases); i++ {
		out[i] = s.bases[len(s.bases)-1-i]
	}

	return fromValidated(string(out), s.id)
}

// ReverseComplement complements and reverses in one pass, propagating the
// identifier. ReverseComplement(ReverseComplement(s)) == s for all s.
// Complexity: O(n).
func (s Sequence) ReverseComplement() Sequence {
	out := make([]byte, len(s.bases))
	for i := 0; i < len(s.bases); i++ {
		out[i] = ComplementBase(s.bases[len(s.bases)-1-i])
	}

	return fromValidated(string(out), s.id)
}

// Subsequence extracts length bases starting at start. The length is
// silently clamped to the remaining bases; a start beyond the last base or
// a non-positive length returns ErrOutOfRange. When an identifier is set,
// the result carries "id_start_len" so slices stay traceable.
func (s Sequence) Subsequence(start, length int) (Sequence, error) {
	if start < 0 || start >= len(s.bases) {
		return Sequence{}, fmt.Errorf("%w: subsequence start %d (length %d)", ErrOutOfRange, start, len(s.bases))
	}
	if length < 1 {
		return Sequence{}, fmt.Errorf("%w: subsequence length %d", ErrOutOfRange, length)
	}
	if rest := len(s.bases) - start; length > rest {
		length = rest
	}

	id := s.id
	if id != "" {
		id = id + "_" + strconv.Itoa(start) + "_" + strconv.Itoa(length)
	}

	return fromValidated(s.bases[start:start+length], id), nil
}

// Concat joins two already-validated sequences without re-validation.
// The identifier is not propagated.
func (s Sequence) Concat(other Sequence) Sequence {
	return fromValidated(s.bases+other.bases, "")
}

// ContainsMotif reports whether motif occurs in the sequence.
func (s Sequence) ContainsMotif(motif string) bool {
	return strings.Contains(s.bases, motif)
}

// MotifPositions returns the start positions of all, possibly overlapping,
// occurrences of motif in first-to-last order. Empty or over-long motifs
// yield nil. Complexity: O(n·m) worst case.
func (s Sequence) MotifPositions(motif string) []int {
	if motif == "" || len(motif) > len(s.bases) {
		return nil
	}
	var positions []int
	for from := 0; ; {
		i := strings.Index(s.bases[from:], motif)
		if i < 0 {
			break
		}
		positions = append(positions, from+i)
		from += i + 1 // step one base so overlapping hits are found
	}

	return positions
}

// CountMotif returns the number of (possibly overlapping) motif occurrences.
func (s Sequence) CountMotif(motif string) int {
	return len(s.MotifPositions(motif))
}

// String renders a minimal FASTA-like record: an optional ">id" header line
// followed by the raw bases.
func (s Sequence) String() string {
	if s.id == "" {
		return s.bases
	}

	return ">" + s.id + "\n" + s.bases
}
