package seq

import "errors"

var (
	// ErrEmptySequence indicates construction from an empty base string.
	ErrEmptySequence = errors.New("seq: sequence must not be empty")
	// ErrInvalidBase indicates a character outside the {A,C,G,T,N} alphabet.
	ErrInvalidBase = errors.New("seq: invalid base")
	// ErrOutOfRange indicates a subsequence start or length outside valid bounds.
	ErrOutOfRange = errors.New("seq: position out of range")
)
