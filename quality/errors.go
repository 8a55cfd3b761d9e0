package quality

import "errors"

var (
	// ErrInvalidQuality indicates an ASCII character below the encoding's offset.
	ErrInvalidQuality = errors.New("quality: invalid quality character for encoding")
	// ErrOutOfRange indicates an index outside the score range.
	ErrOutOfRange = errors.New("quality: index out of range")
)
