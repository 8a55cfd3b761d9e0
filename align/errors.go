package align

import "errors"

// ErrLengthMismatch indicates Hamming distance was requested over sequences
// of unequal length.
var ErrLengthMismatch = errors.New("align: hamming distance requires equal-length sequences")
