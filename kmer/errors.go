package kmer

import "errors"

var (
	// ErrZeroK indicates a counter was requested with k < 1.
	ErrZeroK = errors.New("kmer: k must be greater than 0")
	// ErrKMismatch indicates an attempt to merge tables built with different k.
	ErrKMismatch = errors.New("kmer: cannot merge counters with different k")
)
