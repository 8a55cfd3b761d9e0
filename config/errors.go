package config

import "errors"

var (
	// ErrInvalidValue marks a setting outside its documented range.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrUnknownEncoding marks an unrecognized quality encoding name.
	ErrUnknownEncoding = errors.New("config: unknown quality encoding")
)
