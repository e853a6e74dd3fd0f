package field

import "errors"

var (
	// ErrInvalidEncoding is returned when a byte encoding has the wrong
	// length or, for canonical decoding, a value >= p
	ErrInvalidEncoding = errors.New("field: invalid element encoding")

	// ErrNotInvertible is returned when inverting zero
	ErrNotInvertible = errors.New("field: zero is not invertible")
)
