package scalar

import "errors"

var (
	// ErrInvalidEncoding is returned when a byte encoding is not 32 bytes long
	ErrInvalidEncoding = errors.New("scalar: invalid encoding")

	// ErrInvalidScalar is returned when a value lies outside the required range
	ErrInvalidScalar = errors.New("scalar: value out of range")

	// ErrNotInvertible is returned when inverting zero
	ErrNotInvertible = errors.New("scalar: zero is not invertible")
)
