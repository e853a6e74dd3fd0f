package rand

import "errors"

var (
	// ErrInvalidLength is returned when requested length is invalid
	ErrInvalidLength = errors.New("invalid length: must be positive")

	// ErrTooManyAttempts is returned when rejection sampling keeps failing,
	// which only happens with a broken reader
	ErrTooManyAttempts = errors.New("random scalar: too many rejected samples")
)
