package hash

import "errors"

var (
	// ErrUnknownHashFunction is returned when a hash function name is not recognised
	ErrUnknownHashFunction = errors.New("unknown hash function")
)
