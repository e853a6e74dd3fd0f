package keygen

import "errors"

var (
	// ErrInvalidPrivateKey is returned when a private key is not in [1, n-1]
	ErrInvalidPrivateKey = errors.New("invalid private key: must be in [1, n-1]")

	// ErrWipedKey is returned when a key is used after Wipe
	ErrWipedKey = errors.New("private key has been wiped")
)
