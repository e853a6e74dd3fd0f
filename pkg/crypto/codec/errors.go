package codec

import "errors"

var (
	// ErrInvalidEncoding is returned for malformed lengths, prefixes or
	// non-canonical values. Errors from the lower layers are wrapped so
	// that both this value and the underlying cause match errors.Is.
	ErrInvalidEncoding = errors.New("codec: invalid encoding")

	// ErrInvalidDER is returned when a DER signature is not strictly encoded
	ErrInvalidDER = errors.New("codec: malformed DER signature")
)
