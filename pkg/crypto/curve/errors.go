package curve

import "errors"

var (
	// ErrInvalidEncoding is returned when a coordinate is not a canonical
	// 32-byte field element
	ErrInvalidEncoding = errors.New("curve: invalid coordinate encoding")

	// ErrPointNotOnCurve is returned when coordinates do not satisfy y^2 = x^3 + 7
	ErrPointNotOnCurve = errors.New("curve: point not on curve")

	// ErrPointAtInfinityInvalid is returned when the identity appears where a
	// finite point is required, or is claimed by non-zero coordinates
	ErrPointAtInfinityInvalid = errors.New("curve: point at infinity not allowed")
)
