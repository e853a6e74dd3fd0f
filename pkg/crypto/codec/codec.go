// Package codec converts points, scalars and signatures to and from bytes.
//
// Points use SEC1 encoding: 0x04 || x || y (65 bytes) or 0x02/0x03 || x
// (33 bytes) where the prefix carries the parity of y. The single-byte
// encoding of the point at infinity is never produced and never accepted.
// Scalars are 32 bytes big-endian. Signatures are either the 64-byte compact
// form r || s or a strict DER SEQUENCE of two INTEGERs.
package codec

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/Caqil/secp256k1/pkg/crypto/curve"
	"github.com/Caqil/secp256k1/pkg/crypto/field"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
	"github.com/Caqil/secp256k1/pkg/keygen"
)

const (
	// CompressedSize is the length of a compressed SEC1 point
	CompressedSize = 1 + field.Size

	// UncompressedSize is the length of an uncompressed SEC1 point
	UncompressedSize = 1 + 2*field.Size

	// CompactSignatureSize is the length of r || s
	CompactSignatureSize = 2 * scalar.Size

	// MaxDERSignatureSize bounds a DER signature: two 33-byte INTEGERs plus headers
	MaxDERSignatureSize = 72

	prefixInfinity     = 0x00
	prefixEven         = 0x02
	prefixOdd          = 0x03
	prefixUncompressed = 0x04
)

// EncodePoint serializes p in SEC1 form. The identity has no affine
// coordinates and is rejected with curve.ErrPointAtInfinityInvalid.
func EncodePoint(p *curve.Point, compressed bool) ([]byte, error) {
	x, y, ok := p.ToAffine()
	if !ok {
		return nil, curve.ErrPointAtInfinityInvalid
	}

	xb := x.Bytes()
	if compressed {
		out := make([]byte, CompressedSize)
		out[0] = prefixEven
		if y.IsOdd() {
			out[0] = prefixOdd
		}
		copy(out[1:], xb[:])
		return out, nil
	}

	yb := y.Bytes()
	out := make([]byte, UncompressedSize)
	out[0] = prefixUncompressed
	copy(out[1:], xb[:])
	copy(out[1+field.Size:], yb[:])
	return out, nil
}

// DecodePoint parses a SEC1 point and validates it against the curve.
//
// Failures: wrong length or prefix and coordinates >= p give
// ErrInvalidEncoding; coordinates off the curve give
// curve.ErrPointNotOnCurve; the infinity encoding gives
// curve.ErrPointAtInfinityInvalid.
func DecodePoint(b []byte) (*curve.Point, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty point", ErrInvalidEncoding)
	}

	switch {
	case b[0] == prefixInfinity:
		return nil, curve.ErrPointAtInfinityInvalid

	case (b[0] == prefixEven || b[0] == prefixOdd) && len(b) == CompressedSize:
		x, err := field.FromCanonicalBytes(b[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}
		return curve.LiftX(x, b[0] == prefixOdd)

	case b[0] == prefixUncompressed && len(b) == UncompressedSize:
		p, err := curve.NewPointXY(b[1:1+field.Size], b[1+field.Size:])
		if err != nil {
			if errors.Is(err, curve.ErrPointNotOnCurve) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}
		return p, nil
	}

	return nil, fmt.Errorf("%w: point prefix 0x%02x with length %d", ErrInvalidEncoding, b[0], len(b))
}

// EncodeScalar returns the 32-byte big-endian encoding of s.
func EncodeScalar(s scalar.Scalar) [scalar.Size]byte {
	return s.Bytes()
}

// DecodeScalar parses a canonical scalar; values >= n are rejected.
func DecodeScalar(b []byte) (scalar.Scalar, error) {
	s, err := scalar.FromCanonicalBytes(b)
	if err != nil {
		return scalar.Scalar{}, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return s, nil
}

// DecodePrivateKey parses a 32-byte private key in [1, n-1]. Out of range
// values match keygen.ErrInvalidPrivateKey.
func DecodePrivateKey(b []byte) (*keygen.PrivateKey, error) {
	if len(b) != scalar.Size {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrInvalidEncoding, scalar.Size, len(b))
	}
	return keygen.NewPrivateKey(b)
}

// EncodeSignatureCompact returns r || s.
func EncodeSignatureCompact(r, s scalar.Scalar) [CompactSignatureSize]byte {
	var out [CompactSignatureSize]byte
	rb, sb := r.Bytes(), s.Bytes()
	copy(out[:scalar.Size], rb[:])
	copy(out[scalar.Size:], sb[:])
	return out
}

// DecodeSignatureCompact splits a 64-byte signature. Both halves must lie in
// [1, n-1].
func DecodeSignatureCompact(b []byte) (r, s scalar.Scalar, err error) {
	if len(b) != CompactSignatureSize {
		return r, s, fmt.Errorf("%w: compact signature must be %d bytes, got %d", ErrInvalidEncoding, CompactSignatureSize, len(b))
	}
	if r, err = scalar.FromBytesNonZero(b[:scalar.Size]); err != nil {
		return r, s, fmt.Errorf("%w: r: %w", ErrInvalidEncoding, err)
	}
	if s, err = scalar.FromBytesNonZero(b[scalar.Size:]); err != nil {
		return r, s, fmt.Errorf("%w: s: %w", ErrInvalidEncoding, err)
	}
	return r, s, nil
}

// EncodeSignatureDER returns the DER encoding SEQUENCE { INTEGER r, INTEGER s }.
func EncodeSignatureDER(r, s scalar.Scalar) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addASN1Unsigned(b, r.Bytes())
		addASN1Unsigned(b, s.Bytes())
	})
	return b.Bytes()
}

// addASN1Unsigned writes a non-negative big-endian integer as a minimal
// DER INTEGER, prepending 0x00 when the top bit would read as a sign.
func addASN1Unsigned(b *cryptobyte.Builder, v [scalar.Size]byte) {
	i := 0
	for i < len(v)-1 && v[i] == 0 {
		i++
	}
	b.AddASN1(asn1.INTEGER, func(b *cryptobyte.Builder) {
		if v[i]&0x80 != 0 {
			b.AddUint8(0)
		}
		b.AddBytes(v[i:])
	})
}

// DecodeSignatureDER parses a strict DER signature. Non-minimal lengths or
// integers, negative values, trailing data and values outside [1, n-1] are
// rejected.
func DecodeSignatureDER(der []byte) (r, s scalar.Scalar, err error) {
	if len(der) > MaxDERSignatureSize {
		return r, s, fmt.Errorf("%w: %w: %d bytes", ErrInvalidEncoding, ErrInvalidDER, len(der))
	}

	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, asn1.SEQUENCE) || !input.Empty() {
		return r, s, fmt.Errorf("%w: %w: bad sequence", ErrInvalidEncoding, ErrInvalidDER)
	}

	if r, err = readASN1Scalar(&inner); err != nil {
		return r, s, fmt.Errorf("%w: r: %w", ErrInvalidEncoding, err)
	}
	if s, err = readASN1Scalar(&inner); err != nil {
		return r, s, fmt.Errorf("%w: s: %w", ErrInvalidEncoding, err)
	}
	if !inner.Empty() {
		return r, s, fmt.Errorf("%w: %w: trailing data in sequence", ErrInvalidEncoding, ErrInvalidDER)
	}
	return r, s, nil
}

func readASN1Scalar(in *cryptobyte.String) (scalar.Scalar, error) {
	var v cryptobyte.String
	if !in.ReadASN1(&v, asn1.INTEGER) || len(v) == 0 {
		return scalar.Scalar{}, ErrInvalidDER
	}
	if v[0]&0x80 != 0 {
		return scalar.Scalar{}, fmt.Errorf("%w: negative integer", ErrInvalidDER)
	}
	if len(v) > 1 && v[0] == 0 && v[1]&0x80 == 0 {
		return scalar.Scalar{}, fmt.Errorf("%w: non-minimal integer", ErrInvalidDER)
	}
	if v[0] == 0 {
		v = v[1:]
	}
	if len(v) > scalar.Size {
		return scalar.Scalar{}, scalar.ErrInvalidScalar
	}

	var buf [scalar.Size]byte
	copy(buf[scalar.Size-len(v):], v)
	return scalar.FromBytesNonZero(buf[:])
}
