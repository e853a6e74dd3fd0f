// Package scalar implements arithmetic modulo n, the order of the secp256k1
// base point.
//
// Scalar mirrors field.Element but is a distinct type: a value reduced
// modulo p can never be passed where a value modulo n is expected. The only
// bridge is FromFieldElement, which performs the reduction ECDSA needs for
// the x-coordinate of R.
package scalar

import (
	"encoding/hex"

	"github.com/Caqil/secp256k1/internal/arith"
	"github.com/Caqil/secp256k1/internal/security"
	"github.com/Caqil/secp256k1/pkg/crypto/field"
)

// Size is the length in bytes of an encoded scalar.
const Size = 32

// Bits is the number of bits processed by scalar multiplication.
const Bits = 256

var md = arith.N

// halfOrder is floor(n/2).
var halfOrder = arith.Limbs{
	0xDFE92F46681B20A0, 0x5D576E7357A4501D,
	0xFFFFFFFFFFFFFFFF, 0x7FFFFFFFFFFFFFFF,
}

// Scalar is an integer modulo n.
type Scalar struct {
	n arith.Limbs
}

// Order returns the big-endian encoding of n.
func Order() [Size]byte {
	return md.Value().Bytes32()
}

// Zero returns the scalar 0.
func Zero() Scalar {
	return Scalar{}
}

// One returns the scalar 1.
func One() Scalar {
	return Scalar{n: arith.FromUint64(1)}
}

// FromUint64 returns v as a scalar.
func FromUint64(v uint64) Scalar {
	return Scalar{n: arith.FromUint64(v)}
}

// FromBytes decodes 32 big-endian bytes and reduces the value modulo n, so
// any 256-bit input names a well-defined scalar.
func FromBytes(b []byte) (Scalar, error) {
	if len(b) != Size {
		return Scalar{}, ErrInvalidEncoding
	}
	return Scalar{n: md.Reduce(arith.FromBytes32(b))}, nil
}

// FromCanonicalBytes decodes 32 big-endian bytes and rejects values >= n.
func FromCanonicalBytes(b []byte) (Scalar, error) {
	if len(b) != Size {
		return Scalar{}, ErrInvalidEncoding
	}
	n := arith.FromBytes32(b)
	if md.IsReduced(n) != 1 {
		return Scalar{}, ErrInvalidScalar
	}
	return Scalar{n: n}, nil
}

// FromBytesNonZero decodes a value that must lie in [1, n-1], the range of
// private keys, nonces and signature components.
func FromBytesNonZero(b []byte) (Scalar, error) {
	s, err := FromCanonicalBytes(b)
	if err != nil {
		return Scalar{}, err
	}
	if s.IsZero() {
		return Scalar{}, ErrInvalidScalar
	}
	return s, nil
}

// FromFieldElement reinterprets the canonical integer of a field element
// and reduces it modulo n. Because p > n this maps [n, p) onto [0, p-n);
// it is the "x mod n" step of ECDSA and not a field homomorphism.
func FromFieldElement(e field.Element) Scalar {
	return Scalar{n: md.Reduce(e.Limbs())}
}

// MustFromHex decodes a 64-digit hex constant, reducing it modulo n. It
// panics on malformed input and is meant for constants and tests.
func MustFromHex(s string) Scalar {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("scalar: bad hex constant: " + err.Error())
	}
	v, err := FromBytes(b)
	if err != nil {
		panic("scalar: bad hex constant: " + err.Error())
	}
	return v
}

// Bytes returns the 32-byte big-endian encoding of s.
func (s Scalar) Bytes() [Size]byte {
	return s.n.Bytes32()
}

// String returns s as 64 hex digits.
func (s Scalar) String() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}

// Add returns s + o mod n.
func (s Scalar) Add(o Scalar) Scalar {
	return Scalar{n: md.Add(s.n, o.n)}
}

// Sub returns s - o mod n.
func (s Scalar) Sub(o Scalar) Scalar {
	return Scalar{n: md.Sub(s.n, o.n)}
}

// Mul returns s * o mod n.
func (s Scalar) Mul(o Scalar) Scalar {
	return Scalar{n: md.Mul(s.n, o.n)}
}

// Negate returns -s mod n.
func (s Scalar) Negate() Scalar {
	return Scalar{n: md.Neg(s.n)}
}

// Invert returns s^-1 mod n computed as s^(n-2). It fails only for zero.
func (s Scalar) Invert() (Scalar, error) {
	if s.IsZero() {
		return Scalar{}, ErrNotInvertible
	}
	return Scalar{n: md.Inv(s.n)}, nil
}

// Equal reports whether s == o without an early exit.
func (s Scalar) Equal(o Scalar) bool {
	return s.n.Equal(o.n) == 1
}

// IsZero reports whether s == 0.
func (s Scalar) IsZero() bool {
	return s.n.IsZero() == 1
}

// IsHigh reports whether s > n/2. Low-S signatures keep s <= n/2.
func (s Scalar) IsHigh() bool {
	return security.LessThan(halfOrder[:], s.n[:]) == 1
}

// Bit returns bit i of s, 0 being the least significant.
func (s Scalar) Bit(i int) int {
	return s.n.Bit(i)
}

// Nibble returns the 4-bit window of s starting at bit 4*i, for i in [0, 64).
func (s Scalar) Nibble(i int) int {
	return s.n.Nibble(i)
}

// Select returns a if v == 1 and b if v == 0, without branching on v.
func Select(v int, a, b Scalar) Scalar {
	return Scalar{n: arith.Select(v, a.n, b.n)}
}

// Wipe overwrites s in place. Secret scalars (private keys, nonces) are
// wiped this way once they are no longer needed.
func (s *Scalar) Wipe() {
	s.n.Wipe()
}
