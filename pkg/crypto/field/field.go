// Package field implements arithmetic in GF(p), the base field of secp256k1,
// where p = 2^256 - 2^32 - 977.
//
// Element is an immutable value type: every operation returns a new element
// and every element is fully reduced into [0, p). All operations run in time
// independent of the element values.
package field

import (
	"encoding/hex"

	"github.com/Caqil/secp256k1/internal/arith"
)

// Size is the length in bytes of an encoded field element.
const Size = 32

var md = arith.P

// Element is an integer modulo p.
type Element struct {
	n arith.Limbs
}

// sqrtExp is (p+1)/4; p ≡ 3 (mod 4) so a^((p+1)/4) is a square root of a
// whenever one exists.
var sqrtExp = arith.Limbs{
	0xFFFFFFFFBFFFFF0C, 0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF, 0x3FFFFFFFFFFFFFFF,
}

// Prime returns the big-endian encoding of p.
func Prime() [Size]byte {
	return md.Value().Bytes32()
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	return Element{n: arith.FromUint64(1)}
}

// FromUint64 returns v mod p.
func FromUint64(v uint64) Element {
	return Element{n: arith.FromUint64(v)}
}

// FromBytes decodes 32 big-endian bytes and reduces the value modulo p.
func FromBytes(b []byte) (Element, error) {
	if len(b) != Size {
		return Element{}, ErrInvalidEncoding
	}
	return Element{n: md.Reduce(arith.FromBytes32(b))}, nil
}

// FromCanonicalBytes decodes 32 big-endian bytes and rejects values >= p.
// Use this for untrusted point coordinates, where a non-canonical encoding
// would let two byte strings name the same point.
func FromCanonicalBytes(b []byte) (Element, error) {
	if len(b) != Size {
		return Element{}, ErrInvalidEncoding
	}
	n := arith.FromBytes32(b)
	if md.IsReduced(n) != 1 {
		return Element{}, ErrInvalidEncoding
	}
	return Element{n: n}, nil
}

// MustFromHex decodes a 64-digit hex constant. It panics on malformed input
// and is meant for package-level constants and tests.
func MustFromHex(s string) Element {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("field: bad hex constant: " + err.Error())
	}
	e, err := FromCanonicalBytes(b)
	if err != nil {
		panic("field: bad hex constant: " + err.Error())
	}
	return e
}

// Bytes returns the 32-byte big-endian encoding of e.
func (e Element) Bytes() [Size]byte {
	return e.n.Bytes32()
}

// String returns e as 64 hex digits.
func (e Element) String() string {
	b := e.Bytes()
	return hex.EncodeToString(b[:])
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	return Element{n: md.Add(e.n, o.n)}
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	return Element{n: md.Sub(e.n, o.n)}
}

// Mul returns e * o.
func (e Element) Mul(o Element) Element {
	return Element{n: md.Mul(e.n, o.n)}
}

// Square returns e^2.
func (e Element) Square() Element {
	return Element{n: md.Square(e.n)}
}

// MulInt returns e * v for a small constant v.
func (e Element) MulInt(v uint64) Element {
	return Element{n: md.Mul(e.n, arith.FromUint64(v))}
}

// Double returns 2e.
func (e Element) Double() Element {
	return Element{n: md.Add(e.n, e.n)}
}

// Negate returns -e.
func (e Element) Negate() Element {
	return Element{n: md.Neg(e.n)}
}

// Invert returns e^-1 computed as e^(p-2). It fails only for zero.
func (e Element) Invert() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrNotInvertible
	}
	return Element{n: md.Inv(e.n)}, nil
}

// Sqrt returns a square root of e and true, or zero and false when e is a
// quadratic non-residue. The root returned is e^((p+1)/4); its parity is
// whatever the exponentiation yields.
func (e Element) Sqrt() (Element, bool) {
	r := Element{n: md.Pow(e.n, sqrtExp)}
	if !r.Square().Equal(e) {
		return Element{}, false
	}
	return r, true
}

// Equal reports whether e == o. Every limb is compared.
func (e Element) Equal(o Element) bool {
	return e.n.Equal(o.n) == 1
}

// IsZero reports whether e == 0.
func (e Element) IsZero() bool {
	return e.n.IsZero() == 1
}

// IsOdd reports whether the canonical integer value of e is odd.
func (e Element) IsOdd() bool {
	return e.n[0]&1 == 1
}

// Select returns a if v == 1 and b if v == 0, without branching on v.
func Select(v int, a, b Element) Element {
	return Element{n: arith.Select(v, a.n, b.n)}
}

// Limbs exposes the reduced little-endian limbs. It exists for the
// explicit field-to-scalar conversion and is not an arithmetic entry point.
func (e Element) Limbs() [4]uint64 {
	return e.n
}
