// Package arith implements fixed-width 256-bit modular arithmetic on four
// 64-bit little-endian limbs.
//
// The same code serves the secp256k1 field prime p and the group order n:
// both moduli are of the form 2^256 - c with c below 2^129, so a 512-bit
// product folds down with a fixed number of multiply-by-c passes. No loop in
// this package depends on operand values, only on the (public) modulus.
package arith

import (
	"encoding/binary"
	"math/bits"

	"github.com/Caqil/secp256k1/internal/security"
)

// Limbs is a 256-bit unsigned integer, least significant word first.
type Limbs [4]uint64

// FromUint64 returns v as limbs.
func FromUint64(v uint64) Limbs {
	return Limbs{v, 0, 0, 0}
}

// FromBytes32 decodes a 32-byte big-endian value. It panics if len(b) != 32;
// callers validate lengths at their own boundary.
func FromBytes32(b []byte) Limbs {
	if len(b) != 32 {
		panic("arith: FromBytes32 requires exactly 32 bytes")
	}

	return Limbs{
		binary.BigEndian.Uint64(b[24:32]),
		binary.BigEndian.Uint64(b[16:24]),
		binary.BigEndian.Uint64(b[8:16]),
		binary.BigEndian.Uint64(b[0:8]),
	}
}

// Bytes32 encodes a as 32 big-endian bytes.
func (a Limbs) Bytes32() [32]byte {
	var out [32]byte
	binary.BigEndian.PutUint64(out[0:8], a[3])
	binary.BigEndian.PutUint64(out[8:16], a[2])
	binary.BigEndian.PutUint64(out[16:24], a[1])
	binary.BigEndian.PutUint64(out[24:32], a[0])
	return out
}

// Bit returns bit i (0 = least significant) of a.
func (a Limbs) Bit(i int) int {
	return int((a[i>>6] >> uint(i&63)) & 1)
}

// Nibble returns the 4-bit window starting at bit 4*i.
func (a Limbs) Nibble(i int) int {
	return int((a[i>>4] >> uint((i&15)*4)) & 0xF)
}

// IsZero returns 1 if a == 0.
func (a Limbs) IsZero() int {
	return security.LimbsIsZero(a[:])
}

// Equal returns 1 if a == b, without an early exit.
func (a Limbs) Equal(b Limbs) int {
	return security.LimbsEqual(a[:], b[:])
}

// Select returns x if v == 1 and y if v == 0.
func Select(v int, x, y Limbs) Limbs {
	var out Limbs
	security.SelectLimbs(v, out[:], x[:], y[:])
	return out
}

// Wipe zeroes a in place.
func (a *Limbs) Wipe() {
	security.SecureZeroLimbs(a[:])
}

func add256(a, b Limbs) (Limbs, uint64) {
	var r Limbs
	var c uint64
	r[0], c = bits.Add64(a[0], b[0], 0)
	r[1], c = bits.Add64(a[1], b[1], c)
	r[2], c = bits.Add64(a[2], b[2], c)
	r[3], c = bits.Add64(a[3], b[3], c)
	return r, c
}

func sub256(a, b Limbs) (Limbs, uint64) {
	var r Limbs
	var bw uint64
	r[0], bw = bits.Sub64(a[0], b[0], 0)
	r[1], bw = bits.Sub64(a[1], b[1], bw)
	r[2], bw = bits.Sub64(a[2], b[2], bw)
	r[3], bw = bits.Sub64(a[3], b[3], bw)
	return r, bw
}

// mul512 is the full schoolbook product of two 256-bit values.
func mul512(a, b Limbs) [8]uint64 {
	var w [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			var c uint64
			lo, c = bits.Add64(lo, w[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			w[i+j] = lo
			carry = hi
		}
		w[i+4] = carry
	}
	return w
}
