// Package security provides constant-time primitives and secret wiping
// shared by the arithmetic packages.
//
// Every function in this file runs the same instruction sequence for every
// input value. Flags are ints holding exactly 0 or 1, the same convention as
// crypto/subtle. Callers must never branch on a flag derived from secret data.
package security

import (
	"crypto/subtle"
	"math/bits"
)

// Mask returns 0xFFFFFFFFFFFFFFFF if v == 1 and 0 if v == 0.
func Mask(v int) uint64 {
	return -uint64(v & 1)
}

// IsZero64 returns 1 if x == 0 and 0 otherwise.
func IsZero64(x uint64) int {
	// (x | -x) has its top bit set iff x != 0.
	return int(1 ^ ((x | -x) >> 63))
}

// Eq64 returns 1 if x == y and 0 otherwise.
func Eq64(x, y uint64) int {
	return IsZero64(x ^ y)
}

// LimbsEqual compares two equal-length limb slices without an early exit.
// Returns 1 if equal, 0 otherwise.
func LimbsEqual(a, b []uint64) int {
	if len(a) != len(b) {
		panic("LimbsEqual: length mismatch")
	}

	var diff uint64
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return IsZero64(diff)
}

// LimbsIsZero returns 1 if every limb is zero.
func LimbsIsZero(a []uint64) int {
	var acc uint64
	for i := range a {
		acc |= a[i]
	}
	return IsZero64(acc)
}

// SelectLimbs writes x into dst when v == 1 and y when v == 0.
func SelectLimbs(v int, dst, x, y []uint64) {
	if len(dst) != len(x) || len(dst) != len(y) {
		panic("SelectLimbs: length mismatch")
	}

	m := Mask(v)
	for i := range dst {
		dst[i] = (x[i] & m) | (y[i] &^ m)
	}
}

// LessThan returns 1 if the little-endian limb value a is strictly less than b.
// The borrow of a full-width subtraction is the answer.
func LessThan(a, b []uint64) int {
	if len(a) != len(b) {
		panic("LessThan: length mismatch")
	}

	var borrow uint64
	for i := range a {
		_, borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return int(borrow)
}

// ConstantTimeCompare compares two byte slices in constant time.
// Returns true if they are equal, false otherwise.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
