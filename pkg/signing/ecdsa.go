// Package signing implements ECDSA over secp256k1.
//
// Sign and Verify are the bare operations: Sign consumes a caller-supplied
// nonce and reports ErrInvalidNonce when that nonce is degenerate. Signer
// layers nonce generation (RFC 6979 by default), retries, low-S
// normalization and logging on top.
//
// Signing:
//
//	R = k*G, r = R.x mod n
//	s = k^-1 * (z + r*d) mod n
//
// Verification:
//
//	w = s^-1, u1 = z*w, u2 = r*w
//	accept iff (u1*G + u2*Q).x mod n == r
//
// where z is the 32-byte message hash read as a big-endian integer mod n.
package signing

import (
	"bytes"

	"github.com/Caqil/secp256k1/pkg/crypto/curve"
	"github.com/Caqil/secp256k1/pkg/crypto/field"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
)

// HashSize is the required length of a message hash.
const HashSize = 32

// Sign produces a signature on a 32-byte hash with private key d and nonce k.
// It fails with ErrInvalidPrivateKey for d = 0, ErrInvalidMessageHash for a
// hash of the wrong length and ErrInvalidNonce when k = 0 or the nonce
// leads to r = 0 or s = 0; in the last case the caller must retry with a
// fresh nonce. The returned s is not normalized.
func Sign(d scalar.Scalar, messageHash []byte, k scalar.Scalar) (*Signature, error) {
	sig, _, err := sign(d, messageHash, k)
	return sig, err
}

// sign additionally returns the recovery id of the signature: bit 0 is the
// parity of R.y and bit 1 is set when R.x >= n.
func sign(d scalar.Scalar, messageHash []byte, k scalar.Scalar) (*Signature, byte, error) {
	if d.IsZero() {
		return nil, 0, ErrInvalidPrivateKey
	}
	z, err := hashToScalar(messageHash)
	if err != nil {
		return nil, 0, err
	}
	if k.IsZero() {
		return nil, 0, ErrInvalidNonce
	}

	x, y, ok := curve.ScalarBaseMult(k).ToAffine()
	if !ok {
		return nil, 0, ErrInvalidNonce
	}
	r := scalar.FromFieldElement(x)
	if r.IsZero() {
		return nil, 0, ErrInvalidNonce
	}

	kInv, err := k.Invert()
	if err != nil {
		return nil, 0, ErrInvalidNonce
	}
	defer kInv.Wipe()

	rd := r.Mul(d)
	s := kInv.Mul(z.Add(rd))
	rd.Wipe()
	if s.IsZero() {
		return nil, 0, ErrInvalidNonce
	}

	var recoveryID byte
	if y.IsOdd() {
		recoveryID |= 1
	}
	if xOverflowsOrder(x, r) {
		recoveryID |= 2
	}

	return &Signature{R: r, S: s}, recoveryID, nil
}

// Verify reports whether sig is a valid signature of messageHash under
// publicKey. Malformed inputs (nil values, the identity or an off-curve
// key, a hash that is not 32 bytes, r or s equal to zero) simply fail
// verification. Verify has no side effects and is safe for concurrent use.
func Verify(publicKey *curve.Point, messageHash []byte, sig *Signature) bool {
	if publicKey == nil || publicKey.IsIdentity() || !publicKey.IsOnCurve() {
		return false
	}
	if sig.Validate() != nil {
		return false
	}
	z, err := hashToScalar(messageHash)
	if err != nil {
		return false
	}

	w, err := sig.S.Invert()
	if err != nil {
		return false
	}
	u1 := z.Mul(w)
	u2 := sig.R.Mul(w)

	x, _, ok := curve.MultiScalarMult(u1, u2, publicKey).ToAffine()
	if !ok {
		return false
	}
	return scalar.FromFieldElement(x).Equal(sig.R)
}

// hashToScalar reads a 32-byte hash as a big-endian integer mod n. For
// secp256k1 the bit length of n equals the hash length, so no truncation
// is involved.
func hashToScalar(messageHash []byte) (scalar.Scalar, error) {
	if len(messageHash) != HashSize {
		return scalar.Scalar{}, ErrInvalidMessageHash
	}
	return scalar.FromBytes(messageHash)
}

// xOverflowsOrder reports whether the field element x was reduced when
// converted to the scalar r, i.e. x >= n.
func xOverflowsOrder(x field.Element, r scalar.Scalar) bool {
	xb, rb := x.Bytes(), r.Bytes()
	return !bytes.Equal(xb[:], rb[:])
}
