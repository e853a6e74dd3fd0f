package signing

import (
	"bytes"
	"fmt"

	"github.com/Caqil/secp256k1/pkg/crypto/curve"
	"github.com/Caqil/secp256k1/pkg/crypto/field"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
)

// pMinusN is p - n. An x-coordinate x >= n reduces to r = x - n, which is
// only possible when r < p - n.
var pMinusN = scalar.MustFromHex("000000000000000000000000000000014551231950b75fc4402da1722fc9baee")

// orderAsField is n as a field element, used to undo the x mod n reduction.
var orderAsField = func() field.Element {
	n := scalar.Order()
	e, err := field.FromCanonicalBytes(n[:])
	if err != nil {
		panic("signing: n does not fit the field: " + err.Error())
	}
	return e
}()

// RecoverPublicKey rebuilds the public key that produced sig over
// messageHash. recoveryID is the value returned by SignRecoverable: bit 0
// selects the parity of R.y and bit 1 marks R.x >= n.
//
//	Q = r^-1 * (s*R - z*G)
func RecoverPublicKey(messageHash []byte, sig *Signature, recoveryID byte) (*curve.Point, error) {
	if recoveryID > 3 {
		return nil, ErrInvalidRecoveryID
	}
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	z, err := hashToScalar(messageHash)
	if err != nil {
		return nil, err
	}

	R, err := reconstructR(sig.R, recoveryID)
	if err != nil {
		return nil, err
	}

	rInv, err := sig.R.Invert()
	if err != nil {
		return nil, ErrInvalidSignature
	}
	u1 := z.Negate().Mul(rInv)
	u2 := sig.S.Mul(rInv)

	Q := curve.MultiScalarMult(u1, u2, R)
	if Q.IsIdentity() {
		return nil, ErrRecoveryFailed
	}
	return Q, nil
}

// reconstructR lifts r back to the nonce point R.
func reconstructR(r scalar.Scalar, recoveryID byte) (*curve.Point, error) {
	rb := r.Bytes()
	x, err := field.FromCanonicalBytes(rb[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecoveryFailed, err)
	}

	if recoveryID&2 != 0 {
		limit := pMinusN.Bytes()
		if bytes.Compare(rb[:], limit[:]) >= 0 {
			return nil, fmt.Errorf("%w: r + n exceeds the field", ErrRecoveryFailed)
		}
		x = x.Add(orderAsField)
	}

	R, err := curve.LiftX(x, recoveryID&1 == 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecoveryFailed, err)
	}
	return R, nil
}

// VerifyWithRecovery recovers the public key for every recovery id and
// returns the first one under which sig verifies.
func VerifyWithRecovery(messageHash []byte, sig *Signature) (*curve.Point, byte, bool) {
	for id := byte(0); id < 4; id++ {
		Q, err := RecoverPublicKey(messageHash, sig, id)
		if err != nil {
			continue
		}
		if Verify(Q, messageHash, sig) {
			return Q, id, true
		}
	}
	return nil, 0, false
}
