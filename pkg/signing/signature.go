package signing

import (
	"fmt"

	"github.com/Caqil/secp256k1/pkg/crypto/codec"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
)

// Signature is an ECDSA signature (r, s).
type Signature struct {
	R scalar.Scalar
	S scalar.Scalar
}

// NewSignature builds a signature, rejecting components outside [1, n-1].
func NewSignature(r, s scalar.Scalar) (*Signature, error) {
	sig := &Signature{R: r, S: s}
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	return sig, nil
}

// Validate checks that r and s are both non-zero. Scalars are always
// reduced, so this is the full [1, n-1] range check.
func (sig *Signature) Validate() error {
	if sig == nil || sig.R.IsZero() || sig.S.IsZero() {
		return ErrInvalidSignature
	}
	return nil
}

// IsLowS reports whether s <= n/2.
func (sig *Signature) IsLowS() bool {
	return !sig.S.IsHigh()
}

// Normalize returns the low-S form of sig: (r, n - s) when s > n/2, or an
// unchanged copy. Both forms verify under the same key.
func (sig *Signature) Normalize() *Signature {
	s := scalar.Select(boolToInt(sig.S.IsHigh()), sig.S.Negate(), sig.S)
	return &Signature{R: sig.R, S: s}
}

// Equal reports whether two signatures have the same components.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.R.Equal(other.R) && sig.S.Equal(other.S)
}

// Bytes serializes signature to bytes (R || S)
func (sig *Signature) Bytes() []byte {
	b := codec.EncodeSignatureCompact(sig.R, sig.S)
	return b[:]
}

// DER serializes the signature as ASN.1 DER.
func (sig *Signature) DER() []byte {
	der, err := codec.EncodeSignatureDER(sig.R, sig.S)
	if err != nil {
		// the builder only fails on nested length overflow, impossible at this size
		panic("signing: DER encoding failed: " + err.Error())
	}
	return der
}

// String returns the compact hex form.
func (sig *Signature) String() string {
	return fmt.Sprintf("%s%s", sig.R, sig.S)
}

// SignatureFromBytes deserializes a 64-byte R || S signature
func SignatureFromBytes(data []byte) (*Signature, error) {
	r, s, err := codec.DecodeSignatureCompact(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignatureEncoding, err)
	}
	return &Signature{R: r, S: s}, nil
}

// ParseDERSignature deserializes a strict DER signature
func ParseDERSignature(der []byte) (*Signature, error) {
	r, s, err := codec.DecodeSignatureDER(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignatureEncoding, err)
	}
	return &Signature{R: r, S: s}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
