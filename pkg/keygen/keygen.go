// Package keygen creates and manages secp256k1 key pairs.
//
// A PrivateKey owns secret material. Go has no destructors, so the package
// offers an explicit Wipe plus WithPrivateKey, a scoped helper that wipes on
// every exit path of the caller's function, panics included.
package keygen

import (
	"io"

	"github.com/Caqil/secp256k1/internal/security"
	"github.com/Caqil/secp256k1/pkg/crypto/curve"
	"github.com/Caqil/secp256k1/pkg/crypto/rand"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
)

// PrivateKey is a secret scalar d in [1, n-1].
type PrivateKey struct {
	d scalar.Scalar
}

// KeyPair bundles a private key with its public point d*G.
type KeyPair struct {
	Private *PrivateKey
	Public  *curve.Point
}

// GenerateKey draws a uniform private key from r. A nil reader means
// rand.Reader.
func GenerateKey(r io.Reader) (*PrivateKey, error) {
	if r == nil {
		r = rand.Reader
	}

	d, err := rand.ReadScalar(r)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{d: d}, nil
}

// GenerateKeyPair draws a private key from r and derives its public key.
func GenerateKeyPair(r io.Reader) (*KeyPair, error) {
	priv, err := GenerateKey(r)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: priv.PubKey()}, nil
}

// NewPrivateKey decodes a 32-byte big-endian private key. Unlike scalar
// decoding it does not reduce: values of 0 or >= n are rejected.
func NewPrivateKey(b []byte) (*PrivateKey, error) {
	d, err := scalar.FromBytesNonZero(b)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{d: d}, nil
}

// PrivateKeyFromScalar wraps an existing non-zero scalar.
func PrivateKeyFromScalar(d scalar.Scalar) (*PrivateKey, error) {
	if d.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{d: d}, nil
}

// Scalar returns a copy of the secret scalar. The caller owns the copy and
// should Wipe it when done.
func (k *PrivateKey) Scalar() scalar.Scalar {
	return k.d
}

// Bytes returns the 32-byte big-endian encoding of the key.
func (k *PrivateKey) Bytes() [scalar.Size]byte {
	return k.d.Bytes()
}

// Equal compares two private keys in constant time.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	a, b := k.d.Bytes(), other.d.Bytes()
	defer security.SecureZero(a[:])
	defer security.SecureZero(b[:])
	return security.ConstantTimeCompare(a[:], b[:])
}

// PubKey returns d*G.
func (k *PrivateKey) PubKey() *curve.Point {
	return curve.ScalarBaseMult(k.d)
}

// Validate reports ErrWipedKey for a key that has been wiped.
func (k *PrivateKey) Validate() error {
	if k == nil || k.d.IsZero() {
		return ErrWipedKey
	}
	return nil
}

// Wipe overwrites the secret scalar. The key is unusable afterwards.
func (k *PrivateKey) Wipe() {
	if k == nil {
		return
	}
	k.d.Wipe()
}

// WithPrivateKey decodes raw into a private key, runs fn with it and wipes
// both the key and raw before returning, whether fn returns normally, fails
// or panics. Decoding failures also wipe raw.
func WithPrivateKey(raw []byte, fn func(*PrivateKey) error) error {
	defer security.SecureZero(raw)

	priv, err := NewPrivateKey(raw)
	if err != nil {
		return err
	}
	defer priv.Wipe()

	return fn(priv)
}
