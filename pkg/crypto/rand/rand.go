// Package rand provides cryptographically secure random bytes and scalars
package rand

import (
	"crypto/rand"
	"io"

	"github.com/Caqil/secp256k1/internal/security"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
)

// Reader is the default cryptographically secure random number generator
var Reader io.Reader = rand.Reader

// maxAttempts bounds rejection sampling. A sample is rejected with
// probability below 2^-127, so hitting the bound means the reader is broken.
const maxAttempts = 64

// GenerateRandomBytes generates n cryptographically secure random bytes
func GenerateRandomBytes(n int) ([]byte, error) {
	return ReadBytes(Reader, n)
}

// ReadBytes reads exactly n bytes from r
func ReadBytes(r io.Reader, n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	bytes := make([]byte, n)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}

	return bytes, nil
}

// GenerateScalar returns a uniform scalar in [1, n-1] read from Reader
func GenerateScalar() (scalar.Scalar, error) {
	return ReadScalar(Reader)
}

// ReadScalar returns a uniform scalar in [1, n-1] read from r. Candidates
// outside the range are rejected rather than reduced, which keeps the
// distribution uniform. The sample buffer is wiped before returning.
func ReadScalar(r io.Reader) (scalar.Scalar, error) {
	var buf [scalar.Size]byte
	defer security.SecureZero(buf[:])

	for i := 0; i < maxAttempts; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return scalar.Scalar{}, err
		}

		s, err := scalar.FromBytesNonZero(buf[:])
		if err == nil {
			return s, nil
		}
	}

	return scalar.Scalar{}, ErrTooManyAttempts
}
