package signing

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/Caqil/secp256k1/internal/security"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
)

// maxNonceCandidates bounds the inner loop of step h. A candidate is
// rejected with probability below 2^-127.
const maxNonceCandidates = 64

// RFC6979NonceGenerator implements deterministic nonce generation per
// RFC 6979 section 3.2 with HMAC-SHA256. The same key and hash always give
// the same sequence of nonces; Next continues the sequence as step h.3
// prescribes when a nonce has to be discarded.
//
// For secp256k1 qlen = hlen = 256, so bits2int is the identity and
// bits2octets is a single reduction mod n.
type RFC6979NonceGenerator struct {
	k, v    [sha256.Size]byte
	started bool
}

// NewRFC6979NonceGenerator seeds the HMAC-DRBG from the private key, the
// message hash and optional extra data. Extra data is appended to the seed
// material in steps d and f, as libsecp256k1 does for additional entropy;
// nil gives plain RFC 6979.
func NewRFC6979NonceGenerator(d scalar.Scalar, messageHash []byte, extra []byte) (*RFC6979NonceGenerator, error) {
	z, err := hashToScalar(messageHash)
	if err != nil {
		return nil, err
	}

	x := d.Bytes()
	defer security.SecureZero(x[:])
	h1 := z.Bytes()

	gen := &RFC6979NonceGenerator{}
	for i := range gen.v {
		gen.v[i] = 0x01
	}

	// Step d: K = HMAC_K(V || 0x00 || x || h1 || extra)
	gen.hmacUpdate(0x00, x[:], h1[:], extra)
	// Step e
	gen.hmacHashV()
	// Step f: K = HMAC_K(V || 0x01 || x || h1 || extra)
	gen.hmacUpdate(0x01, x[:], h1[:], extra)
	// Step g
	gen.hmacHashV()

	return gen, nil
}

// Next returns the next nonce candidate in [1, n-1].
func (gen *RFC6979NonceGenerator) Next() (scalar.Scalar, error) {
	if gen.started {
		gen.hmacUpdate(0x00)
		gen.hmacHashV()
	}
	gen.started = true

	for i := 0; i < maxNonceCandidates; i++ {
		// Step h.2: T = V, one block is enough for qlen = 256
		gen.hmacHashV()

		// Step h.3
		k, err := scalar.FromBytesNonZero(gen.v[:])
		if err == nil {
			return k, nil
		}
		gen.hmacUpdate(0x00)
		gen.hmacHashV()
	}

	return scalar.Scalar{}, ErrNonceAttemptsExhausted
}

// Wipe clears the generator state.
func (gen *RFC6979NonceGenerator) Wipe() {
	security.SecureZero(gen.k[:])
	security.SecureZero(gen.v[:])
}

// hmacHashV computes V = HMAC_K(V)
func (gen *RFC6979NonceGenerator) hmacHashV() {
	h := hmac.New(sha256.New, gen.k[:])
	h.Write(gen.v[:])
	h.Sum(gen.v[:0])
}

// hmacUpdate computes K = HMAC_K(V || marker || data...)
func (gen *RFC6979NonceGenerator) hmacUpdate(marker byte, data ...[]byte) {
	h := hmac.New(sha256.New, gen.k[:])
	h.Write(gen.v[:])
	h.Write([]byte{marker})
	for _, d := range data {
		h.Write(d)
	}
	h.Sum(gen.k[:0])
}

// GenerateDeterministicNonce returns the first RFC 6979 nonce for d and
// messageHash.
func GenerateDeterministicNonce(d scalar.Scalar, messageHash []byte) (scalar.Scalar, error) {
	gen, err := NewRFC6979NonceGenerator(d, messageHash, nil)
	if err != nil {
		return scalar.Scalar{}, err
	}
	defer gen.Wipe()
	return gen.Next()
}
