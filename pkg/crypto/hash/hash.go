// Package hash produces the 32-byte message digests that ECDSA signs.
//
// The signing core treats a digest as an opaque 256-bit value; this package
// is where callers turn messages into one.
package hash

import (
	"crypto/sha256"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Size is the digest length of every supported function.
const Size = 32

// HashFunction represents a cryptographic hash function
type HashFunction int

const (
	// SHA256 uses SHA-256 (Bitcoin message digests before double hashing)
	SHA256 HashFunction = iota
	// DoubleSHA256 uses SHA-256(SHA-256(m)) as Bitcoin transactions do
	DoubleSHA256
	// SHA3_256 uses FIPS 202 SHA3-256
	SHA3_256
	// Keccak256 uses the original Keccak padding as Ethereum does
	Keccak256
)

var names = map[HashFunction]string{
	SHA256:       "sha256",
	DoubleSHA256: "sha256d",
	SHA3_256:     "sha3-256",
	Keccak256:    "keccak256",
}

// String returns the lower-case name used by ParseHashFunction.
func (f HashFunction) String() string {
	if name, ok := names[f]; ok {
		return name
	}
	return "unknown"
}

// ParseHashFunction maps a name such as "sha256" or "keccak256" to a HashFunction.
func ParseHashFunction(name string) (HashFunction, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range names {
		if n == name {
			return f, nil
		}
	}
	return 0, ErrUnknownHashFunction
}

func (f HashFunction) newHash() hash.Hash {
	switch f {
	case SHA3_256:
		return sha3.New256()
	case Keccak256:
		return sha3.NewLegacyKeccak256()
	default:
		return sha256.New()
	}
}

// Hash computes the digest of data using the specified hash function
func Hash(data []byte, f HashFunction) [Size]byte {
	var out [Size]byte

	h := f.newHash()
	h.Write(data)
	sum := h.Sum(nil)

	if f == DoubleSHA256 {
		second := sha256.Sum256(sum)
		return second
	}

	copy(out[:], sum)
	return out
}
