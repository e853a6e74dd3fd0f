package signing

import (
	"errors"

	"github.com/Caqil/secp256k1/pkg/keygen"
)

var (
	// ErrInvalidPrivateKey is returned when the signing key is zero or wiped.
	// It is the same value as keygen.ErrInvalidPrivateKey.
	ErrInvalidPrivateKey = keygen.ErrInvalidPrivateKey

	// ErrInvalidMessageHash is returned when the message hash is not 32 bytes
	ErrInvalidMessageHash = errors.New("invalid message hash: must be 32 bytes")

	// ErrInvalidNonce is returned when a nonce is zero or yields r = 0 or
	// s = 0. The caller should retry with a fresh nonce.
	ErrInvalidNonce = errors.New("invalid nonce")

	// ErrInvalidSignature is returned when r or s is outside [1, n-1]
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidSignatureEncoding is returned when signature bytes cannot be parsed
	ErrInvalidSignatureEncoding = errors.New("invalid signature encoding")

	// ErrInvalidRecoveryID is returned when a recovery id is not in [0, 3]
	ErrInvalidRecoveryID = errors.New("invalid recovery id")

	// ErrRecoveryFailed is returned when no public key matches the signature
	ErrRecoveryFailed = errors.New("public key recovery failed")

	// ErrNonceAttemptsExhausted is returned when every nonce attempt was rejected
	ErrNonceAttemptsExhausted = errors.New("nonce attempts exhausted")

	// ErrInvalidConfig is returned for an unusable signer configuration
	ErrInvalidConfig = errors.New("invalid signer configuration")

	// ErrUnknownNonceMode is returned when parsing an unsupported nonce mode name
	ErrUnknownNonceMode = errors.New("unknown nonce mode")
)
