package signing

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Caqil/secp256k1/pkg/crypto/curve"
	"github.com/Caqil/secp256k1/pkg/crypto/hash"
	"github.com/Caqil/secp256k1/pkg/crypto/rand"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
	"github.com/Caqil/secp256k1/pkg/keygen"
	"github.com/Caqil/secp256k1/pkg/logger"
)

// NonceMode selects how a Signer derives nonces.
type NonceMode int

const (
	// NonceRFC6979 derives nonces deterministically from key and hash
	NonceRFC6979 NonceMode = iota

	// NonceRandom draws nonces from Config.Rand
	NonceRandom
)

// String returns the mode name
func (m NonceMode) String() string {
	switch m {
	case NonceRFC6979:
		return "rfc6979"
	case NonceRandom:
		return "random"
	default:
		return fmt.Sprintf("NonceMode(%d)", int(m))
	}
}

// ParseNonceMode converts a mode name to a NonceMode
func ParseNonceMode(name string) (NonceMode, error) {
	switch strings.ToLower(name) {
	case "rfc6979", "deterministic":
		return NonceRFC6979, nil
	case "random":
		return NonceRandom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNonceMode, name)
}

// Config holds signer configuration
type Config struct {
	// Nonce selects the nonce source
	Nonce NonceMode

	// LowS normalizes every signature to s <= n/2
	LowS bool

	// MaxAttempts bounds the number of nonces tried per signature
	MaxAttempts int

	// ExtraEntropy is mixed into RFC 6979 nonces when non-nil
	ExtraEntropy []byte

	// Logger receives retry diagnostics (default: nop)
	Logger *logger.Logger

	// Rand is the randomness source for NonceRandom (default: rand.Reader)
	Rand io.Reader
}

// DefaultConfig returns deterministic nonces with low-S normalization
func DefaultConfig() *Config {
	return &Config{
		Nonce:       NonceRFC6979,
		LowS:        true,
		MaxAttempts: 16,
		Logger:      logger.Nop(),
		Rand:        rand.Reader,
	}
}

// Signer signs message hashes with nonces from its configured source. A
// Signer holds no key material and is safe for concurrent use.
type Signer struct {
	cfg Config
	log *logger.Logger
}

// NewSigner creates a signer; a nil config means DefaultConfig.
func NewSigner(cfg *Config) (*Signer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MaxAttempts <= 0 {
		return nil, fmt.Errorf("%w: MaxAttempts must be positive", ErrInvalidConfig)
	}
	if cfg.Nonce != NonceRFC6979 && cfg.Nonce != NonceRandom {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNonceMode, cfg.Nonce)
	}

	c := *cfg
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
	if c.Rand == nil {
		c.Rand = rand.Reader
	}

	return &Signer{
		cfg: c,
		log: c.Logger.With().Str("component", "signer").Str("nonce", c.Nonce.String()).Logger(),
	}, nil
}

// SignHash signs a 32-byte message hash.
func (s *Signer) SignHash(priv *keygen.PrivateKey, messageHash []byte) (*Signature, error) {
	sig, _, err := s.signHash(priv, messageHash)
	return sig, err
}

// SignRecoverable signs a 32-byte message hash and returns the recovery id
// that lets RecoverPublicKey rebuild the signer's public key.
func (s *Signer) SignRecoverable(priv *keygen.PrivateKey, messageHash []byte) (*Signature, byte, error) {
	return s.signHash(priv, messageHash)
}

// SignMessage hashes msg with f and signs the digest.
func (s *Signer) SignMessage(priv *keygen.PrivateKey, msg []byte, f hash.HashFunction) (*Signature, error) {
	digest := hash.Hash(msg, f)
	return s.SignHash(priv, digest[:])
}

// VerifyMessage hashes msg with f and verifies sig over the digest.
func VerifyMessage(publicKey *curve.Point, msg []byte, sig *Signature, f hash.HashFunction) bool {
	digest := hash.Hash(msg, f)
	return Verify(publicKey, digest[:], sig)
}

// nonceSource yields nonce candidates and clears its state on Wipe.
type nonceSource interface {
	Next() (scalar.Scalar, error)
	Wipe()
}

type randomNonceSource struct {
	r io.Reader
}

func (src randomNonceSource) Next() (scalar.Scalar, error) {
	return rand.ReadScalar(src.r)
}

func (randomNonceSource) Wipe() {}

func (s *Signer) nonceSource(d scalar.Scalar, messageHash []byte) (nonceSource, error) {
	if s.cfg.Nonce == NonceRandom {
		return randomNonceSource{r: s.cfg.Rand}, nil
	}
	return NewRFC6979NonceGenerator(d, messageHash, s.cfg.ExtraEntropy)
}

func (s *Signer) signHash(priv *keygen.PrivateKey, messageHash []byte) (*Signature, byte, error) {
	if err := priv.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	if len(messageHash) != HashSize {
		return nil, 0, ErrInvalidMessageHash
	}

	d := priv.Scalar()
	defer d.Wipe()

	src, err := s.nonceSource(d, messageHash)
	if err != nil {
		return nil, 0, err
	}
	defer src.Wipe()

	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		k, err := src.Next()
		if err != nil {
			return nil, 0, fmt.Errorf("nonce generation failed: %w", err)
		}

		sig, recoveryID, err := sign(d, messageHash, k)
		k.Wipe()

		if errors.Is(err, ErrInvalidNonce) {
			s.log.DebugEvent().Int("attempt", attempt).Msg("nonce rejected, retrying")
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		if s.cfg.LowS && sig.S.IsHigh() {
			sig = sig.Normalize()
			recoveryID ^= 1
		}
		return sig, recoveryID, nil
	}

	s.log.WarnEvent().Int("attempts", s.cfg.MaxAttempts).Msg("no usable nonce")
	return nil, 0, fmt.Errorf("%w: %w after %d attempts", ErrNonceAttemptsExhausted, ErrInvalidNonce, s.cfg.MaxAttempts)
}
