// Package main demonstrates key generation, signing, verification and
// public key recovery
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Caqil/secp256k1/pkg/crypto/codec"
	"github.com/Caqil/secp256k1/pkg/crypto/hash"
	"github.com/Caqil/secp256k1/pkg/keygen"
	"github.com/Caqil/secp256k1/pkg/logger"
	"github.com/Caqil/secp256k1/pkg/signing"
)

func main() {
	fmt.Println("=== Simple Signing Example: secp256k1 ECDSA ===")

	// Phase 1: Generate a key pair
	fmt.Println("\nPhase 1: Key Generation...")
	kp, err := keygen.GenerateKeyPair(nil)
	if err != nil {
		log.Fatalf("key generation failed: %v", err)
	}
	defer kp.Private.Wipe()

	pub, err := codec.EncodePoint(kp.Public, true)
	if err != nil {
		log.Fatalf("encoding public key failed: %v", err)
	}
	fmt.Printf("  ✓ Public Key: %x\n", pub)

	// Phase 2: Hash the message
	fmt.Println("\nPhase 2: Preparing message...")
	message := []byte("Transfer 100 BTC from Alice to Bob")
	digest := hash.Hash(message, hash.DoubleSHA256)
	fmt.Printf("  Message: %s\n", message)
	fmt.Printf("  Hash (%s): %x\n", hash.DoubleSHA256, digest)

	// Phase 3: Sign with deterministic nonces and low-S
	fmt.Println("\nPhase 3: Signing (RFC 6979, low-S)...")
	cfg := signing.DefaultConfig()
	cfg.Logger = logger.New(&logger.Config{Level: "debug", Output: os.Stderr, Pretty: true})
	signer, err := signing.NewSigner(cfg)
	if err != nil {
		log.Fatalf("signer setup failed: %v", err)
	}

	sig, recoveryID, err := signer.SignRecoverable(kp.Private, digest[:])
	if err != nil {
		log.Fatalf("signing failed: %v", err)
	}
	fmt.Printf("  ✓ Signature (r || s): %x\n", sig.Bytes())
	fmt.Printf("  ✓ Signature (DER):    %x\n", sig.DER())
	fmt.Printf("  ✓ Recovery ID: %d\n", recoveryID)

	// Phase 4: Verify
	fmt.Println("\nPhase 4: Signature Verification...")
	decoded, err := codec.DecodePoint(pub)
	if err != nil {
		log.Fatalf("decoding public key failed: %v", err)
	}
	if !signing.Verify(decoded, digest[:], sig) {
		log.Fatal("❌ Signature verification failed!")
	}
	fmt.Println("  ✓ Signature verified successfully!")

	tampered := hash.Hash([]byte("Transfer 900 BTC from Alice to Bob"), hash.DoubleSHA256)
	if signing.Verify(decoded, tampered[:], sig) {
		log.Fatal("❌ Signature verified for a different message!")
	}
	fmt.Println("  ✓ Tampered message rejected")

	// Phase 5: Recover the public key
	fmt.Println("\nPhase 5: Public Key Recovery...")
	recovered, err := signing.RecoverPublicKey(digest[:], sig, recoveryID)
	if err != nil {
		log.Fatalf("recovery failed: %v", err)
	}
	if !recovered.Equal(kp.Public) {
		log.Fatal("❌ Recovered a different public key!")
	}
	fmt.Println("  ✓ Recovered public key matches")

	fmt.Println("\n=== Signing Complete! ===")
}
