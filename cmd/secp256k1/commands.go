package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Caqil/secp256k1/pkg/crypto/codec"
	"github.com/Caqil/secp256k1/pkg/keygen"
	"github.com/Caqil/secp256k1/pkg/logger"
	"github.com/Caqil/secp256k1/pkg/signing"
)

func (c *cli) keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new private key and print it with its public key",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.bind(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := keygen.GenerateKeyPair(nil)
			if err != nil {
				return err
			}
			defer kp.Private.Wipe()

			pub, err := codec.EncodePoint(kp.Public, !c.v.GetBool("uncompressed"))
			if err != nil {
				return err
			}
			priv := kp.Private.Bytes()
			c.printf("private: %x\n", priv[:])
			c.printf("public:  %x\n", pub)
			c.log.InfoEvent().Hex("public_key", pub).Msg("key generated")
			return nil
		},
	}
	cmd.Flags().Bool("uncompressed", false, "print the public key in uncompressed form")
	return cmd
}

func (c *cli) pubkeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive the public key of a private key",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.bind(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHex("key", c.str("key"))
			if err != nil {
				return err
			}
			return keygen.WithPrivateKey(raw, func(priv *keygen.PrivateKey) error {
				pub, err := codec.EncodePoint(priv.PubKey(), !c.v.GetBool("uncompressed"))
				if err != nil {
					return err
				}
				c.printf("%x\n", pub)
				return nil
			})
		},
	}
	cmd.Flags().String("key", "", "private key (hex); also SECP256K1_KEY")
	cmd.Flags().Bool("uncompressed", false, "print the public key in uncompressed form")
	return cmd
}

func (c *cli) signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message hash",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.bind(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.messageHash()
			if err != nil {
				return err
			}
			mode, err := signing.ParseNonceMode(c.str("nonce"))
			if err != nil {
				return err
			}

			cfg := signing.DefaultConfig()
			cfg.Nonce = mode
			cfg.LowS = c.v.GetBool("low-s")
			cfg.Logger = c.log
			signer, err := signing.NewSigner(cfg)
			if err != nil {
				return err
			}

			raw, err := decodeHex("key", c.str("key"))
			if err != nil {
				return err
			}
			return keygen.WithPrivateKey(raw, func(priv *keygen.PrivateKey) error {
				sig, recoveryID, err := signer.SignRecoverable(priv, h)
				if err != nil {
					return err
				}

				out := sig.Bytes()
				if c.v.GetBool("der") {
					out = sig.DER()
				}
				c.printf("%x\n", out)
				if c.v.GetBool("recoverable") {
					c.printf("recovery-id: %d\n", recoveryID)
				}
				c.log.DebugEvent().Hex("hash", h).Str("key", logger.RedactBytes(raw)).Msg("message signed")
				return nil
			})
		},
	}
	cmd.Flags().String("key", "", "private key (hex); also SECP256K1_KEY")
	cmd.Flags().String("nonce", signing.NonceRFC6979.String(), "nonce source: rfc6979 or random")
	cmd.Flags().Bool("low-s", true, "normalize s to the lower half of the order")
	cmd.Flags().Bool("der", false, "print the signature in DER instead of r || s")
	cmd.Flags().Bool("recoverable", false, "also print the public key recovery id")
	addHashFlags(cmd)
	return cmd
}

func (c *cli) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature; exits non-zero when it is invalid",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.bind(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.messageHash()
			if err != nil {
				return err
			}
			pubBytes, err := decodeHex("pubkey", c.str("pubkey"))
			if err != nil {
				return err
			}
			pub, err := codec.DecodePoint(pubBytes)
			if err != nil {
				return fmt.Errorf("pubkey: %w", err)
			}
			sig, err := c.signature()
			if err != nil {
				return err
			}

			if !signing.Verify(pub, h, sig) {
				c.printf("invalid\n")
				c.log.InfoEvent().Hex("public_key", pubBytes).Msg("signature rejected")
				return errVerificationFailed
			}
			c.printf("valid\n")
			return nil
		},
	}
	cmd.Flags().String("pubkey", "", "SEC1 public key (hex)")
	cmd.Flags().String("sig", "", "signature as r || s or DER (hex)")
	addHashFlags(cmd)
	return cmd
}

func (c *cli) recoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Recover the public key from a signature and its recovery id",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.bind(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.messageHash()
			if err != nil {
				return err
			}
			sig, err := c.signature()
			if err != nil {
				return err
			}
			id, err := strconv.ParseUint(c.str("recovery-id"), 10, 8)
			if err != nil {
				return fmt.Errorf("recovery-id: %w", err)
			}

			pub, err := signing.RecoverPublicKey(h, sig, byte(id))
			if err != nil {
				return err
			}
			out, err := codec.EncodePoint(pub, !c.v.GetBool("uncompressed"))
			if err != nil {
				return err
			}
			c.printf("%x\n", out)
			return nil
		},
	}
	cmd.Flags().String("sig", "", "signature as r || s or DER (hex)")
	cmd.Flags().Uint8("recovery-id", 0, "recovery id printed by sign --recoverable")
	cmd.Flags().Bool("uncompressed", false, "print the public key in uncompressed form")
	addHashFlags(cmd)
	return cmd
}

// signature parses --sig. 64 bytes are read as r || s, anything else as DER.
func (c *cli) signature() (*signing.Signature, error) {
	raw, err := decodeHex("sig", c.str("sig"))
	if err != nil {
		return nil, err
	}
	if len(raw) == codec.CompactSignatureSize {
		return signing.SignatureFromBytes(raw)
	}
	return signing.ParseDERSignature(raw)
}
