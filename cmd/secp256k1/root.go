package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Caqil/secp256k1/pkg/crypto/hash"
	"github.com/Caqil/secp256k1/pkg/logger"
	"github.com/Caqil/secp256k1/pkg/signing"
)

// envPrefix namespaces environment overrides, e.g. SECP256K1_LOG_LEVEL.
const envPrefix = "SECP256K1"

var errVerificationFailed = errors.New("signature verification failed")

// cli carries state shared by all subcommands.
type cli struct {
	out io.Writer
	v   *viper.Viper
	log *logger.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out, v: viper.New(), log: logger.Nop()}

	c.v.SetEnvPrefix(envPrefix)
	c.v.AutomaticEnv()
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	root := &cobra.Command{
		Use:           "secp256k1",
		Short:         "secp256k1 ECDSA key and signature tool",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setupLogger()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.String("log-level", "warn", "log level (debug, info, warn, error, disabled)")
	flags.Bool("log-pretty", false, "human-readable log output")
	c.v.BindPFlag("log-level", flags.Lookup("log-level"))
	c.v.BindPFlag("log-pretty", flags.Lookup("log-pretty"))

	root.AddCommand(
		c.keygenCmd(),
		c.pubkeyCmd(),
		c.signCmd(),
		c.verifyCmd(),
		c.recoverCmd(),
	)
	return root
}

func (c *cli) setupLogger() error {
	level := c.v.GetString("log-level")
	if _, err := logger.ParseLevel(level); err != nil {
		return err
	}
	cfg := logger.DefaultConfig()
	cfg.Level = level
	cfg.Pretty = c.v.GetBool("log-pretty")
	c.log = logger.New(cfg).With().Str("app", "secp256k1").Logger()
	return nil
}

// bind attaches the flags of the running command to viper so that each
// one can also come from SECP256K1_<NAME>. Binding happens at run time
// because several subcommands share flag names.
func (c *cli) bind(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr := c.v.BindPFlag(f.Name, f); bindErr != nil && err == nil {
			err = bindErr
		}
	})
	return err
}

func (c *cli) str(name string) string {
	return c.v.GetString(name)
}

func (c *cli) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// addHashFlags registers the message input flags shared by sign, verify and
// recover.
func addHashFlags(cmd *cobra.Command) {
	cmd.Flags().String("hash", "", "32-byte message hash (hex)")
	cmd.Flags().String("message", "", "message to hash before signing")
	cmd.Flags().String("hash-func", hash.SHA256.String(), "hash function applied to --message")
}

// messageHash resolves --hash or --message into a 32-byte digest.
func (c *cli) messageHash() ([]byte, error) {
	hashHex, msg := c.str("hash"), c.str("message")
	switch {
	case hashHex != "" && msg != "":
		return nil, errors.New("--hash and --message are mutually exclusive")
	case hashHex != "":
		h, err := decodeHex("hash", hashHex)
		if err != nil {
			return nil, err
		}
		if len(h) != signing.HashSize {
			return nil, fmt.Errorf("hash: %w", signing.ErrInvalidMessageHash)
		}
		return h, nil
	case msg != "":
		f, err := hash.ParseHashFunction(c.str("hash-func"))
		if err != nil {
			return nil, err
		}
		digest := hash.Hash([]byte(msg), f)
		return digest[:], nil
	}
	return nil, errors.New("one of --hash or --message is required")
}

func decodeHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid hex: %w", name, err)
	}
	return b, nil
}
