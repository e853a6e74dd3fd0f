// Command secp256k1 generates keys and signs, verifies and recovers ECDSA
// signatures from the command line. All keys, hashes and signatures are
// hex encoded.
package main

import (
	"os"
)

func main() {
	// cobra has already printed the error
	if newRootCmd(os.Stdout).Execute() != nil {
		os.Exit(1)
	}
}
