// Command sealkit is the CLI tool for the sealkit crypto toolkit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables (injected by GoReleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sealkit",
	Short: "Sealkit - digests, HMACs, key codecs and signatures",
	Long: `Sealkit is a command-line tool for low-level cryptographic operations:
message digests, HMACs, RSA and ECDSA public key encoding, fingerprints,
signing and verification.

Supported digest algorithms:
  sha1, sha224, sha256, sha384, sha512, sha3-256, sha3-384, sha3-512

Supported key types:
  RSA (raw modulus/exponent), ECDSA (P-224, P-256, P-384, P-521), Ed25519

Examples:
  # Digest a file
  sealkit digest --algorithm sha256 data.bin

  # Generate an EC key pair
  sealkit key gen --type ec --curve p-256 --out key.pem --pub-out pub.pem

  # Fingerprint a public key
  sealkit key fingerprint pub.pem

  # Sign and verify
  sealkit sign --key key.pem --in data.bin --out data.sig
  sealkit verify --key pub.pem --in data.bin --sig data.sig`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

func init() {
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(hmacCmd)
	rootCmd.AddCommand(keyCmd) // sealkit key ...
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(serveCmd)
}
