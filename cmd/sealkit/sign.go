package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sealkit/sealkit/pkg/digest"
	"github.com/sealkit/sealkit/pkg/signature"
)

var (
	signKey       string
	signAlgorithm string
	signIn        string
	signOut       string
	signFormat    string
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign data with a private key",
	Long: `Sign data with a PEM private key.

Formats:
  raw   - bare signature bytes (default)
  cose  - COSE_Sign1 envelope carrying the payload (RFC 9052)

In raw format the digest algorithm is set with --algorithm; Ed25519
keys sign the message directly and ignore it. In cose format the
algorithm is derived from the key.

Examples:
  # Detached raw signature
  sealkit sign --key key.pem --algorithm sha256 --in data.bin --out data.sig

  # COSE_Sign1 envelope
  sealkit sign --key key.pem --format cose --in data.bin --out data.cose`,
	RunE: runSign,
}

func init() {
	signCmd.Flags().StringVarP(&signKey, "key", "k", "", "Private key file (required)")
	signCmd.Flags().StringVarP(&signAlgorithm, "algorithm", "a", "sha256", "Digest algorithm (raw format)")
	signCmd.Flags().StringVar(&signIn, "in", "", "Input data file (default: stdin)")
	signCmd.Flags().StringVarP(&signOut, "out", "o", "", "Output signature file (default: stdout)")
	signCmd.Flags().StringVar(&signFormat, "format", "raw", "Signature format: raw, cose")
	_ = signCmd.MarkFlagRequired("key")
}

func runSign(cmd *cobra.Command, args []string) error {
	priv, err := loadSigner(signKey)
	if err != nil {
		return err
	}
	data, err := readInput(signIn)
	if err != nil {
		return err
	}

	var sig []byte
	switch signFormat {
	case "raw":
		alg, err := digest.ParseAlgorithm(signAlgorithm)
		if err != nil {
			return err
		}
		sig, err = signature.Sign(priv, alg, data)
		if err != nil {
			return err
		}
	case "cose":
		sig, err = signature.SignCOSE(priv, data)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q (want raw or cose)", signFormat)
	}

	return writeOutput(signOut, sig)
}
