package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sealkit/sealkit/pkg/digest"
	"github.com/sealkit/sealkit/pkg/keyutil"
	"github.com/sealkit/sealkit/pkg/signature"
)

var (
	verifyKey       string
	verifyAlgorithm string
	verifyIn        string
	verifySig       string
	verifyFormat    string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a signature",
	Long: `Verify a signature against a PEM public key.

Formats:
  raw   - bare signature over --in, digest set with --algorithm
  cose  - COSE_Sign1 envelope; the embedded payload is checked and printed

Examples:
  # Verify a raw signature
  sealkit verify --key pub.pem --algorithm sha256 --in data.bin --sig data.sig

  # Verify a COSE envelope
  sealkit verify --key pub.pem --format cose --sig data.cose`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyKey, "key", "k", "", "Public key file (required)")
	verifyCmd.Flags().StringVarP(&verifyAlgorithm, "algorithm", "a", "sha256", "Digest algorithm (raw format)")
	verifyCmd.Flags().StringVar(&verifyIn, "in", "", "Input data file (raw format)")
	verifyCmd.Flags().StringVar(&verifySig, "sig", "", "Signature file (required)")
	verifyCmd.Flags().StringVar(&verifyFormat, "format", "raw", "Signature format: raw, cose")
	_ = verifyCmd.MarkFlagRequired("key")
	_ = verifyCmd.MarkFlagRequired("sig")
}

func runVerify(cmd *cobra.Command, args []string) error {
	keyPEM, err := readInput(verifyKey)
	if err != nil {
		return err
	}
	pub, err := keyutil.ParsePublicKeyPEM(keyPEM)
	if err != nil {
		return err
	}
	sig, err := readInput(verifySig)
	if err != nil {
		return err
	}

	switch verifyFormat {
	case "raw":
		alg, err := digest.ParseAlgorithm(verifyAlgorithm)
		if err != nil {
			return err
		}
		data, err := readInput(verifyIn)
		if err != nil {
			return err
		}
		if err := signature.Verify(pub, alg, data, sig); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signature OK")
	case "cose":
		payload, err := signature.VerifyCOSE(pub, sig)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signature OK, payload %d bytes\n", len(payload))
	default:
		return fmt.Errorf("unsupported format %q (want raw or cose)", verifyFormat)
	}
	return nil
}
