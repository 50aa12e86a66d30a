package main

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/hex"
	"encoding/pem"
	"fmt"

	"github.com/spf13/cobra"
	"go.step.sm/crypto/pemutil"

	"github.com/sealkit/sealkit/internal/hsm"
	"github.com/sealkit/sealkit/pkg/digest"
	"github.com/sealkit/sealkit/pkg/keyutil"
	"github.com/sealkit/sealkit/pkg/signature"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Key management commands",
	Long:  `Commands for generating, encoding and fingerprinting keys.`,
}

var keyGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a key pair",
	Long: `Generate a new key pair and write it as PEM.

Supported types:
  rsa  - RSA, size set with --bits (default 2048)
  ec   - ECDSA, curve set with --curve (default p-256)

Examples:
  # Generate an RSA key
  sealkit key gen --type rsa --bits 4096 --out key.pem

  # Generate an EC key and also write the public half
  sealkit key gen --type ec --curve p-384 --out key.pem --pub-out pub.pem`,
	RunE: runKeyGen,
}

var keyPubCmd = &cobra.Command{
	Use:   "pub",
	Short: "Extract public key from private key",
	Long: `Extract the public key from a private key file.

The output is a PEM-encoded public key that can be shared freely.

Examples:
  sealkit key pub --key private.pem --out public.pem`,
	RunE: runKeyPub,
}

var keyInspectCmd = &cobra.Command{
	Use:   "inspect <pubkey.pem>",
	Short: "Display information about a public key",
	Long: `Display information about a PEM public key.

Shows the key type, its raw parameters (RSA modulus and exponent, or
EC curve and point coordinates) and its CBOR descriptor.

Examples:
  sealkit key inspect pub.pem`,
	Args: cobra.ExactArgs(1),
	RunE: runKeyInspect,
}

var keyFingerprintCmd = &cobra.Command{
	Use:   "fingerprint [pubkey.pem]",
	Short: "Compute the fingerprint of a public key",
	Long: `Compute the digest of the DER encoding of a public key.

The key comes from a PEM file, or from a PKCS#11 token when
--hsm-config is given.

Examples:
  # Fingerprint a PEM public key
  sealkit key fingerprint pub.pem

  # Fingerprint with a different digest
  sealkit key fingerprint --algorithm sha3-256 pub.pem

  # Fingerprint a key stored in an HSM
  export HSM_PIN="****"
  sealkit key fingerprint --hsm-config ./hsm.yaml`,
	RunE: runKeyFingerprint,
}

var (
	keyGenType   string
	keyGenBits   int
	keyGenCurve  string
	keyGenOut    string
	keyGenPubOut string

	keyPubKey string
	keyPubOut string

	keyFingerprintAlgorithm string
	keyFingerprintHSMConfig string
)

func init() {
	keyCmd.AddCommand(keyGenCmd)
	keyCmd.AddCommand(keyPubCmd)
	keyCmd.AddCommand(keyInspectCmd)
	keyCmd.AddCommand(keyFingerprintCmd)

	// gen flags
	flags := keyGenCmd.Flags()
	flags.StringVarP(&keyGenType, "type", "t", "ec", "Key type: rsa, ec")
	flags.IntVar(&keyGenBits, "bits", 2048, "RSA modulus size in bits")
	flags.StringVar(&keyGenCurve, "curve", "p-256", "EC curve: p-224, p-256, p-384, p-521")
	flags.StringVarP(&keyGenOut, "out", "o", "", "Output private key file (required)")
	flags.StringVar(&keyGenPubOut, "pub-out", "", "Output public key file (optional)")
	_ = keyGenCmd.MarkFlagRequired("out")

	// pub flags
	keyPubCmd.Flags().StringVarP(&keyPubKey, "key", "k", "", "Input private key file (required)")
	keyPubCmd.Flags().StringVarP(&keyPubOut, "out", "o", "", "Output public key file (required)")
	_ = keyPubCmd.MarkFlagRequired("key")
	_ = keyPubCmd.MarkFlagRequired("out")

	// fingerprint flags
	keyFingerprintCmd.Flags().StringVarP(&keyFingerprintAlgorithm, "algorithm", "a", "sha256", "Digest algorithm")
	keyFingerprintCmd.Flags().StringVar(&keyFingerprintHSMConfig, "hsm-config", "", "Path to HSM configuration file")
}

func runKeyGen(cmd *cobra.Command, args []string) error {
	var (
		priv crypto.Signer
		err  error
	)
	switch keyGenType {
	case "rsa":
		priv, err = keyutil.GenerateRSA(keyGenBits)
	case "ec":
		priv, err = keyutil.GenerateEC(keyutil.CurveID(keyGenCurve))
	default:
		return fmt.Errorf("unsupported key type %q (want rsa or ec)", keyGenType)
	}
	if err != nil {
		return err
	}

	block, err := pemutil.Serialize(priv)
	if err != nil {
		return fmt.Errorf("failed to serialize private key: %w", err)
	}
	if err := writeOutput(keyGenOut, pem.EncodeToMemory(block)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Private key written to %s\n", keyGenOut)

	if keyGenPubOut != "" {
		pubPEM, err := keyutil.EncodePublicKeyPEM(priv.Public())
		if err != nil {
			return err
		}
		if err := writeOutput(keyGenPubOut, pubPEM); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Public key written to %s\n", keyGenPubOut)
	}
	return nil
}

func runKeyPub(cmd *cobra.Command, args []string) error {
	priv, err := loadSigner(keyPubKey)
	if err != nil {
		return err
	}
	pubPEM, err := keyutil.EncodePublicKeyPEM(priv.Public())
	if err != nil {
		return err
	}
	if err := writeOutput(keyPubOut, pubPEM); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Public key written to %s\n", keyPubOut)
	return nil
}

func runKeyInspect(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}
	pub, err := keyutil.ParsePublicKeyPEM(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch k := pub.(type) {
	case *rsa.PublicKey:
		n, e, err := keyutil.RSAPublicKeyParams(k)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Type:     RSA")
		fmt.Fprintf(out, "Bits:     %d\n", k.N.BitLen())
		fmt.Fprintf(out, "Modulus:  %s\n", hex.EncodeToString(n))
		fmt.Fprintf(out, "Exponent: %s\n", hex.EncodeToString(e))
		size, err := keyutil.SuitableSymmetricKeySize(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Suitable symmetric key size: %d bytes\n", size)
	case *ecdsa.PublicKey:
		curve, x, y, err := keyutil.ECPublicKeyParams(k)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Type:  ECDSA")
		fmt.Fprintf(out, "Curve: %s\n", curve)
		fmt.Fprintf(out, "X:     %s\n", hex.EncodeToString(x))
		fmt.Fprintf(out, "Y:     %s\n", hex.EncodeToString(y))
	case ed25519.PublicKey:
		fmt.Fprintln(out, "Type: Ed25519")
		fmt.Fprintf(out, "Key:  %s\n", hex.EncodeToString(k))
	}

	if desc, err := keyutil.NewDescriptor(pub); err == nil {
		if raw, err := desc.Marshal(); err == nil {
			fmt.Fprintf(out, "Descriptor: %s\n", hex.EncodeToString(raw))
		}
	}
	return nil
}

func runKeyFingerprint(cmd *cobra.Command, args []string) error {
	alg, err := digest.ParseAlgorithm(keyFingerprintAlgorithm)
	if err != nil {
		return err
	}

	var pub crypto.PublicKey
	switch {
	case keyFingerprintHSMConfig != "":
		if len(args) > 0 {
			return fmt.Errorf("--hsm-config and a key file are mutually exclusive")
		}
		cfg, err := hsm.LoadConfig(keyFingerprintHSMConfig)
		if err != nil {
			return err
		}
		pub, err = hsm.FetchPublicKey(cfg)
		if err != nil {
			return err
		}
	case len(args) == 1:
		data, err := readInput(args[0])
		if err != nil {
			return err
		}
		pub, err = keyutil.ParsePublicKeyPEM(data)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("either a key file or --hsm-config is required")
	}

	fp, err := signature.Fingerprint(pub, alg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", hex.EncodeToString(fp))
	return nil
}

// loadSigner parses a PEM private key file.
func loadSigner(path string) (crypto.Signer, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	key, err := pemutil.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	signer, ok := key.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("%s does not contain a private key", path)
	}
	return signer, nil
}
