package main

import (
	"crypto/rsa"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sealkit/sealkit/pkg/keyutil"
	"github.com/sealkit/sealkit/pkg/signature"
)

var (
	encryptKey string
	encryptIn  string
	encryptOut string

	decryptKey string
	decryptIn  string
	decryptOut string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a small message with an RSA public key",
	Long: `Encrypt a small message with an RSA public key (PKCS#1 v1.5).

This is meant for key wrapping and other short payloads. The message
must be smaller than the RSA modulus minus padding overhead.

Examples:
  sealkit encrypt --key pub.pem --in secret.key --out wrapped.bin`,
	RunE: runEncrypt,
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a message with an RSA private key",
	Long: `Decrypt a PKCS#1 v1.5 message with an RSA private key.

Examples:
  sealkit decrypt --key key.pem --in wrapped.bin --out secret.key`,
	RunE: runDecrypt,
}

func init() {
	encryptCmd.Flags().StringVarP(&encryptKey, "key", "k", "", "RSA public key file (required)")
	encryptCmd.Flags().StringVar(&encryptIn, "in", "", "Input file (default: stdin)")
	encryptCmd.Flags().StringVarP(&encryptOut, "out", "o", "", "Output file (default: stdout)")
	_ = encryptCmd.MarkFlagRequired("key")

	decryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "RSA private key file (required)")
	decryptCmd.Flags().StringVar(&decryptIn, "in", "", "Input file (default: stdin)")
	decryptCmd.Flags().StringVarP(&decryptOut, "out", "o", "", "Output file (default: stdout)")
	_ = decryptCmd.MarkFlagRequired("key")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	keyPEM, err := readInput(encryptKey)
	if err != nil {
		return err
	}
	pub, err := keyutil.ParsePublicKeyPEM(keyPEM)
	if err != nil {
		return err
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("%s is not an RSA public key", encryptKey)
	}

	plaintext, err := readInput(encryptIn)
	if err != nil {
		return err
	}
	ciphertext, err := signature.EncryptRSA(rsaPub, plaintext)
	if err != nil {
		return err
	}
	return writeOutput(encryptOut, ciphertext)
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	priv, err := loadSigner(decryptKey)
	if err != nil {
		return err
	}
	rsaPriv, ok := priv.(*rsa.PrivateKey)
	if !ok {
		return fmt.Errorf("%s is not an RSA private key", decryptKey)
	}

	ciphertext, err := readInput(decryptIn)
	if err != nil {
		return err
	}
	plaintext, err := signature.DecryptRSA(rsaPriv, ciphertext)
	if err != nil {
		return err
	}
	return writeOutput(decryptOut, plaintext)
}
