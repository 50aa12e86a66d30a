package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sealkit/sealkit/pkg/digest"
)

var (
	hmacAlgorithm string
	hmacKeyFile   string
	hmacKeyHex    string
)

var hmacCmd = &cobra.Command{
	Use:   "hmac [file...]",
	Short: "Compute an HMAC",
	Long: `Compute a keyed message authentication code over one or more files.

All files are authenticated in order as a single message. With no files,
standard input is used. The key comes from --key-file or --key-hex.

Examples:
  # HMAC a file with a binary key file
  sealkit hmac --algorithm sha256 --key-file hmac.key data.bin

  # HMAC with a hex key
  sealkit hmac --key-hex 6b6579 data.bin`,
	RunE: runHMAC,
}

func init() {
	hmacCmd.Flags().StringVarP(&hmacAlgorithm, "algorithm", "a", "sha256", "Digest algorithm")
	hmacCmd.Flags().StringVar(&hmacKeyFile, "key-file", "", "File containing the HMAC key")
	hmacCmd.Flags().StringVar(&hmacKeyHex, "key-hex", "", "HMAC key as hex")
}

func runHMAC(cmd *cobra.Command, args []string) error {
	alg, err := digest.ParseAlgorithm(hmacAlgorithm)
	if err != nil {
		return err
	}

	key, err := hmacKey()
	if err != nil {
		return err
	}
	data, err := collectInputs(args)
	if err != nil {
		return err
	}

	mac, err := digest.HMACSum(alg, key, data...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", hex.EncodeToString(mac))
	return nil
}

func hmacKey() ([]byte, error) {
	switch {
	case hmacKeyFile != "" && hmacKeyHex != "":
		return nil, fmt.Errorf("--key-file and --key-hex are mutually exclusive")
	case hmacKeyFile != "":
		return readInput(hmacKeyFile)
	case hmacKeyHex != "":
		key, err := hex.DecodeString(hmacKeyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid hex key: %w", err)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("either --key-file or --key-hex is required")
	}
}
