package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sealkit/sealkit/pkg/digest"
)

var digestAlgorithm string

var digestCmd = &cobra.Command{
	Use:   "digest [file...]",
	Short: "Compute a message digest",
	Long: `Compute a message digest over one or more files.

All files are hashed in order as a single message. With no files,
standard input is hashed.

Examples:
  # Digest a file
  sealkit digest --algorithm sha256 data.bin

  # Digest several files as one message
  sealkit digest --algorithm sha3-512 part1.bin part2.bin

  # Digest stdin
  cat data.bin | sealkit digest`,
	RunE: runDigest,
}

func init() {
	digestCmd.Flags().StringVarP(&digestAlgorithm, "algorithm", "a", "sha256", "Digest algorithm")
}

func runDigest(cmd *cobra.Command, args []string) error {
	alg, err := digest.ParseAlgorithm(digestAlgorithm)
	if err != nil {
		return err
	}

	data, err := collectInputs(args)
	if err != nil {
		return err
	}

	sum, err := digest.Sum(alg, data...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", hex.EncodeToString(sum))
	return nil
}

// collectInputs reads each named file, or stdin when none are given.
func collectInputs(args []string) ([][]byte, error) {
	if len(args) == 0 {
		data, err := readInput("")
		if err != nil {
			return nil, err
		}
		return [][]byte{data}, nil
	}
	chunks := make([][]byte, 0, len(args))
	for _, path := range args {
		data, err := readInput(path)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, data)
	}
	return chunks, nil
}
