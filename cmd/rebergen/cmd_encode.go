package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [string...]",
	Short: "Encode raw symbol strings to integer-id sequences",
	Long: `Encodes each argument against the alphabet's fixed ordering and prints one
JSON id array per line, in argument order. This is the inference-time path:
no dataset assembly, no randomness - any symbol outside the alphabet is an
error, never a silent mis-encode.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	a, err := resolveAlphabet()
	if err != nil {
		return err
	}

	for _, s := range args {
		ids, err := a.Encode(s)
		if err != nil {
			return fmt.Errorf("encode %q: %w", s, err)
		}
		line, err := json.Marshal(ids)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(line))
	}
	return nil
}
