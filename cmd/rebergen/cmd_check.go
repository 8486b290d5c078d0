package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [string...]",
	Short: "Verify strings against the grammar's language",
	Long: `Runs each argument forward through the selected grammar's transition
tables, recursing through embedded grammars, and reports whether a complete
derivation exists. Exits non-zero when any string is rejected, for use in
pipelines.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := resolveGrammar()
	if err != nil {
		return err
	}

	rejected := 0
	for _, s := range args {
		ok, err := g.Accepts(s)
		if err != nil {
			return fmt.Errorf("check %q: %w", s, err)
		}
		verdict := "valid"
		if !ok {
			verdict = "invalid"
			rejected++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s, verdict)
	}

	if rejected > 0 {
		return fmt.Errorf("%d of %d strings rejected", rejected, len(args))
	}
	return nil
}
