package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"benchscore/internal/harness"
)

var suitesCmd = &cobra.Command{
	Use:   "suites",
	Short: "List the built-in benchmark suites",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SUITE\tMODEL\tBENCHMARK\tPARAM\tREFERENCE (us)")
		for _, s := range harness.Suites() {
			for _, e := range s.Entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", s.Name, s.Model, e.Name, e.Param, e.ReferenceUs)
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(suitesCmd)
}
