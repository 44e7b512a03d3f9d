package cmd

import (
	"github.com/cottand/acrq/acrq"
	"github.com/spf13/cobra"
)

var SatCmd = &cobra.Command{
	Use:          "sat <formula>",
	Short:        "Decide whether a formula is satisfiable in ACrQ",
	RunE:         runSat,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func runSat(cmd *cobra.Command, args []string) error {
	f, err := parseArg(args[0])
	if err != nil {
		return err
	}
	sat, res, err := acrq.Satisfiable(cmd.Context(), f, tableauOptions()...)
	if err != nil {
		return err
	}
	printVerdict(sat, "satisfiable", "unsatisfiable", res)
	return nil
}
