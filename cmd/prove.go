package cmd

import (
	"github.com/cottand/acrq/acrq"
	"github.com/spf13/cobra"
)

var ProveCmd = &cobra.Command{
	Use:          "prove <formula>",
	Short:        "Decide whether a formula is valid in ACrQ",
	RunE:         runProve,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func runProve(cmd *cobra.Command, args []string) error {
	f, err := parseArg(args[0])
	if err != nil {
		return err
	}
	valid, res, err := acrq.Valid(cmd.Context(), f, tableauOptions()...)
	if err != nil {
		return err
	}
	printVerdict(valid, "valid", "not valid", res)
	return nil
}
