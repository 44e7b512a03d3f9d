package cmd

import (
	"github.com/cottand/acrq/acrq"
	"github.com/cottand/acrq/formula"
	"github.com/spf13/cobra"
)

var EntailCmd = &cobra.Command{
	Use:          "entail <premise>... <conclusion>",
	Short:        "Decide whether premises entail a conclusion in ACrQ",
	RunE:         runEntail,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func runEntail(cmd *cobra.Command, args []string) error {
	parsed := make([]formula.Formula, len(args))
	for i, arg := range args {
		f, err := parseArg(arg)
		if err != nil {
			return err
		}
		parsed[i] = f
	}
	premises, conclusion := parsed[:len(parsed)-1], parsed[len(parsed)-1]
	entails, res, err := acrq.Entails(cmd.Context(), premises, conclusion, tableauOptions()...)
	if err != nil {
		return err
	}
	printVerdict(entails, "entailment holds", "entailment does not hold", res)
	return nil
}
