package main

import (
	"log/slog"
	"os"

	"github.com/cottand/acrq/cmd"
	"github.com/cottand/acrq/internal/log"
	"github.com/spf13/cobra"
)

func main() {
	log.SetLevel(slog.LevelWarn)
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "acrq [subcommand]",
	Short:        "acrq: a tableau prover for the paraconsistent logic ACrQ",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.SatCmd)
	rootCmd.AddCommand(cmd.ProveCmd)
	rootCmd.AddCommand(cmd.EntailCmd)
}
