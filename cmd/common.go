// Package cmd holds the subcommands of the acrq CLI. The commands are
// thin glue: parse, call the acrq package, render.
package cmd

import (
	"fmt"
	"os"

	"github.com/cottand/acrq/acrq"
	"github.com/cottand/acrq/formula"
	"github.com/cottand/acrq/parser"
	"github.com/cottand/acrq/tableau"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	flagExplain  bool
	flagMaxSteps int
	flagParallel int
)

func init() {
	registerFlags(SatCmd, ProveCmd, EntailCmd)
}

func registerFlags(cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.Flags().BoolVar(&flagExplain, "explain", false, "print the countermodel of each open branch")
		c.Flags().IntVar(&flagMaxSteps, "max-steps", tableau.DefaultMaxSteps, "abort after this many rule applications")
		c.Flags().IntVar(&flagParallel, "parallel", 1, "expand branches on up to this many goroutines")
	}
}

func tableauOptions() []tableau.Option {
	return []tableau.Option{
		tableau.WithMaxSteps(flagMaxSteps),
		tableau.WithParallel(flagParallel),
	}
}

func parseArg(arg string) (formula.Formula, error) {
	f, err := parser.Parse(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing '%s'", arg)
	}
	return f, nil
}

var (
	yes = color.New(color.FgGreen, color.Bold)
	no  = color.New(color.FgRed, color.Bold)
	dim = color.New(color.Faint)
)

func printVerdict(holds bool, positive, negative string, res acrq.Result) {
	if holds {
		_, _ = yes.Println(positive)
	} else {
		_, _ = no.Println(negative)
	}
	_, _ = dim.Fprintf(os.Stdout, "%d branches, %d open\n", len(res.Branches), len(res.Models))
	if !flagExplain {
		return
	}
	for _, m := range res.Models {
		fmt.Println(m.String())
		if gluts := m.Gluts(); len(gluts) > 0 {
			_, _ = dim.Printf("  gluts: %v\n", gluts)
		}
		if gaps := m.Gaps(); len(gaps) > 0 {
			_, _ = dim.Printf("  gaps: %v\n", gaps)
		}
	}
}
