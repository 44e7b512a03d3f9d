// Package acrq is the high-level entry point of the prover: wrap a
// formula the right way, run the tableau, and read off a verdict plus
// countermodels.
package acrq

import (
	"context"

	"github.com/cottand/acrq/formula"
	"github.com/cottand/acrq/tableau"
	"github.com/pkg/errors"
)

// Result carries the evidence behind a verdict: the final branches of the
// tableau and the countermodel read off each open branch.
type Result struct {
	Branches []*tableau.Branch
	// Models holds one model per open branch; empty when all closed
	Models []tableau.Model
}

// allClosed reports whether the tableau refuted every branch.
func (r Result) allClosed() bool {
	return len(r.Models) == 0
}

// Satisfiable reports whether f can take the value true: it runs a
// tableau rooted at t:f and checks for a surviving open branch. The
// models in Result witness satisfiability when there are any.
func Satisfiable(ctx context.Context, f formula.Formula, opts ...tableau.Option) (bool, Result, error) {
	res, err := run(ctx, []tableau.SignedFormula{{Sign: tableau.T, Formula: f}}, opts)
	if err != nil {
		return false, Result{}, errors.Wrap(err, "deciding satisfiability")
	}
	return !res.allClosed(), res, nil
}

// Valid reports whether f is valid: its negation-by-sign f:f must be
// unsatisfiable, i.e. every branch of a tableau rooted at f:f closes.
// Models in Result are countermodels when f is not valid.
func Valid(ctx context.Context, f formula.Formula, opts ...tableau.Option) (bool, Result, error) {
	res, err := run(ctx, []tableau.SignedFormula{{Sign: tableau.F, Formula: f}}, opts)
	if err != nil {
		return false, Result{}, errors.Wrap(err, "deciding validity")
	}
	return res.allClosed(), res, nil
}

// Entails reports whether the premises jointly entail the conclusion: the
// tableau asserts t on every premise and f on the conclusion, and
// entailment holds when every branch closes. Models in Result are
// counterexamples otherwise.
func Entails(ctx context.Context, premises []formula.Formula, conclusion formula.Formula, opts ...tableau.Option) (bool, Result, error) {
	initial := make([]tableau.SignedFormula, 0, len(premises)+1)
	for _, p := range premises {
		initial = append(initial, tableau.SignedFormula{Sign: tableau.T, Formula: p})
	}
	initial = append(initial, tableau.SignedFormula{Sign: tableau.F, Formula: conclusion})
	res, err := run(ctx, initial, opts)
	if err != nil {
		return false, Result{}, errors.Wrap(err, "deciding entailment")
	}
	return res.allClosed(), res, nil
}

func run(ctx context.Context, initial []tableau.SignedFormula, opts []tableau.Option) (Result, error) {
	t := tableau.New(initial, opts...)
	if err := t.Construct(ctx); err != nil {
		return Result{}, err
	}
	res := Result{Branches: t.Branches()}
	for _, b := range t.OpenBranches() {
		if m, ok := b.Model(); ok {
			res.Models = append(res.Models, m)
		}
	}
	return res, nil
}
