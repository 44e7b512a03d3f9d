package tableau

import (
	"fmt"

	"github.com/cottand/acrq/formula"
)

// Rule expansion.
//
// Negation is handled structurally, keeping the sign: the NOT rule pushes
// the negation one step inward (DeMorgan over AND/OR, A & ~B under
// IMPLIES, dual flip on atoms, cancellation on double negation). Signs are
// never flipped by negation; flipping t:~P into f:P would manufacture a
// classical contradiction out of a glut and break paraconsistency.
//
// AND, OR and IMPLIES expand straight off the weak-Kleene truth tables:
// for s:(A op B), one child branch per operand value pair (va, vb) in
// {t,f,e}^2 with op(va, vb) = s, the branch receiving va:A and vb:B. The e
// rows fall out of e-contagion (any e operand makes the compound e). This
// makes the tables themselves the rule source; there is no separate
// hand-maintained rule list to drift out of sync.

// weak-Kleene value tables; e is contagious for every connective.

func wkAnd(a, b Sign) Sign {
	if a == E || b == E {
		return E
	}
	if a == T && b == T {
		return T
	}
	return F
}

func wkOr(a, b Sign) Sign {
	if a == E || b == E {
		return E
	}
	if a == T || b == T {
		return T
	}
	return F
}

func wkImplies(a, b Sign) Sign {
	if a == E || b == E {
		return E
	}
	if a == T && b == F {
		return F
	}
	return T
}

func wkTable(c formula.Connective) func(Sign, Sign) Sign {
	switch c {
	case formula.AND:
		return wkAnd
	case formula.OR:
		return wkOr
	case formula.IMPLIES:
		return wkImplies
	}
	panic(fmt.Sprintf("no weak-Kleene table for connective %v", c))
}

// expansion is the outcome of applying a rule: one alternative per child
// branch, each alternative listing the signed formulas that branch gains.
// A single alternative means the rule does not split.
type expansion [][]SignedFormula

// expand applies the decomposition rule matching the head of sf. It
// reports false for atoms (bilateral or not), which are terminal and only
// take part in closure checks. Expansions are never empty: every
// sign/connective combination has at least one realising value pair, and
// the NOT rule always rewrites.
func expand(sf SignedFormula) (expansion, bool) {
	switch f := sf.Formula.(type) {
	case *formula.Pred, *formula.BilateralPred:
		return nil, false
	case *formula.Compound:
		if f.Connective == formula.NOT {
			return expansion{{
				{Sign: sf.Sign, Formula: pushNegation(f.Subformulas[0])},
			}}, true
		}
		table := wkTable(f.Connective)
		var out expansion
		for _, va := range Signs {
			for _, vb := range Signs {
				if table(va, vb) != sf.Sign {
					continue
				}
				out = append(out, []SignedFormula{
					{Sign: va, Formula: f.Subformulas[0]},
					{Sign: vb, Formula: f.Subformulas[1]},
				})
			}
		}
		return out, true
	default:
		panic(fmt.Sprintf("unknown formula node %T", sf.Formula))
	}
}

// pushNegation rewrites ~f one step, leaving any deeper negations as NOT
// nodes for later rule applications. Termination: each application
// strictly shrinks the negation-weighted size of the formula.
func pushNegation(f formula.Formula) formula.Formula {
	switch f := f.(type) {
	case *formula.Pred:
		return &formula.BilateralPred{Range: f.Range, Name: f.Name, Args: f.Args, Negative: true}
	case *formula.BilateralPred:
		return f.Dual()
	case *formula.Compound:
		switch f.Connective {
		case formula.NOT:
			return f.Subformulas[0]
		case formula.AND:
			return formula.Or(formula.Not(f.Subformulas[0]), formula.Not(f.Subformulas[1]))
		case formula.OR:
			return formula.And(formula.Not(f.Subformulas[0]), formula.Not(f.Subformulas[1]))
		case formula.IMPLIES:
			return formula.And(f.Subformulas[0], formula.Not(f.Subformulas[1]))
		}
	}
	panic(fmt.Sprintf("unknown formula node %T", f))
}
