package formula

import (
	"fmt"
	"strings"
)

// BilateralForm rewrites f into bilateral normal form: NOT is fully
// eliminated, with negation surviving only as the Negative flag on
// BilateralPred leaves. Pred leaves become positive BilateralPreds, NOT
// over an atom becomes the atom's dual, double negations cancel, and NOT
// distributes over AND/OR by DeMorgan. NOT over IMPLIES rewrites through
// ~(A -> B) == A & ~B, the standard equivalence in weak Kleene semantics
// (the connectives share e-contagion, so the rewrite preserves all four
// values).
//
// The function is pure and total over well-formed formulas, and
// idempotent: applying it to its own output returns output equal to it.
func BilateralForm(f Formula) Formula {
	switch f := f.(type) {
	case *Pred:
		return &BilateralPred{Range: f.Range, Name: f.Name, Args: f.Args}
	case *BilateralPred:
		return f
	case *Compound:
		if f.Connective == NOT {
			return negatedBilateralForm(f.Subformulas[0])
		}
		subs := make([]Formula, len(f.Subformulas))
		for i, sub := range f.Subformulas {
			subs[i] = BilateralForm(sub)
		}
		return &Compound{Range: f.Range, Connective: f.Connective, Subformulas: subs}
	default:
		panic(fmt.Sprintf("unknown formula node %T", f))
	}
}

// negatedBilateralForm returns BilateralForm of ~f without materialising
// the NOT node.
func negatedBilateralForm(f Formula) Formula {
	switch f := f.(type) {
	case *Pred:
		return &BilateralPred{Range: f.Range, Name: f.Name, Args: f.Args, Negative: true}
	case *BilateralPred:
		return f.Dual()
	case *Compound:
		switch f.Connective {
		case NOT:
			// double negation cancels; recurse so ~~~~P normalises fully
			return BilateralForm(f.Subformulas[0])
		case AND:
			return &Compound{Range: f.Range, Connective: OR, Subformulas: []Formula{
				negatedBilateralForm(f.Subformulas[0]), negatedBilateralForm(f.Subformulas[1]),
			}}
		case OR:
			return &Compound{Range: f.Range, Connective: AND, Subformulas: []Formula{
				negatedBilateralForm(f.Subformulas[0]), negatedBilateralForm(f.Subformulas[1]),
			}}
		case IMPLIES:
			// ~(A -> B) == A & ~B
			return &Compound{Range: f.Range, Connective: AND, Subformulas: []Formula{
				BilateralForm(f.Subformulas[0]), negatedBilateralForm(f.Subformulas[1]),
			}}
		}
	}
	panic(fmt.Sprintf("unknown formula node %T", f))
}

// BilateralEquivalent reports whether a and b have structurally identical
// bilateral normal forms. Both arguments are normalised here regardless of
// whether they look normalised already. The relation is reflexive and
// symmetric, and order-sensitive over AND/OR operands: A & B is not
// bilateral-equivalent to B & A under this check.
func BilateralEquivalent(a, b Formula) bool {
	return Equal(BilateralForm(a), BilateralForm(b))
}

// BilateralEquivalentAC is BilateralEquivalent modulo commutativity of AND
// and OR: operands of commutative connectives are put in a canonical order
// before comparison. The tableau closure condition deliberately does not
// use this relation; it exists for callers that want the coarser check.
func BilateralEquivalentAC(a, b Formula) bool {
	return Equal(canonicalAC(BilateralForm(a)), canonicalAC(BilateralForm(b)))
}

// canonicalAC orders the operands of AND/OR nodes in an already
// bilateral-normal formula. Operands are compared by hash with the
// rendered formula as a tie-break, so the order is deterministic.
func canonicalAC(f Formula) Formula {
	c, ok := f.(*Compound)
	if !ok {
		return f
	}
	subs := make([]Formula, len(c.Subformulas))
	for i, sub := range c.Subformulas {
		subs[i] = canonicalAC(sub)
	}
	if (c.Connective == AND || c.Connective == OR) && len(subs) == 2 {
		if compareCanonical(subs[0], subs[1]) > 0 {
			subs[0], subs[1] = subs[1], subs[0]
		}
	}
	return &Compound{Range: c.Range, Connective: c.Connective, Subformulas: subs}
}

func compareCanonical(a, b Formula) int {
	ha, hb := a.Hash(), b.Hash()
	if ha != hb {
		if ha < hb {
			return -1
		}
		return 1
	}
	return strings.Compare(FormulaString(a), FormulaString(b))
}
