package formula

import (
	"strings"
)

// precedence of each connective when rendering; higher binds tighter.
// Atoms render at maximum precedence and never need parentheses.
func precedence(c Connective) int16 {
	switch c {
	case IMPLIES:
		return 1
	case OR:
		return 2
	case AND:
		return 3
	case NOT:
		return 4
	}
	return 0
}

func (f *Pred) String() string          { return FormulaString(f) }
func (f *BilateralPred) String() string { return FormulaString(f) }
func (f *Compound) String() string      { return FormulaString(f) }

func (t *Constant) String() string { return t.Name }
func (t *Variable) String() string { return t.Name }

// FormulaString renders f in the concrete syntax the parser accepts,
// inserting parentheses only where precedence requires them.
func FormulaString(f Formula) string {
	sb := &strings.Builder{}
	showFormulaWalker(sb, f, 0)
	return sb.String()
}

func showFormulaWalker(sb *strings.Builder, f Formula, outerPrecedence int16) {
	if f == nil {
		sb.WriteString("nil")
		return
	}
	switch f := f.(type) {
	case *Pred:
		showAtom(sb, f.Name, false, f.Args)
	case *BilateralPred:
		showAtom(sb, f.Name, f.Negative, f.Args)
	case *Compound:
		prec := precedence(f.Connective)
		if outerPrecedence > prec {
			sb.WriteString("(")
			defer sb.WriteString(")")
		}
		if f.Connective == NOT {
			sb.WriteString("~")
			showFormulaWalker(sb, f.Subformulas[0], prec)
			return
		}
		// IMPLIES is right-associative, so the left child needs a higher
		// context than the right one; AND/OR associate to the left.
		leftPrec, rightPrec := prec, prec+1
		if f.Connective == IMPLIES {
			leftPrec, rightPrec = prec+1, prec
		}
		showFormulaWalker(sb, f.Subformulas[0], leftPrec)
		sb.WriteString(" " + f.Connective.String() + " ")
		showFormulaWalker(sb, f.Subformulas[1], rightPrec)
	default:
		sb.WriteString("?")
	}
}

func showAtom(sb *strings.Builder, name string, negative bool, args []Term) {
	sb.WriteString(name)
	if negative {
		sb.WriteString("*")
	}
	if len(args) == 0 {
		return
	}
	sb.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
}
