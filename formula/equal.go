package formula

import (
	"fmt"

	"github.com/cottand/acrq/util"
)

type nodePair struct {
	a, b Node
}

// Equal reports whether two formulas are structurally identical: same node
// kinds, same names and flags, and subformulas/arguments equal positionally.
// Source positions are ignored. AND/OR operands are NOT reordered here; see
// BilateralEquivalentAC for equivalence modulo commutativity.
//
// The comparison runs over an explicit stack so that adversarially deep
// trees cannot overflow the goroutine stack.
func Equal(a, b Formula) bool {
	stack := &util.Stack[nodePair]{}
	stack.Push(nodePair{a, b})
	for {
		next, ok := stack.Pop()
		if !ok {
			return true
		}
		if !shallowEqual(next, stack) {
			return false
		}
	}
}

// shallowEqual compares one pair of nodes, pushing their children onto
// stack when the pair matches so far.
func shallowEqual(p nodePair, stack *util.Stack[nodePair]) bool {
	switch a := p.a.(type) {
	case *Pred:
		b, ok := p.b.(*Pred)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			stack.Push(nodePair{a.Args[i], b.Args[i]})
		}
	case *BilateralPred:
		b, ok := p.b.(*BilateralPred)
		if !ok || a.Name != b.Name || a.Negative != b.Negative || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			stack.Push(nodePair{a.Args[i], b.Args[i]})
		}
	case *Compound:
		b, ok := p.b.(*Compound)
		if !ok || a.Connective != b.Connective || len(a.Subformulas) != len(b.Subformulas) {
			return false
		}
		for i := range a.Subformulas {
			stack.Push(nodePair{a.Subformulas[i], b.Subformulas[i]})
		}
	case *Constant:
		b, ok := p.b.(*Constant)
		return ok && a.Name == b.Name
	case *Variable:
		b, ok := p.b.(*Variable)
		return ok && a.Name == b.Name
	default:
		panic(fmt.Sprintf("unknown formula node %T", p.a))
	}
	return true
}
