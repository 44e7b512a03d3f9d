// Package tableau implements the analytic tableau decision procedure for
// ACrQ, a four-valued paraconsistent extension of weak Kleene logic with
// bilateral predicates.
//
// Formulas on a branch carry one of three signs, t, f or e, asserting the
// exact weak-Kleene value of the formula. The fourth value of the logic,
// the glut "both", is never a sign: it shows up as the co-occurrence of
// t:P(a) and t:P*(a) on one branch, which deliberately does not close it.
package tableau

import "fmt"

// Sign is the truth value a branch asserts for a formula.
type Sign int8

const (
	T Sign = iota // true
	F             // false
	E             // undefined ("error" in weak Kleene terms)
)

// Signs lists every sign, in a fixed order the rule expansion relies on
// for deterministic branching.
var Signs = [...]Sign{T, F, E}

func (s Sign) String() string {
	switch s {
	case T:
		return "t"
	case F:
		return "f"
	case E:
		return "e"
	}
	return fmt.Sprintf("Sign(%d)", int8(s))
}
