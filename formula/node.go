// Package formula defines the immutable syntax trees of ACrQ formulas,
// their bilateral normal form, and structural equivalence over it.
package formula

// Node is the base interface for all formula tree nodes.
type Node interface {
	Positioner
	// Hash returns a structural hash of the node. Source positions are
	// excluded so that two formulas parsed from different places in the
	// input still hash (and compare) equal.
	Hash() uint64
	String() string
}

// Formula is the interface for all formula nodes.
type Formula interface {
	Node
	formulaNode() // Marker method to distinguish formulas
}

// Term is the interface for all term nodes (predicate arguments).
type Term interface {
	Node
	termNode() // Marker method to distinguish terms
}

// Connective enumerates the boolean connectives of the language.
type Connective int8

const (
	NOT Connective = iota
	AND
	OR
	IMPLIES
)

// Arity returns the number of subformulas a Compound with this
// connective carries.
func (c Connective) Arity() int {
	if c == NOT {
		return 1
	}
	return 2
}

func (c Connective) String() string {
	switch c {
	case NOT:
		return "~"
	case AND:
		return "&"
	case OR:
		return "|"
	case IMPLIES:
		return "->"
	}
	return "?"
}
