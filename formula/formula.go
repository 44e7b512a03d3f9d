package formula

import (
	"encoding/binary"
	"hash/fnv"
)

// All formula node types implement the Formula interface

// Pred represents an atomic predicate application P(t1, ..., tn).
type Pred struct {
	Range
	Name string
	Args []Term
}

func (f *Pred) formulaNode() {}

// Hash returns a hash value for the Pred, based on its structural characteristics
func (f *Pred) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Pred")
	arr = appendLenPrefixed(arr, f.Name)
	for _, arg := range f.Args {
		arr = binary.LittleEndian.AppendUint64(arr, arg.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// BilateralPred represents either the positive form P(args) of a bilateral
// predicate pair (Negative=false) or its dual negative form P*(args)
// (Negative=true). Two BilateralPred values belong to the same pair iff
// Name and Args match; they are duals of each other when Negative differs.
type BilateralPred struct {
	Range
	Name     string // name of the positive predicate of the pair
	Args     []Term
	Negative bool
}

func (f *BilateralPred) formulaNode() {}

// Dual returns the other half of this predicate pair, sharing Args.
func (f *BilateralPred) Dual() *BilateralPred {
	return &BilateralPred{Range: f.Range, Name: f.Name, Args: f.Args, Negative: !f.Negative}
}

// Hash returns a hash value for the BilateralPred, based on its structural characteristics
func (f *BilateralPred) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("BilateralPred")
	if f.Negative {
		arr = append(arr, '*')
	} else {
		arr = append(arr, '+')
	}
	arr = appendLenPrefixed(arr, f.Name)
	for _, arg := range f.Args {
		arr = binary.LittleEndian.AppendUint64(arr, arg.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Compound represents a boolean connective applied to subformulas
// (arity 1 for NOT, 2 for AND/OR/IMPLIES).
type Compound struct {
	Range
	Connective  Connective
	Subformulas []Formula
}

func (f *Compound) formulaNode() {}

// Hash returns a hash value for the Compound, based on its structural characteristics
func (f *Compound) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Compound")
	arr = append(arr, byte(f.Connective))
	for _, sub := range f.Subformulas {
		arr = binary.LittleEndian.AppendUint64(arr, sub.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Constant is a term naming an individual, like a or socrates.
type Constant struct {
	Range
	Name string
}

func (t *Constant) termNode() {}

// Hash returns a hash value for the Constant
func (t *Constant) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(appendLenPrefixed([]byte("Constant"), t.Name))
	return h.Sum64()
}

// Variable is a term standing for an unknown individual. The tableau core
// never instantiates variables itself; they exist so the model stays open
// to quantifier extensions.
type Variable struct {
	Range
	Name string
}

func (t *Variable) termNode() {}

// Hash returns a hash value for the Variable
func (t *Variable) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(appendLenPrefixed([]byte("Variable"), t.Name))
	return h.Sum64()
}

// appendLenPrefixed appends name behind its byte length, so that two
// different tag/name splits can never produce the same hashed stream.
func appendLenPrefixed(arr []byte, name string) []byte {
	arr = binary.LittleEndian.AppendUint64(arr, uint64(len(name)))
	return append(arr, name...)
}

// Convenience constructors, mostly useful for building formulas in tests
// and rule expansion. They carry no source positions.

func NewPred(name string, args ...Term) *Pred {
	return &Pred{Name: name, Args: args}
}

func NewBilateral(name string, negative bool, args ...Term) *BilateralPred {
	return &BilateralPred{Name: name, Args: args, Negative: negative}
}

func NewConst(name string) *Constant {
	return &Constant{Name: name}
}

func Not(f Formula) *Compound {
	return &Compound{Connective: NOT, Subformulas: []Formula{f}}
}

func And(left, right Formula) *Compound {
	return &Compound{Connective: AND, Subformulas: []Formula{left, right}}
}

func Or(left, right Formula) *Compound {
	return &Compound{Connective: OR, Subformulas: []Formula{left, right}}
}

func Implies(left, right Formula) *Compound {
	return &Compound{Connective: IMPLIES, Subformulas: []Formula{left, right}}
}
