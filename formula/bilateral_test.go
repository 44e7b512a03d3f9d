package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pa() *Pred { return NewPred("P", NewConst("a")) }
func qa() *Pred { return NewPred("Q", NewConst("a")) }

func dual(f *Pred) *BilateralPred {
	return NewBilateral(f.Name, true, f.Args...)
}

func TestBilateralFormDeMorgan(t *testing.T) {
	// ~(P(a) & Q(a)) must become P*(a) | Q*(a)
	got := BilateralForm(Not(And(pa(), qa())))
	expected := Or(dual(pa()), dual(qa()))
	assert.True(t, Equal(got, expected), "got %s, expected %s", got, expected)
}

func TestBilateralFormNotImplies(t *testing.T) {
	// ~(P(a) -> Q(a)) must become P(a) & Q*(a)
	got := BilateralForm(Not(Implies(pa(), qa())))
	expected := And(NewBilateral("P", false, NewConst("a")), dual(qa()))
	assert.True(t, Equal(got, expected), "got %s, expected %s", got, expected)
}

func TestBilateralFormEliminatesNot(t *testing.T) {
	testCases := []Formula{
		pa(),
		dual(pa()),
		Not(pa()),
		Not(Not(Not(Not(pa())))),
		Not(Not(Not(pa()))),
		Not(And(pa(), qa())),
		Not(Or(pa(), qa())),
		Not(Implies(pa(), qa())),
		Implies(Not(And(pa(), qa())), Or(Not(pa()), Not(qa()))),
		And(Not(Or(pa(), Not(qa()))), Implies(qa(), Not(pa()))),
	}
	for _, testCase := range testCases {
		t.Run(testCase.String(), func(t *testing.T) {
			normalised := BilateralForm(testCase)
			assertNoNot(t, normalised)
			// idempotence
			again := BilateralForm(normalised)
			assert.True(t, Equal(normalised, again), "BilateralForm not idempotent on %s: %s vs %s", testCase, normalised, again)
		})
	}
}

func assertNoNot(t *testing.T, f Formula) {
	t.Helper()
	switch f := f.(type) {
	case *Pred:
		t.Errorf("found non-bilateral predicate %s in normal form", f)
	case *BilateralPred:
	case *Compound:
		assert.NotEqual(t, NOT, f.Connective, "found NOT in normal form at %s", f)
		for _, sub := range f.Subformulas {
			assertNoNot(t, sub)
		}
	}
}

func TestBilateralEquivalentDoubleNegation(t *testing.T) {
	testCases := []Formula{
		pa(),
		dual(qa()),
		And(pa(), qa()),
		Implies(pa(), Not(qa())),
	}
	for _, testCase := range testCases {
		t.Run(testCase.String(), func(t *testing.T) {
			assert.True(t, BilateralEquivalent(testCase, Not(Not(testCase))))
			assert.True(t, BilateralEquivalent(Not(Not(testCase)), testCase))
		})
	}
}

func TestBilateralEquivalentReflexiveSymmetric(t *testing.T) {
	formulas := []Formula{
		pa(),
		qa(),
		Not(pa()),
		And(pa(), qa()),
		Or(Not(pa()), Not(qa())),
		Not(And(pa(), qa())),
	}
	for _, a := range formulas {
		assert.True(t, BilateralEquivalent(a, a), "%s not equivalent to itself", a)
		for _, b := range formulas {
			assert.Equal(t, BilateralEquivalent(a, b), BilateralEquivalent(b, a),
				"equivalence not symmetric over %s, %s", a, b)
		}
	}
}

func TestBilateralEquivalentDeMorgan(t *testing.T) {
	assert.True(t, BilateralEquivalent(Not(And(pa(), qa())), Or(Not(pa()), Not(qa()))))
	assert.True(t, BilateralEquivalent(Not(Or(pa(), qa())), And(Not(pa()), Not(qa()))))
	assert.False(t, BilateralEquivalent(Not(And(pa(), qa())), And(Not(pa()), Not(qa()))))
}

func TestBilateralEquivalentDistinctAtoms(t *testing.T) {
	assert.False(t, BilateralEquivalent(pa(), qa()))
	assert.False(t, BilateralEquivalent(pa(), dual(pa())), "an atom must not be equivalent to its dual")
	assert.False(t, BilateralEquivalent(NewPred("P", NewConst("a")), NewPred("P", NewConst("b"))))
	assert.False(t, BilateralEquivalent(NewPred("P", NewConst("a")), NewPred("P", NewConst("a"), NewConst("b"))))
}

func TestBilateralEquivalentCommutativity(t *testing.T) {
	// the plain check is order-sensitive; the AC variant is not
	assert.False(t, BilateralEquivalent(And(pa(), qa()), And(qa(), pa())))
	assert.True(t, BilateralEquivalentAC(And(pa(), qa()), And(qa(), pa())))
	assert.True(t, BilateralEquivalentAC(Or(Not(pa()), qa()), Or(qa(), Not(pa()))))
	assert.False(t, BilateralEquivalentAC(Implies(pa(), qa()), Implies(qa(), pa())),
		"IMPLIES is not commutative")
	// nested operands reorder too
	assert.True(t, BilateralEquivalentAC(
		And(Or(pa(), qa()), dual(pa())),
		And(dual(pa()), Or(qa(), pa())),
	))
}
