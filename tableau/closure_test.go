package tableau

import (
	"testing"

	"github.com/cottand/acrq/formula"
	"github.com/stretchr/testify/assert"
)

func pa() formula.Formula { return formula.NewPred("P", formula.NewConst("a")) }
func qa() formula.Formula { return formula.NewPred("Q", formula.NewConst("a")) }
func paDual() formula.Formula {
	return formula.NewBilateral("P", true, formula.NewConst("a"))
}

// same-sign co-occurrence is at most a glut and must never close,
// whatever the formulas are. This is the paraconsistency-preserving
// property of the whole system.
func TestClosesNeverOnEqualSigns(t *testing.T) {
	formulas := []formula.Formula{
		pa(),
		qa(),
		paDual(),
		formula.Not(pa()),
		formula.Not(formula.Not(pa())),
		formula.And(pa(), qa()),
		formula.Or(formula.Not(pa()), qa()),
		formula.Implies(pa(), qa()),
	}
	for _, s := range Signs {
		for _, f1 := range formulas {
			for _, f2 := range formulas {
				assert.False(t, Closes(s, f1, s, f2),
					"%s:%s and %s:%s must not close", s, f1, s, f2)
			}
		}
	}
}

func TestClosesOnDistinctSignsOverEquivalentFormulas(t *testing.T) {
	testCases := []struct {
		s1, s2 Sign
		f1, f2 formula.Formula
	}{
		{T, F, pa(), pa()},
		{T, E, pa(), pa()},
		{F, E, pa(), pa()},
		{T, F, pa(), formula.Not(formula.Not(pa()))},
		{F, T, formula.Not(pa()), paDual()},
		{T, F, formula.Not(formula.And(pa(), qa())), formula.Or(formula.Not(pa()), formula.Not(qa()))},
		{E, T, paDual(), formula.Not(pa())},
	}
	for _, testCase := range testCases {
		t.Run(testCase.s1.String()+":"+testCase.f1.String()+" vs "+testCase.s2.String()+":"+testCase.f2.String(), func(t *testing.T) {
			assert.True(t, Closes(testCase.s1, testCase.f1, testCase.s2, testCase.f2))
			assert.True(t, Closes(testCase.s2, testCase.f2, testCase.s1, testCase.f1), "closure must be symmetric")
		})
	}
}

func TestClosesNeverOnUnrelatedFormulas(t *testing.T) {
	testCases := []struct {
		f1, f2 formula.Formula
	}{
		{pa(), qa()},
		{pa(), paDual()}, // dual atoms are distinct propositions
		{formula.NewPred("P", formula.NewConst("a")), formula.NewPred("P", formula.NewConst("b"))},
		{formula.And(pa(), qa()), formula.Or(pa(), qa())},
	}
	for _, testCase := range testCases {
		t.Run(testCase.f1.String()+" vs "+testCase.f2.String(), func(t *testing.T) {
			for _, s1 := range Signs {
				for _, s2 := range Signs {
					if s1 == s2 {
						continue
					}
					assert.False(t, Closes(s1, testCase.f1, s2, testCase.f2))
				}
			}
		})
	}
}
