package tableau

import (
	"context"
	"errors"
	"testing"

	"github.com/cottand/acrq/acrqerr"
	"github.com/cottand/acrq/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func construct(t *testing.T, initial []SignedFormula, opts ...Option) *Tableau {
	t.Helper()
	tab := New(initial, opts...)
	require.NoError(t, tab.Construct(context.Background()))
	return tab
}

// t:(P(a) & P*(a)) is a glut: asserting both halves of a bilateral pair
// true must leave a branch open.
func TestGlutStaysOpen(t *testing.T) {
	conj := formula.And(pa(), formula.NewBilateral("P", true, formula.NewConst("a")))
	tab := construct(t, []SignedFormula{{Sign: T, Formula: conj}})
	assert.False(t, tab.AllClosed())
	require.NotEmpty(t, tab.OpenBranches())
}

// t:(P(a) & ~P(a)) is the same glut spelled with negation: ~P(a) expands
// to t:P*(a), not to f:P(a), so the branch stays open.
func TestNegatedContradictionStaysOpen(t *testing.T) {
	conj := formula.And(pa(), formula.Not(pa()))
	tab := construct(t, []SignedFormula{{Sign: T, Formula: conj}})
	assert.False(t, tab.AllClosed())
}

// ~(P(a) & Q(a)) -> (~P(a) | ~Q(a)) is valid, so all branches of the
// tableau for its f-signed root must close.
func TestDeMorganImplicationValid(t *testing.T) {
	f := formula.Implies(
		formula.Not(formula.And(pa(), qa())),
		formula.Or(formula.Not(pa()), formula.Not(qa())),
	)
	tab := construct(t, []SignedFormula{{Sign: F, Formula: f}})
	assert.True(t, tab.AllClosed())
	for _, b := range tab.Branches() {
		first, second, closed := b.Closure()
		require.True(t, closed)
		assert.True(t, Closes(first.Sign, first.Formula, second.Sign, second.Formula),
			"recorded closure witness %s / %s does not close", first, second)
	}
}

func TestIdentityImplicationValid(t *testing.T) {
	f := formula.Implies(pa(), pa())
	tab := construct(t, []SignedFormula{{Sign: F, Formula: f}})
	assert.True(t, tab.AllClosed())
}

// excluded middle fails in weak Kleene: P can be undefined, so
// f:(P | ~P) has a model and the tableau must keep a branch open.
func TestExcludedMiddleNotValid(t *testing.T) {
	f := formula.Or(pa(), formula.Not(pa()))
	tab := construct(t, []SignedFormula{{Sign: F, Formula: f}})
	assert.False(t, tab.AllClosed())
}

func TestDirectContradictionCloses(t *testing.T) {
	tab := construct(t, []SignedFormula{
		{Sign: T, Formula: pa()},
		{Sign: F, Formula: formula.Not(formula.Not(pa()))},
	})
	assert.True(t, tab.AllClosed())
}

func TestUndefinedContradictsTrue(t *testing.T) {
	tab := construct(t, []SignedFormula{
		{Sign: T, Formula: pa()},
		{Sign: E, Formula: pa()},
	})
	assert.True(t, tab.AllClosed())
}

func TestOpenBranchesAreSaturated(t *testing.T) {
	f := formula.Or(formula.And(pa(), qa()), formula.Implies(pa(), qa()))
	tab := construct(t, []SignedFormula{{Sign: T, Formula: f}})
	for _, b := range tab.OpenBranches() {
		assert.Equal(t, b.entries.Len(), b.cursor, "open branch %s still has unexpanded entries", b)
	}
}

func TestClosedBranchStopsExpanding(t *testing.T) {
	// the root closes immediately; the conjunction below must never be
	// decomposed
	tab := construct(t, []SignedFormula{
		{Sign: T, Formula: pa()},
		{Sign: F, Formula: pa()},
		{Sign: T, Formula: formula.And(qa(), qa())},
	})
	require.True(t, tab.AllClosed())
	require.Len(t, tab.Branches(), 1)
	// the conjunction was rejected by the already-closed branch
	assert.Len(t, tab.Branches()[0].SignedFormulas(), 2)
}

func TestConstructRespectsBudget(t *testing.T) {
	f := formula.And(formula.And(pa(), qa()), formula.And(pa(), qa()))
	tab := New([]SignedFormula{{Sign: T, Formula: f}}, WithMaxSteps(1))
	before := tab.Branches()
	err := tab.Construct(context.Background())
	require.Error(t, err)
	target := acrqerr.NewBudgetExceeded{}
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, 1, target.Steps)
	// an erred tableau keeps its initial branches, not a partial result
	require.Len(t, tab.Branches(), 1)
	assert.Same(t, before[0], tab.Branches()[0])
}

func TestConstructRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tab := New([]SignedFormula{{Sign: T, Formula: formula.And(pa(), qa())}})
	err := tab.Construct(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDuplicateAdditionsIgnored(t *testing.T) {
	tab := construct(t, []SignedFormula{
		{Sign: T, Formula: pa()},
		{Sign: T, Formula: pa()},
	})
	require.Len(t, tab.Branches(), 1)
	assert.Len(t, tab.Branches()[0].SignedFormulas(), 1)
}

// A predicate whose name embeds another node's type tag must not be
// confused with that node: here t:X, produced by decomposing t:(X & X),
// has to reach its closure check against f:X even with t:XBilateral
// already on the branch.
func TestUnsatisfiableDespiteTagLikePredicateName(t *testing.T) {
	x := formula.NewBilateral("X", false)
	tab := construct(t, []SignedFormula{
		{Sign: T, Formula: formula.NewPred("XBilateral")},
		{Sign: F, Formula: x},
		{Sign: T, Formula: formula.And(x, x)},
	})
	assert.True(t, tab.AllClosed())
}

// A seen-set hit alone must never drop a formula: the branch confirms a
// structural match before treating the newcomer as a duplicate, so even
// a genuine hash collision only costs a scan.
func TestAddConfirmsHashHitStructurally(t *testing.T) {
	b := newBranch()
	require.True(t, b.add(SignedFormula{Sign: T, Formula: pa()}))
	sf := SignedFormula{Sign: F, Formula: qa()}
	b.seen.Insert(sf.Hash()) // as if an earlier formula had hashed the same
	require.True(t, b.add(sf))
	assert.Len(t, b.SignedFormulas(), 2)
}
