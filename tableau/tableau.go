package tableau

import (
	"context"
	"log/slog"

	"github.com/cottand/acrq/acrqerr"
	"github.com/cottand/acrq/formula"
	"github.com/cottand/acrq/internal/log"
)

// DefaultMaxSteps bounds rule applications per construction. Formula
// decomposition terminates on its own, but the branch count can blow up
// exponentially, so an external budget keeps degenerate inputs from
// running away.
const DefaultMaxSteps = 1 << 20

var tableauLogger = log.DefaultLogger.With("section", "tableau")

// Tableau owns the proof tree for one satisfiability query. Build one
// with New, run Construct, then read the verdict off Branches.
type Tableau struct {
	branches []*Branch
	maxSteps int
	workers  int
	logger   *slog.Logger
}

type Option func(*Tableau)

// WithMaxSteps overrides the rule-application budget. Exceeding the
// budget aborts construction with an error; no partial verdict is ever
// reported.
func WithMaxSteps(n int) Option {
	return func(t *Tableau) {
		t.maxSteps = n
	}
}

// WithParallel expands branches on up to workers goroutines. Sibling
// branches share no mutable state after a fork, so they parallelise
// freely; a value below 2 keeps construction sequential.
func WithParallel(workers int) Option {
	return func(t *Tableau) {
		t.workers = workers
	}
}

// New builds a tableau whose root branch holds initial. Closure between
// the initial signed formulas themselves is detected right here, before
// any rule runs.
func New(initial []SignedFormula, opts ...Option) *Tableau {
	root := newBranch()
	for _, sf := range initial {
		root.add(sf)
	}
	t := &Tableau{
		branches: []*Branch{root},
		maxSteps: DefaultMaxSteps,
		logger:   tableauLogger,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Branches returns the branches of the tree. After Construct has run,
// every returned branch is either closed or saturated open; before, it
// reflects the unexpanded initial state.
func (t *Tableau) Branches() []*Branch {
	return t.branches
}

// AllClosed reports whether every branch is closed, i.e. whether the
// initial signed formulas are jointly unsatisfiable.
func (t *Tableau) AllClosed() bool {
	for _, b := range t.branches {
		if !b.Closed() {
			return false
		}
	}
	return true
}

// OpenBranches returns the branches left open, each witnessing a model of
// the initial signed formulas.
func (t *Tableau) OpenBranches() []*Branch {
	var open []*Branch
	for _, b := range t.branches {
		if !b.Closed() {
			open = append(open, b)
		}
	}
	return open
}

// Construct runs rule expansion to fixpoint across all branches: every
// branch ends up closed or saturated. It fails only on context
// cancellation or an exhausted step budget, and in both cases the tableau
// must not be used for a verdict.
func (t *Tableau) Construct(ctx context.Context) error {
	if t.workers > 1 {
		return t.constructParallel(ctx)
	}
	work := append([]*Branch{}, t.branches...)
	var finished []*Branch
	steps := 0
	for len(work) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		b := work[len(work)-1]
		work = work[:len(work)-1]
		next, progressed := t.step(b)
		if !progressed {
			finished = append(finished, b)
			continue
		}
		steps++
		if steps > t.maxSteps {
			return acrqerr.New(acrqerr.NewBudgetExceeded{Positioner: formula.Range{}, Steps: t.maxSteps})
		}
		work = append(work, next...)
	}
	t.branches = finished
	t.logger.Debug("tableau constructed", "branches", len(finished), "steps", steps)
	return nil
}

// step applies one rule application to b. It returns the branches that
// replace b (b itself plus any forks) and whether any rule applied; when
// none did, b is finished: closed, or saturated open.
func (t *Tableau) step(b *Branch) ([]*Branch, bool) {
	for !b.closed && b.cursor < b.entries.Len() {
		e := b.entries.Get(b.cursor)
		b.cursor++
		exp, ok := expand(e.SignedFormula)
		if !ok {
			continue // atoms are terminal
		}
		// fork before touching b so siblings share nothing mutable
		branches := make([]*Branch, len(exp))
		branches[0] = b
		for i := 1; i < len(exp); i++ {
			branches[i] = b.fork()
		}
		for i, alternative := range exp {
			for _, sf := range alternative {
				if !branches[i].add(sf) {
					break
				}
			}
		}
		return branches, true
	}
	return nil, false
}
