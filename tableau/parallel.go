package tableau

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/cottand/acrq/acrqerr"
	"github.com/cottand/acrq/formula"
	"golang.org/x/sync/errgroup"
)

// constructParallel is Construct with branch expansion fanned out over a
// bounded errgroup. Every branch is owned by exactly one goroutine at a
// time: forks either move to a fresh goroutine via TryGo or stay on the
// owner's local worklist, so no two goroutines ever touch the same
// branch. Only the finished list is shared, behind a mutex.
func (t *Tableau) constructParallel(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)

	var mu sync.Mutex
	var finished []*Branch
	var steps atomic.Int64

	var explore func(*Branch) error
	explore = func(owned *Branch) error {
		work := []*Branch{owned}
		for len(work) > 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			b := work[len(work)-1]
			work = work[:len(work)-1]
			next, progressed := t.step(b)
			if !progressed {
				mu.Lock()
				finished = append(finished, b)
				mu.Unlock()
				continue
			}
			if steps.Add(1) > int64(t.maxSteps) {
				return acrqerr.New(acrqerr.NewBudgetExceeded{Positioner: formula.Range{}, Steps: t.maxSteps})
			}
			// keep the first branch, hand the forks to idle workers.
			// TryGo (not Go) because blocking here while every worker
			// tries to spawn would deadlock the pool.
			work = append(work, next[0])
			for _, sibling := range next[1:] {
				sibling := sibling
				if !g.TryGo(func() error { return explore(sibling) }) {
					work = append(work, sibling)
				}
			}
		}
		return nil
	}

	for _, b := range t.branches {
		b := b
		g.Go(func() error { return explore(b) })
	}
	if err := g.Wait(); err != nil {
		// leave the branches at their initial state, as the sequential
		// path does: an erred tableau carries no verdict
		return err
	}
	t.branches = finished
	return nil
}
