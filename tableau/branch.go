package tableau

import (
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/acrq/formula"
	"github.com/hashicorp/go-set/v3"
)

// entry is a SignedFormula as stored on a branch, with its bilateral
// normal form computed once on insertion. Closure checks against later
// additions then reuse the cached form instead of re-normalising.
type entry struct {
	SignedFormula
	bilateral     formula.Formula
	bilateralHash uint64
}

// Branch is one path of the proof tree: an ordered collection of signed
// formulas plus a worklist cursor. A branch is exclusively owned, first by
// the tableau and after a split by exactly one of its children; the
// immutable entries list makes forking a cheap structure-share while
// keeping siblings free of shared mutable state.
//
// Once closed, a branch never reopens and is never expanded further.
type Branch struct {
	entries *immutable.List[entry]
	seen    *set.Set[uint64]
	// cursor indexes the next entry not yet offered to rule expansion
	cursor int
	closed bool
	// witness holds the two entries that closed the branch, earlier one first
	witness [2]SignedFormula
}

func newBranch() *Branch {
	return &Branch{
		entries: immutable.NewList[entry](),
		seen:    set.New[uint64](8),
	}
}

// fork splits off an independent copy sharing the entries so far. The
// caller must fork before diverging the original.
func (b *Branch) fork() *Branch {
	return &Branch{
		entries: b.entries,
		seen:    set.From(b.seen.Slice()),
		cursor:  b.cursor,
		closed:  b.closed,
		witness: b.witness,
	}
}

// add appends sf unless an equal signed formula is already present, then
// checks the newcomer against every existing entry for closure. It
// reports whether the branch is still open.
func (b *Branch) add(sf SignedFormula) bool {
	if b.closed {
		return false
	}
	// seen is a fast filter only: a hash hit must be confirmed by a
	// structural match, or a colliding formula would be dropped unchecked
	if !b.seen.Insert(sf.Hash()) && b.contains(sf) {
		return true
	}
	e := entry{
		SignedFormula: sf,
		bilateral:     formula.BilateralForm(sf.Formula),
	}
	e.bilateralHash = e.bilateral.Hash()

	itr := b.entries.Iterator()
	for !itr.Done() {
		_, other := itr.Next()
		if closesEntries(other, e) {
			b.closed = true
			b.witness = [2]SignedFormula{other.SignedFormula, e.SignedFormula}
			break
		}
	}
	b.entries = b.entries.Append(e)
	return !b.closed
}

// contains reports whether an entry equal to sf is already on the branch.
func (b *Branch) contains(sf SignedFormula) bool {
	itr := b.entries.Iterator()
	for !itr.Done() {
		_, e := itr.Next()
		if e.Sign == sf.Sign && formula.Equal(e.Formula, sf.Formula) {
			return true
		}
	}
	return false
}

// closesEntries is Closes over cached bilateral forms: distinct signs and
// identical normal forms. The hash comparison is a fast path only; the
// structural check decides.
func closesEntries(a, b entry) bool {
	return a.Sign != b.Sign &&
		a.bilateralHash == b.bilateralHash &&
		formula.Equal(a.bilateral, b.bilateral)
}

// Closed reports whether the branch was refuted.
func (b *Branch) Closed() bool { return b.closed }

// Closure returns the pair of signed formulas that closed the branch, in
// insertion order, and false if the branch is open.
func (b *Branch) Closure() (SignedFormula, SignedFormula, bool) {
	return b.witness[0], b.witness[1], b.closed
}

// SignedFormulas returns the branch contents in insertion order.
func (b *Branch) SignedFormulas() []SignedFormula {
	out := make([]SignedFormula, 0, b.entries.Len())
	itr := b.entries.Iterator()
	for !itr.Done() {
		_, e := itr.Next()
		out = append(out, e.SignedFormula)
	}
	return out
}

func (b *Branch) String() string {
	sb := &strings.Builder{}
	if b.closed {
		sb.WriteString("closed{")
	} else {
		sb.WriteString("open{")
	}
	itr := b.entries.Iterator()
	for !itr.Done() {
		i, e := itr.Next()
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.SignedFormula.String())
	}
	sb.WriteString("}")
	return sb.String()
}
