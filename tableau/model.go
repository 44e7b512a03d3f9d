package tableau

import (
	"sort"
	"strings"

	"github.com/cottand/acrq/formula"
	"github.com/xtgo/set"
)

// AtomValue is one line of a countermodel: a bilateral atom and the sign
// an open branch assigns it.
type AtomValue struct {
	Atom *formula.BilateralPred
	Sign Sign
}

func (v AtomValue) String() string {
	return v.Sign.String() + ":" + v.Atom.String()
}

// Model is the atom valuation read off an open saturated branch. It
// witnesses satisfiability of the tableau's initial signed formulas.
type Model struct {
	Values []AtomValue
}

// atomValues sorts by rendered form, which groups the two halves of each
// bilateral pair next to each other.
type atomValues []AtomValue

func (a atomValues) Len() int           { return len(a) }
func (a atomValues) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a atomValues) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Model extracts the countermodel of an open branch: the signs of every
// atomic (bilateral) entry, canonically sorted and deduplicated. It
// reports false on a closed branch, which witnesses nothing.
func (b *Branch) Model() (Model, bool) {
	if b.closed {
		return Model{}, false
	}
	var values atomValues
	itr := b.entries.Iterator()
	for !itr.Done() {
		_, e := itr.Next()
		atom, ok := e.bilateral.(*formula.BilateralPred)
		if !ok {
			continue
		}
		values = append(values, AtomValue{Atom: atom, Sign: e.Sign})
	}
	sort.Sort(values)
	values = values[:set.Uniq(values)]
	return Model{Values: values}, true
}

// Gluts returns the atoms the model asserts as both true and false: pairs
// where P(ā) and P*(ā) are both signed t. The returned strings render the
// positive half of each pair.
func (m Model) Gluts() []string {
	trueAtoms := make(map[string]map[bool]bool)
	for _, v := range m.Values {
		if v.Sign != T {
			continue
		}
		key := positiveRendering(v.Atom)
		if trueAtoms[key] == nil {
			trueAtoms[key] = make(map[bool]bool)
		}
		trueAtoms[key][v.Atom.Negative] = true
	}
	var gluts []string
	for key, halves := range trueAtoms {
		if halves[false] && halves[true] {
			gluts = append(gluts, key)
		}
	}
	sort.Strings(gluts)
	return gluts
}

// Gaps returns the atoms signed e, rendered as they appear in the model.
func (m Model) Gaps() []string {
	var gaps []string
	for _, v := range m.Values {
		if v.Sign == E {
			gaps = append(gaps, v.Atom.String())
		}
	}
	sort.Strings(gaps)
	return gaps
}

func (m Model) String() string {
	parts := make([]string, len(m.Values))
	for i, v := range m.Values {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// positiveRendering renders the positive half of atom's bilateral pair.
func positiveRendering(atom *formula.BilateralPred) string {
	if !atom.Negative {
		return atom.String()
	}
	return atom.Dual().String()
}
