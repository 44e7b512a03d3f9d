package tableau

import "github.com/cottand/acrq/formula"

// Closes decides whether the co-occurrence of s1:f1 and s2:f2 on one
// branch forces that branch closed.
//
// The branch closes exactly when the two signs differ AND the two
// formulas share one bilateral normal form. Equal signs never close, no
// matter how the formulas relate: t:P(a) next to t:P*(a) is a glut, and
// tolerating gluts is the point of the paraconsistent calculus. Distinct
// signs over formulas that are not bilateral-equivalent say nothing about
// each other and do not close either.
func Closes(s1 Sign, f1 formula.Formula, s2 Sign, f2 formula.Formula) bool {
	if s1 == s2 {
		return false
	}
	return formula.BilateralEquivalent(f1, f2)
}
