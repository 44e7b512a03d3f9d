package tableau

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/cottand/acrq/formula"
)

// SignedFormula pairs a formula with the sign a branch asserts for it.
// The zero value is not meaningful; build them with the struct literal.
// Two SignedFormulas are the same branch entry iff their signs are equal
// and their formulas are structurally equal.
type SignedFormula struct {
	Sign    Sign
	Formula formula.Formula
}

// Hash returns a hash value for the SignedFormula, based on its sign and
// the structural hash of its formula
func (sf SignedFormula) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte{byte(sf.Sign)}
	arr = binary.LittleEndian.AppendUint64(arr, sf.Formula.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

func (sf SignedFormula) String() string {
	return sf.Sign.String() + ":" + sf.Formula.String()
}
