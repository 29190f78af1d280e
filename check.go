package sharecheck

import (
	"math/big"

	"github.com/renproject/sharecheck/poly"
)

// Check evaluates the polynomial at the index of every share and returns the
// indices, in ascending order, where the evaluation is not exactly equal to
// the value of the share. The returned slice is never nil: an empty slice
// means every share is consistent with the polynomial.
//
// The polynomial is only read, so the same polynomial can be checked against
// several sets of shares concurrently.
func Check(p poly.Poly, shares Shares) []uint64 {
	inconsistent := []uint64{}
	for _, s := range shares.list {
		x := new(big.Int).SetUint64(s.Index)
		if !p.Evaluate(x).EqInt(s.Value) {
			inconsistent = append(inconsistent, s.Index)
		}
	}
	return inconsistent
}

// Report is the outcome of verifying a set of shares against the polynomial
// reconstructed from its first k shares.
type Report struct {
	Threshold    int
	Poly         poly.Poly
	Inconsistent []uint64
}

// Consistent returns true if every share lies on the reconstructed
// polynomial.
func (r Report) Consistent() bool {
	return len(r.Inconsistent) == 0
}

// Verify reconstructs the polynomial from the first k shares and checks every
// share, including those beyond the first k, against it.
func Verify(shares Shares, k int) (Report, error) {
	p, err := Reconstruct(shares, k)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Threshold:    k,
		Poly:         p,
		Inconsistent: Check(p, shares),
	}, nil
}
