package sharecheck

import (
	"fmt"

	"github.com/renproject/sharecheck/linsys"
	"github.com/renproject/sharecheck/poly"
)

// Reconstruct finds the polynomial of degree at most k-1 that passes through
// the first k shares in ascending index order. The coefficients are found by
// building the Vandermonde system for those shares and solving it with exact
// Gauss-Jordan elimination, so the result always has exactly k coefficients.
//
// The possible failures are ErrInvalidThreshold and *InsufficientPointsError,
// reported before any arithmetic is done, and *linsys.SingularError when the
// selected shares do not determine a unique polynomial. Shares never share an
// index, so the last case indicates a broken invariant rather than bad input.
func Reconstruct(shares Shares, k int) (poly.Poly, error) {
	selected, err := shares.Select(k)
	if err != nil {
		return nil, err
	}
	return linsys.NewVandermonde(selected.Indices(), selected.Values()).Solve()
}

// ReconstructLagrange is the same as Reconstruct, but builds the polynomial as
// a combination of the Lagrange basis for the selected indices instead of
// solving the linear system. Both methods are exact and give identical
// results.
func ReconstructLagrange(shares Shares, k int) (poly.Poly, error) {
	selected, err := shares.Select(k)
	if err != nil {
		return nil, err
	}
	interp, err := poly.NewInterpolator(selected.Indices())
	if err != nil {
		return nil, fmt.Errorf("building lagrange basis: %w", err)
	}
	return interp.Interpolate(selected.Values()), nil
}
