package poly

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/renproject/sharecheck/rat"
)

// ErrDuplicateIndex is returned when the same x coordinate appears more than
// once in the indices given to an interpolator.
var ErrDuplicateIndex = errors.New("duplicate index")

// Interpolator can perform polynomial interpolation. That is, the act of
// taking a set of points on a polynomial and finding a polynomial that passes
// through all of those points. This is encapsulated in an object because when
// interpolating multiple sets of points, all of which have the same set of
// corresponding x coordinates, each interpolation can use the same setup.
//
// The Lagrange basis is computed over the rationals, so the interpolated
// polynomial is exact and is identical to the one found by solving the
// Vandermonde system for the same points.
type Interpolator struct {
	basis []Poly
}

// NewInterpolator constructs a new polynomial interpolator for the given set
// of indices. The indices represent the x coordinates of the points that will
// be interpolated. That is, if the set of indices is `{x0, x1, ..., xn}`, then
// the constructed interpolator will be able to interpolate any set of points
// of the form `{(x0, y0), (x1, y1), ..., (xn, yn)}` for any `y0, y1, ..., yn`.
// If two indices are equal, ErrDuplicateIndex is returned.
func NewInterpolator(indices []*big.Int) (Interpolator, error) {
	basis := make([]Poly, len(indices))
	for i := range basis {
		basis[i] = NewFromInts(1)
		xi := rat.FromInt(indices[i])

		for j := range indices {
			if i == j {
				continue
			}
			xj := rat.FromInt(indices[j])

			// (x - xj)/(xi - xj)
			inv, err := rat.One().Div(xi.Sub(xj))
			if err != nil {
				return Interpolator{}, fmt.Errorf("%w: %v", ErrDuplicateIndex, indices[i])
			}
			linear := Poly{xj.Neg(), rat.One()}
			basis[i] = basis[i].Mul(linear.Scale(inv))
		}
	}
	return Interpolator{basis}, nil
}

// Len returns the number of points the interpolator was set up for.
func (interp Interpolator) Len() int {
	return len(interp.basis)
}

// Interpolate takes a set of values representing polynomial evaluations, and
// computes the polynomial that interpolates these values. It is assumed that
// the values are in corresponding order to the indices that were used to
// construct the interpolator. The result always has Len() coefficients.
//
// Panics: This function will panic if the number of values is not equal to
// the number of indices used to construct the interpolator.
func (interp Interpolator) Interpolate(values []*big.Int) Poly {
	if len(values) != len(interp.basis) {
		panic(fmt.Sprintf(
			"cannot interpolate %v values with an interpolator for %v indices",
			len(values), len(interp.basis),
		))
	}

	res := make(Poly, len(interp.basis))
	for i := range res {
		res[i] = rat.Zero()
	}
	for i := range interp.basis {
		res = res.Add(interp.basis[i].Scale(rat.FromInt(values[i])))
	}
	return res
}
