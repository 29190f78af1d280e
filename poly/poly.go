package poly

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/renproject/sharecheck/rat"
)

// Poly represents a polynomial with exact rational coefficients.
//
// A Poly can be indexed into, where index `i` will be the `i`th coefficient.
// For example, the constant term is index 0. A Poly of length k therefore
// represents a_0 + a_1 x + ... + a_{k-1} x^{k-1}.
//
// Polynomials are treated as immutable: every operation returns a new Poly
// and leaves its arguments untouched. A Poly can be shared freely once it has
// been constructed, as long as callers do not write into the underlying slice.
// Leading zero coefficients are kept; a polynomial reconstructed from k points
// always has exactly k coefficients even when its true degree is lower.
type Poly []rat.Rat

// NewFromSlice constructs a polynomial from a copy of the given coefficients,
// constant term first.
func NewFromSlice(coeffs []rat.Rat) Poly {
	p := make(Poly, len(coeffs))
	copy(p, coeffs)
	return p
}

// NewFromInts constructs a polynomial with whole number coefficients, constant
// term first.
func NewFromInts(coeffs ...int64) Poly {
	p := make(Poly, len(coeffs))
	for i, c := range coeffs {
		p[i] = rat.FromInt64(c)
	}
	return p
}

// String renders the polynomial as "a0 + a1*x + a2*x^2 + ...", keeping every
// term so that the position of each coefficient stays visible.
func (p Poly) String() string {
	if len(p) == 0 {
		return "0"
	}
	var b strings.Builder
	b.WriteString(p[0].String())
	for i := 1; i < len(p); i++ {
		fmt.Fprintf(&b, " + %v*x", p[i])
		if i > 1 {
			fmt.Fprintf(&b, "^%v", i)
		}
	}
	return b.String()
}

// Degree returns len(p) - 1. This is the formal degree: the leading
// coefficient may be zero. Use Trim first to get the true degree.
func (p Poly) Degree() int {
	return len(p) - 1
}

// Coefficient returns the `i`th coefficient of the polynomial.
//
// NOTE: If `i` is greater than the degree of the polynomial, this function
// will panic.
func (p Poly) Coefficient(i int) rat.Rat {
	return p[i]
}

// Trim returns the polynomial without its leading zero coefficients. The zero
// polynomial trims to a single zero coefficient.
func (p Poly) Trim() Poly {
	n := len(p)
	for n > 1 && p[n-1].IsZero() {
		n--
	}
	if n == 0 {
		return Poly{rat.Zero()}
	}
	return NewFromSlice(p[:n])
}

// IsZero returns true if every coefficient is zero.
func (p Poly) IsZero() bool {
	for _, c := range p {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Eq returns true if the two polynomials are equal as functions. Missing
// coefficients are treated as zero, so leading zeros do not affect equality.
func (p Poly) Eq(other Poly) bool {
	n := max(len(p), len(other))
	for i := 0; i < n; i++ {
		if !p.coeffOrZero(i).Eq(other.coeffOrZero(i)) {
			return false
		}
	}
	return true
}

func (p Poly) coeffOrZero(i int) rat.Rat {
	if i < len(p) {
		return p[i]
	}
	return rat.Zero()
}

// Evaluate computes the value of the polynomial at the given point. Powers of
// x are built up by successive exact multiplication starting from x^0 = 1, so
// the result is exact for any magnitude of x.
func (p Poly) Evaluate(x *big.Int) rat.Rat {
	res := rat.Zero()
	xr := rat.FromInt(x)
	pow := rat.One()
	for i := range p {
		res = res.Add(p[i].Mul(pow))
		pow = pow.Mul(xr)
	}
	return res
}

// Add returns p + other. The result has max(len(p), len(other))
// coefficients.
func (p Poly) Add(other Poly) Poly {
	res := make(Poly, max(len(p), len(other)))
	for i := range res {
		res[i] = p.coeffOrZero(i).Add(other.coeffOrZero(i))
	}
	return res
}

// Sub returns p - other. The result has max(len(p), len(other))
// coefficients.
func (p Poly) Sub(other Poly) Poly {
	res := make(Poly, max(len(p), len(other)))
	for i := range res {
		res[i] = p.coeffOrZero(i).Sub(other.coeffOrZero(i))
	}
	return res
}

// Scale returns s * p.
func (p Poly) Scale(s rat.Rat) Poly {
	res := make(Poly, len(p))
	for i := range p {
		res[i] = p[i].Mul(s)
	}
	return res
}

// Mul returns p * other. The result has len(p) + len(other) - 1
// coefficients, or none if either polynomial has no coefficients.
func (p Poly) Mul(other Poly) Poly {
	if len(p) == 0 || len(other) == 0 {
		return Poly{}
	}
	res := make(Poly, len(p)+len(other)-1)
	for i := range res {
		res[i] = rat.Zero()
	}
	for i := range p {
		if p[i].IsZero() {
			continue
		}
		for j := range other {
			res[i+j] = res[i+j].Add(p[i].Mul(other[j]))
		}
	}
	return res
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
