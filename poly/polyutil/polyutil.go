package polyutil

import (
	"math/big"
	"math/rand"

	"github.com/renproject/sharecheck/poly"
	"github.com/renproject/sharecheck/rat"
)

// RandomRat returns a random fraction whose numerator has magnitude below
// 2^bits and whose denominator lies in [1, 1000].
func RandomRat(bits int) rat.Rat {
	num := new(big.Int).Rand(rand.New(rand.NewSource(rand.Int63())), new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	if rand.Intn(2) == 0 {
		num.Neg(num)
	}
	r, _ := rat.New(num, big.NewInt(rand.Int63n(1000)+1))
	return r
}

// RandomPolynomial returns a random polynomial with rational coefficients of
// the given degree. The leading coefficient is non-zero.
func RandomPolynomial(degree int) poly.Poly {
	p := make(poly.Poly, degree+1)
	for i := range p {
		p[i] = RandomRat(64)
	}

	// Ensure that the leading term is non-zero.
	for p[degree].IsZero() {
		p[degree] = RandomRat(64)
	}
	return p
}

// RandomIntPolynomial returns a random polynomial with whole number
// coefficients of the given degree, as produced by a Shamir sharing whose
// secret is the constant term. The leading coefficient is non-zero.
func RandomIntPolynomial(degree int) poly.Poly {
	p := make(poly.Poly, degree+1)
	for i := range p {
		p[i] = rat.FromInt64(rand.Int63n(1<<40) - 1<<39)
	}
	for p[degree].IsZero() {
		p[degree] = rat.FromInt64(rand.Int63n(1<<40) + 1)
	}
	return p
}

// Values evaluates the polynomial at each index. It panics if any value is
// not a whole number, so it should only be used with polynomials that map
// integers to integers.
func Values(p poly.Poly, indices []*big.Int) []*big.Int {
	values := make([]*big.Int, len(indices))
	for i, x := range indices {
		y := p.Evaluate(x)
		if !y.IsInt() {
			panic("polynomial value is not a whole number")
		}
		values[i] = y.Num()
	}
	return values
}
