package poly_test

import (
	"errors"
	"math/big"
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/sharecheck/poly"
	"github.com/renproject/sharecheck/poly/polyutil"
	"github.com/renproject/sharecheck/shamirutil"
)

var _ = Describe("Polynomial interpolation", func() {
	Context("when interpolating polynomials", func() {
		It("should compute the correct interpolating polynomial", func() {
			trials := 50
			const maxPoints int = 12

			for i := 0; i < trials; i++ {
				numPoints := rand.Intn(maxPoints) + 1
				degree := rand.Intn(numPoints)

				indices := shamirutil.RandomIndices(numPoints)
				interpolator, err := NewInterpolator(indices)
				Expect(err).ToNot(HaveOccurred())
				Expect(interpolator.Len()).To(Equal(numPoints))

				p := polyutil.RandomIntPolynomial(degree)
				values := polyutil.Values(p, indices)

				interpPoly := interpolator.Interpolate(values)
				Expect(interpPoly).To(HaveLen(numPoints))
				Expect(interpPoly.Eq(p)).To(BeTrue())
			}
		})

		It("should recover rational coefficients", func() {
			// x(x+1)/2 takes whole number values at every integer.
			indices := shamirutil.SequentialIndices(3)
			values := []*big.Int{big.NewInt(1), big.NewInt(3), big.NewInt(6)}

			interpolator, err := NewInterpolator(indices)
			Expect(err).ToNot(HaveOccurred())
			Expect(interpolator.Interpolate(values).String()).To(Equal("0 + 1/2*x + 1/2*x^2"))
		})

		It("should fail for duplicate indices", func() {
			indices := []*big.Int{big.NewInt(1), big.NewInt(5), big.NewInt(5)}
			_, err := NewInterpolator(indices)
			Expect(errors.Is(err, ErrDuplicateIndex)).To(BeTrue())
		})

		It("should panic when the number of values is wrong", func() {
			interpolator, err := NewInterpolator([]*big.Int{big.NewInt(1), big.NewInt(2)})
			Expect(err).ToNot(HaveOccurred())
			Expect(func() { interpolator.Interpolate([]*big.Int{big.NewInt(1)}) }).To(Panic())
		})
	})
})
