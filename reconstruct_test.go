package sharecheck_test

import (
	"errors"
	"math/big"
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/sharecheck"

	"github.com/renproject/sharecheck/linsys"
	"github.com/renproject/sharecheck/poly/polyutil"
	"github.com/renproject/sharecheck/radix"
	"github.com/renproject/sharecheck/rat"
	"github.com/renproject/sharecheck/shamirutil"
)

var _ = Describe("Reconstruction", func() {
	It("should reconstruct x^2 + x + 2 from the first three points", func() {
		shares := NewShares(share(1, 4), share(2, 8), share(3, 14))
		p, err := Reconstruct(shares, 3)
		Expect(err).ToNot(HaveOccurred())
		Expect(p).To(HaveLen(3))
		Expect(p[0].String()).To(Equal("2"))
		Expect(p[1].String()).To(Equal("1"))
		Expect(p[2].String()).To(Equal("1"))
		Expect(p.Evaluate(big.NewInt(4)).String()).To(Equal("22"))
	})

	It("should ignore shares beyond the first k", func() {
		shares := NewShares(share(1, 4), share(2, 8), share(3, 14), share(4, 999))
		p, err := Reconstruct(shares, 3)
		Expect(err).ToNot(HaveOccurred())
		Expect(p.String()).To(Equal("2 + 1*x + 1*x^2"))
	})

	It("should reproduce random polynomials exactly", func() {
		trials := 50
		for i := 0; i < trials; i++ {
			k := shamirutil.RandRange(1, 10)
			n := shamirutil.RandRange(k, 15)
			p := polyutil.RandomIntPolynomial(rand.Intn(k))
			shares := shamirutil.SharesOf(p, n)

			gauss, err := Reconstruct(shares, k)
			Expect(err).ToNot(HaveOccurred())
			Expect(gauss).To(HaveLen(k))
			Expect(gauss.Eq(p)).To(BeTrue())

			lagrange, err := ReconstructLagrange(shares, k)
			Expect(err).ToNot(HaveOccurred())
			Expect(lagrange.Eq(gauss)).To(BeTrue())
		}
	})

	It("should fail with insufficient points before doing any arithmetic", func() {
		_, err := Reconstruct(NewShares(share(5, 3), share(5, 9)), 2)
		Expect(errors.Is(err, ErrInsufficientPoints)).To(BeTrue())
		Expect(KindOf(err)).To(Equal(KindInsufficientPoints))

		_, err = ReconstructLagrange(NewShares(share(5, 3)), 2)
		Expect(errors.Is(err, ErrInsufficientPoints)).To(BeTrue())
	})

	It("should reject an invalid threshold", func() {
		_, err := Reconstruct(NewShares(share(1, 3)), 0)
		Expect(errors.Is(err, ErrInvalidThreshold)).To(BeTrue())
		Expect(KindOf(err)).To(Equal(KindInvalidInput))
	})
})

var _ = Describe("Error classification", func() {
	It("should classify every failure kind", func() {
		_, digitErr := radix.Decode("19", 8)
		_, baseErr := radix.Decode("1", 40)
		_, divErr := rat.One().Div(rat.Zero())
		_, singularErr := linsys.NewVandermonde(
			[]*big.Int{big.NewInt(1), big.NewInt(1)},
			[]*big.Int{big.NewInt(1), big.NewInt(1)},
		).Solve()

		Expect(KindOf(nil)).To(Equal(KindNone))
		Expect(KindOf(digitErr)).To(Equal(KindInvalidDigit))
		Expect(KindOf(baseErr)).To(Equal(KindInvalidInput))
		Expect(KindOf(divErr)).To(Equal(KindDivisionByZero))
		Expect(KindOf(singularErr)).To(Equal(KindSingularSystem))
		Expect(KindOf(errors.New("other"))).To(Equal(KindUnknown))
	})
})
