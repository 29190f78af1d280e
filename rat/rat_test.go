package rat_test

import (
	"errors"
	"math/big"
	"math/rand"
	"testing/quick"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/sharecheck/rat"
	"github.com/renproject/surge"
)

func mustNew(num, den int64) Rat {
	r, err := New(big.NewInt(num), big.NewInt(den))
	Expect(err).ToNot(HaveOccurred())
	return r
}

func randomInt() *big.Int {
	x := new(big.Int).Rand(rand.New(rand.NewSource(rand.Int63())), new(big.Int).Lsh(big.NewInt(1), 200))
	if rand.Intn(2) == 0 {
		x.Neg(x)
	}
	return x
}

func randomNonZeroInt() *big.Int {
	x := randomInt()
	for x.Sign() == 0 {
		x = randomInt()
	}
	return x
}

func isNormalised(r Rat) bool {
	num, den := r.Num(), r.Denom()
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	return den.Sign() > 0 && (num.Sign() == 0 || gcd.Cmp(big.NewInt(1)) == 0)
}

var _ = Describe("Rationals", func() {
	trials := 200

	Context("when constructing", func() {
		It("should reduce to lowest terms with a positive denominator", func() {
			r := mustNew(6, -4)
			Expect(r.Num().String()).To(Equal("-3"))
			Expect(r.Denom().String()).To(Equal("2"))
			Expect(r.String()).To(Equal("-3/2"))
		})

		It("should always be normalised", func() {
			for i := 0; i < trials; i++ {
				r, err := New(randomInt(), randomNonZeroInt())
				Expect(err).ToNot(HaveOccurred())
				Expect(isNormalised(r)).To(BeTrue())
			}
		})

		It("should represent zero as 0/1", func() {
			r := mustNew(0, -7)
			Expect(r.IsZero()).To(BeTrue())
			Expect(r.Denom().String()).To(Equal("1"))
			Expect(r.String()).To(Equal("0"))
		})

		It("should fail on a zero denominator", func() {
			_, err := New(big.NewInt(3), big.NewInt(0))
			Expect(errors.Is(err, ErrDivisionByZero)).To(BeTrue())
		})

		It("should not alias its arguments", func() {
			num, den := big.NewInt(3), big.NewInt(5)
			r, err := New(num, den)
			Expect(err).ToNot(HaveOccurred())
			num.SetInt64(100)
			den.SetInt64(7)
			Expect(r.String()).To(Equal("3/5"))
		})

		It("should treat the zero value as zero", func() {
			var r Rat
			Expect(r.IsZero()).To(BeTrue())
			Expect(r.Add(One()).Eq(One())).To(BeTrue())
			Expect(r.String()).To(Equal("0"))
		})
	})

	Context("when parsing", func() {
		It("should accept fractions and whole numbers", func() {
			r, err := Parse("4/-6")
			Expect(err).ToNot(HaveOccurred())
			Expect(r.String()).To(Equal("-2/3"))

			r, err = Parse("22")
			Expect(err).ToNot(HaveOccurred())
			Expect(r.IsInt()).To(BeTrue())
			Expect(r.String()).To(Equal("22"))
		})

		It("should reject malformed input and zero denominators", func() {
			_, err := Parse("1/x")
			Expect(err).To(HaveOccurred())
			_, err = Parse("1/0")
			Expect(errors.Is(err, ErrDivisionByZero)).To(BeTrue())
		})
	})

	Context("when doing arithmetic", func() {
		It("should compute exact results", func() {
			a, b := mustNew(1, 2), mustNew(1, 3)
			Expect(a.Add(b).String()).To(Equal("5/6"))
			Expect(a.Sub(b).String()).To(Equal("1/6"))
			Expect(a.Mul(b).String()).To(Equal("1/6"))
			q, err := a.Div(b)
			Expect(err).ToNot(HaveOccurred())
			Expect(q.String()).To(Equal("3/2"))
			Expect(a.Neg().String()).To(Equal("-1/2"))
		})

		It("should fail to divide by zero", func() {
			_, err := One().Div(Zero())
			Expect(errors.Is(err, ErrDivisionByZero)).To(BeTrue())
		})

		It("should not modify the operands", func() {
			a, b := mustNew(2, 7), mustNew(-3, 11)
			_ = a.Add(b)
			_ = a.Mul(b)
			_, _ = a.Div(b)
			Expect(a.String()).To(Equal("2/7"))
			Expect(b.String()).To(Equal("-3/11"))
		})

		It("should keep results normalised", func() {
			f := func(a, b Rat) bool {
				if !isNormalised(a.Add(b)) || !isNormalised(a.Sub(b)) || !isNormalised(a.Mul(b)) {
					return false
				}
				if b.IsZero() {
					return true
				}
				q, err := a.Div(b)
				return err == nil && isNormalised(q)
			}
			Expect(quick.Check(f, nil)).To(Succeed())
		})

		It("should satisfy the field identities", func() {
			f := func(a, b, c Rat) bool {
				if !a.Add(b).Eq(b.Add(a)) || !a.Mul(b).Eq(b.Mul(a)) {
					return false
				}
				if !a.Mul(b.Add(c)).Eq(a.Mul(b).Add(a.Mul(c))) {
					return false
				}
				if !a.Sub(a).IsZero() {
					return false
				}
				if a.IsZero() {
					return true
				}
				q, err := b.Div(a)
				return err == nil && q.Mul(a).Eq(b)
			}
			Expect(quick.Check(f, nil)).To(Succeed())
		})
	})

	Context("when comparing", func() {
		It("should compare exactly", func() {
			Expect(mustNew(1, 3).Cmp(mustNew(1, 2))).To(Equal(-1))
			Expect(mustNew(2, 4).Eq(mustNew(1, 2))).To(BeTrue())
			Expect(mustNew(-1, 2).Sign()).To(Equal(-1))
		})

		It("should compare against integers by cross multiplication", func() {
			Expect(mustNew(44, 2).EqInt(big.NewInt(22))).To(BeTrue())
			Expect(mustNew(45, 2).EqInt(big.NewInt(22))).To(BeFalse())
			Expect(mustNew(45, 2).EqInt(big.NewInt(45))).To(BeFalse())
		})

		It("should detect differences far below floating point resolution", func() {
			huge := new(big.Int).Lsh(big.NewInt(1), 300)
			a := FromInt(huge)
			b := a.Add(mustNew(1, 1000000007))
			Expect(a.Eq(b)).To(BeFalse())
			Expect(b.Sub(a).String()).To(Equal("1/1000000007"))
		})
	})

	Context("when marshalling", func() {
		It("should be the same after marshalling and unmarshalling", func() {
			f := func(r Rat) bool {
				buf := make([]byte, r.SizeHint())
				tail, rem, err := r.Marshal(buf, len(buf))
				if err != nil || len(tail) != 0 || rem != 0 {
					return false
				}
				var out Rat
				_, _, err = out.Unmarshal(buf, len(buf))
				return err == nil && out.Eq(r) && isNormalised(out)
			}
			Expect(quick.Check(f, nil)).To(Succeed())
		})

		It("should return an error when the buffer is too small", func() {
			r := mustNew(-123456789, 1000)
			buf := make([]byte, r.SizeHint()-1)
			_, _, err := r.Marshal(buf, len(buf))
			Expect(err).To(HaveOccurred())

			full := make([]byte, r.SizeHint())
			_, _, err = r.Marshal(full, len(full))
			Expect(err).ToNot(HaveOccurred())
			var out Rat
			_, _, err = out.Unmarshal(full[:len(full)-1], len(full)-1)
			Expect(err).To(HaveOccurred())
		})

		It("should not read past the memory budget", func() {
			r := mustNew(-123456789, 1000)
			buf := make([]byte, r.SizeHint())
			_, _, err := r.Marshal(buf, len(buf))
			Expect(err).ToNot(HaveOccurred())

			var out Rat
			_, rem, err := out.Unmarshal(buf, len(buf)-1)
			Expect(errors.Is(err, surge.ErrUnexpectedEndOfBuffer)).To(BeTrue())
			Expect(rem).To(BeNumerically(">=", 0))

			_, rem, err = out.Unmarshal(buf, len(buf))
			Expect(err).ToNot(HaveOccurred())
			Expect(rem).To(Equal(0))
			Expect(out.Eq(r)).To(BeTrue())
		})

		It("should reject a zero denominator", func() {
			bs := []byte{0, 0, 0, 0, 1, 5, 0, 0, 0, 0, 0}
			var out Rat
			_, _, err := out.Unmarshal(bs, len(bs))
			Expect(errors.Is(err, ErrDivisionByZero)).To(BeTrue())
		})
	})
})
