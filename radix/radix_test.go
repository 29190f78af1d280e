package radix_test

import (
	"errors"
	"math/big"
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/sharecheck/radix"
)

var _ = Describe("Base decoding", func() {
	It("should decode known values", func() {
		cases := []struct {
			digits string
			base   int
			want   string
		}{
			{"ff", 16, "255"},
			{"FF", 16, "255"},
			{"1010", 2, "10"},
			{"4", 10, "4"},
			{"zz", 36, "1295"},
			{"  111  ", 3, "13"},
			{"0", 7, "0"},
		}
		for _, c := range cases {
			v, err := Decode(c.digits, c.base)
			Expect(err).ToNot(HaveOccurred())
			Expect(v.String()).To(Equal(c.want))
		}
	})

	It("should agree with big.Int text formatting for large values", func() {
		trials := 200
		for i := 0; i < trials; i++ {
			base := rand.Intn(MaxBase-MinBase+1) + MinBase
			x := new(big.Int).Rand(rand.New(rand.NewSource(int64(i))), new(big.Int).Lsh(big.NewInt(1), 512))

			v, err := Decode(x.Text(base), base)
			Expect(err).ToNot(HaveOccurred())
			Expect(v.Cmp(x)).To(Equal(0))
		}
	})

	It("should report the offending digit", func() {
		_, err := Decode("12a4", 10)
		var digitErr *InvalidDigitError
		Expect(errors.As(err, &digitErr)).To(BeTrue())
		Expect(digitErr.Char).To(Equal('a'))
		Expect(digitErr.Pos).To(Equal(2))
		Expect(digitErr.Base).To(Equal(10))
		Expect(err.Error()).To(ContainSubstring("base 10"))
	})

	It("should reject characters outside the digit alphabet", func() {
		for _, digits := range []string{"12-3", "1.5", "0x10", "é"} {
			_, err := Decode(digits, 16)
			var digitErr *InvalidDigitError
			Expect(errors.As(err, &digitErr)).To(BeTrue())
		}
	})

	It("should reject bases out of range", func() {
		for _, base := range []int{-1, 0, 1, 37} {
			_, err := Decode("1", base)
			var baseErr *InvalidBaseError
			Expect(errors.As(err, &baseErr)).To(BeTrue())
			Expect(baseErr.Base).To(Equal(base))
		}
	})

	It("should reject an empty value", func() {
		_, err := Decode("   ", 10)
		Expect(errors.Is(err, ErrEmpty)).To(BeTrue())
	})
})
