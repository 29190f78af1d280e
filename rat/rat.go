package rat

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"reflect"
	"strings"
)

// ErrDivisionByZero is returned when constructing a fraction with a zero
// denominator, or when dividing by the zero fraction.
var ErrDivisionByZero = errors.New("division by zero")

// Rat is an exact fraction of two arbitrary precision integers. A Rat is
// always held in lowest terms with a strictly positive denominator, so two
// Rats are equal exactly when their numerators and denominators are equal.
//
// Rat is an immutable value type: none of its methods modify the receiver,
// and every arithmetic operation returns a newly allocated result. It is
// therefore safe to share Rats between goroutines and to copy them freely.
// The zero value represents the number 0.
type Rat struct {
	val *big.Rat
}

// New constructs the fraction num/den reduced to lowest terms. The sign is
// carried by the numerator. The arguments are copied and can be modified
// after the call. If den is zero, ErrDivisionByZero is returned.
func New(num, den *big.Int) (Rat, error) {
	if den.Sign() == 0 {
		return Rat{}, fmt.Errorf("%w: %v/0", ErrDivisionByZero, num)
	}
	return Rat{new(big.Rat).SetFrac(num, den)}, nil
}

// FromInt returns the whole number x as a Rat with denominator 1.
func FromInt(x *big.Int) Rat {
	return Rat{new(big.Rat).SetInt(x)}
}

// FromInt64 returns the whole number x as a Rat with denominator 1.
func FromInt64(x int64) Rat {
	return Rat{new(big.Rat).SetInt64(x)}
}

// Zero returns the additive identity.
func Zero() Rat { return FromInt64(0) }

// One returns the multiplicative identity.
func One() Rat { return FromInt64(1) }

// Parse reads a fraction written as "a/b" or a whole number "a", both in base
// 10. The result is reduced, so Parse("4/6") equals Parse("2/3").
func Parse(s string) (Rat, error) {
	numStr, denStr := s, "1"
	if i := strings.IndexByte(s, '/'); i >= 0 {
		numStr, denStr = s[:i], s[i+1:]
	}
	num, ok := new(big.Int).SetString(strings.TrimSpace(numStr), 10)
	if !ok {
		return Rat{}, fmt.Errorf("invalid numerator in %q", s)
	}
	den, ok := new(big.Int).SetString(strings.TrimSpace(denStr), 10)
	if !ok {
		return Rat{}, fmt.Errorf("invalid denominator in %q", s)
	}
	return New(num, den)
}

func (r Rat) rat() *big.Rat {
	if r.val == nil {
		return new(big.Rat)
	}
	return r.val
}

// Num returns a copy of the numerator. Its sign is the sign of the fraction.
func (r Rat) Num() *big.Int {
	return new(big.Int).Set(r.rat().Num())
}

// Denom returns a copy of the denominator, which is always positive.
func (r Rat) Denom() *big.Int {
	return new(big.Int).Set(r.rat().Denom())
}

// Add returns r + other.
func (r Rat) Add(other Rat) Rat {
	return Rat{new(big.Rat).Add(r.rat(), other.rat())}
}

// Sub returns r - other.
func (r Rat) Sub(other Rat) Rat {
	return Rat{new(big.Rat).Sub(r.rat(), other.rat())}
}

// Mul returns r * other.
func (r Rat) Mul(other Rat) Rat {
	return Rat{new(big.Rat).Mul(r.rat(), other.rat())}
}

// Div returns r / other. If other is the zero fraction, ErrDivisionByZero is
// returned and the Rat result is meaningless.
func (r Rat) Div(other Rat) (Rat, error) {
	if other.IsZero() {
		return Rat{}, fmt.Errorf("%w: %v / 0", ErrDivisionByZero, r)
	}
	return Rat{new(big.Rat).Quo(r.rat(), other.rat())}, nil
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{new(big.Rat).Neg(r.rat())}
}

// IsZero returns true iff the numerator is zero.
func (r Rat) IsZero() bool {
	return r.rat().Sign() == 0
}

// IsInt returns true iff the denominator is 1.
func (r Rat) IsInt() bool {
	return r.rat().IsInt()
}

// Sign returns -1, 0 or +1 depending on the sign of r.
func (r Rat) Sign() int {
	return r.rat().Sign()
}

// Cmp compares r and other and returns -1, 0 or +1 for r < other, r == other
// and r > other respectively.
func (r Rat) Cmp(other Rat) int {
	return r.rat().Cmp(other.rat())
}

// Eq returns true if the two fractions are equal.
func (r Rat) Eq(other Rat) bool {
	return r.Cmp(other) == 0
}

// EqInt returns true if r is equal to the integer y. The comparison is done by
// cross multiplication: num == y * den.
func (r Rat) EqInt(y *big.Int) bool {
	val := r.rat()
	cross := new(big.Int).Mul(y, val.Denom())
	return val.Num().Cmp(cross) == 0
}

// String implements the Stringer interface. Whole numbers are written without
// a denominator, all other values as "num/den".
func (r Rat) String() string {
	return r.rat().RatString()
}

// Generate implements the quick.Generator interface.
func (r Rat) Generate(rand *rand.Rand, size int) reflect.Value {
	if size < 1 {
		size = 1
	}
	num := new(big.Int).Rand(rand, new(big.Int).Lsh(big.NewInt(1), uint(8*size)))
	if rand.Intn(2) == 0 {
		num.Neg(num)
	}
	den := big.NewInt(rand.Int63n(int64(size)*1000) + 1)
	v, _ := New(num, den)
	return reflect.ValueOf(v)
}
