// Package radix decodes digit strings written in an arbitrary base between 2
// and 36 into arbitrary precision integers.
package radix

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// MinBase and MaxBase bound the supported radices.
const (
	MinBase = 2
	MaxBase = 36
)

// ErrEmpty is returned when there are no digits to decode. An empty value is
// never treated as zero.
var ErrEmpty = errors.New("no digits to decode")

// InvalidDigitError is returned when a character of the input does not map to
// a digit value in [0, Base).
type InvalidDigitError struct {
	Digits string
	Char   rune
	Pos    int
	Base   int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at position %v of %q for base %v", e.Char, e.Pos, e.Digits, e.Base)
}

// InvalidBaseError is returned when the base is outside [MinBase, MaxBase].
type InvalidBaseError struct {
	Base int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("base %v out of range [%v, %v]", e.Base, MinBase, MaxBase)
}

// DigitValue maps '0'-'9' to 0-9, and both 'a'-'z' and 'A'-'Z' to 10-35. It
// returns -1 for any other character.
func DigitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return 10 + int(c-'a')
	case c >= 'A' && c <= 'Z':
		return 10 + int(c-'A')
	}
	return -1
}

// Decode interprets digits as an unsigned number in the given base, most
// significant digit first. Leading and trailing whitespace is ignored. The
// accumulation result = result*base + digit is done with arbitrary precision,
// so the magnitude of the input is unbounded.
func Decode(digits string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, &InvalidBaseError{Base: base}
	}
	trimmed := strings.TrimSpace(digits)
	if trimmed == "" {
		return nil, ErrEmpty
	}

	b := big.NewInt(int64(base))
	d := new(big.Int)
	res := new(big.Int)
	for i, c := range trimmed {
		v := DigitValue(c)
		if v < 0 || v >= base {
			return nil, &InvalidDigitError{Digits: trimmed, Char: c, Pos: i, Base: base}
		}
		res.Mul(res, b)
		res.Add(res, d.SetInt64(int64(v)))
	}
	return res, nil
}
