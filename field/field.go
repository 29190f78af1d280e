// Package field projects exact rational results into the scalar field of the
// secp256k1 curve, the field most Shamir sharings live in, and cross-checks
// them against a reconstruction done directly in that field.
package field

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/renproject/secp256k1"
	"github.com/renproject/sharecheck"
	"github.com/renproject/sharecheck/poly"
	"github.com/renproject/sharecheck/rat"
)

// ErrNotInvertible is returned when a denominator is a multiple of the group
// order, so that it has no inverse in the field.
var ErrNotInvertible = errors.New("not invertible in the scalar field")

// chunkSize is the number of bytes SetB32 reads at a time.
const chunkSize = 32

// twoPow256 returns 2^256 reduced modulo the group order.
func twoPow256() secp256k1.Fn {
	var bs [chunkSize]byte
	var t secp256k1.Fn

	// 2^128 fits in 32 bytes, 2^256 does not.
	bs[chunkSize-17] = 1
	t.SetB32(bs[:])
	t.Mul(&t, &t)
	return t
}

// FromInt reduces an integer of any size and sign modulo the group order.
func FromInt(x *big.Int) secp256k1.Fn {
	var res, chunk secp256k1.Fn
	res.SetU16(0)
	shift := twoPow256()

	mag := new(big.Int).Abs(x).Bytes()
	padded := make([]byte, (len(mag)+chunkSize-1)/chunkSize*chunkSize)
	copy(padded[len(padded)-len(mag):], mag)

	// Most significant chunk first: res = res * 2^256 + chunk.
	for i := 0; i < len(padded); i += chunkSize {
		res.Mul(&res, &shift)
		chunk.SetB32(padded[i : i+chunkSize])
		res.Add(&res, &chunk)
	}
	if x.Sign() < 0 {
		res.Negate(&res)
	}
	return res
}

// FromRat maps num/den to num * den^-1 modulo the group order.
func FromRat(r rat.Rat) (secp256k1.Fn, error) {
	num, den := FromInt(r.Num()), FromInt(r.Denom())
	if den.IsZero() {
		return secp256k1.Fn{}, fmt.Errorf("%w: denominator %v", ErrNotInvertible, r.Denom())
	}
	den.Inverse(&den)
	num.Mul(&num, &den)
	return num, nil
}

// Open computes the value at zero of the polynomial passing through the
// points (indices[i], values[i]), using Lagrange interpolation in the field.
// It is assumed that indices are distinct modulo the group order; if they are
// not, ErrNotInvertible is returned.
//
// Panics: This function will panic if the slices have different lengths.
func Open(indices, values []*big.Int) (secp256k1.Fn, error) {
	if len(indices) != len(values) {
		panic(fmt.Sprintf("mismatched points: %v indices and %v values", len(indices), len(values)))
	}

	xs := make([]secp256k1.Fn, len(indices))
	for i := range indices {
		xs[i] = FromInt(indices[i])
	}

	var num, denom, res, tmp secp256k1.Fn
	res.SetU16(0)
	for i := range xs {
		num.SetU16(1)
		denom.SetU16(1)
		for j := range xs {
			if i == j {
				continue
			}
			tmp.Negate(&xs[i])
			tmp.Add(&tmp, &xs[j])
			denom.Mul(&denom, &tmp)
			num.Mul(&num, &xs[j])
		}
		if denom.IsZero() {
			return secp256k1.Fn{}, fmt.Errorf("%w: repeated index %v", ErrNotInvertible, indices[i])
		}
		denom.Inverse(&denom)
		tmp.Mul(&num, &denom)
		y := FromInt(values[i])
		tmp.Mul(&tmp, &y)
		res.Add(&res, &tmp)
	}
	return res, nil
}

// CrossCheck projects the constant term of p into the field and compares it
// with the secret opened directly in the field from the first k shares. It
// returns the projected secret and whether the two agree.
func CrossCheck(p poly.Poly, shares sharecheck.Shares, k int) (secp256k1.Fn, bool, error) {
	if len(p) == 0 {
		return secp256k1.Fn{}, false, errors.New("empty polynomial")
	}
	secret, err := FromRat(p[0])
	if err != nil {
		return secp256k1.Fn{}, false, err
	}

	selected, err := shares.Select(k)
	if err != nil {
		return secp256k1.Fn{}, false, err
	}
	opened, err := Open(selected.Indices(), selected.Values())
	if err != nil {
		return secp256k1.Fn{}, false, err
	}
	return secret, secret.Eq(&opened), nil
}
