package rat

import (
	"math/big"

	"github.com/renproject/surge"
)

// An integer is marshalled as one sign byte (non-zero for negative numbers)
// followed by the length prefixed big endian bytes of its magnitude.
func sizeHintInt(x *big.Int) int {
	return 1 + surge.SizeHintU32 + len(x.Bytes())
}

func marshalInt(x *big.Int, buf []byte, rem int) ([]byte, int, error) {
	if len(buf) < 1 || rem < 1 {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}
	buf[0] = 0
	if x.Sign() < 0 {
		buf[0] = 1
	}
	buf, rem = buf[1:], rem-1

	bs := x.Bytes()
	buf, rem, err := surge.MarshalU32(uint32(len(bs)), buf, rem)
	if err != nil {
		return buf, rem, err
	}
	if len(buf) < len(bs) || rem < len(bs) {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}
	copy(buf, bs)
	return buf[len(bs):], rem - len(bs), nil
}

func unmarshalInt(dst *big.Int, buf []byte, rem int) ([]byte, int, error) {
	if len(buf) < 1 || rem < 1 {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}
	neg := buf[0] != 0
	buf, rem = buf[1:], rem-1

	var l uint32
	buf, rem, err := surge.UnmarshalU32(&l, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	if uint64(len(buf)) < uint64(l) || uint64(rem) < uint64(l) {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}
	dst.SetBytes(buf[:l])
	if neg {
		dst.Neg(dst)
	}
	return buf[l:], rem - int(l), nil
}

// SizeHint implements the surge.SizeHinter interface.
func (r Rat) SizeHint() int {
	val := r.rat()
	return sizeHintInt(val.Num()) + sizeHintInt(val.Denom())
}

// Marshal implements the surge.Marshaler interface.
func (r Rat) Marshal(buf []byte, rem int) ([]byte, int, error) {
	val := r.rat()
	buf, rem, err := marshalInt(val.Num(), buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return marshalInt(val.Denom(), buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface. The decoded fraction
// is normalised, and a zero denominator is rejected with ErrDivisionByZero.
func (r *Rat) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	num, den := new(big.Int), new(big.Int)
	buf, rem, err := unmarshalInt(num, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = unmarshalInt(den, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	v, err := New(num, den)
	if err != nil {
		return buf, rem, err
	}
	*r = v
	return buf, rem, nil
}
