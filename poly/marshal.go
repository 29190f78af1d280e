package poly

import (
	"fmt"
	"math/rand"
	"os"
	"reflect"

	"github.com/renproject/sharecheck/rat"
	"github.com/renproject/surge"
)

// minRatSize is the smallest number of bytes a marshalled coefficient can
// occupy: a sign byte and an empty length prefixed magnitude for both the
// numerator and the denominator.
const minRatSize = 10

// Generate implements the quick.Generator interface.
func (p Poly) Generate(r *rand.Rand, size int) reflect.Value {
	n := r.Intn(size+1) + 1
	poly := make(Poly, n)
	for i := range poly {
		poly[i] = rat.Rat{}.Generate(r, size).Interface().(rat.Rat)
	}
	return reflect.ValueOf(poly)
}

// SizeHint implements the surge.SizeHinter interface.
func (p Poly) SizeHint() int {
	size := surge.SizeHintU32
	for _, c := range p {
		size += c.SizeHint()
	}
	return size
}

// Marshal implements the surge.Marshaler interface.
func (p Poly) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalU32(uint32(len(p)), buf, rem)
	if err != nil {
		return buf, rem, err
	}
	for _, c := range p {
		buf, rem, err = c.Marshal(buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	return buf, rem, nil
}

// Unmarshal implements the surge.Unmarshaler interface.
func (p *Poly) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var l uint32
	buf, rem, err := unmarshalLen(&l, minRatSize, buf, rem)
	if err != nil {
		return buf, rem, err
	}

	coeffs := make(Poly, l)
	for i := range coeffs {
		buf, rem, err = coeffs[i].Unmarshal(buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	*p = coeffs
	return buf, rem, nil
}

// unmarshalLen reads a slice length and makes sure that the remaining buffer
// could hold that many elements of at least elemSize bytes each.
func unmarshalLen(dst *uint32, elemSize int, buf []byte, rem int) ([]byte, int, error) {
	var l uint32
	buf, rem, err := surge.UnmarshalU32(&l, buf, rem)
	if err != nil {
		return buf, rem, err
	}

	c := uint64(l) * uint64(elemSize)
	if c/uint64(elemSize) != uint64(l) {
		return buf, rem, surge.ErrLengthOverflow
	}
	if uint64(len(buf)) < c || uint64(rem) < c {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}

	*dst = l
	return buf, rem, nil
}

// WriteFile writes the marshalled polynomial to the named file, creating or
// truncating it.
func WriteFile(name string, p Poly) error {
	buf := make([]byte, p.SizeHint())
	if _, _, err := p.Marshal(buf, len(buf)); err != nil {
		return fmt.Errorf("marshalling polynomial: %w", err)
	}
	return os.WriteFile(name, buf, 0o644)
}

// ReadFile reads a polynomial previously written by WriteFile.
func ReadFile(name string) (Poly, error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var p Poly
	tail, _, err := p.Unmarshal(buf, len(buf))
	if err != nil {
		return nil, fmt.Errorf("unmarshalling polynomial from %v: %w", name, err)
	}
	if len(tail) != 0 {
		return nil, fmt.Errorf("unmarshalling polynomial from %v: %v trailing bytes", name, len(tail))
	}
	return p, nil
}
