// Package linsys builds and solves square linear systems over the rationals.
// The system is stored as a k×(k+1) augmented matrix and reduced to reduced
// row echelon form with exact arithmetic, so there is no rounding and every
// zero test is an exact comparison.
package linsys

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/renproject/sharecheck/poly"
	"github.com/renproject/sharecheck/rat"
)

// ErrSingular is matched by every SingularError.
var ErrSingular = errors.New("singular system")

// SingularError is returned when no non-zero pivot exists for a column, which
// means the system has no unique solution.
type SingularError struct {
	Column int
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("singular system: no pivot in column %v", e.Column)
}

// Is implements errors.Is support for ErrSingular.
func (e *SingularError) Is(target error) bool {
	return target == ErrSingular
}

// System is an augmented matrix [A | b] with k rows and k+1 columns, where
// the last column holds the right hand side.
type System struct {
	rows [][]rat.Rat
}

// NewVandermonde builds the system whose row i encodes
//
//	sum_j a_j * xs[i]^j = ys[i]
//
// for the unknown coefficients a_0, ..., a_{k-1}, with k = len(xs). The
// powers of xs[i] are computed by successive exact multiplication starting
// from xs[i]^0 = 1.
//
// Panics: This function will panic if xs and ys have different lengths.
func NewVandermonde(xs, ys []*big.Int) *System {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("mismatched points: %v x values and %v y values", len(xs), len(ys)))
	}

	k := len(xs)
	rows := make([][]rat.Rat, k)
	for i, x := range xs {
		row := make([]rat.Rat, k+1)
		pow := big.NewInt(1)
		for j := 0; j < k; j++ {
			row[j] = rat.FromInt(pow)
			pow = new(big.Int).Mul(pow, x)
		}
		row[k] = rat.FromInt(ys[i])
		rows[i] = row
	}
	return &System{rows}
}

// NewSystem constructs a system from a copy of the given augmented matrix.
//
// Panics: This function will panic if the matrix is not k×(k+1) for some
// k >= 1.
func NewSystem(rows [][]rat.Rat) *System {
	if len(rows) == 0 {
		panic("empty system")
	}
	k := len(rows)
	copied := make([][]rat.Rat, k)
	for i, row := range rows {
		if len(row) != k+1 {
			panic(fmt.Sprintf("row %v has %v entries, expected %v", i, len(row), k+1))
		}
		copied[i] = make([]rat.Rat, k+1)
		copy(copied[i], row)
	}
	return &System{copied}
}

// Size returns the number of unknowns k.
func (s *System) Size() int {
	return len(s.rows)
}

// At returns the entry in row i and column j. Column Size() is the right hand
// side.
func (s *System) At(i, j int) rat.Rat {
	return s.rows[i][j]
}

// String implements the Stringer interface, one row per line with the right
// hand side separated by a bar.
func (s *System) String() string {
	var b strings.Builder
	k := s.Size()
	for i, row := range s.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < k; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(row[j].String())
		}
		b.WriteString(" | ")
		b.WriteString(row[k].String())
	}
	return b.String()
}

// Solve reduces the system to reduced row echelon form and returns the unique
// solution as polynomial coefficients a_0, ..., a_{k-1}.
//
// For each column the pivot is the first row, at or below the diagonal, with a
// non-zero entry in that column. The pivot row is swapped into place,
// normalised so that the pivot is exactly 1, and then subtracted from every
// other row to clear the column. When no pivot exists a *SingularError
// carrying the column is returned.
//
// NOTE: Solve works in place. After it returns, successfully or not, the
// system no longer represents the original equations and should be
// discarded.
func (s *System) Solve() (poly.Poly, error) {
	k := s.Size()
	for col := 0; col < k; col++ {
		pivot := -1
		for r := col; r < k; r++ {
			if !s.rows[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, &SingularError{Column: col}
		}
		if pivot != col {
			s.rows[pivot], s.rows[col] = s.rows[col], s.rows[pivot]
		}

		// Normalise the pivot row.
		pivotRow := s.rows[col]
		pivotVal := pivotRow[col]
		for j := col; j <= k; j++ {
			q, err := pivotRow[j].Div(pivotVal)
			if err != nil {
				return nil, fmt.Errorf("normalising row %v: %w", col, err)
			}
			pivotRow[j] = q
		}

		// Clear the column in every other row.
		for r := 0; r < k; r++ {
			if r == col {
				continue
			}
			row := s.rows[r]
			factor := row[col]
			if factor.IsZero() {
				continue
			}
			for j := col; j <= k; j++ {
				row[j] = row[j].Sub(factor.Mul(pivotRow[j]))
			}
		}
	}

	coeffs := make(poly.Poly, k)
	for i := range coeffs {
		coeffs[i] = s.rows[i][k]
	}
	return coeffs, nil
}
