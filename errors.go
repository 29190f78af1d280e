package sharecheck

import (
	"errors"
	"fmt"

	"github.com/renproject/sharecheck/linsys"
	"github.com/renproject/sharecheck/radix"
	"github.com/renproject/sharecheck/rat"
)

var (
	// ErrInvalidThreshold is returned when the threshold k is less than 1.
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrInsufficientPoints is matched by every InsufficientPointsError.
	ErrInsufficientPoints = errors.New("insufficient points")
)

// InsufficientPointsError is returned when fewer than k points are available
// for a reconstruction with threshold k. It is reported before any arithmetic
// is done.
type InsufficientPointsError struct {
	Have, Need int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("not enough points provided: need k = %v, have %v", e.Need, e.Have)
}

// Is implements errors.Is support for ErrInsufficientPoints.
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// ErrorKind is a coarse-grained categorization of the failures of a
// reconstruction, for callers that need to report a diagnostic.
type ErrorKind string

const (
	KindNone               ErrorKind = ""
	KindDivisionByZero     ErrorKind = "division_by_zero"
	KindInvalidDigit       ErrorKind = "invalid_digit"
	KindInsufficientPoints ErrorKind = "insufficient_points"
	KindSingularSystem     ErrorKind = "singular_system"
	KindInvalidInput       ErrorKind = "invalid_input"
	KindUnknown            ErrorKind = "unknown"
)

// KindOf classifies an error by walking its chain. A nil error has kind
// KindNone.
func KindOf(err error) ErrorKind {
	var (
		digitErr *radix.InvalidDigitError
		baseErr  *radix.InvalidBaseError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, rat.ErrDivisionByZero):
		return KindDivisionByZero
	case errors.As(err, &digitErr):
		return KindInvalidDigit
	case errors.Is(err, ErrInsufficientPoints):
		return KindInsufficientPoints
	case errors.Is(err, linsys.ErrSingular):
		return KindSingularSystem
	case errors.As(err, &baseErr), errors.Is(err, radix.ErrEmpty), errors.Is(err, ErrInvalidThreshold):
		return KindInvalidInput
	}
	return KindUnknown
}
