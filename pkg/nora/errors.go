package nora

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors returned (wrapped) by the library.
var (
	ErrNoInverse     = errors.New("no modular inverse")
	ErrCurveMismatch = errors.New("points belong to different curves")
	ErrInvalidInput  = errors.New("invalid input")
)

// NoInverseError reports that A has no inverse modulo M.
type NoInverseError struct {
	A *big.Int
	M *big.Int
}

func (e *NoInverseError) Error() string {
	return fmt.Sprintf("%v: gcd(%s, %s) != 1", ErrNoInverse, e.A, e.M)
}

func (e *NoInverseError) Unwrap() error {
	return ErrNoInverse
}

// NewNoInverse creates a NoInverseError, copying a and m.
func NewNoInverse(a, m *big.Int) *NoInverseError {
	return &NoInverseError{
		A: new(big.Int).Set(a),
		M: new(big.Int).Set(m),
	}
}

// CurveMismatchError reports an operation across two curve instances.
// Left and Right are the curve names, which may well be identical: curves
// are compared by handle, not by parameters.
type CurveMismatchError struct {
	Left  string
	Right string
}

func (e *CurveMismatchError) Error() string {
	return fmt.Sprintf("%v: %q vs %q", ErrCurveMismatch, e.Left, e.Right)
}

func (e *CurveMismatchError) Unwrap() error {
	return ErrCurveMismatch
}

// InvalidInputError reports an argument rejected by operation Op.
type InvalidInputError struct {
	Op     string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrInvalidInput, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInput creates an InvalidInputError with a formatted reason.
func NewInvalidInput(op, format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{
		Op:     op,
		Reason: fmt.Sprintf(format, args...),
	}
}
