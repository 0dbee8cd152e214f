package nora

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoInverseError(t *testing.T) {
	a, m := big.NewInt(6), big.NewInt(9)
	err := NewNoInverse(a, m)

	// Inputs are copied.
	a.SetInt64(1)
	assert.Equal(t, big.NewInt(6), err.A)

	wrapped := fmt.Errorf("rsa: derive exponent: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNoInverse))
	assert.False(t, errors.Is(wrapped, ErrInvalidInput))

	var target *NoInverseError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, big.NewInt(9), target.M)
	assert.Contains(t, err.Error(), "gcd(6, 9)")
}

func TestCurveMismatchError(t *testing.T) {
	err := error(&CurveMismatchError{Left: "P-256", Right: "P-256"})
	assert.True(t, errors.Is(err, ErrCurveMismatch))
	assert.Equal(t, `points belong to different curves: "P-256" vs "P-256"`, err.Error())
}

func TestInvalidInputError(t *testing.T) {
	t.Run("with op", func(t *testing.T) {
		err := NewInvalidInput("rsa.Encrypt", "plaintext %d not below modulus", 7)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.Equal(t, "rsa.Encrypt: invalid input: plaintext 7 not below modulus", err.Error())
	})

	t.Run("without op", func(t *testing.T) {
		err := NewInvalidInput("", "bad")
		assert.Equal(t, "invalid input: bad", err.Error())
	})
}
