// Package modular provides the exact modular arithmetic the curve, primality
// and RSA packages are built on. Results are always fresh values in [0, m)
// for a positive modulus m; inputs are never modified.
package modular

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-nora-crypto/pkg/nora"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Mod returns a mod m, reduced into [0, m).
func Mod(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// Add returns (a + b) mod m.
func Add(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, m)
}

// Sub returns (a - b) mod m.
func Sub(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, m)
}

// Mul returns (a * b) mod m.
func Mul(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m)
}

// Square returns a^2 mod m.
func Square(a, m *big.Int) *big.Int {
	return Mul(a, a, m)
}

// Pow returns base^exp mod m. exp must be non-negative.
func Pow(base, exp, m *big.Int) *big.Int {
	b := new(big.Int).Mod(base, m)
	return b.Exp(b, exp, m)
}

// Inverse returns x in [0, m) with a*x ≡ 1 (mod m). It fails with a
// *nora.NoInverseError when gcd(a, m) != 1 or m is not positive.
func Inverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, nora.NewNoInverse(a, m)
	}
	r := new(big.Int).Mod(a, m)
	if r.ModInverse(r, m) == nil {
		return nil, nora.NewNoInverse(a, m)
	}
	return r, nil
}

// RandBits returns a uniformly random integer in [0, 2^bits) read from
// random, which should be a CSPRNG such as crypto/rand.Reader.
func RandBits(random io.Reader, bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, nora.NewInvalidInput("modular.RandBits", "bit length %d must be positive", bits)
	}
	limit := new(big.Int).Lsh(one, uint(bits))
	r, err := rand.Int(random, limit)
	if err != nil {
		return nil, fmt.Errorf("modular: read randomness: %w", err)
	}
	return r, nil
}

// Double returns 2a mod m.
func Double(a, m *big.Int) *big.Int {
	return Mul(two, a, m)
}
