// Package factoring provides the integer factoring helpers used to recover
// undersized RSA keys.
package factoring

import (
	"math/big"

	"github.com/smallyu/go-nora-crypto/pkg/nora"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// GCD returns the greatest common divisor of |a| and |b| using the
// iterative Euclidean algorithm. GCD(a, 0) = |a|.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// SmallestPrimeFactor returns the smallest prime dividing n, or n itself
// when n is prime, by trial division up to floor(sqrt(n)). It costs
// O(sqrt(n)). n must be greater than 1.
func SmallestPrimeFactor(n *big.Int) (*big.Int, error) {
	if n.Cmp(one) <= 0 {
		return nil, nora.NewInvalidInput("factoring.SmallestPrimeFactor", "n = %s must be greater than 1", n)
	}
	if n.Bit(0) == 0 {
		return big.NewInt(2), nil
	}
	if n.IsUint64() {
		return new(big.Int).SetUint64(smallestPrimeFactor64(n.Uint64())), nil
	}

	limit := new(big.Int).Sqrt(n)
	r := new(big.Int)
	for i := big.NewInt(3); i.Cmp(limit) <= 0; i.Add(i, two) {
		if r.Mod(n, i).Sign() == 0 {
			return i, nil
		}
	}
	return new(big.Int).Set(n), nil
}

// smallestPrimeFactor64 is the trial division loop for odd n. The bound
// i <= n/i avoids overflowing i*i.
func smallestPrimeFactor64(n uint64) uint64 {
	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return i
		}
	}
	return n
}
