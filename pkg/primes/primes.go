// Package primes implements trial-division and Miller–Rabin primality tests
// and a next-prime search.
package primes

import (
	"math"
	"math/big"

	"github.com/smallyu/go-nora-crypto/internal/crypto/modular"
)

// DefaultRounds is the witness budget used by IsProbablePrime and NextPrime.
// A composite survives r independent rounds with probability at most
// (1/4)^r, so 64 rounds bound a false positive by 2^-128.
const DefaultRounds = 64

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// IsPrimeNaive reports whether n is prime by trial division with odd
// candidates up to floor(sqrt(n)). It costs O(sqrt(n)) and is meant for
// small n or as a reference for the probabilistic test.
func IsPrimeNaive(n *big.Int) bool {
	if n.Cmp(one) <= 0 {
		return false
	}
	if n.Cmp(two) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	if n.IsUint64() {
		return isPrimeNaive64(n.Uint64())
	}

	limit := new(big.Int).Sqrt(n)
	r := new(big.Int)
	for i := big.NewInt(3); i.Cmp(limit) <= 0; i.Add(i, two) {
		if r.Mod(n, i).Sign() == 0 {
			return false
		}
	}
	return true
}

func isPrimeNaive64(n uint64) bool {
	limit := isqrt(n)
	for i := uint64(3); i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)).
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// IsPrimeMillerRabin reports whether n is a probable prime.
//
// n-1 is written as 2^s * d with d odd, and the bases a = 2, 3, ... while
// a < min(n-2, rounds) are tried in turn. A base proves n composite unless
// a^d ≡ ±1 (mod n) or one of the next s-1 squarings reaches n-1; reaching
// 1 first is also a proof of compositeness. A true result for a composite n
// is possible but has probability at most (1/4)^rounds. With the default
// budget the fixed bases 2..63 make the answer exact for every n below
// 3.3 * 10^24.
func IsPrimeMillerRabin(n *big.Int, rounds int) bool {
	if n.Cmp(one) <= 0 {
		return false
	}
	if n.Cmp(two) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	nm1 := new(big.Int).Sub(n, one)
	s := nm1.TrailingZeroBits()
	d := new(big.Int).Rsh(nm1, s)

	limit := int64(rounds)
	if bound := new(big.Int).Sub(n, two); bound.Cmp(big.NewInt(limit)) < 0 {
		limit = bound.Int64()
	}

	a := new(big.Int)
witness:
	for base := int64(2); base < limit; base++ {
		a.SetInt64(base)
		x := modular.Pow(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
			continue
		}
		for r := uint(1); r < s; r++ {
			x = modular.Square(x, n)
			if x.Cmp(one) == 0 {
				return false
			}
			if x.Cmp(nm1) == 0 {
				continue witness
			}
		}
		return false
	}
	return true
}

// IsProbablePrime is IsPrimeMillerRabin with DefaultRounds.
func IsProbablePrime(n *big.Int) bool {
	return IsPrimeMillerRabin(n, DefaultRounds)
}

// NextPrime returns the smallest probable prime p >= n|1. The low bit of n
// is set first and the search steps by two, so the result is always odd:
// NextPrime(2) is 3. Termination is guaranteed only probabilistically, by
// the density of primes.
func NextPrime(n *big.Int) *big.Int {
	p := new(big.Int).SetBit(n, 0, 1)
	if p.Sign() < 0 {
		p.SetInt64(1)
	}
	for !IsProbablePrime(p) {
		p.Add(p, two)
	}
	return p
}
