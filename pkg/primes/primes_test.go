package primes

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaivePrimeCheck(t *testing.T) {
	known := map[int64]bool{
		2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true, 23: true,
		29: true, 31: true, 37: true, 41: true, 43: true, 47: true, 53: true, 59: true, 61: true,
		67: true, 71: true, 73: true, 79: true, 83: true, 89: true, 97: true,
	}
	for i := int64(2); i < 100; i++ {
		assert.Equal(t, known[i], IsPrimeNaive(big.NewInt(i)), "n=%d", i)
	}

	assert.True(t, IsPrimeNaive(big.NewInt(97)))
	assert.False(t, IsPrimeNaive(big.NewInt(91)))
}

func TestTrivialCases(t *testing.T) {
	for _, n := range []int64{-7, -2, -1, 0, 1, 4, 100} {
		assert.False(t, IsPrimeNaive(big.NewInt(n)), "naive n=%d", n)
		assert.False(t, IsProbablePrime(big.NewInt(n)), "mr n=%d", n)
	}
	for _, n := range []int64{2, 3, 5} {
		assert.True(t, IsPrimeNaive(big.NewInt(n)), "naive n=%d", n)
		assert.True(t, IsProbablePrime(big.NewInt(n)), "mr n=%d", n)
	}
}

func TestMillerRabinMatchesNaiveSmall(t *testing.T) {
	for n := int64(2); n < 20000; n++ {
		b := big.NewInt(n)
		if IsProbablePrime(b) != IsPrimeNaive(b) {
			t.Fatalf("disagreement at n=%d", n)
		}
	}
}

func TestMillerRabinPrimeCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const limit = 1_000_000_000_000
	for i := 0; i < 3000; i++ {
		n := big.NewInt(2 + rng.Int63n(limit-2))
		assert.Equal(t, IsPrimeNaive(n), IsProbablePrime(n), "n=%s", n)
	}
}

func TestNaiveBigPath(t *testing.T) {
	// 2^64 + 1 = 274177 * 67280421310721 takes the big.Int loop.
	c := new(big.Int).Lsh(big.NewInt(1), 64)
	c.Add(c, big.NewInt(1))
	assert.False(t, c.IsUint64())
	assert.False(t, IsPrimeNaive(c))

	// 3 * (2^70 + 25)
	c = new(big.Int).Lsh(big.NewInt(1), 70)
	c.Add(c, big.NewInt(25))
	c.Mul(c, big.NewInt(3))
	assert.False(t, IsPrimeNaive(c))

	// Largest uint64 value exercises the square root clamp.
	assert.False(t, IsPrimeNaive(new(big.Int).SetUint64(1<<64-1)))
}

func TestIsqrt(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 3, 4, 15, 16, 17, 1 << 40, 1<<64 - 1} {
		r := isqrt(n)
		assert.True(t, r*r <= n, "n=%d r=%d", n, r)
		if r < 1<<32-1 {
			assert.True(t, (r+1)*(r+1) > n, "n=%d r=%d", n, r)
		}
	}
	assert.Equal(t, uint64(1<<32-1), isqrt(1<<64-1))
}

func TestMillerRabinPseudoprimes(t *testing.T) {
	composites := []string{
		// Carmichael numbers
		"561", "1105", "1729", "2465", "41041",
		// strong pseudoprimes to base 2, resp. 2, 3, 5, 7
		"2047", "3215031751",
		// strong pseudoprime to bases 2..23
		"3825123056546413051",
		// strong pseudoprime to bases 2..37
		"318665857834031151167461",
		// 2^128 + 1
		"340282366920938463463374607431768211457",
	}
	for _, s := range composites {
		n, _ := new(big.Int).SetString(s, 10)
		assert.False(t, IsProbablePrime(n), "n=%s", s)
	}

	primes := []string{
		"2147483647",                              // 2^31 - 1
		"2305843009213693951",                     // 2^61 - 1
		"170141183460469231731687303715884105727", // 2^127 - 1
	}
	for _, s := range primes {
		n, _ := new(big.Int).SetString(s, 10)
		assert.True(t, IsProbablePrime(n), "n=%s", s)
	}
}

func TestMillerRabinFewRounds(t *testing.T) {
	// With fewer than three rounds no witness runs and every odd n > 2
	// passes.
	assert.True(t, IsPrimeMillerRabin(big.NewInt(561), 2))
	// Base 2 alone catches 561.
	assert.False(t, IsPrimeMillerRabin(big.NewInt(561), 3))
	// ...but not the base-2 strong pseudoprime 2047; base 3 does.
	assert.True(t, IsPrimeMillerRabin(big.NewInt(2047), 3))
	assert.False(t, IsPrimeMillerRabin(big.NewInt(2047), 4))
}

func TestMillerRabinAgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 300; i++ {
		n := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 256))
		n.SetBit(n, 0, 1)
		assert.Equal(t, n.ProbablyPrime(20), IsProbablePrime(n), "n=%s", n)
	}
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		in, want int64
	}{
		{90, 97},
		{97, 97},
		{2, 3},
		{0, 3},
		{1, 3},
		{-10, 3},
		{14, 17},
		{1_000_000, 1_000_003},
	}
	for _, tc := range tests {
		in := big.NewInt(tc.in)
		got := NextPrime(in)
		assert.Equal(t, big.NewInt(tc.want), got, "NextPrime(%d)", tc.in)
		assert.Equal(t, big.NewInt(tc.in), in, "input modified")
	}
}

func TestNextPrimeLarge(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 5; i++ {
		n := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 512))
		p := NextPrime(n)
		assert.True(t, p.Cmp(n) >= 0)
		assert.True(t, p.ProbablyPrime(20), "p=%s", p)
		// No prime in between.
		for c := new(big.Int).SetBit(n, 0, 1); c.Cmp(p) < 0; c.Add(c, two) {
			assert.False(t, c.ProbablyPrime(20), "missed prime %s", c)
		}
	}
}

func FuzzMillerRabin(f *testing.F) {
	for _, seed := range []uint64{2, 3, 561, 2047, 1 << 61, 3215031751} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, v uint64) {
		n := new(big.Int).SetUint64(v)
		// ProbablyPrime is exact below 2^64, and so are bases 2..63.
		if got, want := IsProbablePrime(n), n.ProbablyPrime(0); got != want {
			t.Fatalf("IsProbablePrime(%d) = %v, want %v", v, got, want)
		}
		if v < 1<<40 {
			if got, want := IsPrimeNaive(n), n.ProbablyPrime(0); got != want {
				t.Fatalf("IsPrimeNaive(%d) = %v, want %v", v, got, want)
			}
		}
	})
}
