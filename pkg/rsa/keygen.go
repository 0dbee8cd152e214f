package rsa

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"

	"github.com/smallyu/go-nora-crypto/internal/crypto/modular"
	"github.com/smallyu/go-nora-crypto/pkg/nora"
	"github.com/smallyu/go-nora-crypto/pkg/primes"
)

const (
	// DefaultBits is the modulus size used when none is given.
	DefaultBits = 1024
	// DefaultLengthDelta makes p a few bits shorter and q a few bits
	// longer than half the modulus.
	DefaultLengthDelta = 3
	// DefaultPublicExponent is 2^16 + 1.
	DefaultPublicExponent = 65537
)

// Parameters configures key generation.
type Parameters struct {
	Bits           int          // nominal modulus size, a multiple of 8
	LengthDelta    int          // p has Bits/2 - LengthDelta random bits, q has Bits/2 + LengthDelta
	PublicExponent int64        // odd, greater than 1
	MaxAttempts    int          // prime pairs to try before giving up; 0 means no limit
	Logger         *slog.Logger // optional, receives a debug record per rejected pair
}

// DefaultParameters returns the parameters GenerateKeypair uses.
func DefaultParameters(bits int) *Parameters {
	return &Parameters{
		Bits:           bits,
		LengthDelta:    DefaultLengthDelta,
		PublicExponent: DefaultPublicExponent,
	}
}

// Validate checks the parameters. Failures wrap nora.ErrInvalidInput.
func (p *Parameters) Validate() error {
	const op = "rsa.Parameters"
	if p.Bits <= 0 || p.Bits%8 != 0 {
		return nora.NewInvalidInput(op, "bits = %d must be a positive multiple of 8", p.Bits)
	}
	if p.LengthDelta < 0 || p.Bits/2-p.LengthDelta < 1 {
		return nora.NewInvalidInput(op, "length delta %d does not fit %d bits", p.LengthDelta, p.Bits)
	}
	if p.PublicExponent <= 1 || p.PublicExponent%2 == 0 {
		return nora.NewInvalidInput(op, "public exponent %d must be odd and greater than 1", p.PublicExponent)
	}
	if p.MaxAttempts < 0 {
		return nora.NewInvalidInput(op, "max attempts %d must not be negative", p.MaxAttempts)
	}
	return nil
}

func (p *Parameters) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// GenerateKeypair generates a key pair with the default parameters for a
// modulus of the given nominal size. random should be crypto/rand.Reader.
func GenerateKeypair(random io.Reader, bits int) (*PublicKey, *PrivateKey, error) {
	return GenerateKeypairWithParams(random, DefaultParameters(bits))
}

// GenerateKeypairWithParams generates a key pair.
//
// p and q are the next probable primes after Bits/2 - LengthDelta and
// Bits/2 + LengthDelta random bits respectively, so the modulus has about
// Bits bits but may be shorter. When p equals q, or the public exponent
// shares a factor with (p-1)(q-1), a fresh pair is drawn; after MaxAttempts
// such pairs the error for the last rejected pair is returned.
func GenerateKeypairWithParams(random io.Reader, params *Parameters) (*PublicKey, *PrivateKey, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	log := params.logger()
	e := big.NewInt(params.PublicExponent)
	pBits := params.Bits/2 - params.LengthDelta
	qBits := params.Bits/2 + params.LengthDelta

	var lastErr error
	for attempt := 1; params.MaxAttempts == 0 || attempt <= params.MaxAttempts; attempt++ {
		p, err := randomPrime(random, pBits)
		if err != nil {
			return nil, nil, err
		}
		q, err := randomPrime(random, qBits)
		if err != nil {
			return nil, nil, err
		}
		if p.Cmp(q) == 0 {
			log.Debug("rsa: p equals q, regenerating",
				"attempt", attempt, "bits", params.Bits, "prime", p)
			lastErr = nora.NewInvalidInput("rsa.GenerateKeypair", "p = q = %s", p)
			continue
		}

		d, err := privateExponent(e, p, q)
		if err != nil {
			log.Debug("rsa: exponent not coprime to totient, regenerating",
				"attempt", attempt, "bits", params.Bits, "exponent", params.PublicExponent)
			lastErr = err
			continue
		}

		n := new(big.Int).Mul(p, q)
		return &PublicKey{E: e, N: n}, &PrivateKey{D: d, N: new(big.Int).Set(n)}, nil
	}
	return nil, nil, fmt.Errorf("rsa: no usable primes after %d attempts: %w", params.MaxAttempts, lastErr)
}

func randomPrime(random io.Reader, bits int) (*big.Int, error) {
	r, err := modular.RandBits(random, bits)
	if err != nil {
		return nil, fmt.Errorf("rsa: draw prime candidate: %w", err)
	}
	return primes.NextPrime(r), nil
}
