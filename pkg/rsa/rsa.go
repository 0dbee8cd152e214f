package rsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-nora-crypto/internal/crypto/modular"
	"github.com/smallyu/go-nora-crypto/pkg/factoring"
	"github.com/smallyu/go-nora-crypto/pkg/nora"
)

var one = big.NewInt(1)

// PublicKey is an RSA public key (e, n).
type PublicKey struct {
	E *big.Int // public exponent
	N *big.Int // modulus n = p * q
}

// PrivateKey is an RSA private key (d, n).
type PrivateKey struct {
	D *big.Int // private exponent, e^-1 mod (p-1)(q-1)
	N *big.Int // modulus
}

// Encrypt returns m^e mod n. m must be in [0, n).
func (pk *PublicKey) Encrypt(m *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(pk.N) >= 0 {
		return nil, nora.NewInvalidInput("rsa.Encrypt", "plaintext must be in [0, n)")
	}
	return modular.Pow(m, pk.E, pk.N), nil
}

// Verify reports whether signature^e mod n equals m.
func (pk *PublicKey) Verify(m, signature *big.Int) bool {
	return modular.Pow(signature, pk.E, pk.N).Cmp(m) == 0
}

// BruteForce recovers the private key by factoring n with trial division.
// It is instant for 64-bit moduli and hopeless for real ones.
func (pk *PublicKey) BruteForce() (*PrivateKey, error) {
	p, err := factoring.SmallestPrimeFactor(pk.N)
	if err != nil {
		return nil, fmt.Errorf("rsa: factor modulus: %w", err)
	}
	q := new(big.Int).Quo(pk.N, p)

	d, err := privateExponent(pk.E, p, q)
	if err != nil {
		return nil, fmt.Errorf("rsa: derive private exponent: %w", err)
	}
	return &PrivateKey{D: d, N: new(big.Int).Set(pk.N)}, nil
}

// Equal reports whether pk and other hold the same values.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && pk.E.Cmp(other.E) == 0 && pk.N.Cmp(other.N) == 0
}

// Decrypt returns c^d mod n.
func (priv *PrivateKey) Decrypt(c *big.Int) *big.Int {
	return modular.Pow(c, priv.D, priv.N)
}

// Sign returns the textbook signature m^d mod n, which is Decrypt.
func (priv *PrivateKey) Sign(m *big.Int) *big.Int {
	return priv.Decrypt(m)
}

// Equal reports whether priv and other hold the same values.
func (priv *PrivateKey) Equal(other *PrivateKey) bool {
	return other != nil && priv.D.Cmp(other.D) == 0 && priv.N.Cmp(other.N) == 0
}

// privateExponent returns e^-1 mod (p-1)(q-1).
func privateExponent(e, p, q *big.Int) (*big.Int, error) {
	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)
	phi := new(big.Int).Mul(pMinus1, qMinus1)
	return modular.Inverse(e, phi)
}
