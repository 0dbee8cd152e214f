package ec

import (
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-nora-crypto/internal/crypto/modular"
	"github.com/smallyu/go-nora-crypto/pkg/nora"
)

var (
	secp256k1Curve = newSecp256k1()
	bn254Curve     = newBN254()
	wei25519Curve  = newWei25519()
)

// Secp256k1 returns the SEC 2 Koblitz curve secp256k1 (a = 0, b = 7).
func Secp256k1() *Curve { return secp256k1Curve }

// BN254 returns the G1 group of the BN254 pairing curve (a = 0, b = 3).
func BN254() *Curve { return bn254Curve }

// Wei25519 returns Curve25519 in short Weierstrass form. Its generator is
// the image of the Montgomery base point u = 9, so the x coordinate of k*G
// is u(k*B) + A/3.
func Wei25519() *Curve { return wei25519Curve }

// Lookup returns the predefined curve registered under name. Names are
// matched case-insensitively.
func Lookup(name string) (*Curve, error) {
	for _, c := range predefined() {
		if strings.EqualFold(c.name, name) {
			return c, nil
		}
	}
	return nil, nora.NewInvalidInput("ec.Lookup", "unknown curve %q", name)
}

func predefined() []*Curve {
	return []*Curve{p192, p224, p256, secp256k1Curve, bn254Curve, wei25519Curve}
}

func newSecp256k1() *Curve {
	params := secp256k1.S256().Params()
	return NewCurve("secp256k1", new(big.Int), params.B, params.P, params.Gx, params.Gy, params.N)
}

func newBN254() *Curve {
	_, _, g1, _ := bn254.Generators()
	var gx, gy big.Int
	g1.X.BigInt(&gx)
	g1.Y.BigInt(&gy)
	return NewCurve("BN254", new(big.Int), big.NewInt(3), fp.Modulus(), &gx, &gy, fr.Modulus())
}

// Montgomery form v^2 = u^3 + A*u^2 + u maps to y^2 = x^3 + a*x + b with
// x = u + A/3, a = (3 - A^2)/3, b = (2A^3 - 9A)/27.
func newWei25519() *Curve {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	p.Sub(p, big.NewInt(19))
	montA := big.NewInt(486662)

	inv3, _ := modular.Inverse(big.NewInt(3), p)
	inv27, _ := modular.Inverse(big.NewInt(27), p)

	a := new(big.Int).Mul(montA, montA)
	a.Sub(big.NewInt(3), a)
	a = modular.Mul(a, inv3, p)

	b := new(big.Int).Exp(montA, big.NewInt(3), nil)
	b.Mul(b, big.NewInt(2))
	b.Sub(b, new(big.Int).Mul(big.NewInt(9), montA))
	b = modular.Mul(b, inv27, p)

	gx := modular.Add(big.NewInt(9), modular.Mul(montA, inv3, p), p)
	gy := mustInt("14781619447589544791020593568409986887264606134616475288964881837755586237401")
	n := mustInt("7237005577332262213973186563042994240857116359379907606001950938285454250989")

	return NewCurve("Wei25519", a, b, p, gx, gy, n)
}
