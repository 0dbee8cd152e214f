package ec

import (
	"math/big"

	"github.com/smallyu/go-nora-crypto/internal/crypto/modular"
)

// Curve is a short Weierstrass curve y^2 = x^3 + a*x + b over GF(p) with a
// distinguished generator. A Curve is immutable once created and is always
// handled through its pointer: two curves with identical parameters are
// still different curves for the group law.
type Curve struct {
	name   string
	a, b   *big.Int
	p      *big.Int
	gx, gy *big.Int
	n      *big.Int // order of the generator, nil if unknown
}

// NewCurve returns a new curve handle. The arguments are copied. p is
// assumed prime and (gx, gy) assumed to lie on the curve; neither is
// checked. n is the order of the generator and may be nil.
func NewCurve(name string, a, b, p, gx, gy, n *big.Int) *Curve {
	c := &Curve{
		name: name,
		a:    new(big.Int).Set(a),
		b:    new(big.Int).Set(b),
		p:    new(big.Int).Set(p),
		gx:   new(big.Int).Set(gx),
		gy:   new(big.Int).Set(gy),
	}
	if n != nil {
		c.n = new(big.Int).Set(n)
	}
	return c
}

// Name returns the curve's name.
func (c *Curve) Name() string { return c.name }

// A returns the linear coefficient a.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns the constant coefficient b.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// P returns the field modulus.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// Order returns the order of the generator, or nil if it is not known.
func (c *Curve) Order() *big.Int {
	if c.n == nil {
		return nil
	}
	return new(big.Int).Set(c.n)
}

// BitSize returns the bit length of the field modulus.
func (c *Curve) BitSize() int { return c.p.BitLen() }

// Generator returns the curve's base point.
func (c *Curve) Generator() Point {
	return Point{x: c.gx, y: c.gy, curve: c}
}

// Identity returns the point at infinity of this curve.
func (c *Curve) Identity() Point {
	return Point{x: new(big.Int), y: new(big.Int), curve: c}
}

// NewPoint returns the point (x, y) bound to this curve. The point is not
// checked for membership; use Contains for that.
func (c *Curve) NewPoint(x, y *big.Int) Point {
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y), curve: c}
}

// Contains reports whether pt satisfies the curve equation. The identity
// is always contained. Only coordinates are inspected.
func (c *Curve) Contains(pt Point) bool {
	if pt.IsIdentity() {
		return true
	}
	return modular.Square(pt.y, c.p).Cmp(c.polynomial(pt.x)) == 0
}

// GeneratePoint returns k*G.
func (c *Curve) GeneratePoint(k *big.Int) (Point, error) {
	return c.Generator().ScalarMultiply(k)
}

// polynomial returns x^3 + a*x + b mod p.
func (c *Curve) polynomial(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	r.Add(r, c.a) // x^2 + a
	r.Mul(r, x)   // x^3 + ax
	r.Add(r, c.b)
	return r.Mod(r, c.p)
}

func (c *Curve) String() string {
	return c.name
}
