package ec

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-nora-crypto/internal/crypto/modular"
	"github.com/smallyu/go-nora-crypto/pkg/nora"
)

var three = big.NewInt(3)

// Point is an affine point on a Curve, or that curve's identity. The
// identity is encoded as (0, 0), which is never a solution on the curves
// shipped here because their b is non-zero.
//
// Point is an immutable value. The zero Point is not bound to any curve and
// is only a placeholder next to a non-nil error. On it IsIdentity reports
// false and Curve returns nil; any method other than those and String panics.
type Point struct {
	x, y  *big.Int
	curve *Curve
}

// X returns a copy of the x coordinate.
func (pt Point) X() *big.Int { return new(big.Int).Set(pt.x) }

// Y returns a copy of the y coordinate.
func (pt Point) Y() *big.Int { return new(big.Int).Set(pt.y) }

// Curve returns the curve the point is bound to.
func (pt Point) Curve() *Curve { return pt.curve }

// IsIdentity reports whether pt is the point at infinity.
func (pt Point) IsIdentity() bool {
	if pt.curve == nil {
		return false
	}
	return pt.x.Sign() == 0 && pt.y.Sign() == 0
}

// Equal reports whether pt and q are bound to the same curve handle and
// have the same coordinates.
func (pt Point) Equal(q Point) bool {
	return pt.curve == q.curve && pt.x.Cmp(q.x) == 0 && pt.y.Cmp(q.y) == 0
}

// Negate returns -pt, the reflection of pt about the x axis.
func (pt Point) Negate() Point {
	if pt.IsIdentity() {
		return pt
	}
	return Point{x: pt.x, y: modular.Sub(pt.curve.p, pt.y, pt.curve.p), curve: pt.curve}
}

// Perturb returns (x+dx, y+dy) on the same curve without reducing modulo p.
// The result is usually not on the curve; it exists for negative tests.
func (pt Point) Perturb(dx, dy *big.Int) Point {
	return Point{
		x:     new(big.Int).Add(pt.x, dx),
		y:     new(big.Int).Add(pt.y, dy),
		curve: pt.curve,
	}
}

// Add returns pt + q under the chord-and-tangent law.
//
// If either operand is the identity the other is returned as is. Otherwise
// both points must be bound to the same curve handle, or a
// *nora.CurveMismatchError is returned. Doubling a point with y ≡ 0 fails
// with a *nora.NoInverseError; that only happens for 2-torsion points.
func (pt Point) Add(q Point) (Point, error) {
	if pt.IsIdentity() {
		return q, nil
	}
	if q.IsIdentity() {
		return pt, nil
	}

	c := pt.curve
	if c != q.curve {
		return Point{}, &nora.CurveMismatchError{Left: c.name, Right: q.curve.name}
	}

	rise := modular.Sub(q.y, pt.y, c.p)
	run := modular.Sub(q.x, pt.x, c.p)

	var slope *big.Int
	if run.Sign() == 0 {
		// Mirror images about the x axis.
		if rise.Sign() != 0 {
			return c.Identity(), nil
		}

		// Same point: tangent line.
		num := modular.Mul(three, modular.Square(pt.x, c.p), c.p)
		num = modular.Add(num, c.a, c.p)
		den, err := modular.Inverse(modular.Double(pt.y, c.p), c.p)
		if err != nil {
			return Point{}, fmt.Errorf("ec: double point on %s: %w", c.name, err)
		}
		slope = modular.Mul(num, den, c.p)
	} else {
		runInv, err := modular.Inverse(run, c.p)
		if err != nil {
			return Point{}, fmt.Errorf("ec: add points on %s: %w", c.name, err)
		}
		slope = modular.Mul(rise, runInv, c.p)
	}

	// x3 = slope^2 - x1 - x2
	x3 := modular.Square(slope, c.p)
	x3.Sub(x3, pt.x)
	x3.Sub(x3, q.x)
	x3.Mod(x3, c.p)

	// y3 = slope*(x1 - x3) - y1
	y3 := new(big.Int).Sub(pt.x, x3)
	y3.Mul(y3, slope)
	y3.Sub(y3, pt.y)
	y3.Mod(y3, c.p)

	return Point{x: x3, y: y3, curve: c}, nil
}

// ScalarMultiply returns k*pt using left-to-right double-and-add, one
// doubling per bit of |k| and one addition per set bit. Negative k gives
// -(|k|*pt).
func (pt Point) ScalarMultiply(k *big.Int) (Point, error) {
	if k.Sign() < 0 {
		r, err := pt.ScalarMultiply(new(big.Int).Neg(k))
		if err != nil {
			return Point{}, err
		}
		return r.Negate(), nil
	}

	acc := pt.curve.Identity()
	if k.Sign() == 0 {
		return acc, nil
	}

	var err error
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc, err = acc.Add(acc)
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			acc, err = acc.Add(pt)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return acc, nil
}

func (pt Point) String() string {
	if pt.curve == nil {
		return "Point{}"
	}
	if pt.IsIdentity() {
		return fmt.Sprintf("%s(∞)", pt.curve.name)
	}
	return fmt.Sprintf("%s(%s, %s)", pt.curve.name, pt.x, pt.y)
}
