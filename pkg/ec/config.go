package ec

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smallyu/go-nora-crypto/internal/crypto/modular"
	"github.com/smallyu/go-nora-crypto/pkg/nora"
	"github.com/smallyu/go-nora-crypto/pkg/primes"
)

// CurveFile is the YAML layout accepted by LoadCurves:
//
//	curves:
//	  - name: toy-97
//	    a: 2
//	    b: 3
//	    p: 97
//	    gx: 3
//	    gy: 6
//	    order: 5
//
// Integers may be written in decimal or with a 0x prefix. order is optional.
type CurveFile struct {
	Curves []CurveSpec `yaml:"curves"`
}

// CurveSpec describes one curve in a CurveFile.
type CurveSpec struct {
	Name  string  `yaml:"name"`
	A     Integer `yaml:"a"`
	B     Integer `yaml:"b"`
	P     Integer `yaml:"p"`
	Gx    Integer `yaml:"gx"`
	Gy    Integer `yaml:"gy"`
	Order Integer `yaml:"order,omitempty"`
}

// Integer is an arbitrary precision integer read from a YAML scalar.
type Integer struct {
	*big.Int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Integer) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected an integer", value.Line)
	}
	n, ok := new(big.Int).SetString(value.Value, 0)
	if !ok {
		return fmt.Errorf("line %d: %q is not an integer", value.Line, value.Value)
	}
	i.Int = n
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (i Integer) MarshalYAML() (interface{}, error) {
	if i.Int == nil {
		return nil, nil
	}
	return i.Int.String(), nil
}

// LoadCurves decodes a CurveFile from r and returns one new curve handle
// per entry, in file order. Every entry is validated: p must be a prime
// above 3, the curve must be non-singular with b ≢ 0 (mod p), the generator
// must be a non-identity point on the curve, and a given order must
// annihilate the generator. Validation failures wrap nora.ErrInvalidInput.
func LoadCurves(r io.Reader) ([]*Curve, error) {
	var file CurveFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("ec: decode curve file: %w", err)
	}

	seen := make(map[string]bool, len(file.Curves))
	curves := make([]*Curve, 0, len(file.Curves))
	for i, spec := range file.Curves {
		if spec.Name == "" {
			return nil, nora.NewInvalidInput("ec.LoadCurves", "curve #%d has no name", i)
		}
		if seen[spec.Name] {
			return nil, nora.NewInvalidInput("ec.LoadCurves", "duplicate curve %q", spec.Name)
		}
		seen[spec.Name] = true

		c, err := spec.Build()
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}

// LoadCurveFile is LoadCurves on the named file.
func LoadCurveFile(path string) ([]*Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ec: open curve file: %w", err)
	}
	defer f.Close()
	return LoadCurves(f)
}

// Build validates the spec and creates its curve.
func (s CurveSpec) Build() (*Curve, error) {
	op := "ec.CurveSpec(" + s.Name + ")"
	fields := []struct {
		name  string
		value Integer
	}{{"a", s.A}, {"b", s.B}, {"p", s.P}, {"gx", s.Gx}, {"gy", s.Gy}}
	for _, f := range fields {
		if f.value.Int == nil {
			return nil, nora.NewInvalidInput(op, "missing %s", f.name)
		}
	}

	p := s.P.Int
	if p.Cmp(three) <= 0 || !primes.IsProbablePrime(p) {
		return nil, nora.NewInvalidInput(op, "p = %s is not a prime above 3", p)
	}
	if modular.Mod(s.B.Int, p).Sign() == 0 {
		return nil, nora.NewInvalidInput(op, "b ≡ 0 (mod p) collides with the identity encoding")
	}

	// 4a^3 + 27b^2
	disc := modular.Mul(big.NewInt(4), modular.Pow(s.A.Int, three, p), p)
	disc = modular.Add(disc, modular.Mul(big.NewInt(27), modular.Square(s.B.Int, p), p), p)
	if disc.Sign() == 0 {
		return nil, nora.NewInvalidInput(op, "curve is singular")
	}

	var order *big.Int
	if s.Order.Int != nil {
		if s.Order.Sign() <= 0 {
			return nil, nora.NewInvalidInput(op, "order must be positive")
		}
		order = s.Order.Int
	}

	c := NewCurve(s.Name, s.A.Int, s.B.Int, p, modular.Mod(s.Gx.Int, p), modular.Mod(s.Gy.Int, p), order)
	g := c.Generator()
	if g.IsIdentity() || !c.Contains(g) {
		return nil, nora.NewInvalidInput(op, "generator (%s, %s) is not on the curve", s.Gx, s.Gy)
	}
	if order != nil {
		ng, err := g.ScalarMultiply(order)
		if err != nil {
			return nil, fmt.Errorf("%s: check order: %w", op, err)
		}
		if !ng.IsIdentity() {
			return nil, nora.NewInvalidInput(op, "order %s does not annihilate the generator", order)
		}
	}
	return c, nil
}
