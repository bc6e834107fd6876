// Package ecc implements elliptic-curve arithmetic over prime fields for
// curves in short Weierstrass form (y² = x³ + ax + b mod p), parameterized
// entirely by caller-supplied constants, together with ECDSA signing and
// verification on top of it.
//
// Curves, points and signatures are value objects: constructors copy their
// big.Int arguments, points snapshot their curve's parameters, and no
// operation mutates an input. Curve setters replace one field at a time and
// are not safe for concurrent use against readers of the same Curve; points
// built before a mutation keep their snapshot.
//
// None of the arithmetic here is constant-time. The scalar-multiplication
// ladder performs a uniform operation count per bit, but that is not a
// side-channel guarantee.
package ecc

import (
	"encoding/hex"
	"math/big"
)

// Curve holds the parameters of a short Weierstrass curve over a prime
// field: the modulus p, the coefficients a and b, the order q of the base
// point, and the base point (gx, gy). The name and OID are optional
// metadata excluded from equality.
type Curve struct {
	p, a, b *big.Int
	q       *big.Int
	gx, gy  *big.Int
	name    string
	oid     []byte
}

// NewCurve constructs a curve from its six numeric parameters. All six are
// required; a nil argument yields a ParameterError naming it. The values
// are copied.
func NewCurve(p, a, b, q, gx, gy *big.Int) (*Curve, error) {
	fields := []struct {
		name string
		v    *big.Int
	}{
		{"p", p}, {"a", a}, {"b", b}, {"q", q}, {"gx", gx}, {"gy", gy},
	}
	for _, f := range fields {
		if f.v == nil {
			return nil, paramErr(f.name, "integer", "nil")
		}
	}

	return &Curve{
		p:  new(big.Int).Set(p),
		a:  new(big.Int).Set(a),
		b:  new(big.Int).Set(b),
		q:  new(big.Int).Set(q),
		gx: new(big.Int).Set(gx),
		gy: new(big.Int).Set(gy),
	}, nil
}

// clone returns a deep copy of the curve, metadata included.
func (c *Curve) clone() *Curve {
	out := &Curve{
		p:    new(big.Int).Set(c.p),
		a:    new(big.Int).Set(c.a),
		b:    new(big.Int).Set(c.b),
		q:    new(big.Int).Set(c.q),
		gx:   new(big.Int).Set(c.gx),
		gy:   new(big.Int).Set(c.gy),
		name: c.name,
	}
	if c.oid != nil {
		out.oid = append([]byte(nil), c.oid...)
	}
	return out
}

// P returns a copy of the prime modulus.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// A returns a copy of the a coefficient.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns a copy of the b coefficient.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// Q returns a copy of the base-point order.
func (c *Curve) Q() *big.Int { return new(big.Int).Set(c.q) }

// Gx returns a copy of the base point's x coordinate.
func (c *Curve) Gx() *big.Int { return new(big.Int).Set(c.gx) }

// Gy returns a copy of the base point's y coordinate.
func (c *Curve) Gy() *big.Int { return new(big.Int).Set(c.gy) }

// Name returns the curve's label.
func (c *Curve) Name() string { return c.name }

// OID returns a copy of the curve's object identifier bytes, or nil.
func (c *Curve) OID() []byte {
	if c.oid == nil {
		return nil
	}
	return append([]byte(nil), c.oid...)
}

// G returns the base point as a Point carrying a snapshot of this curve.
func (c *Curve) G() *Point {
	return &Point{
		x:     new(big.Int).Set(c.gx),
		y:     new(big.Int).Set(c.gy),
		curve: c.clone(),
	}
}

// SetP replaces the prime modulus. Like all setters it copies the value
// and must not race with readers of the same Curve.
func (c *Curve) SetP(v *big.Int) error { return c.setField("p", &c.p, v) }

// SetA replaces the a coefficient.
func (c *Curve) SetA(v *big.Int) error { return c.setField("a", &c.a, v) }

// SetB replaces the b coefficient.
func (c *Curve) SetB(v *big.Int) error { return c.setField("b", &c.b, v) }

// SetQ replaces the base-point order.
func (c *Curve) SetQ(v *big.Int) error { return c.setField("q", &c.q, v) }

// SetGx replaces the base point's x coordinate.
func (c *Curve) SetGx(v *big.Int) error { return c.setField("gx", &c.gx, v) }

// SetGy replaces the base point's y coordinate.
func (c *Curve) SetGy(v *big.Int) error { return c.setField("gy", &c.gy, v) }

func (c *Curve) setField(name string, dst **big.Int, v *big.Int) error {
	if v == nil {
		return paramErr(name, "integer", "nil")
	}
	*dst = new(big.Int).Set(v)
	return nil
}

// SetG replaces the curve's parameters and base point with those carried
// by the given point, mirroring assignment of a whole base point.
func (c *Curve) SetG(p *Point) error {
	if p == nil {
		return paramErr("G", "point", "nil")
	}
	snap := p.curve
	c.p = new(big.Int).Set(snap.p)
	c.a = new(big.Int).Set(snap.a)
	c.b = new(big.Int).Set(snap.b)
	c.q = new(big.Int).Set(snap.q)
	c.gx = new(big.Int).Set(p.x)
	c.gy = new(big.Int).Set(p.y)
	return nil
}

// SetName replaces the curve's label.
func (c *Curve) SetName(name string) { c.name = name }

// SetOID replaces the curve's object identifier with a copy of the given
// raw bytes.
func (c *Curve) SetOID(oid []byte) {
	c.oid = append([]byte(nil), oid...)
}

// SetOIDHex decodes an even-length hex string into the curve's object
// identifier. Odd length or a non-hex digit is a ParameterError.
func (c *Curve) SetOIDHex(s string) error {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return paramErr("oid", "even-length hex string", s)
	}
	c.oid = raw
	return nil
}

// CurveEqual reports whether two curves have identical (p, a, b, q, gx, gy)
// parameters. Name and OID are metadata and do not participate.
func CurveEqual(c1, c2 *Curve) bool {
	if c1 == nil || c2 == nil {
		return c1 == c2
	}
	return c1.p.Cmp(c2.p) == 0 &&
		c1.a.Cmp(c2.a) == 0 &&
		c1.b.Cmp(c2.b) == 0 &&
		c1.q.Cmp(c2.q) == 0 &&
		c1.gx.Cmp(c2.gx) == 0 &&
		c1.gy.Cmp(c2.gy) == 0
}

// OnCurve reports whether the point satisfies y² ≡ x³ + ax + b (mod p) for
// the given curve.
//
// The point at infinity is not special-cased: its (0, 0) coordinates are
// plugged into the equation, so it reads as on-curve only when b ≡ 0
// (mod p). Callers must not use OnCurve as an infinity test.
func OnCurve(p *Point, c *Curve) bool {
	if p == nil || c == nil {
		return false
	}

	// left = y², right = x³ + ax + b
	left := new(big.Int).Mul(p.y, p.y)

	right := new(big.Int).Mul(p.x, p.x)
	right.Mul(right, p.x)
	ax := new(big.Int).Mul(c.a, p.x)
	right.Add(right, ax)
	right.Add(right, c.b)

	diff := new(big.Int).Sub(left, right)
	diff.Mod(diff, c.p)
	return diff.Sign() == 0
}
