package ecc

import (
	"fmt"
	"math/big"
)

// Point is an affine point together with a snapshot of the parameters of
// the curve it was built on. Mutating the original Curve afterwards does
// not affect the point.
//
// The group identity is carried as an explicit infinity flag rather than
// the (0, 0) coordinate convention, which is ambiguous on curves with
// b ≡ 0 (mod p). Infinity points still expose (0, 0) coordinates.
type Point struct {
	x, y  *big.Int
	curve *Curve
	inf   bool
}

// NewPoint constructs the affine point (x, y) on the given curve. The
// coordinates are copied and the curve's parameters are snapshotted, so a
// later mutation of curve leaves the point unchanged.
func NewPoint(x, y *big.Int, curve *Curve) (*Point, error) {
	if x == nil {
		return nil, paramErr("x", "integer", "nil")
	}
	if y == nil {
		return nil, paramErr("y", "integer", "nil")
	}
	if curve == nil {
		return nil, paramErr("curve", "curve", "nil")
	}

	return &Point{
		x:     new(big.Int).Set(x),
		y:     new(big.Int).Set(y),
		curve: curve.clone(),
	}, nil
}

// Infinity returns the point at infinity (the group identity) bound to a
// snapshot of the given curve.
func Infinity(curve *Curve) *Point {
	return &Point{
		x:     new(big.Int),
		y:     new(big.Int),
		curve: curve.clone(),
		inf:   true,
	}
}

// IsInfinity reports whether the point is the group identity.
func (p *Point) IsInfinity() bool { return p.inf }

// X returns a copy of the x coordinate. Zero for the point at infinity.
func (p *Point) X() *big.Int { return new(big.Int).Set(p.x) }

// Y returns a copy of the y coordinate. Zero for the point at infinity.
func (p *Point) Y() *big.Int { return new(big.Int).Set(p.y) }

// Curve returns a copy of the curve parameters snapshotted at
// construction time.
func (p *Point) Curve() *Curve { return p.curve.clone() }

// SetX replaces the x coordinate. Setting a coordinate makes the point
// affine again if it was the identity.
func (p *Point) SetX(v *big.Int) error {
	if v == nil {
		return paramErr("x", "integer", "nil")
	}
	p.x = new(big.Int).Set(v)
	p.inf = false
	return nil
}

// SetY replaces the y coordinate, with the same affinity rule as SetX.
func (p *Point) SetY(v *big.Int) error {
	if v == nil {
		return paramErr("y", "integer", "nil")
	}
	p.y = new(big.Int).Set(v)
	p.inf = false
	return nil
}

// SetCurve replaces the point's curve snapshot.
func (p *Point) SetCurve(c *Curve) error {
	if c == nil {
		return paramErr("curve", "curve", "nil")
	}
	p.curve = c.clone()
	return nil
}

// clone returns a deep copy of the point.
func (p *Point) clone() *Point {
	return &Point{
		x:     new(big.Int).Set(p.x),
		y:     new(big.Int).Set(p.y),
		curve: p.curve.clone(),
		inf:   p.inf,
	}
}

// String implements fmt.Stringer.
func (p *Point) String() string {
	if p.inf {
		return "<Point infinity>"
	}
	return fmt.Sprintf("<Point x=%s y=%s>", p.x, p.y)
}

// PointEqual reports whether two points have equal coordinates and the
// same identity flag. Curve snapshots do not participate.
func PointEqual(p1, p2 *Point) bool {
	if p1 == nil || p2 == nil {
		return p1 == p2
	}
	return p1.inf == p2.inf && p1.x.Cmp(p2.x) == 0 && p1.y.Cmp(p2.y) == 0
}

// sameCurve checks that the point's snapshot agrees with the curve an
// operation was handed.
func sameCurve(p *Point, c *Curve) error {
	if !CurveEqual(p.curve, c) {
		return ErrCurveMismatch
	}
	return nil
}
