package ecc

import "math/big"

// Pure group-law operations for short Weierstrass curves, with the point
// at infinity as identity. Every exported function validates that its
// points carry the same parameters as the curve argument and returns a
// newly constructed point; inputs are never mutated.

var two = big.NewInt(2)

// Double returns 2P. Doubling the identity yields the identity, as does
// the order-2 degenerate case where 2y has no inverse modulo p.
func Double(p *Point, c *Curve) (*Point, error) {
	if err := checkPoint("point", p, c); err != nil {
		return nil, err
	}
	return doublePoint(p, c), nil
}

// Add returns P + Q.
func Add(p1, p2 *Point, c *Curve) (*Point, error) {
	if err := checkPoint("point1", p1, c); err != nil {
		return nil, err
	}
	if err := checkPoint("point2", p2, c); err != nil {
		return nil, err
	}
	return addPoint(p1, p2, c), nil
}

// Sub returns P - Q, i.e. P added to the negation of Q.
func Sub(p1, p2 *Point, c *Curve) (*Point, error) {
	if err := checkPoint("point1", p1, c); err != nil {
		return nil, err
	}
	if err := checkPoint("point2", p2, c); err != nil {
		return nil, err
	}
	return addPoint(p1, negPoint(p2, c), c), nil
}

// Neg returns -P, the point with the same x and the y coordinate negated
// modulo p.
func Neg(p *Point, c *Curve) (*Point, error) {
	if err := checkPoint("point", p, c); err != nil {
		return nil, err
	}
	return negPoint(p, c), nil
}

// ScalarMul returns k·P by a fixed-structure double-and-add ladder that
// performs exactly one addition and one doubling per scalar bit, whatever
// the bit's value. A negative k multiplies the negation of P by -k.
//
// The uniform operation count is a deliberate property of the ladder, not
// a timing-safety guarantee.
func ScalarMul(p *Point, k *big.Int, c *Curve) (*Point, error) {
	if err := checkPoint("point", p, c); err != nil {
		return nil, err
	}
	if k == nil {
		return nil, paramErr("scalar", "integer", "nil")
	}

	if p.inf {
		return Infinity(c), nil
	}
	if k.Cmp(two) == 0 {
		return doublePoint(p, c), nil
	}

	pt, kk := p, k
	if k.Sign() < 0 {
		pt = negPoint(p, c)
		kk = new(big.Int).Neg(k)
	}

	// Ladder state: R0 = P, R1 = 2P; one add and one double per bit from
	// the second-highest down.
	r0 := &Point{x: new(big.Int).Set(pt.x), y: new(big.Int).Set(pt.y), curve: c.clone()}
	r1 := doublePoint(pt, c)
	for i := kk.BitLen() - 2; i >= 0; i-- {
		if kk.Bit(i) == 1 {
			r0 = addPoint(r1, r0, c)
			r1 = doublePoint(r1, c)
		} else {
			r1 = addPoint(r0, r1, c)
			r0 = doublePoint(r0, c)
		}
	}
	return r0, nil
}

// ShamirMul returns k1·P + k2·Q in a single combined pass (Shamir's
// trick): one shared doubling per bit position plus at most one addition
// of P, Q or the precomputed P+Q. This costs roughly
// max(bitlen(k1), bitlen(k2)) doublings instead of two full ladders and a
// final addition, which is what makes signature verification fast.
// Scalars are expected to be non-negative.
func ShamirMul(p1 *Point, k1 *big.Int, p2 *Point, k2 *big.Int, c *Curve) (*Point, error) {
	if err := checkPoint("point1", p1, c); err != nil {
		return nil, err
	}
	if err := checkPoint("point2", p2, c); err != nil {
		return nil, err
	}
	if k1 == nil {
		return nil, paramErr("scalar1", "integer", "nil")
	}
	if k2 == nil {
		return nil, paramErr("scalar2", "integer", "nil")
	}

	sum := addPoint(p1, p2, c)

	l := k1.BitLen()
	if k2.BitLen() > l {
		l = k2.BitLen()
	}
	l--

	acc := Infinity(c)
	if l >= 0 {
		switch {
		case k1.Bit(l) == 1 && k2.Bit(l) == 1:
			acc = sum
		case k1.Bit(l) == 1:
			acc = &Point{x: new(big.Int).Set(p1.x), y: new(big.Int).Set(p1.y), curve: c.clone(), inf: p1.inf}
		case k2.Bit(l) == 1:
			acc = &Point{x: new(big.Int).Set(p2.x), y: new(big.Int).Set(p2.y), curve: c.clone(), inf: p2.inf}
		}
	}

	for i := l - 1; i >= 0; i-- {
		acc = doublePoint(acc, c)
		switch {
		case k1.Bit(i) == 1 && k2.Bit(i) == 1:
			acc = addPoint(acc, sum, c)
		case k1.Bit(i) == 1:
			acc = addPoint(acc, p1, c)
		case k2.Bit(i) == 1:
			acc = addPoint(acc, p2, c)
		}
	}
	return acc, nil
}

// doublePoint implements the affine doubling formula
// λ = (3x² + a) / 2y, x' = λ² - 2x, y' = λ(x - x') - y.
func doublePoint(p *Point, c *Curve) *Point {
	if p.inf {
		return Infinity(c)
	}

	numer := new(big.Int).Mul(p.x, p.x)
	numer.Mul(numer, big.NewInt(3))
	numer.Add(numer, c.a)

	denom := new(big.Int).Lsh(p.y, 1)
	denom = denom.ModInverse(denom, c.p)
	if denom == nil {
		// 2y not invertible mod p: 2P is the identity
		return Infinity(c)
	}

	lambda := numer.Mul(numer, denom)
	lambda.Mod(lambda, c.p)

	rx := new(big.Int).Mul(lambda, lambda)
	rx.Sub(rx, p.x)
	rx.Sub(rx, p.x)
	rx.Mod(rx, c.p)

	ry := new(big.Int).Sub(p.x, rx)
	ry.Mul(ry, lambda)
	ry.Sub(ry, p.y)
	ry.Mod(ry, c.p)

	return &Point{x: rx, y: ry, curve: c.clone()}
}

// addPoint implements the affine chord formula with full identity
// handling. P + P delegates to doublePoint; P plus its mirror image is
// the identity.
func addPoint(p1, p2 *Point, c *Curve) *Point {
	switch {
	case p1.inf && p2.inf:
		return Infinity(c)
	case p1.inf:
		return &Point{x: new(big.Int).Set(p2.x), y: new(big.Int).Set(p2.y), curve: c.clone(), inf: p2.inf}
	case p2.inf:
		return &Point{x: new(big.Int).Set(p1.x), y: new(big.Int).Set(p1.y), curve: c.clone(), inf: p1.inf}
	}

	if p1.x.Cmp(p2.x) == 0 && p1.y.Cmp(p2.y) == 0 {
		return doublePoint(p1, c)
	}

	// P + (-P) = identity
	negy := new(big.Int).Sub(c.p, p2.y)
	if p1.x.Cmp(p2.x) == 0 && p1.y.Cmp(negy) == 0 {
		return Infinity(c)
	}

	xdiff := new(big.Int).Sub(p2.x, p1.x)
	xdiff = xdiff.ModInverse(xdiff, c.p)
	if xdiff == nil {
		// only reachable with a composite modulus
		return Infinity(c)
	}
	ydiff := new(big.Int).Sub(p2.y, p1.y)
	lambda := ydiff.Mul(ydiff, xdiff)
	lambda.Mod(lambda, c.p)

	rx := new(big.Int).Mul(lambda, lambda)
	rx.Sub(rx, p1.x)
	rx.Sub(rx, p2.x)
	rx.Mod(rx, c.p)

	ry := new(big.Int).Sub(p1.x, rx)
	ry.Mul(ry, lambda)
	ry.Sub(ry, p1.y)
	ry.Mod(ry, c.p)

	return &Point{x: rx, y: ry, curve: c.clone()}
}

// negPoint returns -P on a fresh copy; the operand is untouched.
func negPoint(p *Point, c *Curve) *Point {
	if p.inf {
		return Infinity(c)
	}
	ny := new(big.Int).Neg(p.y)
	ny.Mod(ny, c.p)
	return &Point{x: new(big.Int).Set(p.x), y: ny, curve: c.clone()}
}

func checkPoint(name string, p *Point, c *Curve) error {
	if p == nil {
		return paramErr(name, "point", "nil")
	}
	if c == nil {
		return paramErr("curve", "curve", "nil")
	}
	return sameCurve(p, c)
}
