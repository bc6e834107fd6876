package ecc

import (
	"fmt"
	"math/big"
)

// SEC 1 point serialization (Version 2.0, Section 2.3.3). The point at
// infinity has no encoding here and is rejected.

// Marshal encodes the point in uncompressed form: 0x04 || X || Y with
// fixed-width big-endian coordinates.
func Marshal(p *Point) ([]byte, error) {
	if p == nil {
		return nil, paramErr("point", "point", "nil")
	}
	if p.inf {
		return nil, ErrInfinity
	}

	byteLen := (p.curve.p.BitLen() + 7) / 8
	out := make([]byte, 1+2*byteLen)
	out[0] = 4
	p.x.FillBytes(out[1 : 1+byteLen])
	p.y.FillBytes(out[1+byteLen:])
	return out, nil
}

// MarshalCompressed encodes the point in compressed form: a 0x02/0x03
// prefix carrying the parity of Y, followed by X.
func MarshalCompressed(p *Point) ([]byte, error) {
	if p == nil {
		return nil, paramErr("point", "point", "nil")
	}
	if p.inf {
		return nil, ErrInfinity
	}

	byteLen := (p.curve.p.BitLen() + 7) / 8
	out := make([]byte, 1+byteLen)
	out[0] = byte(p.y.Bit(0)) | 2
	p.x.FillBytes(out[1:])
	return out, nil
}

// Unmarshal decodes an uncompressed encoding produced by Marshal into a
// point on the given curve. Wrong length, a wrong prefix, out-of-range
// coordinates and off-curve points are all errors.
func Unmarshal(curve *Curve, data []byte) (*Point, error) {
	if curve == nil {
		return nil, paramErr("curve", "curve", "nil")
	}
	byteLen := (curve.p.BitLen() + 7) / 8
	if len(data) != 1+2*byteLen {
		return nil, fmt.Errorf("ecc: invalid point encoding length %d", len(data))
	}
	if data[0] != 4 {
		return nil, fmt.Errorf("ecc: invalid uncompressed point prefix 0x%02x", data[0])
	}

	x := new(big.Int).SetBytes(data[1 : 1+byteLen])
	y := new(big.Int).SetBytes(data[1+byteLen:])
	if x.Cmp(curve.p) >= 0 || y.Cmp(curve.p) >= 0 {
		return nil, fmt.Errorf("ecc: point coordinate out of range")
	}

	p := &Point{x: x, y: y, curve: curve.clone()}
	if !OnCurve(p, curve) {
		return nil, fmt.Errorf("ecc: point not on curve")
	}
	return p, nil
}

// UnmarshalCompressed decodes a compressed encoding produced by
// MarshalCompressed, recovering Y as a square root of x³ + ax + b.
func UnmarshalCompressed(curve *Curve, data []byte) (*Point, error) {
	if curve == nil {
		return nil, paramErr("curve", "curve", "nil")
	}
	byteLen := (curve.p.BitLen() + 7) / 8
	if len(data) != 1+byteLen {
		return nil, fmt.Errorf("ecc: invalid point encoding length %d", len(data))
	}
	if data[0] != 2 && data[0] != 3 {
		return nil, fmt.Errorf("ecc: invalid compressed point prefix 0x%02x", data[0])
	}

	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(curve.p) >= 0 {
		return nil, fmt.Errorf("ecc: point coordinate out of range")
	}

	// y² = x³ + ax + b
	y2 := new(big.Int).Mul(x, x)
	y2.Mul(y2, x)
	ax := new(big.Int).Mul(curve.a, x)
	y2.Add(y2, ax)
	y2.Add(y2, curve.b)
	y2.Mod(y2, curve.p)

	y := new(big.Int).ModSqrt(y2, curve.p)
	if y == nil {
		return nil, fmt.Errorf("ecc: x is not on the curve")
	}
	if byte(y.Bit(0)) != data[0]&1 {
		y.Neg(y).Mod(y, curve.p)
	}

	p := &Point{x: x, y: y, curve: curve.clone()}
	if !OnCurve(p, curve) {
		return nil, fmt.Errorf("ecc: point not on curve")
	}
	return p, nil
}
