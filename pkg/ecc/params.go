package ecc

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Named-curve constructors. Each call returns a fresh, independently
// mutable Curve value; the library holds no shared curve state.

// Secp256k1 returns the secp256k1 curve (a = 0, b = 7), with parameters
// taken from the decred implementation.
func Secp256k1() *Curve {
	params := secp256k1.S256().Params()
	c, _ := NewCurve(params.P, new(big.Int), params.B, params.N, params.Gx, params.Gy)
	c.SetName("secp256k1")
	c.SetOID([]byte{0x2b, 0x81, 0x04, 0x00, 0x0a}) // 1.3.132.0.10
	return c
}

// P256 returns the NIST P-256 curve.
func P256() *Curve {
	c := fromNIST(elliptic.P256().Params(), "P-256")
	c.SetOID([]byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x03, 0x01, 0x07}) // 1.2.840.10045.3.1.7
	return c
}

// P384 returns the NIST P-384 curve.
func P384() *Curve {
	c := fromNIST(elliptic.P384().Params(), "P-384")
	c.SetOID([]byte{0x2b, 0x81, 0x04, 0x00, 0x22}) // 1.3.132.0.34
	return c
}

// P521 returns the NIST P-521 curve.
func P521() *Curve {
	c := fromNIST(elliptic.P521().Params(), "P-521")
	c.SetOID([]byte{0x2b, 0x81, 0x04, 0x00, 0x23}) // 1.3.132.0.35
	return c
}

// fromNIST builds a Curve from stdlib parameters. CurveParams carries no a
// coefficient; for the NIST prime curves a = -3 mod p.
func fromNIST(params *elliptic.CurveParams, name string) *Curve {
	a := new(big.Int).Sub(params.P, big.NewInt(3))
	c, _ := NewCurve(params.P, a, params.B, params.N, params.Gx, params.Gy)
	c.SetName(name)
	return c
}
