package ecc

import (
	"fmt"
	"math/big"
)

// Signature is an ECDSA signature pair (r, s). Values are copied in and
// out; equality compares (r, s) only.
type Signature struct {
	r, s *big.Int
}

// NewSignature constructs a signature from its two components.
func NewSignature(r, s *big.Int) (*Signature, error) {
	if r == nil {
		return nil, paramErr("r", "integer", "nil")
	}
	if s == nil {
		return nil, paramErr("s", "integer", "nil")
	}
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}, nil
}

// R returns a copy of the r component.
func (sig *Signature) R() *big.Int { return new(big.Int).Set(sig.r) }

// S returns a copy of the s component.
func (sig *Signature) S() *big.Int { return new(big.Int).Set(sig.s) }

// Equal reports whether both components match.
func (sig *Signature) Equal(other *Signature) bool {
	return SignatureEqual(sig, other)
}

// SignatureEqual reports whether two signatures have equal (r, s).
func SignatureEqual(s1, s2 *Signature) bool {
	if s1 == nil || s2 == nil {
		return s1 == s2
	}
	return s1.r.Cmp(s2.r) == 0 && s1.s.Cmp(s2.s) == 0
}

// String implements fmt.Stringer.
func (sig *Signature) String() string {
	return fmt.Sprintf("<Signature r=%s s=%s>", sig.r, sig.s)
}

// Sign produces an ECDSA signature over the given hex-encoded digest with
// private key d and nonce k: R = k·G, r = R.x mod q,
// s = k⁻¹(e + d·r) mod q.
//
// The nonce k is entirely caller-supplied. It is not generated, not
// checked for uniqueness and not range-checked here. Reusing a nonce, or
// using a predictable one, leaks the private key; callers must draw k
// fresh from a CSPRNG for every signature.
//
// The digest is ASCII hex interpreted as a big-endian integer; when its
// bit count (4 per hex character) exceeds the order's bit length, the
// excess low bits are discarded, as FIPS 186 prescribes.
func Sign(digestHex []byte, d, k *big.Int, curve *Curve) (*Signature, error) {
	if d == nil {
		return nil, paramErr("d", "integer", "nil")
	}
	if k == nil {
		return nil, paramErr("k", "integer", "nil")
	}
	if curve == nil {
		return nil, paramErr("curve", "curve", "nil")
	}

	e, err := digestToInt(digestHex, curve)
	if err != nil {
		return nil, err
	}

	rp, err := ScalarMul(curve.G(), k, curve)
	if err != nil {
		return nil, err
	}
	r := rp.X()
	r.Mod(r, curve.q)

	kinv := new(big.Int).ModInverse(k, curve.q)
	if kinv == nil {
		return nil, fmt.Errorf("%w: nonce not coprime to order", ErrNoInverse)
	}

	s := new(big.Int).Mul(d, r)
	s.Add(s, e)
	s.Mul(s, kinv)
	s.Mod(s, curve.q)

	return &Signature{r: r, s: s}, nil
}

// Verify checks an ECDSA signature over the given hex-encoded digest
// against the public key Q: w = s⁻¹ mod q, u1 = e·w, u2 = r·w, and the
// signature is valid iff (u1·G + u2·Q).x mod q equals r. The combined
// multiplication uses ShamirMul.
//
// r and s are used as given, without a range check against [1, q-1]; a
// zero or out-of-range component simply fails to verify (or, for s not
// coprime to q, surfaces as ErrNoInverse).
func Verify(sig *Signature, digestHex []byte, pub *Point, curve *Curve) (bool, error) {
	if sig == nil {
		return false, paramErr("signature", "signature", "nil")
	}
	if curve == nil {
		return false, paramErr("curve", "curve", "nil")
	}
	if err := checkPoint("Q", pub, curve); err != nil {
		return false, err
	}

	e, err := digestToInt(digestHex, curve)
	if err != nil {
		return false, err
	}

	w := new(big.Int).ModInverse(sig.s, curve.q)
	if w == nil {
		return false, fmt.Errorf("%w: s not coprime to order", ErrNoInverse)
	}

	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, curve.q)
	u2 := new(big.Int).Mul(sig.r, w)
	u2.Mod(u2, curve.q)

	x, err := ShamirMul(curve.G(), u1, pub, u2, curve)
	if err != nil {
		return false, err
	}

	xr := x.X()
	xr.Mod(xr, curve.q)
	return xr.Cmp(sig.r) == 0, nil
}

// digestToInt parses an ASCII-hex digest as a big-endian integer and
// applies the order-length truncation shared by Sign and Verify. The bit
// count is taken from the hex length (4 bits per character), not from the
// numeric value, so leading zero digits count.
func digestToInt(digestHex []byte, curve *Curve) (*big.Int, error) {
	if digestHex == nil {
		return nil, paramErr("digest", "hex-encoded bytes", "nil")
	}
	e, ok := new(big.Int).SetString(string(digestHex), 16)
	if !ok {
		return nil, paramErr("digest", "hex-encoded bytes", string(digestHex))
	}

	digestBits := len(digestHex) * 4
	orderBits := curve.q.BitLen()
	if digestBits > orderBits {
		e.Rsh(e, uint(digestBits-orderBits))
	}
	return e, nil
}
