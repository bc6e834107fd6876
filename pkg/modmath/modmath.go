// Package modmath provides arbitrary-precision modular arithmetic helpers:
// modular exponentiation, modular inverse and greatest common divisor.
//
// All functions treat their arguments as read-only and return freshly
// allocated values.
package modmath

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrEvenModulus is returned by Exp when the modulus is even and the
	// safe fallback was not requested. The Montgomery reduction used for
	// the fast path requires an odd modulus; set safe or use FastPow.
	ErrEvenModulus = errors.New("modmath: exptmod needs odd modulus, set safe or use FastPow")

	// ErrNoInverse is returned by InvMod when gcd(a, b) != 1.
	ErrNoInverse = errors.New("modmath: no modular inverse exists")
)

var one = big.NewInt(1)

// Exp computes a^b mod c.
//
// For odd c it uses the Montgomery-based exponentiation of math/big. For
// even c the Montgomery fast path is unavailable: the call fails with
// ErrEvenModulus unless safe is true, in which case it falls back to the
// plain square-and-multiply of FastPow.
//
// The two paths agree only for b >= 0. A negative b on the odd path is
// interpreted as (a^-1)^|b| mod c (ErrNoInverse when a is not invertible),
// whereas FastPow treats any non-positive exponent as zero and returns 1.
func Exp(a, b, c *big.Int, safe bool) (*big.Int, error) {
	if err := requireInt("a", a); err != nil {
		return nil, err
	}
	if err := requireInt("b", b); err != nil {
		return nil, err
	}
	if err := requireInt("c", c); err != nil {
		return nil, err
	}

	if c.Bit(0) == 1 {
		r := new(big.Int).Exp(a, b, c)
		if r == nil {
			// negative exponent with a not invertible mod c
			return nil, ErrNoInverse
		}
		return r, nil
	}
	if !safe {
		return nil, ErrEvenModulus
	}
	return FastPow(a, b, c), nil
}

// FastPow computes a^b mod c by binary square-and-multiply. It works for
// any modulus, odd or even.
//
// The loop keeps x = a^(2^i) and folds a factor into y whenever the low
// bit of the remaining exponent is set; the exponent strictly decreases,
// so it terminates in O(log b) iterations. A non-positive exponent leaves
// the accumulator at its initial value of 1.
func FastPow(a, b, c *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	e := new(big.Int).Set(b)
	y := big.NewInt(1)

	for e.Sign() > 0 {
		if e.Bit(0) == 0 {
			// x = x^2 mod c, e = e / 2
			x.Mul(x, x)
			x.Mod(x, c)
			e.Rsh(e, 1)
		} else {
			// y = x * y mod c, e = e - 1
			y.Mul(x, y)
			y.Mod(y, c)
			e.Sub(e, one)
		}
	}
	return y
}

// InvMod computes the multiplicative inverse of a modulo b. It fails with
// ErrNoInverse when a and b are not coprime.
func InvMod(a, b *big.Int) (*big.Int, error) {
	if err := requireInt("a", a); err != nil {
		return nil, err
	}
	if err := requireInt("b", b); err != nil {
		return nil, err
	}

	inv := new(big.Int).ModInverse(a, b)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b *big.Int) (*big.Int, error) {
	if err := requireInt("a", a); err != nil {
		return nil, err
	}
	if err := requireInt("b", b); err != nil {
		return nil, err
	}
	return new(big.Int).GCD(nil, nil, a, b), nil
}

// requireInt rejects a nil big.Int argument, naming the offender.
func requireInt(name string, v *big.Int) error {
	if v == nil {
		return fmt.Errorf("modmath: argument %s must be a non-nil integer", name)
	}
	return nil
}
