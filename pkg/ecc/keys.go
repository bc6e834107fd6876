package ecc

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// GenerateKey draws a private scalar d uniformly from [1, q-1] using the
// given random source and returns it with the public point Q = d·G.
func GenerateKey(random io.Reader, curve *Curve) (*big.Int, *Point, error) {
	if random == nil {
		return nil, nil, paramErr("random", "io.Reader", "nil")
	}
	if curve == nil {
		return nil, nil, paramErr("curve", "curve", "nil")
	}

	qMinus1 := new(big.Int).Sub(curve.q, big.NewInt(1))
	if qMinus1.Sign() <= 0 {
		return nil, nil, paramErr("curve", "order q > 1", curve.q.String())
	}

	d, err := rand.Int(random, qMinus1)
	if err != nil {
		return nil, nil, fmt.Errorf("ecc: reading randomness: %w", err)
	}
	d.Add(d, big.NewInt(1))

	pub, err := ScalarMul(curve.G(), d, curve)
	if err != nil {
		return nil, nil, err
	}
	return d, pub, nil
}
