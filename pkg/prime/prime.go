// Package prime implements probabilistic prime generation and testing over
// arbitrary-precision integers.
//
// The random source is an injected io.Reader. It is assumed, but never
// verified, to be cryptographically secure; callers who need crypto-strength
// primes must pass crypto/rand.Reader or an equivalent CSPRNG.
package prime

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Bit-length domain accepted by Generate.
const (
	MinBits = 16
	MaxBits = 4096
)

// ErrBitsOutOfRange is returned by Generate when the requested bit length
// falls outside [MinBits, MaxBits].
var ErrBitsOutOfRange = errors.New("prime: bits out of range [16, 4096]")

var one = big.NewInt(1)

// Generate produces a probable prime of exactly bits bits, read from the
// given random source.
//
// One byte of randomness decides whether the second-highest bit of every
// candidate is forced on or off, so the produced primes do not all cluster
// at the top of the range. Candidates are always odd with the top bit set.
// Each candidate is subjected to testRounds rounds of probabilistic
// primality testing; with safe set, (p-1)/2 must also test prime.
//
// Worst-case latency is unbounded, especially for safe primes at large bit
// lengths; bounding it is the caller's concern.
func Generate(random io.Reader, bits, testRounds int, safe bool) (*big.Int, error) {
	if random == nil {
		return nil, errors.New("prime: random source must not be nil")
	}
	if bits < MinBits || bits > MaxBits {
		return nil, fmt.Errorf("%w: got %d", ErrBitsOutOfRange, bits)
	}

	// Flip a coin for the second-highest bit, once per call.
	var coin [1]byte
	if _, err := io.ReadFull(random, coin[:]); err != nil {
		return nil, fmt.Errorf("prime: reading randomness: %w", err)
	}
	secondBit := uint(coin[0] & 1)

	buf := make([]byte, (bits+7)/8)
	p := new(big.Int)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("prime: reading randomness: %w", err)
		}
		p.SetBytes(buf)

		// Trim to the requested length, then pin the shape: top bit set
		// so the length is exact, second-highest bit per the coin flip,
		// low bit set so the candidate is odd.
		for p.BitLen() > bits {
			p.SetBit(p, p.BitLen()-1, 0)
		}
		p.SetBit(p, bits-1, 1)
		p.SetBit(p, bits-2, secondBit)
		p.SetBit(p, 0, 1)

		if !p.ProbablyPrime(testRounds) {
			continue
		}
		if safe {
			q := new(big.Int).Sub(p, one)
			q.Rsh(q, 1)
			if !q.ProbablyPrime(testRounds) {
				continue
			}
		}
		break
	}

	if p.BitLen() != bits {
		return nil, fmt.Errorf("prime: generated %d bits, want %d", p.BitLen(), bits)
	}
	return p, nil
}

// IsPrime reports whether a is probably prime, using testRounds rounds of
// the same probabilistic test Generate uses. Numbers below 2 are never
// prime.
func IsPrime(a *big.Int, testRounds int) (bool, error) {
	if a == nil {
		return false, errors.New("prime: argument a must be a non-nil integer")
	}
	if a.Cmp(big.NewInt(2)) < 0 {
		return false, nil
	}
	return a.ProbablyPrime(testRounds), nil
}
