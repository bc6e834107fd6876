package prime

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"
)

func TestGenerateBitLength(t *testing.T) {
	for i := 0; i < 20; i++ {
		p, err := Generate(rand.Reader, 256, 25, false)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if p.BitLen() != 256 {
			t.Errorf("got %d bits, want 256", p.BitLen())
		}
		ok, err := IsPrime(p, 25)
		if err != nil {
			t.Fatalf("IsPrime failed: %v", err)
		}
		if !ok {
			t.Errorf("generated composite %s", p)
		}
	}
}

func TestGenerateSmallest(t *testing.T) {
	p, err := Generate(rand.Reader, MinBits, 25, false)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if p.BitLen() != MinBits {
		t.Errorf("got %d bits, want %d", p.BitLen(), MinBits)
	}
}

func TestGenerateSafe(t *testing.T) {
	p, err := Generate(rand.Reader, 64, 25, true)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	q := new(big.Int).Sub(p, big.NewInt(1))
	q.Rsh(q, 1)
	ok, err := IsPrime(q, 25)
	if err != nil {
		t.Fatalf("IsPrime failed: %v", err)
	}
	if !ok {
		t.Errorf("(p-1)/2 = %s is not prime for safe prime %s", q, p)
	}
}

func TestGenerateBitsOutOfRange(t *testing.T) {
	for _, bits := range []int{15, 4097, 0, -1} {
		_, err := Generate(rand.Reader, bits, 25, false)
		if !errors.Is(err, ErrBitsOutOfRange) {
			t.Errorf("bits=%d: expected ErrBitsOutOfRange, got %v", bits, err)
		}
	}
}

func TestGenerateReaderFailure(t *testing.T) {
	// An exhausted reader must surface as an error, not hang or panic.
	short := bytes.NewReader([]byte{0x01})
	if _, err := Generate(short, 64, 25, false); err == nil {
		t.Fatal("expected error from exhausted reader")
	}
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{2, true},
		{3, true},
		{4, false},
		{17, true},
		{561, false}, // Carmichael number
		{7919, true},
		{1, false},
		{0, false},
		{-7, false},
	}
	for _, tt := range tests {
		got, err := IsPrime(big.NewInt(tt.n), 25)
		if err != nil {
			t.Fatalf("IsPrime(%d) failed: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestIsPrimeNil(t *testing.T) {
	if _, err := IsPrime(nil, 25); err == nil {
		t.Fatal("expected error for nil argument")
	}
}
