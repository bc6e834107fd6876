package ecc

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	c := Secp256k1()
	d, pub, err := GenerateKey(rand.Reader, c)
	require.NoError(t, err)

	assert.True(t, d.Sign() > 0 && d.Cmp(c.Q()) < 0, "d must lie in [1, q-1]")
	assert.True(t, OnCurve(pub, c))
	assert.False(t, pub.IsInfinity())

	// public point must agree with the reference implementation
	wantX, wantY := secp256k1.S256().ScalarBaseMult(d.Bytes())
	assert.Zero(t, pub.X().Cmp(wantX))
	assert.Zero(t, pub.Y().Cmp(wantY))
}

func TestGenerateKeyTinyOrder(t *testing.T) {
	c, err := NewCurve(
		big.NewInt(17), big.NewInt(2), big.NewInt(2),
		big.NewInt(19), big.NewInt(5), big.NewInt(1),
	)
	require.NoError(t, err)

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		d, pub, err := GenerateKey(rand.Reader, c)
		require.NoError(t, err)
		require.True(t, d.Sign() > 0 && d.Cmp(c.Q()) < 0)
		assert.True(t, OnCurve(pub, c))
		seen[d.Int64()] = true
	}
	assert.Greater(t, len(seen), 1, "keys should vary")
}

func TestGenerateKeyNilArguments(t *testing.T) {
	if _, _, err := GenerateKey(nil, Secp256k1()); err == nil {
		t.Error("nil reader accepted")
	}
	if _, _, err := GenerateKey(rand.Reader, nil); err == nil {
		t.Error("nil curve accepted")
	}
}
