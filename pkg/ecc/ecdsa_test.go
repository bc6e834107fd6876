package ecc

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexDigest(msg []byte) []byte {
	sum := sha256.Sum256(msg)
	return []byte(hex.EncodeToString(sum[:]))
}

// randScalar draws a nonzero scalar below q.
func randScalar(t *testing.T, c *Curve) *big.Int {
	t.Helper()
	k, err := rand.Int(rand.Reader, c.Q())
	require.NoError(t, err)
	if k.Sign() == 0 {
		k.SetInt64(1)
	}
	return k
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, c := range []*Curve{Secp256k1(), P256()} {
		d := randScalar(t, c)
		k := randScalar(t, c)
		pub, err := ScalarMul(c.G(), d, c)
		require.NoError(t, err)

		digest := hexDigest([]byte("round trip message"))
		sig, err := Sign(digest, d, k, c)
		require.NoError(t, err, "curve %s", c.Name())

		ok, err := Verify(sig, digest, pub, c)
		require.NoError(t, err)
		assert.True(t, ok, "curve %s: signature must verify", c.Name())

		// any change to the digest must break verification
		tampered := hexDigest([]byte("round trip messagE"))
		ok, err = Verify(sig, tampered, pub, c)
		require.NoError(t, err)
		assert.False(t, ok, "curve %s: tampered digest must not verify", c.Name())

		// a different key must not verify
		otherPub, err := ScalarMul(c.G(), randScalar(t, c), c)
		require.NoError(t, err)
		ok, err = Verify(sig, digest, otherPub, c)
		require.NoError(t, err)
		assert.False(t, ok, "curve %s: wrong key must not verify", c.Name())
	}
}

func TestSignAgainstStandardLibrary(t *testing.T) {
	// Signatures produced here must verify under crypto/ecdsa, and vice
	// versa, for the same key on P-256.
	c := P256()
	d := randScalar(t, c)
	pub, err := ScalarMul(c.G(), d, c)
	require.NoError(t, err)

	stdPub := ecdsa.PublicKey{Curve: elliptic.P256(), X: pub.X(), Y: pub.Y()}
	stdPriv := &ecdsa.PrivateKey{PublicKey: stdPub, D: d}

	sum := sha256.Sum256([]byte("interop"))
	digest := []byte(hex.EncodeToString(sum[:]))

	// ours -> stdlib
	k := randScalar(t, c)
	sig, err := Sign(digest, d, k, c)
	require.NoError(t, err)
	assert.True(t, ecdsa.Verify(&stdPub, sum[:], sig.R(), sig.S()),
		"crypto/ecdsa must accept our signature")

	// stdlib -> ours
	r, s, err := ecdsa.Sign(rand.Reader, stdPriv, sum[:])
	require.NoError(t, err)
	stdSig, err := NewSignature(r, s)
	require.NoError(t, err)
	ok, err := Verify(stdSig, digest, pub, c)
	require.NoError(t, err)
	assert.True(t, ok, "we must accept a crypto/ecdsa signature")
}

func TestSignDigestTruncation(t *testing.T) {
	// A 512-bit digest on a 256-bit order: the excess low bits are
	// dropped. crypto/ecdsa applies the same rule, so it is the oracle.
	c := P256()
	d := randScalar(t, c)
	pub, err := ScalarMul(c.G(), d, c)
	require.NoError(t, err)
	stdPub := ecdsa.PublicKey{Curve: elliptic.P256(), X: pub.X(), Y: pub.Y()}

	sum := sha512.Sum512([]byte("long digest"))
	digest := []byte(hex.EncodeToString(sum[:]))

	k := randScalar(t, c)
	sig, err := Sign(digest, d, k, c)
	require.NoError(t, err)

	assert.True(t, ecdsa.Verify(&stdPub, sum[:], sig.R(), sig.S()))

	ok, err := Verify(sig, digest, pub, c)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSignDeterministicForFixedNonce(t *testing.T) {
	// Same digest, key and nonce: identical signature, no hidden state.
	c := Secp256k1()
	d := big.NewInt(0x1eadbeef)
	k := big.NewInt(0x5eed)
	digest := hexDigest([]byte("fixed"))

	s1, err := Sign(digest, d, k, c)
	require.NoError(t, err)
	s2, err := Sign(digest, d, k, c)
	require.NoError(t, err)
	assert.True(t, SignatureEqual(s1, s2))
}

func TestSignatureEqual(t *testing.T) {
	s1, err := NewSignature(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	s2, err := NewSignature(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	s3, err := NewSignature(big.NewInt(1), big.NewInt(3))
	require.NoError(t, err)

	assert.True(t, SignatureEqual(s1, s2))
	assert.True(t, s1.Equal(s2))
	assert.False(t, SignatureEqual(s1, s3))

	_, err = NewSignature(nil, big.NewInt(1))
	assert.Error(t, err)
}

func TestVerifyNonInvertibleS(t *testing.T) {
	c := Secp256k1()
	pub, err := ScalarMul(c.G(), big.NewInt(7), c)
	require.NoError(t, err)

	// s = q shares every factor with the order; the inverse cannot exist
	sig, err := NewSignature(big.NewInt(1), c.Q())
	require.NoError(t, err)
	_, err = Verify(sig, hexDigest([]byte("x")), pub, c)
	assert.ErrorIs(t, err, ErrNoInverse)
}

func TestSignBadDigest(t *testing.T) {
	c := Secp256k1()
	_, err := Sign([]byte("not-hex!"), big.NewInt(1), big.NewInt(2), c)
	require.Error(t, err)
	var perr *ParameterError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "digest", perr.Name)

	_, err = Sign(nil, big.NewInt(1), big.NewInt(2), c)
	assert.Error(t, err)
}

func TestVerifyCurveMismatch(t *testing.T) {
	k1 := Secp256k1()
	sig, err := NewSignature(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	foreign := P256().G()

	_, err = Verify(sig, hexDigest([]byte("x")), foreign, k1)
	assert.ErrorIs(t, err, ErrCurveMismatch)
}
