//go:build js && wasm

package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-eccrypto/pkg/ecc"
	"github.com/smallyu/go-eccrypto/pkg/prime"
)

// Thin JS bindings over the library. Integers cross the boundary as hex
// strings, since JS numbers cannot carry them.

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("go-eccrypto WASM initialized")

	js.Global().Set("GoECCrypto", map[string]interface{}{
		"GenerateKey":   js.FuncOf(GenerateKey),
		"Sign":          js.FuncOf(Sign),
		"Verify":        js.FuncOf(Verify),
		"GeneratePrime": js.FuncOf(GeneratePrime),
	})

	<-c
}

// curveByName maps the names accepted from JS to curve constructors.
func curveByName(name string) (*ecc.Curve, error) {
	switch name {
	case "secp256k1":
		return ecc.Secp256k1(), nil
	case "P-256":
		return ecc.P256(), nil
	case "P-384":
		return ecc.P384(), nil
	case "P-521":
		return ecc.P521(), nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}

func hexInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex integer %q", s)
	}
	return v, nil
}

// GenerateKey produces a key pair on the named curve.
// Arguments:
// 0: curve name (string)
// Returns:
// JSON {d, x, y} with hex-string values, or an "error: ..." string.
func GenerateKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (curveName)"
	}

	curve, err := curveByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	d, pub, err := ecc.GenerateKey(rand.Reader, curve)
	if err != nil {
		return fmt.Sprintf("error: keygen failed: %v", err)
	}

	resp := map[string]interface{}{
		"d": d.Text(16),
		"x": pub.X().Text(16),
		"y": pub.Y().Text(16),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Sign signs a hex digest.
// Arguments:
// 0: curve name, 1: digest hex, 2: private key hex, 3: nonce hex
// Returns:
// JSON {r, s} with hex-string values.
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (curveName, digestHex, dHex, kHex)"
	}

	curve, err := curveByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	d, err := hexInt(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := hexInt(args[3].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig, err := ecc.Sign([]byte(args[1].String()), d, k, curve)
	if err != nil {
		return fmt.Sprintf("error: sign failed: %v", err)
	}

	resp := map[string]interface{}{
		"r": sig.R().Text(16),
		"s": sig.S().Text(16),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Verify checks a signature.
// Arguments:
// 0: curve name, 1: digest hex, 2: JSON {r, s}, 3: JSON {x, y} public point
// Returns:
// bool, or an "error: ..." string.
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (curveName, digestHex, sigJSON, pubJSON)"
	}

	curve, err := curveByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	var sigDTO struct {
		R string `json:"r"`
		S string `json:"s"`
	}
	if err := json.Unmarshal([]byte(args[2].String()), &sigDTO); err != nil {
		return fmt.Sprintf("error: invalid signature json: %v", err)
	}
	r, err := hexInt(sigDTO.R)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	s, err := hexInt(sigDTO.S)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	sig, err := ecc.NewSignature(r, s)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	var pubDTO struct {
		X string `json:"x"`
		Y string `json:"y"`
	}
	if err := json.Unmarshal([]byte(args[3].String()), &pubDTO); err != nil {
		return fmt.Sprintf("error: invalid public key json: %v", err)
	}
	x, err := hexInt(pubDTO.X)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	y, err := hexInt(pubDTO.Y)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pub, err := ecc.NewPoint(x, y, curve)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	ok, err := ecc.Verify(sig, []byte(args[1].String()), pub, curve)
	if err != nil {
		return fmt.Sprintf("error: verify failed: %v", err)
	}
	return ok
}

// GeneratePrime produces a probable prime.
// Arguments:
// 0: bits (number), 1: test rounds (number), 2: safe (bool)
// Returns:
// hex string, or an "error: ..." string.
func GeneratePrime(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (bits, testRounds, safe)"
	}

	p, err := prime.Generate(rand.Reader, args[0].Int(), args[1].Int(), args[2].Bool())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return p.Text(16)
}
