package ecc

import (
	"errors"
	"fmt"
)

// Common errors returned by the ecc package.
var (
	// ErrCurveMismatch is returned when an operation receives points whose
	// curve parameters do not agree with each other or with the curve
	// argument.
	ErrCurveMismatch = errors.New("ecc: curve parameters do not match")

	// ErrNoInverse is returned when a required modular inverse does not
	// exist, e.g. a signature nonce or s value not coprime to the order.
	ErrNoInverse = errors.New("ecc: no modular inverse exists")

	// ErrInfinity is returned when the point at infinity reaches an
	// operation that has no representation for it, such as serialization.
	ErrInfinity = errors.New("ecc: point at infinity")
)

// ParameterError reports a constructor or setter argument of the wrong kind
// or domain. It names the offending argument and states what was expected.
type ParameterError struct {
	Name     string // argument name, e.g. "p" or "digest"
	Expected string // expected kind or domain
	Got      string // what was actually received
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("ecc: argument %s: expected %s, got %s", e.Name, e.Expected, e.Got)
}

func paramErr(name, expected, got string) *ParameterError {
	return &ParameterError{Name: name, Expected: expected, Got: got}
}
