// Package nora holds the error taxonomy shared by the go-nora-crypto
// packages.
//
// Every failure surfaced by the arithmetic, curve and RSA packages is one
// of three kinds, each with a sentinel for errors.Is and a typed error for
// errors.As:
//
//   - [ErrNoInverse] / [NoInverseError]: a modular inverse was requested for
//     a non-invertible pair (curve doubling of a 2-torsion point, or an RSA
//     exponent that shares a factor with the totient).
//   - [ErrCurveMismatch] / [CurveMismatchError]: a group operation mixed
//     points from two distinct curve instances.
//   - [ErrInvalidInput] / [InvalidInputError]: an argument was out of range
//     (plaintext not below the modulus, bit length not a multiple of 8, ...).
//
// This is a teaching library. Nothing here is constant time and RSA is
// textbook (unpadded).
package nora
