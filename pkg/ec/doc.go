// Package ec implements the group law of short Weierstrass elliptic curves
// y^2 = x^3 + a*x + b over prime fields, in affine coordinates on math/big.
//
// A [Curve] is an immutable handle; a [Point] is an immutable value bound
// to one handle. Group operations refuse to mix points of different
// handles even when the parameters coincide:
//
//	g := ec.P256().Generator()
//	pub, _ := g.ScalarMultiply(secret)
//	shared, _ := peerPub.ScalarMultiply(secret)
//
// The predefined curves are the NIST prime curves P-192, P-224 and P-256,
// plus secp256k1, the G1 group of BN254 and Wei25519. Custom curves can be
// built with [NewCurve] or loaded from YAML with [LoadCurves].
//
// Nothing in this package is constant time. It is meant for studying the
// arithmetic, not for protecting secrets.
package ec
