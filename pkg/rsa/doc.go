// Package rsa implements textbook RSA: key generation, unpadded
// encryption and signing, and recovery of the private key from an
// undersized public key by trial division.
//
// Signing is raw m^d mod n and encryption is raw m^e mod n. Without a
// padding scheme both are malleable and deterministic, and nothing in this
// package is constant time. Use crypto/rsa for anything real.
package rsa
