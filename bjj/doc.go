// Package bjj implements the [curve.Engine] interface for Baby Jubjub,
// the twisted Edwards curve defined over the scalar field of BN254.
//
// The engine performs its own point compression, unified addition and
// double-and-add scalar multiplication over the [field.Field] abstraction,
// rather than delegating to a curve library, because the device protocol
// fixes the exact wire encoding: 32-byte compressed points with Y in
// little-endian and the sign bit of X (X lexicographically larger than
// (p-1)/2) in the most significant bit of the last byte. The encoding is
// bit-compatible with gnark-crypto's Baby Jubjub marshaling, which the
// tests verify.
//
// # Parameters
//
// The curve parameters (a = -1 mod p rescaled form, d, generator, subgroup
// order) are sourced from gnark-crypto at init time. This is the parameter
// set the fy FROST aggregator uses; signatures produced over any other
// "Baby Jubjub" parameterization do not interoperate.
//
// # Timing
//
// Scalar multiplication branches on scalar bits and is therefore not
// constant-time. On the device the same algorithm runs inside the secure
// element; in a software deployment, secret-dependent multiplications leak
// timing. Callers handling long-lived secrets on shared hardware should
// take this into account.
package bjj
