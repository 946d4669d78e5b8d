// Package frost implements the participant-side protocol math of FROST
// (Flexible Round-Optimized Schnorr Threshold) signatures: identifier and
// commitment-list encodings, the domain-separated hash-to-scalar
// derivations for binding factors and challenges, Lagrange interpolation
// coefficients, group-commitment aggregation, and the partial-signature
// equation.
//
// Everything here is curve-agnostic: each function takes a [curve.Engine]
// and operates on the 32-byte wire encodings. The signing state machine in
// package session sequences these operations; an external coordinator
// aggregates the resulting signature shares.
//
// # Interoperability
//
// The hash derivations are bit-compatible with the fy library's Blake2b
// hasher: every digest is Blake2b-512 over the fixed [DomainPrefix], a tag
// ("rho" or "chal") and the message fields, and the 64-byte output is
// interpreted in reversed byte order before wide reduction modulo the
// group order. The reversal must not be "simplified" away; changing it
// changes every derived scalar and breaks compatibility with existing
// group keys.
package frost
