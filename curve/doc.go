// Package curve defines the abstract curve interface used by the FROST
// signing core.
//
// The device exchanges every cryptographic value in a fixed wire form:
// 32-byte compressed points (Y little-endian with the sign bit of X in the
// top bit of the last byte) and 32-byte big-endian scalars. The [Engine]
// interface expresses all point and scalar-field operations directly over
// these encodings, so the protocol layer above never handles curve
// internals.
//
// Two engines implement the interface:
//
//   - Baby Jubjub (package bjj), identifier 0x00
//   - Ed25519 (package ed25519), identifier 0x01
//
// Engines register themselves at init time; select one at runtime with
// [ByID] using the curve identifier carried in the key-share payload:
//
//	import _ "github.com/f3rmion/fy-ledger/bjj"
//
//	e, err := curve.ByID(curve.IDBabyJubjub)
package curve
