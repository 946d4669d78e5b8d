// Package ed25519 implements the [curve.Engine] interface over Ed25519,
// using filippo.io/edwards25519 for the point and scalar arithmetic.
//
// Ed25519's native point encoding is already the module's wire format
// (Y little-endian, sign of X in the top bit of the last byte), so points
// pass through the library unchanged. Scalars cross the engine boundary in
// the module-wide big-endian convention and are reversed at the edges; the
// library keeps them canonical modulo the group order l.
//
// Unlike the Baby Jubjub engine, all operations here are constant-time,
// inherited from the underlying library.
package ed25519

import (
	"filippo.io/edwards25519"

	"github.com/f3rmion/fy-ledger/curve"
)

// orderEnc is l = 2^252 + 27742317777372353535851937790883648493,
// big-endian.
var orderEnc = curve.Scalar{
	0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x14, 0xde, 0xf9, 0xde, 0xa2, 0xf7, 0x9c, 0xd6,
	0x58, 0x12, 0x63, 0x1a, 0x5c, 0xf5, 0xd3, 0xed,
}

func init() {
	curve.Register(New())
}

// Engine implements [curve.Engine] for Ed25519.
type Engine struct{}

// New returns an Ed25519 engine.
func New() *Engine { return &Engine{} }

// ID returns the Ed25519 curve identifier.
func (e *Engine) ID() uint8 { return curve.IDEd25519 }

// Order returns the group order l.
func (e *Engine) Order() curve.Scalar { return orderEnc }

// Generator returns the standard Ed25519 base point.
func (e *Engine) Generator() curve.Point {
	var p curve.Point
	copy(p[:], edwards25519.NewGeneratorPoint().Bytes())
	return p
}

func reverse32(in [32]byte) [32]byte {
	var out [32]byte
	for i := range in {
		out[i] = in[31-i]
	}
	return out
}

// toScalar converts a big-endian scalar to the library representation.
// Values are reduced through the wide path, so non-canonical inputs
// cannot fault the arithmetic.
func toScalar(s curve.Scalar) *edwards25519.Scalar {
	le := reverse32(s)
	var wide [64]byte
	copy(wide[:], le[:])
	out, _ := edwards25519.NewScalar().SetUniformBytes(wide[:])
	return out
}

func fromScalar(s *edwards25519.Scalar) curve.Scalar {
	var le [32]byte
	copy(le[:], s.Bytes())
	return reverse32(le)
}

// BaseMult computes k * G.
func (e *Engine) BaseMult(k curve.Scalar) (curve.Point, error) {
	var p curve.Point
	copy(p[:], new(edwards25519.Point).ScalarBaseMult(toScalar(k)).Bytes())
	return p, nil
}

// ScalarMult computes k * p.
func (e *Engine) ScalarMult(k curve.Scalar, p curve.Point) (curve.Point, error) {
	pt, err := new(edwards25519.Point).SetBytes(p[:])
	if err != nil {
		return curve.Point{}, curve.ErrInvalidPoint
	}
	var out curve.Point
	copy(out[:], pt.ScalarMult(toScalar(k), pt).Bytes())
	return out, nil
}

// PointAdd computes p1 + p2.
func (e *Engine) PointAdd(p1, p2 curve.Point) (curve.Point, error) {
	a, err := new(edwards25519.Point).SetBytes(p1[:])
	if err != nil {
		return curve.Point{}, curve.ErrInvalidPoint
	}
	b, err := new(edwards25519.Point).SetBytes(p2[:])
	if err != nil {
		return curve.Point{}, curve.ErrInvalidPoint
	}
	var out curve.Point
	copy(out[:], a.Add(a, b).Bytes())
	return out, nil
}

// IsValidPoint reports whether p decodes to a point on the curve.
func (e *Engine) IsValidPoint(p curve.Point) bool {
	_, err := new(edwards25519.Point).SetBytes(p[:])
	return err == nil
}

// ScalarAdd computes (a + b) mod l.
func (e *Engine) ScalarAdd(a, b curve.Scalar) curve.Scalar {
	return fromScalar(edwards25519.NewScalar().Add(toScalar(a), toScalar(b)))
}

// ScalarSub computes (a - b) mod l.
func (e *Engine) ScalarSub(a, b curve.Scalar) curve.Scalar {
	return fromScalar(edwards25519.NewScalar().Subtract(toScalar(a), toScalar(b)))
}

// ScalarMul computes (a * b) mod l.
func (e *Engine) ScalarMul(a, b curve.Scalar) curve.Scalar {
	return fromScalar(edwards25519.NewScalar().Multiply(toScalar(a), toScalar(b)))
}

// ScalarInvert computes a^-1 mod l. It fails for the zero scalar.
func (e *Engine) ScalarInvert(a curve.Scalar) (curve.Scalar, error) {
	s := toScalar(a)
	if s.Equal(edwards25519.NewScalar()) == 1 {
		return curve.Scalar{}, curve.ErrArithmetic
	}
	return fromScalar(edwards25519.NewScalar().Invert(s)), nil
}

// Reduce interprets v as big-endian and reduces it modulo l.
func (e *Engine) Reduce(v [curve.ScalarSize]byte) curve.Scalar {
	return fromScalar(toScalar(v))
}

// ReduceWide reduces a 64-byte big-endian value modulo l.
func (e *Engine) ReduceWide(v [2 * curve.ScalarSize]byte) curve.Scalar {
	var le [64]byte
	for i := range v {
		le[i] = v[63-i]
	}
	s, _ := edwards25519.NewScalar().SetUniformBytes(le[:])
	return fromScalar(s)
}
