package curve

// Sizes of the wire encodings shared by every curve. Both supported curves
// use 32-byte compressed points and 32-byte scalars, which keeps the
// command/response payload layout identical across curve selections.
const (
	ScalarSize = 32
	PointSize  = 32
)

// Scalar is an integer in [0, order), encoded as 32 bytes big-endian.
type Scalar [ScalarSize]byte

// Point is a compressed curve point: the Y coordinate in little-endian
// byte order, with the sign bit of X packed into the most significant bit
// of the last byte.
type Point [PointSize]byte

// Curve identifiers carried in key-share payloads.
const (
	IDBabyJubjub uint8 = 0x00
	IDEd25519    uint8 = 0x01
)

// Engine provides the point and scalar-field operations of a single
// twisted Edwards curve. All values cross the interface in their canonical
// wire encodings: compressed points, big-endian scalars.
//
// Implementations must reject malformed compressed points with
// [ErrInvalidPoint] and must never panic on attacker-controlled input.
type Engine interface {
	// ID returns the curve identifier.
	ID() uint8
	// Order returns the subgroup order as a big-endian scalar encoding.
	Order() Scalar
	// Generator returns the compressed base point.
	Generator() Point

	// BaseMult computes k * G.
	BaseMult(k Scalar) (Point, error)
	// ScalarMult computes k * p.
	ScalarMult(k Scalar, p Point) (Point, error)
	// PointAdd computes p1 + p2. The addition is unified: it is valid
	// when p1 == p2.
	PointAdd(p1, p2 Point) (Point, error)
	// IsValidPoint reports whether p decodes to a point on the curve.
	IsValidPoint(p Point) bool

	// ScalarAdd computes (a + b) mod order.
	ScalarAdd(a, b Scalar) Scalar
	// ScalarSub computes (a - b) mod order.
	ScalarSub(a, b Scalar) Scalar
	// ScalarMul computes (a * b) mod order.
	ScalarMul(a, b Scalar) Scalar
	// ScalarInvert computes a^-1 mod order. It fails if a is zero.
	ScalarInvert(a Scalar) (Scalar, error)
	// Reduce interprets v as a big-endian integer and reduces it
	// modulo the order.
	Reduce(v [ScalarSize]byte) Scalar
	// ReduceWide reduces a 64-byte big-endian value modulo the order.
	// Hash-to-scalar derivations use this to avoid the bias of a
	// single-width reduction.
	ReduceWide(v [2 * ScalarSize]byte) Scalar
}

// IsZero reports whether s is the zero scalar.
func (s Scalar) IsZero() bool {
	var acc byte
	for _, b := range s {
		acc |= b
	}
	return acc == 0
}
