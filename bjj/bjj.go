package bjj

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"

	"github.com/f3rmion/fy-ledger/curve"
	"github.com/f3rmion/fy-ledger/field"
)

// Curve parameters, loaded once from gnark-crypto. This is the canonical
// parameter set: a = -1 mod p in the rescaled twisted Edwards form, with
// the generator and subgroup order used by the fy aggregator. The older
// a = 168700 parameterization is a different, non-interoperable curve and
// is deliberately not supported.
var (
	paramA    field.Element
	paramD    field.Element
	paramOne  field.Element
	halfPrime field.Element // (p-1)/2, for the compression sign rule
	generator affine
	order     *big.Int
	orderEnc  curve.Scalar
	rWide     *big.Int // 2^256 mod order, for wide reduction
)

func init() {
	params := twistededwards.GetEdwardsCurve()

	paramA = params.A.Bytes()
	paramD = params.D.Bytes()
	paramOne[field.ElementSize-1] = 1
	generator.x = params.Base.X.Bytes()
	generator.y = params.Base.Y.Bytes()

	order = new(big.Int).Set(&params.Order)
	order.FillBytes(orderEnc[:])

	half := new(big.Int).Sub(fieldModulus(), big.NewInt(1))
	half.Rsh(half, 1)
	half.FillBytes(halfPrime[:])

	rWide = new(big.Int).Lsh(big.NewInt(1), 256)
	rWide.Mod(rWide, order)

	curve.Register(New())
}

func fieldModulus() *big.Int {
	m := field.BN254{}.Modulus()
	return new(big.Int).SetBytes(m[:])
}

// affine is an uncompressed point. It exists only inside the arithmetic;
// every value crossing the package boundary is compressed.
type affine struct {
	x, y field.Element
}

var identity = affine{y: field.Element{field.ElementSize - 1: 1}}

// Engine implements [curve.Engine] for Baby Jubjub. All point arithmetic
// runs over the [field.Field] collaborator; the engine itself only
// sequences field operations.
type Engine struct {
	f field.Field
}

// New returns a Baby Jubjub engine over the gnark-crypto BN254 field.
func New() *Engine {
	return &Engine{f: field.BN254{}}
}

// ID returns the Baby Jubjub curve identifier.
func (e *Engine) ID() uint8 { return curve.IDBabyJubjub }

// Order returns the subgroup order.
func (e *Engine) Order() curve.Scalar { return orderEnc }

// Generator returns the compressed base point.
func (e *Engine) Generator() curve.Point {
	return compress(generator)
}

// isXLargest reports whether x > (p-1)/2, comparing the big-endian
// encodings. Equality classifies as not largest.
func isXLargest(x field.Element) bool {
	for i := 0; i < field.ElementSize; i++ {
		if x[i] > halfPrime[i] {
			return true
		}
		if x[i] < halfPrime[i] {
			return false
		}
	}
	return false
}

// compress serializes a point: Y in little-endian, with the top bit of the
// last byte set when X is lexicographically largest.
func compress(p affine) curve.Point {
	var out curve.Point
	for i := 0; i < curve.PointSize; i++ {
		out[i] = p.y[field.ElementSize-1-i]
	}
	if isXLargest(p.x) {
		out[curve.PointSize-1] |= 0x80
	}
	return out
}

// decompress recovers the affine point from its compressed form. It fails
// with [curve.ErrInvalidPoint] when the encoding does not describe a curve
// point.
func (e *Engine) decompress(cp curve.Point) (affine, error) {
	sign := cp[curve.PointSize-1]&0x80 != 0
	cp[curve.PointSize-1] &= 0x7f

	var p affine
	for i := 0; i < field.ElementSize; i++ {
		p.y[i] = cp[curve.PointSize-1-i]
	}

	// x^2 = (y^2 - 1) / (d*y^2 - a)
	y2 := e.f.MulMod(p.y, p.y)
	num := e.f.SubMod(y2, paramOne)
	den := e.f.SubMod(e.f.MulMod(paramD, y2), paramA)
	denInv, err := e.f.InvertMod(den)
	if err != nil {
		return affine{}, curve.ErrInvalidPoint
	}
	x2 := e.f.MulMod(num, denInv)

	x, err := e.f.SqrtMod(x2)
	if err != nil {
		return affine{}, curve.ErrInvalidPoint
	}

	// Two roots exist; pick the one matching the sign bit.
	if isXLargest(x) != sign {
		x = e.f.SubMod(field.Element{}, x)
	}
	p.x = x
	return p, nil
}

// add computes the unified twisted Edwards sum of two affine points:
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 - a*x1*x2) / (1 - d*x1*x2*y1*y2)
//
// The curve is complete, so the same formula doubles. The denominators are
// never zero for points on the curve; an inversion failure here means
// corrupted state.
func (e *Engine) add(p1, p2 affine) (affine, error) {
	xx := e.f.MulMod(p1.x, p2.x)
	yy := e.f.MulMod(p1.y, p2.y)
	xy := e.f.MulMod(p1.x, p2.y)
	yx := e.f.MulMod(p1.y, p2.x)
	dxy := e.f.MulMod(paramD, e.f.MulMod(xx, yy))

	xDen, err := e.f.InvertMod(e.f.AddMod(paramOne, dxy))
	if err != nil {
		return affine{}, curve.ErrArithmetic
	}
	yDen, err := e.f.InvertMod(e.f.SubMod(paramOne, dxy))
	if err != nil {
		return affine{}, curve.ErrArithmetic
	}

	return affine{
		x: e.f.MulMod(e.f.AddMod(xy, yx), xDen),
		y: e.f.MulMod(e.f.SubMod(yy, e.f.MulMod(paramA, xx)), yDen),
	}, nil
}

// mul computes k * p by double-and-add, consuming the scalar bits from
// least to most significant. The conditional add branches on scalar bits,
// so this is not constant-time; see the package documentation.
func (e *Engine) mul(k curve.Scalar, p affine) (affine, error) {
	acc := identity
	pow := p

	var err error
	for byteIdx := curve.ScalarSize - 1; byteIdx >= 0; byteIdx-- {
		b := k[byteIdx]
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) != 0 {
				acc, err = e.add(acc, pow)
				if err != nil {
					return affine{}, err
				}
			}
			pow, err = e.add(pow, pow)
			if err != nil {
				return affine{}, err
			}
		}
	}
	return acc, nil
}

// isOnCurve evaluates a*x^2 + y^2 == 1 + d*x^2*y^2 over the field.
func (e *Engine) isOnCurve(p affine) bool {
	x2 := e.f.MulMod(p.x, p.x)
	y2 := e.f.MulMod(p.y, p.y)
	lhs := e.f.AddMod(e.f.MulMod(paramA, x2), y2)
	rhs := e.f.AddMod(paramOne, e.f.MulMod(paramD, e.f.MulMod(x2, y2)))
	return lhs == rhs
}

// BaseMult computes k * G.
func (e *Engine) BaseMult(k curve.Scalar) (curve.Point, error) {
	r, err := e.mul(k, generator)
	if err != nil {
		return curve.Point{}, err
	}
	return compress(r), nil
}

// ScalarMult computes k * p.
func (e *Engine) ScalarMult(k curve.Scalar, p curve.Point) (curve.Point, error) {
	pt, err := e.decompress(p)
	if err != nil {
		return curve.Point{}, err
	}
	r, err := e.mul(k, pt)
	if err != nil {
		return curve.Point{}, err
	}
	return compress(r), nil
}

// PointAdd computes p1 + p2.
func (e *Engine) PointAdd(p1, p2 curve.Point) (curve.Point, error) {
	a1, err := e.decompress(p1)
	if err != nil {
		return curve.Point{}, err
	}
	a2, err := e.decompress(p2)
	if err != nil {
		return curve.Point{}, err
	}
	r, err := e.add(a1, a2)
	if err != nil {
		return curve.Point{}, err
	}
	return compress(r), nil
}

// IsValidPoint reports whether p decompresses to a point on the curve.
func (e *Engine) IsValidPoint(p curve.Point) bool {
	_, err := e.decompress(p)
	return err == nil
}
