package bjj

import (
	"math/big"

	"github.com/f3rmion/fy-ledger/curve"
)

// Scalar-field arithmetic modulo the Baby Jubjub subgroup order.
//
// The subgroup order is not a field any big-number library in our stack
// exposes directly, so these operations run on big.Int with an explicit
// reduction, the same way the fy library handles its scalars.

func scalarInt(s curve.Scalar) *big.Int {
	return new(big.Int).SetBytes(s[:])
}

func scalarBytes(v *big.Int) curve.Scalar {
	var s curve.Scalar
	v.FillBytes(s[:])
	return s
}

// ScalarAdd computes (a + b) mod order.
func (e *Engine) ScalarAdd(a, b curve.Scalar) curve.Scalar {
	v := scalarInt(a)
	v.Add(v, scalarInt(b))
	v.Mod(v, order)
	return scalarBytes(v)
}

// ScalarSub computes (a - b) mod order.
func (e *Engine) ScalarSub(a, b curve.Scalar) curve.Scalar {
	v := scalarInt(a)
	v.Sub(v, scalarInt(b))
	v.Mod(v, order)
	return scalarBytes(v)
}

// ScalarMul computes (a * b) mod order.
func (e *Engine) ScalarMul(a, b curve.Scalar) curve.Scalar {
	v := scalarInt(a)
	v.Mul(v, scalarInt(b))
	v.Mod(v, order)
	return scalarBytes(v)
}

// ScalarInvert computes a^-1 mod order. It fails for the zero scalar.
func (e *Engine) ScalarInvert(a curve.Scalar) (curve.Scalar, error) {
	v := scalarInt(a)
	if v.Sign() == 0 {
		return curve.Scalar{}, curve.ErrArithmetic
	}
	v.ModInverse(v, order)
	return scalarBytes(v), nil
}

// Reduce interprets v as big-endian and reduces it modulo the order.
func (e *Engine) Reduce(v [curve.ScalarSize]byte) curve.Scalar {
	x := new(big.Int).SetBytes(v[:])
	x.Mod(x, order)
	return scalarBytes(x)
}

// ReduceWide reduces a 64-byte big-endian value modulo the order. The
// value is split into 32-byte halves, each reduced on its own, and
// recombined as high*(2^256 mod order) + low. This matches the device,
// which has no 512-bit reduction primitive.
func (e *Engine) ReduceWide(v [2 * curve.ScalarSize]byte) curve.Scalar {
	high := new(big.Int).SetBytes(v[:curve.ScalarSize])
	low := new(big.Int).SetBytes(v[curve.ScalarSize:])

	high.Mod(high, order)
	high.Mul(high, rWide)
	high.Mod(high, order)

	low.Mod(low, order)

	high.Add(high, low)
	high.Mod(high, order)
	return scalarBytes(high)
}
