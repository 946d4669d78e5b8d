package field

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254 implements [Field] over the BN254 scalar field, which is the base
// field of Baby Jubjub. Arithmetic is delegated to gnark-crypto's fr
// implementation.
//
// The zero value is ready to use.
type BN254 struct{}

var bn254Modulus Element

func init() {
	fr.Modulus().FillBytes(bn254Modulus[:])
}

func fromBytes(e Element) fr.Element {
	var x fr.Element
	x.SetBytes(e[:])
	return x
}

// AddMod computes (a + b) mod p.
func (BN254) AddMod(a, b Element) Element {
	x, y := fromBytes(a), fromBytes(b)
	x.Add(&x, &y)
	return x.Bytes()
}

// SubMod computes (a - b) mod p.
func (BN254) SubMod(a, b Element) Element {
	x, y := fromBytes(a), fromBytes(b)
	x.Sub(&x, &y)
	return x.Bytes()
}

// MulMod computes (a * b) mod p.
func (BN254) MulMod(a, b Element) Element {
	x, y := fromBytes(a), fromBytes(b)
	x.Mul(&x, &y)
	return x.Bytes()
}

// InvertMod computes a^-1 mod p.
func (BN254) InvertMod(a Element) (Element, error) {
	x := fromBytes(a)
	if x.IsZero() {
		return Element{}, ErrNotInvertible
	}
	x.Inverse(&x)
	return x.Bytes(), nil
}

// SqrtMod computes a square root of a mod p. It fails if a is a quadratic
// non-residue.
func (BN254) SqrtMod(a Element) (Element, error) {
	x := fromBytes(a)
	var root fr.Element
	if root.Sqrt(&x) == nil {
		return Element{}, ErrNoSquareRoot
	}
	return root.Bytes(), nil
}

// Modulus returns the BN254 scalar field modulus.
func (BN254) Modulus() Element {
	return bn254Modulus
}
