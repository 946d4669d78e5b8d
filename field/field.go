package field

import "errors"

// ElementSize is the canonical encoding size of a field element.
const ElementSize = 32

// Element is a prime-field element in [0, p), encoded as 32 bytes
// big-endian.
type Element [ElementSize]byte

var (
	// ErrNotInvertible is returned by InvertMod for the zero element.
	ErrNotInvertible = errors.New("field: element is not invertible")

	// ErrNoSquareRoot is returned by SqrtMod for quadratic
	// non-residues.
	ErrNoSquareRoot = errors.New("field: element has no square root")
)

// Field provides modular arithmetic over a prime field. It abstracts the
// big-number engine the curve arithmetic is built on; any constant-time
// implementation over the right modulus satisfies it.
//
// Inputs are reduced modulo p on entry, so callers may pass any 32-byte
// big-endian value.
type Field interface {
	// AddMod computes (a + b) mod p.
	AddMod(a, b Element) Element
	// SubMod computes (a - b) mod p.
	SubMod(a, b Element) Element
	// MulMod computes (a * b) mod p.
	MulMod(a, b Element) Element
	// InvertMod computes a^-1 mod p.
	InvertMod(a Element) (Element, error)
	// SqrtMod computes a square root of a mod p, if one exists. Which
	// of the two roots is returned is implementation-defined; callers
	// needing a specific root must select it themselves.
	SqrtMod(a Element) (Element, error)
	// Modulus returns p.
	Modulus() Element
}
