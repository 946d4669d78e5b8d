package curve

import "errors"

var (
	// ErrInvalidPoint is returned when a compressed encoding does not
	// describe a point on the curve: the Y coordinate yields no square
	// root for X, or the encoding is otherwise malformed.
	ErrInvalidPoint = errors.New("curve: invalid point encoding")

	// ErrArithmetic is returned when an internal field operation fails.
	// This is unreachable for valid curve points and indicates a bug or
	// corrupted state; callers should abort the current session.
	ErrArithmetic = errors.New("curve: internal arithmetic failure")

	// ErrUnknownCurve is returned by ByID for an unregistered curve
	// identifier.
	ErrUnknownCurve = errors.New("curve: unknown curve identifier")
)
