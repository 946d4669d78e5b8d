package session

import "errors"

var (
	// ErrInvalidState is returned when an operation is invoked out of
	// sequence. The session is left untouched.
	ErrInvalidState = errors.New("session: operation not valid in current state")

	// ErrInvalidData is returned for malformed inputs: wrong payload
	// lengths, a zero identifier, a participant count out of range, or
	// a commitment list that does not contain this signer.
	ErrInvalidData = errors.New("session: invalid data")

	// ErrUserRejected is returned when the approval gate declines an
	// operation.
	ErrUserRejected = errors.New("session: rejected by user")

	// ErrKeysNotLoaded is returned when an operation requires an
	// injected key share and none is present.
	ErrKeysNotLoaded = errors.New("session: no key share loaded")
)
