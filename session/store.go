package session

import (
	"fmt"

	"github.com/f3rmion/fy-ledger/curve"
	"github.com/f3rmion/fy-ledger/frost"
)

// KeyShareStore holds a participant's long-lived key share: the group
// public key, the participant identifier and the secret share produced by
// a DKG ceremony. On the device this is an NVRAM slot; [MemoryStore] is
// the in-process reference implementation.
type KeyShareStore interface {
	// Inject stores a key share, replacing any previous one.
	Inject(curveID uint8, groupPublicKey curve.Point, identifier uint16, secretShare curve.Scalar) error
	// HasKeys reports whether a key share is present.
	HasKeys() bool
	// CurveID returns the curve identifier the share was created for.
	CurveID() uint8
	// Identifier returns the participant identifier. Non-zero whenever
	// HasKeys is true.
	Identifier() uint16
	// GroupPublicKey returns the combined group public key.
	GroupPublicKey() curve.Point
	// SecretShare returns a copy of the secret share. It exists solely
	// for the partial-signature computation; the share must never cross
	// an external interface, and callers must zeroize the copy after
	// use.
	SecretShare() curve.Scalar
	// Clear overwrites the entire stored share with zero bytes.
	Clear()
}

// MemoryStore is an in-memory [KeyShareStore].
//
// The zero value is an empty store ready for use.
type MemoryStore struct {
	initialized bool
	curveID     uint8
	identifier  uint16
	groupKey    curve.Point
	secretShare curve.Scalar
}

// Inject stores a key share. The identifier must be non-zero.
func (m *MemoryStore) Inject(curveID uint8, groupPublicKey curve.Point, identifier uint16, secretShare curve.Scalar) error {
	if identifier == 0 {
		return fmt.Errorf("%w: zero identifier", ErrInvalidData)
	}
	m.curveID = curveID
	m.identifier = identifier
	m.groupKey = groupPublicKey
	m.secretShare = secretShare
	m.initialized = true
	return nil
}

// HasKeys reports whether a key share is present.
func (m *MemoryStore) HasKeys() bool { return m.initialized }

// CurveID returns the stored curve identifier.
func (m *MemoryStore) CurveID() uint8 { return m.curveID }

// Identifier returns the participant identifier.
func (m *MemoryStore) Identifier() uint16 { return m.identifier }

// GroupPublicKey returns the group public key.
func (m *MemoryStore) GroupPublicKey() curve.Point { return m.groupKey }

// SecretShare returns a copy of the secret share.
func (m *MemoryStore) SecretShare() curve.Scalar { return m.secretShare }

// Clear performs a full overwrite of the stored share.
func (m *MemoryStore) Clear() {
	frost.ZeroizeAll(m.secretShare[:], m.groupKey[:])
	m.curveID = 0
	m.identifier = 0
	m.initialized = false
}
