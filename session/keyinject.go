package session

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/f3rmion/fy-ledger/curve"
	"github.com/f3rmion/fy-ledger/frost"
)

// KeySharePayloadSize is the wire size of a key-injection payload:
// group public key (32) || identifier (32) || secret share (32).
const KeySharePayloadSize = curve.PointSize + frost.IdentifierSize + curve.ScalarSize

// FingerprintSize is the length of the group-key fingerprint shown at the
// approval gate.
const FingerprintSize = 4

// InjectKeyShare parses a key-injection payload, asks the approver to
// confirm it, and persists the share into the store. curveID names the
// curve the share was generated for and must match the engine. The
// identifier is read from the low two bytes of its 32-byte field and
// must be non-zero; the group public key must be a valid point on the
// engine's curve.
//
// The local copy of the secret share is zeroized before return. The
// caller remains responsible for wiping the payload buffer itself.
func InjectKeyShare(e curve.Engine, store KeyShareStore, approver Approver, curveID uint8, payload []byte) error {
	if curveID != e.ID() {
		return fmt.Errorf("%w: key share is for curve %#02x, engine is %#02x", ErrInvalidData, curveID, e.ID())
	}
	if len(payload) != KeySharePayloadSize {
		return fmt.Errorf("%w: key payload is %d bytes, want %d", ErrInvalidData, len(payload), KeySharePayloadSize)
	}

	var groupKey curve.Point
	copy(groupKey[:], payload[:curve.PointSize])

	idField := payload[curve.PointSize : curve.PointSize+frost.IdentifierSize]
	identifier := binary.BigEndian.Uint16(idField[frost.IdentifierSize-2:])
	if identifier == 0 {
		return fmt.Errorf("%w: zero identifier", ErrInvalidData)
	}

	if !e.IsValidPoint(groupKey) {
		return fmt.Errorf("session: group public key: %w", curve.ErrInvalidPoint)
	}

	var secretShare curve.Scalar
	copy(secretShare[:], payload[curve.PointSize+frost.IdentifierSize:])
	defer frost.Zeroize(secretShare[:])

	fingerprint := sha256.Sum256(groupKey[:])
	if !approver.ConfirmKeyInjection(fingerprint[:FingerprintSize], identifier) {
		return ErrUserRejected
	}

	if err := store.Inject(e.ID(), groupKey, identifier, secretShare); err != nil {
		return fmt.Errorf("session: storing key share: %w", err)
	}
	return nil
}
