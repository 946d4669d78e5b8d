package frost

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/f3rmion/fy-ledger/curve"
)

const (
	// MaxParticipants bounds the size of a commitment list the signing
	// core accepts.
	MaxParticipants = 16

	// IdentifierSize is the padded wire size of a participant
	// identifier.
	IdentifierSize = 32

	// CommitmentEntrySize is the wire size of one commitment-list
	// entry: identifier || hiding point || binding point.
	CommitmentEntrySize = IdentifierSize + 2*curve.PointSize
)

// ErrInvalidCommitmentList is returned for malformed commitment-list
// bytes: a length that is not a multiple of the entry size, a zero
// identifier, or identifier padding that is not zero.
var ErrInvalidCommitmentList = errors.New("frost: invalid commitment list")

// CommitmentEntry is one participant's nonce commitments for a signing
// round.
type CommitmentEntry struct {
	ID      uint16
	Hiding  curve.Point
	Binding curve.Point
}

// IdentifierScalar encodes a participant identifier as a scalar: the
// value sits in the low two bytes of the big-endian encoding.
func IdentifierScalar(id uint16) curve.Scalar {
	var s curve.Scalar
	binary.BigEndian.PutUint16(s[curve.ScalarSize-2:], id)
	return s
}

// Encode serializes the entry into its 96-byte wire form.
func (c CommitmentEntry) Encode() [CommitmentEntrySize]byte {
	var out [CommitmentEntrySize]byte
	id := IdentifierScalar(c.ID)
	copy(out[:IdentifierSize], id[:])
	copy(out[IdentifierSize:], c.Hiding[:])
	copy(out[IdentifierSize+curve.PointSize:], c.Binding[:])
	return out
}

// DecodeCommitmentList parses a concatenation of 96-byte entries. Point
// validity is not checked here; the curve engine rejects invalid points
// when they are first used.
func DecodeCommitmentList(raw []byte) ([]CommitmentEntry, error) {
	if len(raw) == 0 || len(raw)%CommitmentEntrySize != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidCommitmentList, len(raw))
	}
	n := len(raw) / CommitmentEntrySize
	if n > MaxParticipants {
		return nil, fmt.Errorf("%w: %d entries", ErrInvalidCommitmentList, n)
	}

	entries := make([]CommitmentEntry, n)
	for i := range entries {
		chunk := raw[i*CommitmentEntrySize:]
		for _, b := range chunk[:IdentifierSize-2] {
			if b != 0 {
				return nil, fmt.Errorf("%w: entry %d identifier out of range", ErrInvalidCommitmentList, i)
			}
		}
		id := binary.BigEndian.Uint16(chunk[IdentifierSize-2 : IdentifierSize])
		if id == 0 {
			return nil, fmt.Errorf("%w: entry %d has zero identifier", ErrInvalidCommitmentList, i)
		}
		entries[i].ID = id
		copy(entries[i].Hiding[:], chunk[IdentifierSize:IdentifierSize+curve.PointSize])
		copy(entries[i].Binding[:], chunk[IdentifierSize+curve.PointSize:CommitmentEntrySize])
	}
	return entries, nil
}

// EncodeCommitmentList serializes the list for hashing. The entries are
// already canonical, so this is a plain concatenation; it is kept as a
// named step because the binding-factor derivation is defined over the
// encoded list.
func EncodeCommitmentList(entries []CommitmentEntry) []byte {
	out := make([]byte, 0, len(entries)*CommitmentEntrySize)
	for _, entry := range entries {
		enc := entry.Encode()
		out = append(out, enc[:]...)
	}
	return out
}

// Identifiers extracts the participant identifiers in list order.
func Identifiers(entries []CommitmentEntry) []uint16 {
	ids := make([]uint16, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	return ids
}

// GroupCommitment aggregates the per-participant commitments into the
// group commitment:
//
//	R = sum_i (Hiding_i + rho_i * Binding_i)
//
// factors must hold one binding factor per entry, in list order. The sum
// is accumulated in list order so the computation is reproducible, though
// the group law makes the result order-independent.
func GroupCommitment(e curve.Engine, entries []CommitmentEntry, factors []curve.Scalar) (curve.Point, error) {
	if len(entries) == 0 || len(factors) != len(entries) {
		return curve.Point{}, fmt.Errorf("%w: %d entries, %d binding factors", ErrInvalidCommitmentList, len(entries), len(factors))
	}

	var sum curve.Point
	for i, entry := range entries {
		weighted, err := e.ScalarMult(factors[i], entry.Binding)
		if err != nil {
			return curve.Point{}, fmt.Errorf("frost: participant %d binding point: %w", entry.ID, err)
		}
		term, err := e.PointAdd(entry.Hiding, weighted)
		if err != nil {
			return curve.Point{}, fmt.Errorf("frost: participant %d hiding point: %w", entry.ID, err)
		}
		if i == 0 {
			sum = term
			continue
		}
		sum, err = e.PointAdd(sum, term)
		if err != nil {
			return curve.Point{}, err
		}
	}
	return sum, nil
}
