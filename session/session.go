package session

import (
	"fmt"
	"io"

	"github.com/f3rmion/fy-ledger/curve"
	"github.com/f3rmion/fy-ledger/frost"
)

// State identifies the signing session's position in the protocol.
type State uint8

const (
	// StateIdle is the initial and terminal state. Only Commit leaves
	// it.
	StateIdle State = iota
	// StateCommitted holds freshly generated nonces and their
	// commitments.
	StateCommitted
	// StateMessageSet additionally holds the message hash; the
	// commitment list is being transferred.
	StateMessageSet
	// StateCommitmentsSet holds the complete commitment list; the
	// session is ready for PartialSign.
	StateCommitmentsSet
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCommitted:
		return "committed"
	case StateMessageSet:
		return "message-set"
	case StateCommitmentsSet:
		return "commitments-set"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Approver is the on-device confirmation gate. Implementations present
// the operation to the holder and return their decision; returning false
// aborts the operation with [ErrUserRejected].
type Approver interface {
	// ConfirmSign asks the holder to approve signing the message hash.
	ConfirmSign(messageHash []byte) bool
	// ConfirmKeyInjection asks the holder to approve storing a key
	// share, identified by a short fingerprint of the group key and the
	// participant identifier.
	ConfirmKeyInjection(fingerprint []byte, identifier uint16) bool
}

// Session is the signing state machine for a single participant. It owns
// the ephemeral nonces, the most sensitive values in the system, and
// guarantees they are overwritten with zeros whenever a signing attempt
// completes, fails or is abandoned.
//
// A Session is driven by one sequential command dispatcher; it performs
// no internal locking.
type Session struct {
	engine curve.Engine
	store  KeyShareStore

	state State

	hidingNonce  curve.Scalar
	bindingNonce curve.Scalar

	hidingCommit  curve.Point
	bindingCommit curve.Point

	messageHash [curve.ScalarSize]byte

	numParticipants int
	received        int
	commitments     [frost.MaxParticipants * frost.CommitmentEntrySize]byte
}

// New creates an idle session bound to a curve engine and a key-share
// store.
func New(e curve.Engine, store KeyShareStore) *Session {
	return &Session{engine: e, store: store}
}

// State returns the current protocol state.
func (s *Session) State() State { return s.state }

// Reset zeroizes all session secrets and returns to the idle state. It is
// valid in every state.
func (s *Session) Reset() {
	frost.ZeroizeAll(
		s.hidingNonce[:],
		s.bindingNonce[:],
		s.hidingCommit[:],
		s.bindingCommit[:],
		s.messageHash[:],
		s.commitments[:],
	)
	s.numParticipants = 0
	s.received = 0
	s.state = StateIdle
}

// Commit starts a signing attempt: it draws both nonces from rng, reduces
// them modulo the group order, and returns the corresponding hiding and
// binding commitments. Valid only in the idle state with a key share
// present. Any failure resets the session with nonces zeroized.
func (s *Session) Commit(rng io.Reader) (hiding, binding curve.Point, err error) {
	if !s.store.HasKeys() {
		return curve.Point{}, curve.Point{}, ErrKeysNotLoaded
	}
	if s.state != StateIdle {
		return curve.Point{}, curve.Point{}, fmt.Errorf("%w: commit in state %v", ErrInvalidState, s.state)
	}

	var seed [curve.ScalarSize]byte
	if _, err := io.ReadFull(rng, seed[:]); err != nil {
		s.Reset()
		return curve.Point{}, curve.Point{}, fmt.Errorf("session: nonce generation: %w", err)
	}
	s.hidingNonce = s.engine.Reduce(seed)
	if _, err := io.ReadFull(rng, seed[:]); err != nil {
		s.Reset()
		return curve.Point{}, curve.Point{}, fmt.Errorf("session: nonce generation: %w", err)
	}
	s.bindingNonce = s.engine.Reduce(seed)
	frost.Zeroize(seed[:])

	s.hidingCommit, err = s.engine.BaseMult(s.hidingNonce)
	if err != nil {
		s.Reset()
		return curve.Point{}, curve.Point{}, err
	}
	s.bindingCommit, err = s.engine.BaseMult(s.bindingNonce)
	if err != nil {
		s.Reset()
		return curve.Point{}, curve.Point{}, err
	}

	s.state = StateCommitted
	return s.hidingCommit, s.bindingCommit, nil
}

// InjectMessage stores the 32-byte hash of the message being signed.
// Valid only in the committed state.
func (s *Session) InjectMessage(hash []byte) error {
	if !s.store.HasKeys() {
		return ErrKeysNotLoaded
	}
	if s.state != StateCommitted {
		return fmt.Errorf("%w: inject message in state %v", ErrInvalidState, s.state)
	}
	if len(hash) != len(s.messageHash) {
		return fmt.Errorf("%w: message hash is %d bytes, want %d", ErrInvalidData, len(hash), len(s.messageHash))
	}

	copy(s.messageHash[:], hash)
	s.state = StateMessageSet
	return nil
}

// InjectCommitments begins the commitment-list transfer. numParticipants
// declares how many 96-byte entries the full list holds and must be
// within [2, MaxParticipants]; chunk carries the first part of the list.
// The returned count is the cumulative number of bytes received, so the
// caller can verify completion. Calling InjectCommitments again restarts
// the transfer.
//
// The session moves to the commitments-set state as soon as the declared
// total has arrived; bytes beyond the total are discarded.
func (s *Session) InjectCommitments(numParticipants int, chunk []byte) (int, error) {
	if !s.store.HasKeys() {
		return 0, ErrKeysNotLoaded
	}
	if s.state != StateMessageSet {
		return 0, fmt.Errorf("%w: inject commitments in state %v", ErrInvalidState, s.state)
	}
	if numParticipants < 2 || numParticipants > frost.MaxParticipants {
		return 0, fmt.Errorf("%w: %d participants", ErrInvalidData, numParticipants)
	}

	s.numParticipants = numParticipants
	s.received = 0
	frost.Zeroize(s.commitments[:])

	return s.appendCommitments(chunk), nil
}

// InjectCommitmentsMore continues a transfer started by
// InjectCommitments, returning the cumulative byte count.
func (s *Session) InjectCommitmentsMore(chunk []byte) (int, error) {
	if !s.store.HasKeys() {
		return 0, ErrKeysNotLoaded
	}
	if s.state != StateMessageSet || s.numParticipants == 0 {
		return 0, fmt.Errorf("%w: no commitment transfer in progress", ErrInvalidState)
	}

	return s.appendCommitments(chunk), nil
}

func (s *Session) appendCommitments(chunk []byte) int {
	total := s.numParticipants * frost.CommitmentEntrySize
	if n := total - s.received; len(chunk) > n {
		chunk = chunk[:n]
	}
	copy(s.commitments[s.received:], chunk)
	s.received += len(chunk)

	if s.received >= total {
		s.state = StateCommitmentsSet
	}
	return s.received
}

// PartialSign produces this participant's signature share. Valid only
// once the full commitment list is present, and gated on the approver.
//
// Whatever the outcome, the session returns to idle with both nonces
// zeroized before PartialSign returns: a signature share can be produced
// at most once per Commit.
func (s *Session) PartialSign(approver Approver) (curve.Scalar, error) {
	if s.state != StateCommitmentsSet {
		return curve.Scalar{}, fmt.Errorf("%w: partial sign in state %v", ErrInvalidState, s.state)
	}
	if !s.store.HasKeys() {
		s.Reset()
		return curve.Scalar{}, ErrKeysNotLoaded
	}

	defer s.Reset()

	if !approver.ConfirmSign(s.messageHash[:]) {
		return curve.Scalar{}, ErrUserRejected
	}

	entries, err := frost.DecodeCommitmentList(s.commitments[:s.received])
	if err != nil {
		return curve.Scalar{}, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	ids := frost.Identifiers(entries)

	factors := frost.BindingFactors(s.engine, s.messageHash[:], entries)

	myID := s.store.Identifier()
	selfIdx := -1
	for i, id := range ids {
		if id == myID {
			selfIdx = i
			break
		}
	}
	if selfIdx < 0 {
		return curve.Scalar{}, fmt.Errorf("%w: signer %d not in commitment list", ErrInvalidData, myID)
	}

	groupCommitment, err := frost.GroupCommitment(s.engine, entries, factors)
	if err != nil {
		return curve.Scalar{}, err
	}

	challenge := frost.Challenge(s.engine, groupCommitment, s.store.GroupPublicKey(), s.messageHash[:])

	secretShare := s.store.SecretShare()
	defer frost.Zeroize(secretShare[:])

	return frost.PartialSignature(
		s.engine,
		s.hidingNonce, s.bindingNonce,
		factors[selfIdx], secretShare, challenge,
		myID, ids,
	)
}
