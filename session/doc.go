// Package session implements the signing-session state machine of a
// single FROST participant, modeled on the command flow of a hardware
// signing device.
//
// A signing attempt walks four states:
//
//	Idle -> Committed -> MessageSet -> CommitmentsSet -> Idle
//
// driven by [Session.Commit], [Session.InjectMessage],
// [Session.InjectCommitments] (with [Session.InjectCommitmentsMore] for a
// second chunk) and [Session.PartialSign]. Calls out of sequence fail with
// [ErrInvalidState] and leave the session untouched.
//
// # Secret handling
//
// The session owns the two ephemeral nonces. They are generated inside
// Commit, never exposed, and overwritten with zero bytes on every path
// out of PartialSign (success, approval rejection, malformed input or
// internal failure) as well as on [Session.Reset]. Reusing a nonce pair
// for two partial signatures would reveal the secret share, so a Commit
// buys exactly one PartialSign.
//
// The long-lived key share lives behind the [KeyShareStore] interface;
// [InjectKeyShare] parses the post-DKG injection payload and persists it
// after the [Approver] gate confirms. The secret share is read from the
// store only inside PartialSign and the local copy is wiped immediately
// after use.
//
// The package assumes the device's execution model: one sequential
// command dispatcher, no concurrent calls.
package session
