package frost

import (
	"golang.org/x/crypto/blake2b"

	"github.com/f3rmion/fy-ledger/curve"
)

// DomainPrefix is the protocol-version label prefixed to every hash
// input. It must match the aggregator byte for byte; a different prefix
// derives different binding factors and challenges and produces
// signatures that never verify against the group key.
const DomainPrefix = "FROST-EDBABYJUJUB-BLAKE512-v1"

// Hash-to-scalar tags.
const (
	tagBindingFactor = "rho"
	tagChallenge     = "chal"
)

// hashToScalar computes Blake2b-512(DomainPrefix || tag || parts...),
// reverses the digest bytes (little-endian interpretation, matching the
// fy hasher) and reduces the result wide modulo the group order.
func hashToScalar(e curve.Engine, tag string, parts ...[]byte) curve.Scalar {
	h, _ := blake2b.New512(nil)
	h.Write([]byte(DomainPrefix))
	h.Write([]byte(tag))
	for _, p := range parts {
		h.Write(p)
	}
	digest := h.Sum(nil)

	var wide [2 * curve.ScalarSize]byte
	for i := range digest {
		wide[i] = digest[len(digest)-1-i]
	}
	return e.ReduceWide(wide)
}

// BindingFactor derives a signer's binding factor:
//
//	rho_i = H1(messageHash || encodedCommitmentList || signerID)
//
// signerID is the identifier in its 32-byte scalar encoding, exactly as it
// appears in the commitment list.
func BindingFactor(e curve.Engine, messageHash []byte, encodedList []byte, signerID curve.Scalar) curve.Scalar {
	return hashToScalar(e, tagBindingFactor, messageHash, encodedList, signerID[:])
}

// BindingFactors derives the binding factor of every participant in the
// commitment list, in list order.
func BindingFactors(e curve.Engine, messageHash []byte, entries []CommitmentEntry) []curve.Scalar {
	encoded := EncodeCommitmentList(entries)
	factors := make([]curve.Scalar, len(entries))
	for i, entry := range entries {
		factors[i] = BindingFactor(e, messageHash, encoded, IdentifierScalar(entry.ID))
	}
	return factors
}

// Challenge derives the Schnorr challenge:
//
//	c = H2(R || groupPublicKey || messageHash)
//
// where R is the aggregate group commitment.
func Challenge(e curve.Engine, groupCommitment, groupPublicKey curve.Point, messageHash []byte) curve.Scalar {
	return hashToScalar(e, tagChallenge, groupCommitment[:], groupPublicKey[:], messageHash)
}
