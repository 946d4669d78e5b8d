package frost

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"golang.org/x/crypto/blake2b"

	"github.com/f3rmion/fy-ledger/bjj"
	"github.com/f3rmion/fy-ledger/curve"
	"github.com/f3rmion/fy-ledger/ed25519"
)

func testEngines() map[string]curve.Engine {
	return map[string]curve.Engine{
		"bjj":     bjj.New(),
		"ed25519": ed25519.New(),
	}
}

func randomScalar(t *testing.T, e curve.Engine) curve.Scalar {
	t.Helper()
	var wide [2 * curve.ScalarSize]byte
	if _, err := rand.Read(wide[:]); err != nil {
		t.Fatal(err)
	}
	return e.ReduceWide(wide)
}

func randomMessage(t *testing.T) []byte {
	t.Helper()
	msg := make([]byte, 32)
	if _, err := rand.Read(msg); err != nil {
		t.Fatal(err)
	}
	return msg
}

// polyShare evaluates the degree-1 sharing polynomial s + a*x at the
// participant's identifier.
func polyShare(e curve.Engine, s, a curve.Scalar, id uint16) curve.Scalar {
	return e.ScalarAdd(s, e.ScalarMul(a, IdentifierScalar(id)))
}

func TestIdentifierScalar(t *testing.T) {
	s := IdentifierScalar(0x0102)
	var want curve.Scalar
	want[curve.ScalarSize-2] = 0x01
	want[curve.ScalarSize-1] = 0x02
	if s != want {
		t.Errorf("IdentifierScalar(0x0102) = %x", s)
	}
}

func TestCommitmentListCodec(t *testing.T) {
	e := bjj.New()
	entry := func(id uint16) CommitmentEntry {
		h, err := e.BaseMult(randomScalar(t, e))
		if err != nil {
			t.Fatal(err)
		}
		b, err := e.BaseMult(randomScalar(t, e))
		if err != nil {
			t.Fatal(err)
		}
		return CommitmentEntry{ID: id, Hiding: h, Binding: b}
	}

	t.Run("RoundTrip", func(t *testing.T) {
		in := []CommitmentEntry{entry(1), entry(5), entry(9)}
		decoded, err := DecodeCommitmentList(EncodeCommitmentList(in))
		if err != nil {
			t.Fatal(err)
		}
		if len(decoded) != len(in) {
			t.Fatalf("decoded %d entries, want %d", len(decoded), len(in))
		}
		for i := range in {
			if decoded[i] != in[i] {
				t.Errorf("entry %d = %+v, want %+v", i, decoded[i], in[i])
			}
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := DecodeCommitmentList(nil); !errors.Is(err, ErrInvalidCommitmentList) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("BadLength", func(t *testing.T) {
		raw := make([]byte, CommitmentEntrySize+1)
		if _, err := DecodeCommitmentList(raw); !errors.Is(err, ErrInvalidCommitmentList) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("TooManyEntries", func(t *testing.T) {
		raw := make([]byte, (MaxParticipants+1)*CommitmentEntrySize)
		if _, err := DecodeCommitmentList(raw); !errors.Is(err, ErrInvalidCommitmentList) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("ZeroIdentifier", func(t *testing.T) {
		enc := entry(1).Encode()
		enc[IdentifierSize-2] = 0
		enc[IdentifierSize-1] = 0
		if _, err := DecodeCommitmentList(enc[:]); !errors.Is(err, ErrInvalidCommitmentList) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("NonZeroPadding", func(t *testing.T) {
		enc := entry(1).Encode()
		enc[0] = 0xaa
		if _, err := DecodeCommitmentList(enc[:]); !errors.Is(err, ErrInvalidCommitmentList) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("Identifiers", func(t *testing.T) {
		in := []CommitmentEntry{entry(3), entry(1), entry(7)}
		ids := Identifiers(in)
		want := []uint16{3, 1, 7}
		for i := range want {
			if ids[i] != want[i] {
				t.Errorf("ids = %v, want %v", ids, want)
				break
			}
		}
	})
}

// Interpolating the shares at zero with the Lagrange coefficients must
// give back the secret, for every 2-of-3 signer set.
func TestLagrangeReconstruction(t *testing.T) {
	for name, e := range testEngines() {
		t.Run(name, func(t *testing.T) {
			s := randomScalar(t, e)
			a := randomScalar(t, e)

			shares := map[uint16]curve.Scalar{}
			for _, id := range []uint16{1, 2, 3} {
				shares[id] = polyShare(e, s, a, id)
			}

			sets := [][]uint16{{1, 2}, {1, 3}, {2, 3}, {1, 2, 3}}
			for _, ids := range sets {
				var sum curve.Scalar
				for _, id := range ids {
					lambda, err := LagrangeCoefficient(e, id, ids)
					if err != nil {
						t.Fatal(err)
					}
					sum = e.ScalarAdd(sum, e.ScalarMul(lambda, shares[id]))
				}
				if sum != s {
					t.Errorf("set %v: reconstructed %x, want %x", ids, sum, s)
				}
			}
		})
	}
}

// The binding factor must equal an independent evaluation of
// Blake2b-512(prefix || "rho" || msg || list || id), read little-endian
// and reduced modulo the group order.
func TestBindingFactorReference(t *testing.T) {
	e := bjj.New()
	msg := randomMessage(t)
	id := IdentifierScalar(7)
	list := make([]byte, 2*CommitmentEntrySize)
	if _, err := rand.Read(list); err != nil {
		t.Fatal(err)
	}

	got := BindingFactor(e, msg, list, id)

	h, _ := blake2b.New512(nil)
	h.Write([]byte(DomainPrefix))
	h.Write([]byte("rho"))
	h.Write(msg)
	h.Write(list)
	h.Write(id[:])
	digest := h.Sum(nil)
	for i, j := 0, len(digest)-1; i < j; i, j = i+1, j-1 {
		digest[i], digest[j] = digest[j], digest[i]
	}
	orderEnc := e.Order()
	v := new(big.Int).SetBytes(digest)
	v.Mod(v, new(big.Int).SetBytes(orderEnc[:]))
	var want curve.Scalar
	v.FillBytes(want[:])

	if got != want {
		t.Errorf("BindingFactor = %x, want %x", got, want)
	}
}

func TestBindingFactorsPerSigner(t *testing.T) {
	e := bjj.New()
	msg := randomMessage(t)
	g := e.Generator()
	entries := []CommitmentEntry{
		{ID: 1, Hiding: g, Binding: g},
		{ID: 2, Hiding: g, Binding: g},
	}

	factors := BindingFactors(e, msg, entries)
	if len(factors) != 2 {
		t.Fatalf("got %d factors", len(factors))
	}
	// Identical commitments, distinct identifiers: the factors must
	// still differ.
	if factors[0] == factors[1] {
		t.Error("binding factors collide across signers")
	}

	encoded := EncodeCommitmentList(entries)
	if factors[0] != BindingFactor(e, msg, encoded, IdentifierScalar(1)) {
		t.Error("BindingFactors disagrees with BindingFactor")
	}
}

func TestChallenge(t *testing.T) {
	e := bjj.New()
	msg := randomMessage(t)
	g := e.Generator()

	c1 := Challenge(e, g, g, msg)
	c2 := Challenge(e, g, g, msg)
	if c1 != c2 {
		t.Error("challenge not deterministic")
	}

	other := randomMessage(t)
	if bytes.Equal(msg, other) {
		t.Fatal("duplicate random message")
	}
	if Challenge(e, g, g, other) == c1 {
		t.Error("challenge ignores the message")
	}
}

// The aggregate commitment must equal the scalar-side computation
// sum_i (d_i + rho_i * e_i) applied to the generator.
func TestGroupCommitment(t *testing.T) {
	for name, e := range testEngines() {
		t.Run(name, func(t *testing.T) {
			msg := randomMessage(t)

			type signer struct {
				id   uint16
				d, e curve.Scalar
			}
			signers := []signer{
				{id: 1, d: randomScalar(t, e), e: randomScalar(t, e)},
				{id: 2, d: randomScalar(t, e), e: randomScalar(t, e)},
				{id: 3, d: randomScalar(t, e), e: randomScalar(t, e)},
			}

			entries := make([]CommitmentEntry, len(signers))
			for i, sg := range signers {
				h, err := e.BaseMult(sg.d)
				if err != nil {
					t.Fatal(err)
				}
				b, err := e.BaseMult(sg.e)
				if err != nil {
					t.Fatal(err)
				}
				entries[i] = CommitmentEntry{ID: sg.id, Hiding: h, Binding: b}
			}

			factors := BindingFactors(e, msg, entries)
			got, err := GroupCommitment(e, entries, factors)
			if err != nil {
				t.Fatal(err)
			}

			var k curve.Scalar
			for i, sg := range signers {
				k = e.ScalarAdd(k, e.ScalarAdd(sg.d, e.ScalarMul(factors[i], sg.e)))
			}
			want, err := e.BaseMult(k)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("R = %x, want %x", got, want)
			}
		})
	}
}

func TestGroupCommitmentMismatchedFactors(t *testing.T) {
	e := bjj.New()
	g := e.Generator()
	entries := []CommitmentEntry{{ID: 1, Hiding: g, Binding: g}}
	if _, err := GroupCommitment(e, entries, nil); err == nil {
		t.Error("expected error for missing binding factors")
	}
	if _, err := GroupCommitment(e, nil, nil); err == nil {
		t.Error("expected error for empty list")
	}
}

// Full signing round: deal 2-of-3 shares, run two signers through the
// protocol and verify the aggregate as a plain Schnorr signature.
func TestSignAndVerify(t *testing.T) {
	for name, e := range testEngines() {
		t.Run(name, func(t *testing.T) {
			secret := randomScalar(t, e)
			coeff := randomScalar(t, e)
			groupKey, err := e.BaseMult(secret)
			if err != nil {
				t.Fatal(err)
			}

			signerIDs := []uint16{1, 3}
			msg := randomMessage(t)

			type signer struct {
				id    uint16
				share curve.Scalar
				d, e  curve.Scalar
			}
			signers := make([]signer, len(signerIDs))
			entries := make([]CommitmentEntry, len(signerIDs))
			for i, id := range signerIDs {
				sg := signer{
					id:    id,
					share: polyShare(e, secret, coeff, id),
					d:     randomScalar(t, e),
					e:     randomScalar(t, e),
				}
				h, err := e.BaseMult(sg.d)
				if err != nil {
					t.Fatal(err)
				}
				b, err := e.BaseMult(sg.e)
				if err != nil {
					t.Fatal(err)
				}
				signers[i] = sg
				entries[i] = CommitmentEntry{ID: id, Hiding: h, Binding: b}
			}

			factors := BindingFactors(e, msg, entries)
			groupCommit, err := GroupCommitment(e, entries, factors)
			if err != nil {
				t.Fatal(err)
			}
			challenge := Challenge(e, groupCommit, groupKey, msg)

			var z curve.Scalar
			for i, sg := range signers {
				zi, err := PartialSignature(e, sg.d, sg.e, factors[i], sg.share, challenge, sg.id, signerIDs)
				if err != nil {
					t.Fatal(err)
				}
				z = e.ScalarAdd(z, zi)
			}

			// z*G == R + c*Y
			lhs, err := e.BaseMult(z)
			if err != nil {
				t.Fatal(err)
			}
			cy, err := e.ScalarMult(challenge, groupKey)
			if err != nil {
				t.Fatal(err)
			}
			rhs, err := e.PointAdd(groupCommit, cy)
			if err != nil {
				t.Fatal(err)
			}
			if lhs != rhs {
				t.Errorf("signature does not verify: z*G = %x, R + c*Y = %x", lhs, rhs)
			}
		})
	}
}

func TestZeroize(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	Zeroize(buf)
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("buffer not cleared: %x", buf)
		}
	}

	a := []byte{5}
	b := []byte{6, 7}
	ZeroizeAll(a, b, nil)
	if a[0] != 0 || b[0] != 0 || b[1] != 0 {
		t.Error("ZeroizeAll left data behind")
	}
}
