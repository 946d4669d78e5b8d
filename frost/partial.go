package frost

import (
	"github.com/f3rmion/fy-ledger/curve"
)

// PartialSignature computes this signer's share of the threshold
// signature:
//
//	z_i = d + e*rho + s*c*lambda_i  (mod order)
//
// where d and e are the hiding and binding nonces, rho the signer's
// binding factor, s the secret share and c the challenge. Every
// intermediate that carries nonce or share material is zeroized before
// return, on success and failure alike.
func PartialSignature(
	e curve.Engine,
	hidingNonce, bindingNonce curve.Scalar,
	bindingFactor, secretShare, challenge curve.Scalar,
	myID uint16,
	ids []uint16,
) (curve.Scalar, error) {
	lambda, err := LagrangeCoefficient(e, myID, ids)
	if err != nil {
		return curve.Scalar{}, err
	}

	nonceTerm := e.ScalarMul(bindingNonce, bindingFactor)
	shareTerm := e.ScalarMul(e.ScalarMul(secretShare, challenge), lambda)

	z := e.ScalarAdd(hidingNonce, nonceTerm)
	z = e.ScalarAdd(z, shareTerm)

	ZeroizeAll(lambda[:], nonceTerm[:], shareTerm[:])
	return z, nil
}
