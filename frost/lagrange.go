package frost

import (
	"fmt"

	"github.com/f3rmion/fy-ledger/curve"
)

// LagrangeCoefficient computes the interpolation coefficient for
// participant myID within the signer set ids:
//
//	lambda_i = prod_{j != i} x_j / (x_j - x_i)  (mod order)
//
// with x values the identifiers in scalar form. Identifiers equal to
// myID are skipped, so a commitment list that repeats the signer's own
// identifier cannot zero a denominator.
func LagrangeCoefficient(e curve.Engine, myID uint16, ids []uint16) (curve.Scalar, error) {
	xi := IdentifierScalar(myID)
	lambda := IdentifierScalar(1)

	for _, id := range ids {
		if id == myID {
			continue
		}
		xj := IdentifierScalar(id)
		den, err := e.ScalarInvert(e.ScalarSub(xj, xi))
		if err != nil {
			return curve.Scalar{}, fmt.Errorf("frost: lagrange denominator for (%d, %d): %w", id, myID, err)
		}
		lambda = e.ScalarMul(lambda, e.ScalarMul(xj, den))
	}
	return lambda, nil
}
