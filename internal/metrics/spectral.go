package metrics

import (
	"fmt"
	"math/cmplx"

	"github.com/san-kum/modalsys/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// Eigenvalues returns the (possibly complex) spectrum of a square matrix.
func Eigenvalues(m mat.Matrix) ([]complex128, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: eigenvalues of %dx%d matrix", dynamo.ErrDimensionMismatch, r, c)
	}
	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: eigendecomposition did not converge", dynamo.ErrNumerical)
	}
	return eig.Values(nil), nil
}

// SpectralRadius is the largest eigenvalue magnitude of m.
func SpectralRadius(m mat.Matrix) (float64, error) {
	vals, err := Eigenvalues(m)
	if err != nil {
		return 0, err
	}
	radius := 0.0
	for _, v := range vals {
		if a := cmplx.Abs(v); a > radius {
			radius = a
		}
	}
	return radius, nil
}

// IsSchurStable reports whether every eigenvalue of m lies strictly inside
// the unit circle.
func IsSchurStable(m mat.Matrix) (bool, error) {
	radius, err := SpectralRadius(m)
	if err != nil {
		return false, err
	}
	return radius < 1, nil
}

// OrthogonalityError is the Frobenius norm of QᵀQ - I.
func OrthogonalityError(q mat.Matrix) float64 {
	_, n := q.Dims()
	var gram mat.Dense
	gram.Mul(q.T(), q)
	for i := 0; i < n; i++ {
		gram.Set(i, i, gram.At(i, i)-1)
	}
	return mat.Norm(&gram, 2)
}
