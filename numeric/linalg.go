package numeric

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// EigenResult holds the dominant (largest-modulus) eigenpair of a
// general real matrix, plus the full spectrum for callers that need it.
type EigenResult struct {
	// Values holds every eigenvalue (possibly complex) of the matrix,
	// in the order gonum returns them.
	Values []complex128
	// MaxIndex is the index, within Values, of the eigenvalue of
	// largest modulus.
	MaxIndex int
	// MaxModulus is |Values[MaxIndex]|.
	MaxModulus float64
}

// Eigendecompose computes the eigendecomposition of the square matrix m
// and returns the eigenpair of largest modulus, used by
// EscapeWithMatrix/Lyapunov finalisation (stretch = |lambda_max|,
// eigenvector = its right eigenvector). Grounded on
// Eigen::EigenSolver usage in observable.h's ComputeMatrix::finalise.
//
// m is lowered to float64 first (see SPEC_FULL.md §6.2): gonum's
// mat.Eigen only operates on float64 matrices, so the precision of the
// accumulated product Jacobian is only preserved up to this final
// spectral step.
func Eigendecompose(m Matrix) (EigenResult, Vector) {
	n := m.Rows()
	dense := mat.NewDense(n, n, m.Float64s())

	var eig mat.Eigen
	ok := eig.Factorize(dense, mat.EigenRight)
	if !ok {
		// Degenerate matrix (spec §7 point 3: numerical degeneracy).
		// Propagate a zero-modulus result; callers detect this via
		// MaxModulus == 0 and let the histogram's invalid_value path
		// (or an explicit check) absorb it, rather than panicking.
		return EigenResult{Values: nil, MaxIndex: 0, MaxModulus: 0}, NewVector(n)
	}

	values := eig.Values(nil)

	maxIdx, maxMod := 0, 0.0
	for i, v := range values {
		mod := cmplx.Abs(v)
		if mod > maxMod {
			maxMod = mod
			maxIdx = i
		}
	}

	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	vec := make(Vector, n)
	for i := 0; i < n; i++ {
		// The accumulated product Jacobian of a real dynamical system
		// has a real dominant eigenvector whenever the dominant
		// eigenvalue itself is real (the common case this package is
		// used for); take the real part, matching the original's
		// `.toDouble()` narrowing of an mpreal-valued component.
		c := vectors.At(i, maxIdx)
		vec[i] = New(real(c))
	}

	return EigenResult{Values: values, MaxIndex: maxIdx, MaxModulus: maxMod}, vec
}

// SVDResult holds the outcome of a full singular value decomposition:
// m = U * Sigma * V^T.
type SVDResult struct {
	Values []float64 // singular values, descending
	V      *mat.Dense
}

// SVD computes the full SVD of m (right singular vectors only are
// used downstream, by the Anisotropic proposal), lowering m to float64
// for the same reason as Eigendecompose. Grounded on
// Eigen::JacobiSVD<Matrix> usage in proposal::proposeAnisotropic.
func SVD(m Matrix) SVDResult {
	dense := mat.NewDense(m.Rows(), m.Cols(), m.Float64s())

	var svd mat.SVD
	ok := svd.Factorize(dense, mat.SVDFull)
	if !ok {
		return SVDResult{Values: make([]float64, m.Cols()), V: mat.NewDense(m.Cols(), m.Cols(), nil)}
	}

	values := svd.Values(nil)

	var v mat.Dense
	svd.VTo(&v)

	return SVDResult{Values: values, V: &v}
}
