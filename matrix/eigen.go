// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Eigen computes all eigenvalues and eigenvectors of a real symmetric matrix
// with classical Jacobi rotations.
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); reject NaN/Inf tol and maxIter < 0.
//   - Stage 2: Copy m into a private Dense A; Q = I accumulates the rotations.
//   - Stage 3: Each iteration finds the pivot (p,q) with the largest |A[p,q]|,
//     stops when it drops below tol, otherwise applies one rotation to A and Q.
//   - Stage 4: Re-check the off-diagonal after the loop; eigenvalues are diag(A).
//
// Returns:
//   - []float64: eigenvalues in solver order (diagonal order of A, NOT sorted).
//   - *Dense: Q whose column i is the unit eigenvector for eigenvalue i.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNaNInf (bad tol).
//   - ErrEigenFailed when the off-diagonal is still > tol after maxIter rotations.
//
// Determinism:
//   - Pivot search scans the strict upper triangle in i→j order and keeps the
//     first maximum, so equal inputs always produce identical rotations.
//
// Complexity:
//   - Time O(n²) per rotation (pivot search dominates), Space O(n²).
//
// Notes:
//   - maxIter counts rotations, not sweeps; a full sweep is n(n−1)/2 rotations.
//   - An already diagonal matrix converges with zero rotations and Q = I.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if maxIter < 0 {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("maxIter=%d: %w", maxIter, ErrInvalidDimensions))
	}
	tol = math.Abs(tol)

	n := m.Rows()
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	A := src.Clone().(*Dense) // private working copy
	Q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		Q.data[i*n+i] = 1.0
	}

	var (
		iter           int
		i, j, p, q     int
		maxOff, off    float64
		app, aqq, apq  float64
		aip, aiq       float64
		qip, qiq       float64
		newIP, newIQ   float64
		theta, t, c, s float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: pivot (p,q) maximizing |A[p,q]|
		maxOff = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}

		// J.2: converged; a zero pivot always stops, even at tol == 0
		if maxOff <= tol || maxOff == 0 {
			break
		}

		// J.3: rotation parameters
		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate rows/cols p and q of A
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			A.data[i*n+p], A.data[p*n+i] = newIP, newIP
			A.data[i*n+q], A.data[q*n+i] = newIQ, newIQ
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		// J.5: accumulate into Q
		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Final convergence check; covers the loop ending on the budget.
	maxOff = 0.0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(A.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff > tol && n > 1 {
		return nil, nil, matrixErrorf(opEigen,
			fmt.Errorf("off-diagonal %g after %d rotations: %w", maxOff, iter, ErrEigenFailed))
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.data[i*n+i]
	}

	return eigs, Q, nil
}
