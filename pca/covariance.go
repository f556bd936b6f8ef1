// SPDX-License-Identifier: MIT

package pca

import (
	"github.com/katalvlaran/lvpca/matrix"
)

// Covariance returns the d×d sample covariance of the standardized table:
// cov[i,j] = 1/(n−1) · Σ_s Xstd[s,i]·Xstd[s,j].
// The result is forced exactly symmetric via (C + Cᵀ)/2.
//
// Errors:
//   - *InvalidDimensionError (nil input), *InsufficientSamplesError (n < 2).
//
// Complexity:
//   - Time O(n·d²), Space O(d²).
func Covariance(Xstd matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(Xstd); err != nil {
		return nil, &InvalidDimensionError{Stage: StageCovariance, What: "input", Err: err}
	}
	if n := Xstd.Rows(); n < 2 {
		return nil, &InsufficientSamplesError{Stage: StageCovariance, Samples: n}
	}

	raw, _, err := matrix.Covariance(Xstd)
	if err != nil {
		return nil, &InvalidDimensionError{Stage: StageCovariance, What: "input", Err: err}
	}
	cov, err := matrix.Symmetrize(raw)
	if err != nil {
		return nil, &InvalidDimensionError{Stage: StageCovariance, What: "covariance", Err: err}
	}

	return cov, nil
}
