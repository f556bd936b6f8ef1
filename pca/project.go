// SPDX-License-Identifier: MIT

package pca

import (
	"github.com/katalvlaran/lvpca/matrix"
)

// Project maps standardized samples onto the selected components: Xstd · W.
// The shape contract (Xstd.Cols == W.Rows) is checked before multiplying.
//
// Errors:
//   - *InvalidDimensionError (nil operand or column/row mismatch).
//
// Complexity:
//   - Time O(n·d·k), Space O(n·k).
func Project(Xstd, components matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(Xstd); err != nil {
		return nil, &InvalidDimensionError{Stage: StageProject, What: "input", Err: err}
	}
	if err := matrix.ValidateNotNil(components); err != nil {
		return nil, &InvalidDimensionError{Stage: StageProject, What: "components", Err: err}
	}
	if Xstd.Cols() != components.Rows() {
		return nil, &InvalidDimensionError{
			Stage: StageProject, What: "component rows", Want: Xstd.Cols(), Got: components.Rows(),
			Err: matrix.ErrDimensionMismatch,
		}
	}

	prod, err := matrix.Mul(Xstd, components)
	if err != nil {
		return nil, &InvalidDimensionError{Stage: StageProject, What: "product", Err: err}
	}
	out, ok := prod.(*matrix.Dense)
	if !ok {
		if out, err = matrix.DenseCopyOf(prod); err != nil {
			return nil, &InvalidDimensionError{Stage: StageProject, What: "product", Err: err}
		}
	}

	return out, nil
}
